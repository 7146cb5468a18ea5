package service

import (
	"context"
	"fmt"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository"
	"go.uber.org/zap"
)

type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
	classRepo      *repository.ClassRepository
	activityRepo   *repository.ActivityRepository
	logger         *zap.Logger
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	classRepo *repository.ClassRepository,
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		classRepo:      classRepo,
		activityRepo:   activityRepo,
		logger:         logger,
	}
}

// Create создаёт задание. Имя класса денормализуется в момент создания,
// чтобы лента и календарь не ходили за ним отдельным запросом.
func (s *AssignmentService) Create(ctx context.Context, assignment *model.Assignment) error {
	if assignment.Title == "" {
		return fmt.Errorf("assignment title is required")
	}

	class, err := s.classRepo.GetByID(ctx, assignment.ClassID)
	if err != nil {
		return fmt.Errorf("get class: %w", err)
	}

	if class == nil {
		return fmt.Errorf("class not found")
	}

	assignment.ClassName = class.Name
	if assignment.Status == "" {
		assignment.Status = model.AssignmentStatusActive
	}

	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return err
	}

	activity := &model.Activity{
		Type:        model.ActivityTypeAssignment,
		Description: fmt.Sprintf("Assignment %q created for %s class", assignment.Title, class.Name),
		User:        "Teacher",
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("Failed to record assignment activity",
			zap.Int64("assignment_id", assignment.ID),
			zap.Error(err))
	}

	return nil
}

// GetByID получает задание по ID
func (s *AssignmentService) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// GetAll получает все задания
func (s *AssignmentService) GetAll(ctx context.Context) ([]*model.Assignment, error) {
	return s.assignmentRepo.GetAll(ctx)
}

// GetByClassID получает задания класса
func (s *AssignmentService) GetByClassID(ctx context.Context, classID int64) ([]*model.Assignment, error) {
	return s.assignmentRepo.GetByClassID(ctx, classID)
}

// GetUpcoming получает активные задания со сроком в ближайшие дни
func (s *AssignmentService) GetUpcoming(ctx context.Context, days int) ([]*model.Assignment, error) {
	return s.assignmentRepo.GetUpcoming(ctx, time.Now(), days)
}

// Update обновляет задание
func (s *AssignmentService) Update(ctx context.Context, assignment *model.Assignment) error {
	return s.assignmentRepo.Update(ctx, assignment)
}

// Delete удаляет задание
func (s *AssignmentService) Delete(ctx context.Context, id int64) error {
	return s.assignmentRepo.Delete(ctx, id)
}

// Submit отмечает сдачу задания студентом
func (s *AssignmentService) Submit(ctx context.Context, assignmentID, studentID int64) error {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return fmt.Errorf("get assignment: %w", err)
	}

	if assignment == nil {
		return fmt.Errorf("assignment not found")
	}

	return s.assignmentRepo.AddSubmission(ctx, assignmentID, studentID)
}

// GetSubmissions получает ID студентов, сдавших задание
func (s *AssignmentService) GetSubmissions(ctx context.Context, assignmentID int64) ([]int64, error) {
	return s.assignmentRepo.GetSubmissionStudentIDs(ctx, assignmentID)
}
