package service

import (
	"context"
	"fmt"
	"math"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository"
	"go.uber.org/zap"
)

type GradeService struct {
	gradeRepo    *repository.GradeRepository
	studentRepo  *repository.StudentRepository
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

func NewGradeService(
	gradeRepo *repository.GradeRepository,
	studentRepo *repository.StudentRepository,
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *GradeService {
	return &GradeService{
		gradeRepo:    gradeRepo,
		studentRepo:  studentRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Create выставляет оценку и пишет запись в ленту активности
func (s *GradeService) Create(ctx context.Context, grade *model.Grade) error {
	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return err
	}

	student, err := s.studentRepo.GetByID(ctx, grade.StudentID)
	if err != nil || student == nil {
		return nil
	}

	activity := &model.Activity{
		Type: model.ActivityTypeGrade,
		Description: fmt.Sprintf("Grade submitted for student %s - Score: %.0f/%.0f",
			student.Name, grade.Score, grade.MaxScore),
		User: "Teacher",
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("Failed to record grade activity",
			zap.Int64("grade_id", grade.ID),
			zap.Error(err))
	}

	return nil
}

// GetByID получает оценку по ID
func (s *GradeService) GetByID(ctx context.Context, id int64) (*model.Grade, error) {
	return s.gradeRepo.GetByID(ctx, id)
}

// GetAll получает все оценки
func (s *GradeService) GetAll(ctx context.Context) ([]*model.Grade, error) {
	return s.gradeRepo.GetAll(ctx)
}

// GetByStudentID получает оценки студента
func (s *GradeService) GetByStudentID(ctx context.Context, studentID int64) ([]*model.Grade, error) {
	return s.gradeRepo.GetByStudentID(ctx, studentID)
}

// GetByClassID получает оценки класса
func (s *GradeService) GetByClassID(ctx context.Context, classID int64) ([]*model.Grade, error) {
	return s.gradeRepo.GetByClassID(ctx, classID)
}

// GetByAssignmentID получает оценки за задание
func (s *GradeService) GetByAssignmentID(ctx context.Context, assignmentID int64) ([]*model.Grade, error) {
	return s.gradeRepo.GetByAssignmentID(ctx, assignmentID)
}

// Update обновляет оценку
func (s *GradeService) Update(ctx context.Context, grade *model.Grade) error {
	return s.gradeRepo.Update(ctx, grade)
}

// Delete удаляет оценку
func (s *GradeService) Delete(ctx context.Context, id int64) error {
	return s.gradeRepo.Delete(ctx, id)
}

// ClassAverage считает среднюю оценку по классу
func (s *GradeService) ClassAverage(ctx context.Context, classID int64) (float64, error) {
	grades, err := s.gradeRepo.GetByClassID(ctx, classID)
	if err != nil {
		return 0, err
	}
	return averageScore(grades), nil
}

// StudentAverage считает среднюю оценку студента, при classID != nil -
// только в рамках одного класса
func (s *GradeService) StudentAverage(ctx context.Context, studentID int64, classID *int64) (float64, error) {
	var (
		grades []*model.Grade
		err    error
	)
	if classID != nil {
		grades, err = s.gradeRepo.GetByStudentAndClass(ctx, studentID, *classID)
	} else {
		grades, err = s.gradeRepo.GetByStudentID(ctx, studentID)
	}
	if err != nil {
		return 0, err
	}
	return averageScore(grades), nil
}

// averageScore средний балл, округлённый до двух знаков.
// Пустой список оценок даёт 0.
func averageScore(grades []*model.Grade) float64 {
	if len(grades) == 0 {
		return 0
	}

	var total float64
	for _, grade := range grades {
		total += grade.Score
	}

	return math.Round(total/float64(len(grades))*100) / 100
}
