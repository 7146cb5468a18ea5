package service

import (
	"context"
	"fmt"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository"
	"go.uber.org/zap"
)

type StudentService struct {
	studentRepo  *repository.StudentRepository
	classRepo    *repository.ClassRepository
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

func NewStudentService(
	studentRepo *repository.StudentRepository,
	classRepo *repository.ClassRepository,
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *StudentService {
	return &StudentService{
		studentRepo:  studentRepo,
		classRepo:    classRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Create создаёт студента и пишет запись в ленту активности
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	if student.Name == "" {
		return fmt.Errorf("student name is required")
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	activity := &model.Activity{
		Type:        model.ActivityTypeStudent,
		Description: fmt.Sprintf("New student %s enrolled in %s", student.Name, student.Grade),
		User:        "Admin",
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		// Лента активности вторична, создание студента не откатываем
		s.logger.Warn("Failed to record student activity",
			zap.Int64("student_id", student.ID),
			zap.Error(err))
	}

	return nil
}

// GetByID получает студента по ID
func (s *StudentService) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetAll получает всех студентов
func (s *StudentService) GetAll(ctx context.Context) ([]*model.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

// GetByClassID получает студентов класса
func (s *StudentService) GetByClassID(ctx context.Context, classID int64) ([]*model.Student, error) {
	return s.studentRepo.GetByClassID(ctx, classID)
}

// Update обновляет студента
func (s *StudentService) Update(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Update(ctx, student)
}

// Delete удаляет студента
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

// EnrollInClass записывает студента в класс
func (s *StudentService) EnrollInClass(ctx context.Context, studentID, classID int64) error {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("get student: %w", err)
	}

	if student == nil {
		return fmt.Errorf("student not found")
	}

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return fmt.Errorf("get class: %w", err)
	}

	if class == nil {
		return fmt.Errorf("class not found")
	}

	if err := s.classRepo.AddStudent(ctx, classID, studentID); err != nil {
		return err
	}

	s.logger.Info("Student enrolled in class",
		zap.Int64("student_id", studentID),
		zap.Int64("class_id", classID))

	return nil
}

// RemoveFromClass отчисляет студента из класса
func (s *StudentService) RemoveFromClass(ctx context.Context, studentID, classID int64) error {
	return s.classRepo.RemoveStudent(ctx, classID, studentID)
}
