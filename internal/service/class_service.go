package service

import (
	"context"
	"fmt"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository"
	"go.uber.org/zap"
)

type ClassService struct {
	classRepo *repository.ClassRepository
	logger    *zap.Logger
}

func NewClassService(classRepo *repository.ClassRepository, logger *zap.Logger) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		logger:    logger,
	}
}

// Create создаёт класс
func (s *ClassService) Create(ctx context.Context, class *model.Class) error {
	if class.Name == "" {
		return fmt.Errorf("class name is required")
	}

	return s.classRepo.Create(ctx, class)
}

// GetByID получает класс по ID
func (s *ClassService) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// GetAll получает все классы
func (s *ClassService) GetAll(ctx context.Context) ([]*model.Class, error) {
	return s.classRepo.GetAll(ctx)
}

// Update обновляет класс
func (s *ClassService) Update(ctx context.Context, class *model.Class) error {
	return s.classRepo.Update(ctx, class)
}

// Delete удаляет класс
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	return s.classRepo.Delete(ctx, id)
}

// GetStudentIDs получает ID студентов класса
func (s *ClassService) GetStudentIDs(ctx context.Context, classID int64) ([]int64, error) {
	return s.classRepo.GetStudentIDs(ctx, classID)
}
