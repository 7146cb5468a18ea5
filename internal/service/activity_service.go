package service

import (
	"context"
	"strings"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository"
	"go.uber.org/zap"
)

type ActivityService struct {
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

func NewActivityService(activityRepo *repository.ActivityRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Record добавляет запись в ленту активности
func (s *ActivityService) Record(ctx context.Context, activity *model.Activity) error {
	return s.activityRepo.Create(ctx, activity)
}

// GetAll получает ленту, новые записи первыми
func (s *ActivityService) GetAll(ctx context.Context) ([]*model.Activity, error) {
	return s.activityRepo.GetAll(ctx)
}

// GetByID получает запись по ID
func (s *ActivityService) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	return s.activityRepo.GetByID(ctx, id)
}

// GetByType фильтрует ленту по типу, "all" и пустая строка
// возвращают всё
func (s *ActivityService) GetByType(ctx context.Context, activityType string) ([]*model.Activity, error) {
	if activityType == "" || activityType == EventTypeAll {
		return s.activityRepo.GetAll(ctx)
	}
	return s.activityRepo.GetByType(ctx, model.ActivityType(strings.ToLower(activityType)))
}

// Search ищет записи по подстроке, пустой запрос возвращает всё
func (s *ActivityService) Search(ctx context.Context, term string) ([]*model.Activity, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.activityRepo.GetAll(ctx)
	}
	return s.activityRepo.Search(ctx, term)
}

// Stats считает записи за сегодня, неделю и месяц
func (s *ActivityService) Stats(ctx context.Context) (model.ActivityStats, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats model.ActivityStats
	var err error

	if stats.Today, err = s.activityRepo.CountSince(ctx, today); err != nil {
		return model.ActivityStats{}, err
	}
	if stats.Week, err = s.activityRepo.CountSince(ctx, today.AddDate(0, 0, -7)); err != nil {
		return model.ActivityStats{}, err
	}
	if stats.Month, err = s.activityRepo.CountSince(ctx, today.AddDate(0, 0, -30)); err != nil {
		return model.ActivityStats{}, err
	}
	if stats.Total, err = s.activityRepo.Count(ctx); err != nil {
		return model.ActivityStats{}, err
	}

	return stats, nil
}
