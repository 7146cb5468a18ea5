package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ActivityRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewActivityRepository(pool *pgxpool.Pool, logger *zap.Logger) *ActivityRepository {
	return &ActivityRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create создаёт запись активности
func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	query := `
		INSERT INTO activities (type, description, "user")
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		activity.Type,
		activity.Description,
		activity.User,
	).Scan(&activity.ID, &activity.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to insert activity into DB",
			zap.String("type", string(activity.Type)),
			zap.Error(err))
		return fmt.Errorf("create activity: %w", err)
	}

	return nil
}

// GetByID получает запись активности по ID
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*model.Activity, error) {
	query := `
		SELECT id, type, description, "user", created_at
		FROM activities
		WHERE id = $1
	`

	var activity model.Activity
	err := r.QueryRow(ctx, query, id).Scan(
		&activity.ID,
		&activity.Type,
		&activity.Description,
		&activity.User,
		&activity.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity by id: %w", err)
	}

	return &activity, nil
}

// GetAll получает записи активности, новые первыми
func (r *ActivityRepository) GetAll(ctx context.Context) ([]*model.Activity, error) {
	return r.query(ctx, `
		SELECT id, type, description, "user", created_at
		FROM activities
		ORDER BY created_at DESC
	`)
}

// GetByType получает записи активности одного типа
func (r *ActivityRepository) GetByType(ctx context.Context, activityType model.ActivityType) ([]*model.Activity, error) {
	return r.query(ctx, `
		SELECT id, type, description, "user", created_at
		FROM activities
		WHERE type = $1
		ORDER BY created_at DESC
	`, activityType)
}

// Search ищет записи по подстроке в описании, пользователе или типе
func (r *ActivityRepository) Search(ctx context.Context, term string) ([]*model.Activity, error) {
	return r.query(ctx, `
		SELECT id, type, description, "user", created_at
		FROM activities
		WHERE description ILIKE '%' || $1 || '%'
		   OR "user" ILIKE '%' || $1 || '%'
		   OR type ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`, term)
}

// CountSince считает записи начиная с указанного момента
func (r *ActivityRepository) CountSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM activities WHERE created_at >= $1`

	var count int
	if err := r.QueryRow(ctx, query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}

	return count, nil
}

// Count считает все записи
func (r *ActivityRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM activities`

	var count int
	if err := r.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}

	return count, nil
}

// Delete удаляет запись активности
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM activities WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("activity not found")
	}

	return nil
}

func (r *ActivityRepository) query(ctx context.Context, query string, args ...interface{}) ([]*model.Activity, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var activities []*model.Activity
	for rows.Next() {
		var activity model.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Type,
			&activity.Description,
			&activity.User,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		activities = append(activities, &activity)
	}

	return activities, nil
}
