package repository

import (
	"context"
	"fmt"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ClassRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewClassRepository(pool *pgxpool.Pool, logger *zap.Logger) *ClassRepository {
	return &ClassRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create создаёт новый класс
func (r *ClassRepository) Create(ctx context.Context, class *model.Class) error {
	query := `
		INSERT INTO classes (name, subject, instructor, schedule, room)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		class.Name,
		class.Subject,
		class.Instructor,
		class.Schedule,
		class.Room,
	).Scan(&class.ID, &class.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to insert class into DB",
			zap.String("name", class.Name),
			zap.String("instructor", class.Instructor),
			zap.Error(err))
		return fmt.Errorf("create class: %w", err)
	}

	r.logger.Info("Class created",
		zap.Int64("class_id", class.ID),
		zap.String("name", class.Name))

	return nil
}

// GetByID получает класс по ID
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	query := `
		SELECT id, name, subject, instructor, schedule, room, created_at
		FROM classes
		WHERE id = $1
	`

	var class model.Class
	err := r.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.Subject,
		&class.Instructor,
		&class.Schedule,
		&class.Room,
		&class.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get class by id: %w", err)
	}

	return &class, nil
}

// GetAll получает все классы
func (r *ClassRepository) GetAll(ctx context.Context) ([]*model.Class, error) {
	query := `
		SELECT id, name, subject, instructor, schedule, room, created_at
		FROM classes
		ORDER BY name
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all classes: %w", err)
	}
	defer rows.Close()

	var classes []*model.Class
	for rows.Next() {
		var class model.Class
		err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.Subject,
			&class.Instructor,
			&class.Schedule,
			&class.Room,
			&class.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		classes = append(classes, &class)
	}

	return classes, nil
}

// Update обновляет класс
func (r *ClassRepository) Update(ctx context.Context, class *model.Class) error {
	query := `
		UPDATE classes
		SET name = $1, subject = $2, instructor = $3, schedule = $4, room = $5
		WHERE id = $6
	`

	affected, err := r.ExecAffected(
		ctx, query,
		class.Name,
		class.Subject,
		class.Instructor,
		class.Schedule,
		class.Room,
		class.ID,
	)

	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("class not found")
	}

	return nil
}

// Delete удаляет класс
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM classes WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("class not found")
	}

	return nil
}

// AddStudent записывает студента в класс (повторная запись игнорируется)
func (r *ClassRepository) AddStudent(ctx context.Context, classID, studentID int64) error {
	query := `
		INSERT INTO class_students (class_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (class_id, student_id) DO NOTHING
	`

	if _, err := r.ExecAffected(ctx, query, classID, studentID); err != nil {
		return fmt.Errorf("add student to class: %w", err)
	}

	return nil
}

// RemoveStudent отчисляет студента из класса
func (r *ClassRepository) RemoveStudent(ctx context.Context, classID, studentID int64) error {
	query := `DELETE FROM class_students WHERE class_id = $1 AND student_id = $2`

	if _, err := r.ExecAffected(ctx, query, classID, studentID); err != nil {
		return fmt.Errorf("remove student from class: %w", err)
	}

	return nil
}

// GetStudentIDs получает ID студентов класса
func (r *ClassRepository) GetStudentIDs(ctx context.Context, classID int64) ([]int64, error) {
	query := `
		SELECT student_id
		FROM class_students
		WHERE class_id = $1
		ORDER BY student_id
	`

	rows, err := r.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("get class student ids: %w", err)
	}
	defer rows.Close()

	var studentIDs []int64
	for rows.Next() {
		var studentID int64
		if err := rows.Scan(&studentID); err != nil {
			return nil, fmt.Errorf("scan student id: %w", err)
		}
		studentIDs = append(studentIDs, studentID)
	}

	return studentIDs, nil
}
