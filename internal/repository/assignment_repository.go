package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type AssignmentRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewAssignmentRepository(pool *pgxpool.Pool, logger *zap.Logger) *AssignmentRepository {
	return &AssignmentRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create создаёт новое задание
func (r *AssignmentRepository) Create(ctx context.Context, assignment *model.Assignment) error {
	query := `
		INSERT INTO assignments (class_id, class_name, title, description, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		assignment.ClassID,
		assignment.ClassName,
		assignment.Title,
		assignment.Description,
		assignment.DueDate,
		assignment.Status,
	).Scan(&assignment.ID, &assignment.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to insert assignment into DB",
			zap.Int64("class_id", assignment.ClassID),
			zap.String("title", assignment.Title),
			zap.Error(err))
		return fmt.Errorf("create assignment: %w", err)
	}

	r.logger.Info("Assignment created",
		zap.Int64("assignment_id", assignment.ID),
		zap.String("title", assignment.Title),
		zap.Time("due_date", assignment.DueDate))

	return nil
}

// GetByID получает задание по ID
func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*model.Assignment, error) {
	query := `
		SELECT id, class_id, class_name, title, description, due_date, status, created_at
		FROM assignments
		WHERE id = $1
	`

	var assignment model.Assignment
	err := r.QueryRow(ctx, query, id).Scan(
		&assignment.ID,
		&assignment.ClassID,
		&assignment.ClassName,
		&assignment.Title,
		&assignment.Description,
		&assignment.DueDate,
		&assignment.Status,
		&assignment.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment by id: %w", err)
	}

	return &assignment, nil
}

// GetAll получает все задания
func (r *AssignmentRepository) GetAll(ctx context.Context) ([]*model.Assignment, error) {
	query := `
		SELECT id, class_id, class_name, title, description, due_date, status, created_at
		FROM assignments
		ORDER BY due_date
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetByClassID получает задания класса
func (r *AssignmentRepository) GetByClassID(ctx context.Context, classID int64) ([]*model.Assignment, error) {
	query := `
		SELECT id, class_id, class_name, title, description, due_date, status, created_at
		FROM assignments
		WHERE class_id = $1
		ORDER BY due_date
	`

	rows, err := r.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("get assignments by class: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetUpcoming получает активные задания со сроком сдачи в ближайшие дни
func (r *AssignmentRepository) GetUpcoming(ctx context.Context, from time.Time, days int) ([]*model.Assignment, error) {
	query := `
		SELECT id, class_id, class_name, title, description, due_date, status, created_at
		FROM assignments
		WHERE status = $1 AND due_date >= $2 AND due_date <= $3
		ORDER BY due_date
	`

	rows, err := r.Query(ctx, query, model.AssignmentStatusActive, from, from.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("get upcoming assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Update обновляет задание
func (r *AssignmentRepository) Update(ctx context.Context, assignment *model.Assignment) error {
	query := `
		UPDATE assignments
		SET class_id = $1, class_name = $2, title = $3, description = $4, due_date = $5, status = $6
		WHERE id = $7
	`

	affected, err := r.ExecAffected(
		ctx, query,
		assignment.ClassID,
		assignment.ClassName,
		assignment.Title,
		assignment.Description,
		assignment.DueDate,
		assignment.Status,
		assignment.ID,
	)

	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("assignment not found")
	}

	return nil
}

// Delete удаляет задание
func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM assignments WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("assignment not found")
	}

	return nil
}

// AddSubmission отмечает сдачу задания студентом (повторная сдача игнорируется)
func (r *AssignmentRepository) AddSubmission(ctx context.Context, assignmentID, studentID int64) error {
	query := `
		INSERT INTO assignment_submissions (assignment_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (assignment_id, student_id) DO NOTHING
	`

	if _, err := r.ExecAffected(ctx, query, assignmentID, studentID); err != nil {
		return fmt.Errorf("add assignment submission: %w", err)
	}

	return nil
}

// GetSubmissionStudentIDs получает ID студентов, сдавших задание
func (r *AssignmentRepository) GetSubmissionStudentIDs(ctx context.Context, assignmentID int64) ([]int64, error) {
	query := `
		SELECT student_id
		FROM assignment_submissions
		WHERE assignment_id = $1
		ORDER BY student_id
	`

	rows, err := r.Query(ctx, query, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("get submission student ids: %w", err)
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

func scanAssignments(rows pgx.Rows) ([]*model.Assignment, error) {
	var assignments []*model.Assignment
	for rows.Next() {
		var assignment model.Assignment
		err := rows.Scan(
			&assignment.ID,
			&assignment.ClassID,
			&assignment.ClassName,
			&assignment.Title,
			&assignment.Description,
			&assignment.DueDate,
			&assignment.Status,
			&assignment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		assignments = append(assignments, &assignment)
	}

	return assignments, nil
}
