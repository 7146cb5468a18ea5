package repository

import (
	"context"
	"fmt"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository/base"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type GradeRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewGradeRepository(pool *pgxpool.Pool, logger *zap.Logger) *GradeRepository {
	return &GradeRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create создаёт новую оценку
func (r *GradeRepository) Create(ctx context.Context, grade *model.Grade) error {
	query := `
		INSERT INTO grades (student_id, class_id, assignment_id, score, max_score, feedback)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, graded_at
	`

	err := r.QueryRow(
		ctx, query,
		grade.StudentID,
		grade.ClassID,
		grade.AssignmentID,
		grade.Score,
		grade.MaxScore,
		grade.Feedback,
	).Scan(&grade.ID, &grade.GradedAt)

	if err != nil {
		r.logger.Error("Failed to insert grade into DB",
			zap.Int64("student_id", grade.StudentID),
			zap.Int64("assignment_id", grade.AssignmentID),
			zap.Error(err))
		return fmt.Errorf("create grade: %w", err)
	}

	r.logger.Info("Grade created",
		zap.Int64("grade_id", grade.ID),
		zap.Int64("student_id", grade.StudentID),
		zap.Float64("score", grade.Score))

	return nil
}

// GetByID получает оценку по ID
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*model.Grade, error) {
	query := `
		SELECT id, student_id, class_id, assignment_id, score, max_score, feedback, graded_at
		FROM grades
		WHERE id = $1
	`

	var grade model.Grade
	err := r.QueryRow(ctx, query, id).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.ClassID,
		&grade.AssignmentID,
		&grade.Score,
		&grade.MaxScore,
		&grade.Feedback,
		&grade.GradedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get grade by id: %w", err)
	}

	return &grade, nil
}

// GetAll получает все оценки
func (r *GradeRepository) GetAll(ctx context.Context) ([]*model.Grade, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, assignment_id, score, max_score, feedback, graded_at
		FROM grades
		ORDER BY graded_at DESC
	`)
}

// GetByStudentID получает оценки студента
func (r *GradeRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*model.Grade, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, assignment_id, score, max_score, feedback, graded_at
		FROM grades
		WHERE student_id = $1
		ORDER BY graded_at DESC
	`, studentID)
}

// GetByClassID получает оценки класса
func (r *GradeRepository) GetByClassID(ctx context.Context, classID int64) ([]*model.Grade, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, assignment_id, score, max_score, feedback, graded_at
		FROM grades
		WHERE class_id = $1
		ORDER BY graded_at DESC
	`, classID)
}

// GetByAssignmentID получает оценки за задание
func (r *GradeRepository) GetByAssignmentID(ctx context.Context, assignmentID int64) ([]*model.Grade, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, assignment_id, score, max_score, feedback, graded_at
		FROM grades
		WHERE assignment_id = $1
		ORDER BY graded_at DESC
	`, assignmentID)
}

// GetByStudentAndClass получает оценки студента в классе
func (r *GradeRepository) GetByStudentAndClass(ctx context.Context, studentID, classID int64) ([]*model.Grade, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, assignment_id, score, max_score, feedback, graded_at
		FROM grades
		WHERE student_id = $1 AND class_id = $2
		ORDER BY graded_at DESC
	`, studentID, classID)
}

// Update обновляет оценку
func (r *GradeRepository) Update(ctx context.Context, grade *model.Grade) error {
	query := `
		UPDATE grades
		SET score = $1, max_score = $2, feedback = $3
		WHERE id = $4
	`

	affected, err := r.ExecAffected(
		ctx, query,
		grade.Score,
		grade.MaxScore,
		grade.Feedback,
		grade.ID,
	)

	if err != nil {
		return fmt.Errorf("update grade: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("grade not found")
	}

	return nil
}

// Delete удаляет оценку
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM grades WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete grade: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("grade not found")
	}

	return nil
}

func (r *GradeRepository) query(ctx context.Context, query string, args ...interface{}) ([]*model.Grade, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query grades: %w", err)
	}
	defer rows.Close()

	var grades []*model.Grade
	for rows.Next() {
		var grade model.Grade
		err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.ClassID,
			&grade.AssignmentID,
			&grade.Score,
			&grade.MaxScore,
			&grade.Feedback,
			&grade.GradedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan grade: %w", err)
		}
		grades = append(grades, &grade)
	}

	return grades, nil
}
