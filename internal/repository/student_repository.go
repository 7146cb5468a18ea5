package repository

import (
	"context"
	"fmt"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository/base"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type StudentRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewStudentRepository(pool *pgxpool.Pool, logger *zap.Logger) *StudentRepository {
	return &StudentRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// Create создаёт нового студента
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (name, email, grade)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.QueryRow(
		ctx, query,
		student.Name,
		student.Email,
		student.Grade,
	).Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to insert student into DB",
			zap.String("name", student.Name),
			zap.String("email", student.Email),
			zap.Error(err))
		return fmt.Errorf("create student: %w", err)
	}

	r.logger.Info("Student created",
		zap.Int64("student_id", student.ID),
		zap.String("name", student.Name))

	return nil
}

// GetByID получает студента по ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	query := `
		SELECT id, name, email, grade, created_at
		FROM students
		WHERE id = $1
	`

	var student model.Student
	err := r.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Grade,
		&student.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return &student, nil
}

// GetAll получает всех студентов
func (r *StudentRepository) GetAll(ctx context.Context) ([]*model.Student, error) {
	query := `
		SELECT id, name, email, grade, created_at
		FROM students
		ORDER BY name
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get all students: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetByClassID получает студентов, записанных в класс
func (r *StudentRepository) GetByClassID(ctx context.Context, classID int64) ([]*model.Student, error) {
	query := `
		SELECT s.id, s.name, s.email, s.grade, s.created_at
		FROM students s
		INNER JOIN class_students cs ON cs.student_id = s.id
		WHERE cs.class_id = $1
		ORDER BY s.name
	`

	rows, err := r.Query(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("get students by class: %w", err)
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Update обновляет студента
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students
		SET name = $1, email = $2, grade = $3
		WHERE id = $4
	`

	affected, err := r.ExecAffected(
		ctx, query,
		student.Name,
		student.Email,
		student.Grade,
		student.ID,
	)

	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

// Delete удаляет студента
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

func scanStudents(rows pgx.Rows) ([]*model.Student, error) {
	var students []*model.Student
	for rows.Next() {
		var student model.Student
		err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Grade,
			&student.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, &student)
	}

	return students, nil
}
