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

type AttendanceRepository struct {
	*base.Repository
	logger *zap.Logger
}

func NewAttendanceRepository(pool *pgxpool.Pool, logger *zap.Logger) *AttendanceRepository {
	return &AttendanceRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

const upsertAttendanceQuery = `
	INSERT INTO attendance (student_id, class_id, date, status, note, marked_by, batch_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (student_id, class_id, date)
	DO UPDATE SET status = $4, note = $5, marked_by = $6, batch_id = $7
	RETURNING id, created_at
`

// Upsert создаёт отметку посещаемости или обновляет существующую
// (на студента/класс/дату всегда одна запись)
func (r *AttendanceRepository) Upsert(ctx context.Context, record *model.AttendanceRecord) error {
	err := r.QueryRow(
		ctx, upsertAttendanceQuery,
		record.StudentID,
		record.ClassID,
		record.Date,
		record.Status,
		record.Note,
		record.MarkedBy,
		record.BatchID,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		r.logger.Error("Failed to upsert attendance record",
			zap.Int64("student_id", record.StudentID),
			zap.Int64("class_id", record.ClassID),
			zap.Time("date", record.Date),
			zap.Error(err))
		return fmt.Errorf("upsert attendance: %w", err)
	}

	return nil
}

// UpsertBatch сохраняет отметки журнала одной транзакцией:
// либо весь журнал записан, либо ничего
func (r *AttendanceRepository) UpsertBatch(ctx context.Context, records []*model.AttendanceRecord) error {
	err := r.WithTx(ctx, func(tx pgx.Tx) error {
		for _, record := range records {
			err := tx.QueryRow(
				ctx, upsertAttendanceQuery,
				record.StudentID,
				record.ClassID,
				record.Date,
				record.Status,
				record.Note,
				record.MarkedBy,
				record.BatchID,
			).Scan(&record.ID, &record.CreatedAt)
			if err != nil {
				return fmt.Errorf("upsert attendance for student %d: %w", record.StudentID, err)
			}
		}
		return nil
	})

	if err != nil {
		r.logger.Error("Failed to upsert attendance batch",
			zap.Int("records", len(records)),
			zap.Error(err))
		return fmt.Errorf("upsert attendance batch: %w", err)
	}

	return nil
}

// GetByID получает отметку по ID
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*model.AttendanceRecord, error) {
	query := `
		SELECT id, student_id, class_id, date, status, note, marked_by, batch_id, created_at
		FROM attendance
		WHERE id = $1
	`

	var record model.AttendanceRecord
	err := r.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.StudentID,
		&record.ClassID,
		&record.Date,
		&record.Status,
		&record.Note,
		&record.MarkedBy,
		&record.BatchID,
		&record.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance by id: %w", err)
	}

	return &record, nil
}

// GetAll получает все отметки
func (r *AttendanceRepository) GetAll(ctx context.Context) ([]*model.AttendanceRecord, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, date, status, note, marked_by, batch_id, created_at
		FROM attendance
		ORDER BY date DESC
	`)
}

// GetByStudentID получает отметки студента
func (r *AttendanceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*model.AttendanceRecord, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, date, status, note, marked_by, batch_id, created_at
		FROM attendance
		WHERE student_id = $1
		ORDER BY date DESC
	`, studentID)
}

// GetByStudentAndClass получает отметки студента в классе
func (r *AttendanceRepository) GetByStudentAndClass(ctx context.Context, studentID, classID int64) ([]*model.AttendanceRecord, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, date, status, note, marked_by, batch_id, created_at
		FROM attendance
		WHERE student_id = $1 AND class_id = $2
		ORDER BY date DESC
	`, studentID, classID)
}

// GetByClassID получает отметки класса
func (r *AttendanceRepository) GetByClassID(ctx context.Context, classID int64) ([]*model.AttendanceRecord, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, date, status, note, marked_by, batch_id, created_at
		FROM attendance
		WHERE class_id = $1
		ORDER BY date DESC
	`, classID)
}

// GetByClassAndDate получает отметки класса за один день
func (r *AttendanceRepository) GetByClassAndDate(ctx context.Context, classID int64, date time.Time) ([]*model.AttendanceRecord, error) {
	return r.query(ctx, `
		SELECT id, student_id, class_id, date, status, note, marked_by, batch_id, created_at
		FROM attendance
		WHERE class_id = $1 AND date = $2
		ORDER BY student_id
	`, classID, date)
}

// Delete удаляет отметку
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM attendance WHERE id = $1`

	affected, err := r.ExecAffected(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("attendance record not found")
	}

	return nil
}

func (r *AttendanceRepository) query(ctx context.Context, query string, args ...interface{}) ([]*model.AttendanceRecord, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attendance: %w", err)
	}
	defer rows.Close()

	var records []*model.AttendanceRecord
	for rows.Next() {
		var record model.AttendanceRecord
		err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.ClassID,
			&record.Date,
			&record.Status,
			&record.Note,
			&record.MarkedBy,
			&record.BatchID,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, &record)
	}

	return records, nil
}
