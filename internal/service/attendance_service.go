package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttendanceEntry одна строка переклички
type AttendanceEntry struct {
	StudentID int64
	Status    model.AttendanceStatus
	Note      string
}

type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	classRepo      *repository.ClassRepository
	activityRepo   *repository.ActivityRepository
	logger         *zap.Logger
}

func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	classRepo *repository.ClassRepository,
	activityRepo *repository.ActivityRepository,
	logger *zap.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		classRepo:      classRepo,
		activityRepo:   activityRepo,
		logger:         logger,
	}
}

// Mark ставит или обновляет отметку посещаемости одного студента
func (s *AttendanceService) Mark(ctx context.Context, record *model.AttendanceRecord) error {
	if record.BatchID == uuid.Nil {
		record.BatchID = uuid.New()
	}
	return s.attendanceRepo.Upsert(ctx, record)
}

// MarkClass проводит перекличку: отметки всех студентов одного занятия
// объединяются общим batch_id
func (s *AttendanceService) MarkClass(
	ctx context.Context,
	classID int64,
	date time.Time,
	entries []AttendanceEntry,
	markedBy string,
) error {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return fmt.Errorf("get class: %w", err)
	}

	if class == nil {
		return fmt.Errorf("class not found")
	}

	batchID := uuid.New()
	present := 0
	absent := 0

	records := make([]*model.AttendanceRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, &model.AttendanceRecord{
			StudentID: entry.StudentID,
			ClassID:   classID,
			Date:      date,
			Status:    entry.Status,
			Note:      entry.Note,
			MarkedBy:  markedBy,
			BatchID:   batchID,
		})

		switch entry.Status {
		case model.AttendanceStatusAbsent:
			absent++
		default:
			present++
		}
	}

	if err := s.attendanceRepo.UpsertBatch(ctx, records); err != nil {
		return fmt.Errorf("mark class attendance: %w", err)
	}

	activity := &model.Activity{
		Type: model.ActivityTypeAttendance,
		Description: fmt.Sprintf("Attendance marked for %s class - %d present, %d absent",
			class.Name, present, absent),
		User: markedBy,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		s.logger.Warn("Failed to record attendance activity",
			zap.Int64("class_id", classID),
			zap.Error(err))
	}

	s.logger.Info("Class attendance marked",
		zap.Int64("class_id", classID),
		zap.Time("date", date),
		zap.String("batch_id", batchID.String()),
		zap.Int("entries", len(entries)))

	return nil
}

// GetByStudentID получает отметки студента
func (s *AttendanceService) GetByStudentID(ctx context.Context, studentID int64) ([]*model.AttendanceRecord, error) {
	return s.attendanceRepo.GetByStudentID(ctx, studentID)
}

// GetByClassID получает отметки класса
func (s *AttendanceService) GetByClassID(ctx context.Context, classID int64) ([]*model.AttendanceRecord, error) {
	return s.attendanceRepo.GetByClassID(ctx, classID)
}

// Delete удаляет отметку
func (s *AttendanceService) Delete(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// StudentStats считает статистику посещаемости студента,
// при classID != nil - только в рамках одного класса
func (s *AttendanceService) StudentStats(ctx context.Context, studentID int64, classID *int64) (model.AttendanceStats, error) {
	var (
		records []*model.AttendanceRecord
		err     error
	)
	if classID != nil {
		records, err = s.attendanceRepo.GetByStudentAndClass(ctx, studentID, *classID)
	} else {
		records, err = s.attendanceRepo.GetByStudentID(ctx, studentID)
	}
	if err != nil {
		return model.AttendanceStats{}, err
	}
	return attendanceStats(records), nil
}

// ClassStats считает статистику посещаемости класса,
// при date != nil - за один день
func (s *AttendanceService) ClassStats(ctx context.Context, classID int64, date *time.Time) (model.AttendanceStats, error) {
	var (
		records []*model.AttendanceRecord
		err     error
	)
	if date != nil {
		records, err = s.attendanceRepo.GetByClassAndDate(ctx, classID, *date)
	} else {
		records, err = s.attendanceRepo.GetByClassID(ctx, classID)
	}
	if err != nil {
		return model.AttendanceStats{}, err
	}
	return attendanceStats(records), nil
}

// attendanceStats агрегирует отметки. Опоздание считается посещением
// при расчёте процента.
func attendanceStats(records []*model.AttendanceRecord) model.AttendanceStats {
	stats := model.AttendanceStats{Total: len(records)}

	for _, record := range records {
		switch record.Status {
		case model.AttendanceStatusPresent:
			stats.Present++
		case model.AttendanceStatusAbsent:
			stats.Absent++
		case model.AttendanceStatusLate:
			stats.Late++
		}
	}

	if stats.Total > 0 {
		stats.AttendanceRate = int(math.Round(float64(stats.Present+stats.Late) / float64(stats.Total) * 100))
	}

	return stats
}
