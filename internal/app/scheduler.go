package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apper-canvas/classhub-haptic-panel/internal/model"
	"github.com/apper-canvas/classhub-haptic-panel/internal/service"
	"go.uber.org/zap"
)

// Notifier канал доставки дайджеста
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	calendarService *service.CalendarService
	notifier        Notifier
	logger          *zap.Logger
	stopChan        chan struct{}
}

// NewScheduler создаёт новый планировщик. notifier может быть nil -
// тогда дайджест только логируется.
func NewScheduler(calendarService *service.CalendarService, notifier Notifier, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		calendarService: calendarService,
		notifier:        notifier,
		logger:          logger,
		stopChan:        make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runDigestTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runDigestTask раз в сутки собирает дайджест событий на неделю вперёд
func (s *Scheduler) runDigestTask(ctx context.Context) {
	// Первый запуск сразу при старте
	s.sendDigest(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sendDigest(ctx)
		case <-s.stopChan:
			s.logger.Info("Digest task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Digest task cancelled")
			return
		}
	}
}

// sendDigest агрегирует события ближайших 7 дней и отправляет сводку.
// Ошибки дайджеста не фатальны: следующий тик попробует снова.
func (s *Scheduler) sendDigest(ctx context.Context) {
	now := time.Now()
	events, err := s.calendarService.EventsForDateRange(ctx, now, now.AddDate(0, 0, 7))
	if err != nil {
		s.logger.Error("Failed to build calendar digest", zap.Error(err))
		return
	}

	text := formatDigest(events)

	if s.notifier == nil {
		s.logger.Info("Digest built (no notifier configured)",
			zap.Int("events", len(events)))
		return
	}

	if err := s.notifier.Send(ctx, text); err != nil {
		s.logger.Error("Failed to send digest", zap.Error(err))
		return
	}

	s.logger.Info("Digest sent", zap.Int("events", len(events)))
}

// formatDigest собирает текст сводки, события сгруппированы по дням
func formatDigest(events []model.Event) string {
	if len(events) == 0 {
		return "📅 Неделя свободна: событий не запланировано"
	}

	var b strings.Builder
	b.WriteString("📅 События на ближайшие 7 дней:\n")

	currentDate := ""
	for _, event := range events {
		if event.Date != currentDate {
			currentDate = event.Date
			fmt.Fprintf(&b, "\n%s\n", currentDate)
		}

		switch event.Type {
		case model.EventTypeAssignment:
			fmt.Fprintf(&b, "  %s 📝 %s (%s, %s)\n", event.Time, event.Title, event.ClassName, event.Priority)
		case model.EventTypeClass:
			fmt.Fprintf(&b, "  %s 📚 %s (%s)\n", event.Time, event.Title, event.Room)
		default:
			fmt.Fprintf(&b, "  %s 🎉 %s\n", event.Time, event.Title)
		}
	}

	return b.String()
}
