package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

const sweepTimeout = 30 * time.Second

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListStaleDepositDue(ctx context.Context, before time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// DepositSweeper фоновая отмена бронирований, по которым депозит так и не был
// оплачен. Интервал отменённого бронирования освобождается для подбора слотов.
type DepositSweeper struct {
	bookingRepo  BookingRepository
	depositTTL   time.Duration
	timeProvider TimeProvider
	logger       Logger

	cron *cron.Cron
}

// NewDepositSweeper создает новый экземпляр свипера
func NewDepositSweeper(bookingRepo BookingRepository, depositTTL time.Duration, logger Logger) *DepositSweeper {
	return &DepositSweeper{
		bookingRepo:  bookingRepo,
		depositTTL:   depositTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Start запускает свипер по cron-расписанию
func (s *DepositSweeper) Start(schedule string) error {
	s.cron = cron.New()

	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("DepositSweeper: started with schedule %q, ttl=%s", schedule, s.depositTTL)
	return nil
}

// Stop останавливает свипер, дожидаясь завершения текущего прохода
func (s *DepositSweeper) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("DepositSweeper: stopped")
}

// sweep один проход: находит просроченные deposit_due и отменяет каждое.
// Ошибка по одному бронированию не прерывает проход.
func (s *DepositSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	cutoff := s.timeProvider.Now().UTC().Add(-s.depositTTL)

	stale, err := s.bookingRepo.ListStaleDepositDue(ctx, cutoff)
	if err != nil {
		s.logger.Error("DepositSweeper: failed to list stale bookings: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	s.logger.Info("DepositSweeper: found %d stale bookings older than %s", len(stale), cutoff.Format(time.RFC3339))

	cancelled := 0
	for _, booking := range stale {
		if !booking.Status.CanTransitionTo(domain.StatusCancelled) {
			continue
		}

		if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.StatusCancelled); err != nil {
			s.logger.Error("DepositSweeper: failed to cancel booking id=%d: %v", booking.ID, err)
			continue
		}
		cancelled++
	}

	s.logger.Info("DepositSweeper: cancelled %d of %d stale bookings", cancelled, len(stale))
}
