package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	bookingRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/booking"
)

// UseCase use case переноса бронирования на другое время
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет перенос бронирования.
// Длительность сеанса сохраняется, статус и депозит не меняются.
// Проверка конфликта нового интервала и запись выполняются в одной
// сериализуемой транзакции, собственный интервал бронирования не учитывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, artist=%d, date=%s, time=%s",
		req.BookingID, req.ArtistID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if booking.ArtistID != req.ArtistID {
			uc.logger.Warn("RescheduleBooking: booking id=%d belongs to another artist, requested by artist=%d",
				req.BookingID, req.ArtistID)
			return ErrBookingNotFound
		}

		// 3. Завершённые и отменённые бронирования не переносятся
		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d has status=%s, cannot reschedule",
				req.BookingID, booking.Status)
			return ErrCannotReschedule
		}

		// 4. Новый интервал той же длительности
		duration := booking.EndTime.Sub(booking.StartTime)
		newStart, err := req.StartTime.At(req.Date)
		if err != nil {
			uc.logger.Warn("RescheduleBooking: invalid start time %q: %v", req.StartTime, err)
			return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
		}
		newEnd := newStart.Add(duration)

		// 5. Читаем дневные бронирования мастера с блокировкой строк
		from, to := dayBounds(req.Date)
		bookings, err := uc.bookingRepo.GetByArtistWithFilter(txCtx, domain.ArtistBookingsFilter{
			ArtistID: req.ArtistID,
			From:     &from,
			To:       &to,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 6. Конфликт считается против всех активных интервалов, кроме собственного
		busy := make([]domain.Interval, 0, len(bookings))
		for _, b := range bookings {
			if b.ID == booking.ID || !b.IsActive() {
				continue
			}
			busy = append(busy, b.Interval())
		}

		candidate := domain.Interval{Start: newStart, End: newEnd}
		if domain.HasConflict(candidate, busy) {
			uc.logger.Warn("RescheduleBooking: slot %s-%s conflicts with existing booking for artist=%d",
				newStart.Format(time.RFC3339), newEnd.Format(time.RFC3339), req.ArtistID)
			return ErrSlotConflict
		}

		// 7. Сохраняем новый интервал
		if err := uc.bookingRepo.UpdateTime(txCtx, booking.ID, newStart, newEnd); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		booking.StartTime = newStart
		booking.EndTime = newEnd
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%d moved to %s", result.ID, result.StartTime.Format(time.RFC3339))
	return toResponse(result), nil
}

// dayBounds возвращает границы календарного дня в UTC
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
