package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	catalogRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/catalog"
	workingHoursRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/workinghours"
)

// UseCase use case подбора свободных слотов в расписании мастера
type UseCase struct {
	bookingRepo      BookingRepository
	catalogRepo      CatalogRepository
	workingHoursRepo WorkingHoursRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	workingHoursRepo WorkingHoursRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		catalogRepo:      catalogRepo,
		workingHoursRepo: workingHoursRepo,
		logger:           logger,
	}
}

// Execute выполняет подбор свободных слотов.
// Отсутствие услуги или правила рабочих часов не является ошибкой:
// в обоих случаях возвращается пустой список слотов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: artist=%d, service=%d, date=%s",
		req.ArtistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:      req.Date,
		ArtistID:  req.ArtistID,
		ServiceID: req.ServiceID,
		Slots:     []Slot{},
	}

	// 2. Получаем услугу, она задает длительность слота
	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found, returning empty slots", req.ServiceID)
			return resp, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	resp.DurationMinutes = service.DurationMinutes

	// 3. Получаем рабочие часы мастера на день недели
	weekday := int(req.Date.Weekday())
	rule, err := uc.workingHoursRepo.GetByArtistAndWeekday(ctx, req.ArtistID, weekday)
	if err != nil {
		if errors.Is(err, workingHoursRepo.ErrRuleNotFound) {
			uc.logger.Info("GetAvailableSlots: artist=%d has no working hours on weekday=%d", req.ArtistID, weekday)
			return resp, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 4. Совмещаем дату с временем открытия и закрытия
	dayStart, err := rule.StartTime.At(req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid start time %q for artist=%d: %v", rule.StartTime, req.ArtistID, err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}

	dayEnd, err := rule.EndTime.At(req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid end time %q for artist=%d: %v", rule.EndTime, req.ArtistID, err)
		return nil, fmt.Errorf("%w: invalid working hours: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования мастера на эту дату
	from, to := dayBounds(req.Date)
	bookings, err := uc.bookingRepo.GetByArtistWithFilter(ctx, domain.ArtistBookingsFilter{
		ArtistID: req.ArtistID,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты, отбрасывая пересечения с занятыми интервалами
	busy := domain.ActiveIntervals(bookings)
	slots := generateSlots(dayStart, dayEnd, service.DurationMinutes, busy)

	resp.Slots = make([]Slot, len(slots))
	for i, slot := range slots {
		resp.Slots[i] = Slot{
			Start: slot.Start,
			End:   slot.End,
		}
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for artist=%d, service=%d, date=%s",
		len(resp.Slots), req.ArtistID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
