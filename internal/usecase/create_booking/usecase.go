package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/events"
	catalogRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/catalog"
	projectRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/project"
	"github.com/m04kA/TSM-StudioService/pkg/ptr"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	projectRepo ProjectRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	projectRepo ProjectRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		projectRepo: projectRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute выполняет создание бронирования.
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции,
// выборка дневных бронирований блокирует строки (FOR UPDATE). Параллельный
// коммит пересекающегося интервала получает ErrSlotConflict, а не двойную запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: artist=%d, client=%d, service=%d, date=%s, time=%s",
		req.ArtistID, req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем справочные данные вне транзакции
	if _, err := uc.catalogRepo.GetArtist(ctx, req.ArtistID); err != nil {
		if errors.Is(err, catalogRepo.ErrArtistNotFound) {
			uc.logger.Warn("CreateBooking: artist id=%d not found", req.ArtistID)
			return nil, ErrArtistNotFound
		}
		uc.logger.Error("CreateBooking: failed to get artist id=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to get artist: %w", ErrInternal, err)
	}

	if _, err := uc.catalogRepo.GetClient(ctx, req.ClientID); err != nil {
		if errors.Is(err, catalogRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %w", ErrInternal, err)
	}

	service, err := uc.catalogRepo.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}

	// 3. Совмещаем дату и время начала, конец задается длительностью услуги
	startTime, err := req.StartTime.At(req.Date)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: invalid start time", ErrInvalidInput)
	}
	endTime := startTime.Add(time.Duration(service.DurationMinutes) * time.Minute)

	var result *domain.Booking

	// 4. Проверка конфликта и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Существующий проект должен быть найден до каких-либо записей
		var project *domain.Project
		if req.ProjectID != nil {
			project, err = uc.projectRepo.GetByID(txCtx, *req.ProjectID)
			if err != nil {
				if errors.Is(err, projectRepo.ErrProjectNotFound) {
					uc.logger.Warn("CreateBooking: project id=%d not found", *req.ProjectID)
					return ErrProjectNotFound
				}
				uc.logger.Error("CreateBooking: failed to get project id=%d: %v", *req.ProjectID, err)
				return fmt.Errorf("%w: failed to get project: %w", ErrInternal, err)
			}
		}

		// 4.2. Читаем дневные бронирования мастера с блокировкой строк
		from, to := dayBounds(req.Date)
		bookings, err := uc.bookingRepo.GetByArtistWithFilter(txCtx, domain.ArtistBookingsFilter{
			ArtistID: req.ArtistID,
			From:     &from,
			To:       &to,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 4.3. Кандидат не должен пересекаться ни с одним активным интервалом
		candidate := domain.Interval{Start: startTime, End: endTime}
		if domain.HasConflict(candidate, domain.ActiveIntervals(bookings)) {
			uc.logger.Warn("CreateBooking: slot %s-%s conflicts with existing booking for artist=%d",
				startTime.Format(time.RFC3339), endTime.Format(time.RFC3339), req.ArtistID)
			return ErrSlotConflict
		}

		// 4.4. Без указанного проекта создаем новый, сеанс уже назначен
		projectID := req.ProjectID
		if projectID == nil {
			created, err := uc.projectRepo.Create(txCtx, &domain.Project{
				ClientID:    req.ClientID,
				ServiceID:   ptr.Ptr(req.ServiceID),
				Title:       domain.DefaultProjectTitle,
				Description: ptr.Ptr(domain.DefaultProjectDescription),
				Status:      domain.ProjectSessionScheduled,
			})
			if err != nil {
				uc.logger.Error("CreateBooking: failed to auto-create project: %v", err)
				return fmt.Errorf("%w: failed to create project: %w", ErrInternal, err)
			}
			projectID = &created.ID
			uc.logger.Info("CreateBooking: auto-created project id=%d for client=%d", created.ID, req.ClientID)
		}

		// 4.5. Сохраняем бронирование, депозит еще не оплачен
		booking := &domain.Booking{
			ArtistID:      req.ArtistID,
			ClientID:      req.ClientID,
			ServiceID:     req.ServiceID,
			ProjectID:     projectID,
			StartTime:     startTime,
			EndTime:       endTime,
			Status:        domain.StatusDepositDue,
			DepositAmount: service.DepositAmount,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 4.6. Проект запоминает последнее бронирование
		if err := uc.projectRepo.SetLastBooking(txCtx, *projectID, created.ID); err != nil {
			uc.logger.Error("CreateBooking: failed to link booking id=%d to project id=%d: %v",
				created.ID, *projectID, err)
			return fmt.Errorf("%w: failed to link project: %w", ErrInternal, err)
		}

		// 4.7. Ранние стадии существующего проекта подталкиваются вперед
		if project != nil && project.Status.ShouldAutoAdvance() {
			if err := uc.projectRepo.UpdateStatus(txCtx, project.ID, domain.ProjectSessionScheduled); err != nil {
				uc.logger.Error("CreateBooking: failed to advance project id=%d: %v", project.ID, err)
				return fmt.Errorf("%w: failed to advance project: %w", ErrInternal, err)
			}
			uc.logger.Info("CreateBooking: project id=%d advanced %s -> %s",
				project.ID, project.Status, domain.ProjectSessionScheduled)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for artist=%d", result.ID, req.ArtistID)

	uc.publisher.Publish(events.Event{
		Type:      events.EventBookingCreated,
		ArtistID:  result.ArtistID,
		BookingID: result.ID,
		ProjectID: result.ProjectID,
	})

	return toResponse(result), nil
}

// dayBounds возвращает границы календарного дня в UTC
func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
