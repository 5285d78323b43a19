package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	bookingRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/booking"
	projectRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/project"
	"github.com/m04kA/TSM-StudioService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	projectRepo ProjectRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	projectRepo ProjectRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование мастера по ID
// Мастер видит только свои бронирования
func (s *Service) GetByID(ctx context.Context, id int64, artistID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for artist=%d", id, artistID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.ArtistID != artistID {
		s.logger.Warn("GetByID: booking id=%d belongs to another artist, requested by artist=%d", id, artistID)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(booking), nil
}

// GetArtistBookings получает бронирования мастера с фильтрацией по периоду и статусу
// По умолчанию возвращает только активные бронирования (deposit_due, confirmed)
func (s *Service) GetArtistBookings(ctx context.Context, req *models.GetArtistBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetArtistBookings: fetching bookings for artist=%d", req.ArtistID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetArtistBookings: invalid filter for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByArtistWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetArtistBookings: repository error for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: GetArtistBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetArtistBookings: fetched %d bookings for artist=%d", len(bookings), req.ArtistID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус бронирования по закрытой таблице переходов.
// Завершение бронирования каскадно завершает проект, если у проекта не осталось
// других незавершённых бронирований. Каскад не откатывает основную запись.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, artistID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by artist=%d", bookingID, req.Status, artistID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.ArtistID != artistID {
		s.logger.Warn("UpdateStatus: booking id=%d belongs to another artist, requested by artist=%d", bookingID, artistID)
		return nil, ErrBookingNotFound
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking id=%d", booking.Status, newStatus, bookingID)
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking.Status = newStatus

	if newStatus == domain.StatusCompleted && booking.ProjectID != nil {
		s.completeProjectIfDone(ctx, *booking.ProjectID, bookingID)
	}

	s.logger.Info("UpdateStatus: booking id=%d updated to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// completeProjectIfDone завершает проект, когда все его бронирования
// находятся в терминальных статусах. Ошибки каскада только логируются.
func (s *Service) completeProjectIfDone(ctx context.Context, projectID, completedBookingID int64) {
	remaining, err := s.bookingRepo.CountActiveSiblings(ctx, projectID, completedBookingID)
	if err != nil {
		s.logger.Error("completeProjectIfDone: failed to count siblings for project=%d: %v", projectID, err)
		return
	}

	if remaining > 0 {
		s.logger.Info("completeProjectIfDone: project=%d still has %d open bookings", projectID, remaining)
		return
	}

	if err := s.projectRepo.UpdateStatus(ctx, projectID, domain.ProjectCompleted); err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			s.logger.Warn("completeProjectIfDone: project=%d not found", projectID)
			return
		}
		s.logger.Error("completeProjectIfDone: failed to complete project=%d: %v", projectID, err)
		return
	}

	s.logger.Info("completeProjectIfDone: project=%d completed", projectID)
}
