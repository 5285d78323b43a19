package confirm_deposit

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/events"
	bookingRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/booking"
	projectRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/project"
)

// UseCase use case подтверждения оплаты депозита по вебхуку провайдера
type UseCase struct {
	bookingRepo BookingRepository
	projectRepo ProjectRepository
	publisher   EventPublisher
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	projectRepo ProjectRepository,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		projectRepo: projectRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// Execute подтверждает оплату депозита.
// Повторная доставка события для уже подтверждённого бронирования не является
// ошибкой: провайдер ретраит вебхуки, обработка идемпотентна.
// Продвижение проекта intake -> design выполняется после основной записи
// и никогда её не откатывает.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("ConfirmDeposit: booking=%d, event=%s (%s)", req.BookingID, req.EventID, req.EventType)

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmDeposit: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("ConfirmDeposit: failed to get booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.Status == domain.StatusConfirmed && booking.DepositPaid {
		uc.logger.Info("ConfirmDeposit: booking id=%d already confirmed, event=%s is a retry", req.BookingID, req.EventID)
		return nil
	}

	if !booking.Status.CanTransitionTo(domain.StatusConfirmed) {
		uc.logger.Warn("ConfirmDeposit: booking id=%d has status=%s, cannot confirm", req.BookingID, booking.Status)
		return ErrInvalidTransition
	}

	if err := uc.bookingRepo.MarkDepositPaid(ctx, req.BookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("ConfirmDeposit: failed to mark deposit paid for booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to mark deposit paid: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmDeposit: booking id=%d confirmed, deposit paid", req.BookingID)

	if booking.ProjectID != nil {
		uc.nudgeProject(ctx, *booking.ProjectID)
	}

	uc.publisher.Publish(events.Event{
		Type:      events.EventDepositPaid,
		ArtistID:  booking.ArtistID,
		BookingID: booking.ID,
		ProjectID: booking.ProjectID,
	})

	return nil
}

// nudgeProject продвигает проект intake -> design после первой оплаты.
// Ошибки каскада только логируются.
func (uc *UseCase) nudgeProject(ctx context.Context, projectID int64) {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, projectRepo.ErrProjectNotFound) {
			uc.logger.Warn("ConfirmDeposit: project id=%d not found", projectID)
			return
		}
		uc.logger.Error("ConfirmDeposit: failed to get project id=%d: %v", projectID, err)
		return
	}

	if project.Status != domain.ProjectIntake {
		return
	}

	if err := uc.projectRepo.UpdateStatus(ctx, projectID, domain.ProjectDesign); err != nil {
		uc.logger.Error("ConfirmDeposit: failed to advance project id=%d: %v", projectID, err)
		return
	}

	uc.logger.Info("ConfirmDeposit: project id=%d advanced intake -> design", projectID)
}
