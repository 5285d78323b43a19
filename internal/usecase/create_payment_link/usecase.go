package create_payment_link

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	bookingRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/catalog"
	"github.com/m04kA/TSM-StudioService/internal/integrations/payments"
)

// UseCase use case создания платежной ссылки на депозит бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	catalogRepo    CatalogRepository
	paymentsClient PaymentsClient
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	paymentsClient PaymentsClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		catalogRepo:    catalogRepo,
		paymentsClient: paymentsClient,
		logger:         logger,
	}
}

// Execute создает платежную ссылку на депозит.
// Ссылка сохраняется в бронировании для повторной выдачи; ошибка сохранения
// не отменяет уже созданную у провайдера сессию и только логируется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePaymentLink: booking=%d, artist=%d", req.BookingID, req.ArtistID)

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreatePaymentLink: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CreatePaymentLink: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.ArtistID != req.ArtistID {
		uc.logger.Warn("CreatePaymentLink: booking id=%d belongs to another artist, requested by artist=%d",
			req.BookingID, req.ArtistID)
		return nil, ErrBookingNotFound
	}

	if booking.Status != domain.StatusDepositDue {
		uc.logger.Warn("CreatePaymentLink: booking id=%d has status=%s, deposit is not due", req.BookingID, booking.Status)
		return nil, ErrDepositNotDue
	}

	// Ссылка уже выпускалась, отдаем сохранённую
	if booking.DepositLink != nil && *booking.DepositLink != "" {
		uc.logger.Info("CreatePaymentLink: booking id=%d already has a deposit link", req.BookingID)
		return &Response{
			BookingID: booking.ID,
			URL:       *booking.DepositLink,
			Amount:    booking.DepositAmount,
		}, nil
	}

	description := fmt.Sprintf("Deposit for booking #%d", booking.ID)
	if service, err := uc.catalogRepo.GetService(ctx, booking.ServiceID); err == nil {
		description = fmt.Sprintf("Deposit: %s", service.Name)
	}

	var clientEmail *string
	if client, err := uc.catalogRepo.GetClient(ctx, booking.ClientID); err == nil {
		clientEmail = client.Email
	} else if !errors.Is(err, catalogRepo.ErrClientNotFound) {
		uc.logger.Warn("CreatePaymentLink: failed to get client id=%d: %v", booking.ClientID, err)
	}

	link, err := uc.paymentsClient.CreateDepositLink(ctx, payments.DepositCharge{
		BookingID:   booking.ID,
		Amount:      booking.DepositAmount,
		Description: description,
		ClientEmail: clientEmail,
	})
	if err != nil {
		uc.logger.Error("CreatePaymentLink: provider error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	if err := uc.bookingRepo.SetDepositLink(ctx, booking.ID, link.URL); err != nil {
		uc.logger.Error("CreatePaymentLink: failed to store deposit link for booking id=%d: %v", booking.ID, err)
	}

	uc.logger.Info("CreatePaymentLink: created link for booking id=%d", booking.ID)

	return &Response{
		BookingID: booking.ID,
		URL:       link.URL,
		Amount:    booking.DepositAmount,
	}, nil
}
