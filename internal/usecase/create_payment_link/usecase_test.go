package create_payment_link

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	bookingRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/catalog"
	"github.com/m04kA/TSM-StudioService/internal/integrations/payments"
	"github.com/m04kA/TSM-StudioService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	booking    *domain.Booking
	storedLink *string
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) SetDepositLink(ctx context.Context, id int64, link string) error {
	f.storedLink = &link
	return nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	if id != 2 {
		return nil, catalogRepo.ErrClientNotFound
	}
	return &domain.Client{ID: id, Email: ptr.Ptr("client@example.com")}, nil
}

func (fakeCatalogRepo) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	if id != 10 {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: id, Name: "Сеанс 2 часа"}, nil
}

type fakePaymentsClient struct {
	charge *payments.DepositCharge
	err    error
}

func (f *fakePaymentsClient) CreateDepositLink(ctx context.Context, charge payments.DepositCharge) (*payments.PaymentLink, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.charge = &charge
	return &payments.PaymentLink{URL: "https://checkout.example.com/cs_123", SessionID: "cs_123"}, nil
}

func depositDueBooking() *domain.Booking {
	return &domain.Booking{
		ID:            5,
		ArtistID:      1,
		ClientID:      2,
		ServiceID:     10,
		Status:        domain.StatusDepositDue,
		DepositAmount: 50,
	}
}

func TestExecute_CreatesLink(t *testing.T) {
	repo := &fakeBookingRepo{booking: depositDueBooking()}
	client := &fakePaymentsClient{}
	uc := NewUseCase(repo, fakeCatalogRepo{}, client, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 5, ArtistID: 1})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.example.com/cs_123", resp.URL)
	assert.Equal(t, 50.0, resp.Amount)

	require.NotNil(t, client.charge)
	assert.Equal(t, int64(5), client.charge.BookingID)
	assert.Equal(t, "Deposit: Сеанс 2 часа", client.charge.Description)
	require.NotNil(t, client.charge.ClientEmail)
	assert.Equal(t, "client@example.com", *client.charge.ClientEmail)

	require.NotNil(t, repo.storedLink)
	assert.Equal(t, resp.URL, *repo.storedLink)
}

func TestExecute_ReturnsStoredLink(t *testing.T) {
	booking := depositDueBooking()
	booking.DepositLink = ptr.Ptr("https://checkout.example.com/cs_old")
	repo := &fakeBookingRepo{booking: booking}
	client := &fakePaymentsClient{}
	uc := NewUseCase(repo, fakeCatalogRepo{}, client, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 5, ArtistID: 1})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.example.com/cs_old", resp.URL)
	assert.Nil(t, client.charge, "provider must not be called again")
}

func TestExecute_DepositNotDue(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled, domain.StatusPending} {
		t.Run(string(status), func(t *testing.T) {
			booking := depositDueBooking()
			booking.Status = status
			uc := NewUseCase(&fakeBookingRepo{booking: booking}, fakeCatalogRepo{}, &fakePaymentsClient{}, noopLogger{})

			_, err := uc.Execute(context.Background(), &Request{BookingID: 5, ArtistID: 1})
			assert.ErrorIs(t, err, ErrDepositNotDue)
		})
	}
}

func TestExecute_OwnershipEnforced(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{booking: depositDueBooking()}, fakeCatalogRepo{}, &fakePaymentsClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 5, ArtistID: 99})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_ProviderError(t *testing.T) {
	repo := &fakeBookingRepo{booking: depositDueBooking()}
	client := &fakePaymentsClient{err: errors.New("api unavailable")}
	uc := NewUseCase(repo, fakeCatalogRepo{}, client, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 5, ArtistID: 1})
	assert.ErrorIs(t, err, ErrPaymentProvider)
	assert.Nil(t, repo.storedLink)
}
