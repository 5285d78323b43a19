package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	bookingRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/booking"
	"github.com/m04kA/TSM-StudioService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings     []*domain.Booking
	updatedStart *time.Time
	updatedEnd   *time.Time
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateTime(ctx context.Context, id int64, start, end time.Time) error {
	f.updatedStart = &start
	f.updatedEnd = &end
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func bookingAt(id int64, start string, duration time.Duration, status domain.BookingStatus) *domain.Booking {
	s, _ := types.TimeString(start).At(testDate)
	return &domain.Booking{
		ID:        id,
		ArtistID:  1,
		StartTime: s,
		EndTime:   s.Add(duration),
		Status:    status,
	}
}

func TestExecute_MovesBookingKeepingDuration(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		bookingAt(5, "10:00", 90*time.Minute, domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		ArtistID:  1,
		Date:      testDate,
		StartTime: types.TimeString("15:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "2026-03-02T15:00:00Z", resp.StartTime)
	assert.Equal(t, "2026-03-02T16:30:00Z", resp.EndTime)
	require.NotNil(t, repo.updatedStart)
	assert.Equal(t, "16:30", repo.updatedEnd.Format("15:04"))
}

func TestExecute_OwnIntervalDoesNotBlock(t *testing.T) {
	// Перенос на полчаса позже пересекается со старым интервалом самого бронирования
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		bookingAt(5, "10:00", time.Hour, domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		ArtistID:  1,
		Date:      testDate,
		StartTime: types.TimeString("10:30"),
	})
	require.NoError(t, err)
}

func TestExecute_ConflictWithAnotherBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		bookingAt(5, "10:00", time.Hour, domain.StatusConfirmed),
		bookingAt(6, "15:00", time.Hour, domain.StatusDepositDue),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		ArtistID:  1,
		Date:      testDate,
		StartTime: types.TimeString("14:30"),
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, repo.updatedStart)
}

func TestExecute_CancelledNeighborDoesNotBlock(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		bookingAt(5, "10:00", time.Hour, domain.StatusConfirmed),
		bookingAt(6, "15:00", time.Hour, domain.StatusCancelled),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		ArtistID:  1,
		Date:      testDate,
		StartTime: types.TimeString("14:30"),
	})
	require.NoError(t, err)
}

func TestExecute_ClosedBookingCannotMove(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusPending} {
		t.Run(string(status), func(t *testing.T) {
			repo := &fakeBookingRepo{bookings: []*domain.Booking{
				bookingAt(5, "10:00", time.Hour, status),
			}}
			uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				BookingID: 5,
				ArtistID:  1,
				Date:      testDate,
				StartTime: types.TimeString("15:00"),
			})
			assert.ErrorIs(t, err, ErrCannotReschedule)
		})
	}
}

func TestExecute_OwnershipEnforced(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		bookingAt(5, "10:00", time.Hour, domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, fakeTxManager{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 5,
		ArtistID:  99,
		Date:      testDate,
		StartTime: types.TimeString("15:00"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
