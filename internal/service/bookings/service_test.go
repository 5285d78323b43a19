package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	bookingRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/booking"
	"github.com/m04kA/TSM-StudioService/internal/service/bookings/models"
	"github.com/m04kA/TSM-StudioService/pkg/ptr"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	booking        *domain.Booking
	siblings       int64
	updatedStatus  *domain.BookingStatus
	siblingsCalled bool
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error) {
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeBookingRepo) CountActiveSiblings(ctx context.Context, projectID, excludeBookingID int64) (int64, error) {
	f.siblingsCalled = true
	return f.siblings, nil
}

type fakeProjectRepo struct {
	statusUpdates map[int64]domain.ProjectStatus
}

func (f *fakeProjectRepo) UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[int64]domain.ProjectStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

func confirmedBooking() *domain.Booking {
	start := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:        5,
		ArtistID:  1,
		ClientID:  2,
		ServiceID: 10,
		ProjectID: ptr.Ptr(int64(7)),
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Status:    domain.StatusConfirmed,
	}
}

func TestGetByID_OwnershipEnforced(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	svc := NewService(repo, &fakeProjectRepo{}, noopLogger{})

	t.Run("owner sees the booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 5, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("other artist gets not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 5, 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestUpdateStatus_CompletionCascadesToProject(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking(), siblings: 0}
	projects := &fakeProjectRepo{}
	svc := NewService(repo, projects, noopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 5, 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusCompleted, *repo.updatedStatus)
	assert.Equal(t, domain.ProjectCompleted, projects.statusUpdates[7])
}

func TestUpdateStatus_OpenSiblingsKeepProjectAlive(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking(), siblings: 2}
	projects := &fakeProjectRepo{}
	svc := NewService(repo, projects, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 5, 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	assert.True(t, repo.siblingsCalled)
	assert.Empty(t, projects.statusUpdates)
}

func TestUpdateStatus_NoCascadeWithoutProject(t *testing.T) {
	booking := confirmedBooking()
	booking.ProjectID = nil
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, &fakeProjectRepo{}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 5, 1, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)
	assert.False(t, repo.siblingsCalled)
}

func TestUpdateStatus_RejectsClosedTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.BookingStatus
		to     string
		target error
	}{
		{"completed is terminal", domain.StatusCompleted, "cancelled", ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, "confirmed", ErrInvalidTransition},
		{"deposit_due cannot jump to completed", domain.StatusDepositDue, "completed", ErrInvalidTransition},
		{"pending only cancels", domain.StatusPending, "confirmed", ErrInvalidTransition},
		{"unknown status", domain.StatusConfirmed, "archived", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := confirmedBooking()
			booking.Status = tt.from
			repo := &fakeBookingRepo{booking: booking}
			svc := NewService(repo, &fakeProjectRepo{}, noopLogger{})

			_, err := svc.UpdateStatus(context.Background(), 5, 1, &models.UpdateStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, tt.target)
			assert.Nil(t, repo.updatedStatus)
		})
	}
}

func TestUpdateStatus_PendingCanBeCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusPending
	repo := &fakeBookingRepo{booking: booking}
	svc := NewService(repo, &fakeProjectRepo{}, noopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 5, 1, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}
