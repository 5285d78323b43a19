package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/TSM-StudioService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	stale      []*domain.Booking
	listCutoff time.Time
	cancelled  []int64
	updateErr  map[int64]error
}

func (f *fakeBookingRepo) ListStaleDepositDue(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	f.listCutoff = before
	return f.stale, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	if err := f.updateErr[id]; err != nil {
		return err
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var sweepNow = time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

func newTestSweeper(repo *fakeBookingRepo, ttl time.Duration) *DepositSweeper {
	return &DepositSweeper{
		bookingRepo:  repo,
		depositTTL:   ttl,
		timeProvider: fixedTime{now: sweepNow},
		logger:       noopLogger{},
	}
}

func TestSweep_CancelsStaleBookings(t *testing.T) {
	repo := &fakeBookingRepo{stale: []*domain.Booking{
		{ID: 1, Status: domain.StatusDepositDue},
		{ID: 2, Status: domain.StatusDepositDue},
	}}
	s := newTestSweeper(repo, 72*time.Hour)

	s.sweep()

	assert.Equal(t, sweepNow.Add(-72*time.Hour), repo.listCutoff)
	assert.Equal(t, []int64{1, 2}, repo.cancelled)
}

func TestSweep_SkipsNonCancellable(t *testing.T) {
	repo := &fakeBookingRepo{stale: []*domain.Booking{
		{ID: 1, Status: domain.StatusDepositDue},
		{ID: 2, Status: domain.StatusCompleted},
		{ID: 3, Status: domain.StatusCancelled},
	}}
	s := newTestSweeper(repo, 72*time.Hour)

	s.sweep()

	assert.Equal(t, []int64{1}, repo.cancelled)
}

func TestSweep_ErrorOnOneBookingDoesNotStopPass(t *testing.T) {
	repo := &fakeBookingRepo{
		stale: []*domain.Booking{
			{ID: 1, Status: domain.StatusDepositDue},
			{ID: 2, Status: domain.StatusDepositDue},
		},
		updateErr: map[int64]error{1: errors.New("db down")},
	}
	s := newTestSweeper(repo, 72*time.Hour)

	s.sweep()

	assert.Equal(t, []int64{2}, repo.cancelled)
}

func TestSweep_NoStaleBookings(t *testing.T) {
	repo := &fakeBookingRepo{}
	s := newTestSweeper(repo, 72*time.Hour)

	assert.NotPanics(t, s.sweep)
	assert.Empty(t, repo.cancelled)
}
