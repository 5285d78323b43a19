package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	catalogRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/catalog"
	workingHoursRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/workinghours"
	"github.com/m04kA/TSM-StudioService/pkg/types"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
}

func (f *fakeCatalogRepo) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	if f.service == nil {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

type fakeWorkingHoursRepo struct {
	rule *domain.WorkingHoursRule
}

func (f *fakeWorkingHoursRepo) GetByArtistAndWeekday(ctx context.Context, artistID int64, weekday int) (*domain.WorkingHoursRule, error) {
	if f.rule == nil {
		return nil, workingHoursRepo.ErrRuleNotFound
	}
	return f.rule, nil
}

// 2026-03-02 is a Monday
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newTestUseCase(bookings []*domain.Booking, service *domain.Service, rule *domain.WorkingHoursRule) *UseCase {
	return NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeCatalogRepo{service: service},
		&fakeWorkingHoursRepo{rule: rule},
		noopLogger{},
	)
}

func workingDay(start, end string) *domain.WorkingHoursRule {
	return &domain.WorkingHoursRule{
		ArtistID:  1,
		Weekday:   1,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

// slotTime совмещает testDate с временем "HH:MM" в UTC
func slotTime(hhmm string) time.Time {
	ts, _ := types.TimeString(hhmm).At(testDate)
	return ts
}

func activeBooking(artistID int64, start, end string) *domain.Booking {
	s, _ := types.TimeString(start).At(testDate)
	e, _ := types.TimeString(end).At(testDate)
	return &domain.Booking{
		ArtistID:  artistID,
		StartTime: s,
		EndTime:   e,
		Status:    domain.StatusConfirmed,
	}
}

func TestExecute_FullDayNoBookings(t *testing.T) {
	uc := newTestUseCase(
		nil,
		&domain.Service{ID: 10, DurationMinutes: 60},
		workingDay("09:00", "17:00"),
	)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// Старты с шагом 15 минут: 09:00 .. 16:00 включительно
	require.Len(t, resp.Slots, 29)
	assert.Equal(t, slotTime("09:00"), resp.Slots[0].Start)
	assert.Equal(t, slotTime("10:00"), resp.Slots[0].End)
	assert.Equal(t, slotTime("16:00"), resp.Slots[28].Start)
	assert.Equal(t, slotTime("17:00"), resp.Slots[28].End)
	assert.Equal(t, 60, resp.DurationMinutes)

	// Границы слота несут полный момент времени на запрошенную дату
	assert.Equal(t, "2026-03-02T09:00:00Z", resp.Slots[0].Start.Format(time.RFC3339))
}

func TestExecute_SlotEndingExactlyAtClose(t *testing.T) {
	uc := newTestUseCase(
		nil,
		&domain.Service{ID: 10, DurationMinutes: 90},
		workingDay("10:00", "11:30"),
	)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	// Единственный кандидат занимает рабочий день целиком
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, slotTime("10:00"), resp.Slots[0].Start)
	assert.Equal(t, slotTime("11:30"), resp.Slots[0].End)
}

func TestExecute_ExcludesConflictingSlots(t *testing.T) {
	uc := newTestUseCase(
		[]*domain.Booking{activeBooking(1, "12:00", "13:00")},
		&domain.Service{ID: 10, DurationMinutes: 60},
		workingDay("09:00", "17:00"),
	)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)

	starts := make(map[string]bool, len(resp.Slots))
	for _, slot := range resp.Slots {
		starts[slot.Start.Format("15:04")] = true
	}

	// Кандидаты, пересекающиеся с занятым интервалом, выброшены
	assert.False(t, starts["11:15"])
	assert.False(t, starts["12:00"])
	assert.False(t, starts["12:45"])

	// Касание границ конфликтом не считается
	assert.True(t, starts["11:00"])
	assert.True(t, starts["13:00"])

	assert.Len(t, resp.Slots, 22)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	cancelled := activeBooking(1, "12:00", "13:00")
	cancelled.Status = domain.StatusCancelled

	uc := newTestUseCase(
		[]*domain.Booking{cancelled},
		&domain.Service{ID: 10, DurationMinutes: 60},
		workingDay("09:00", "17:00"),
	)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 29)
}

func TestExecute_ServiceLongerThanDay(t *testing.T) {
	uc := newTestUseCase(
		nil,
		&domain.Service{ID: 10, DurationMinutes: 600},
		workingDay("10:00", "12:00"),
	)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownServiceReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(nil, nil, workingDay("09:00", "17:00"))

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, ServiceID: 99, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DayOffReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(nil, &domain.Service{ID: 10, DurationMinutes: 60}, nil)

	resp, err := uc.Execute(context.Background(), &Request{ArtistID: 1, ServiceID: 10, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, &domain.Service{ID: 10, DurationMinutes: 60}, workingDay("09:00", "17:00"))

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero artist", &Request{ArtistID: 0, ServiceID: 10, Date: testDate}},
		{"zero service", &Request{ArtistID: 1, ServiceID: 0, Date: testDate}},
		{"zero date", &Request{ArtistID: 1, ServiceID: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
