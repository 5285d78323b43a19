package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{"deposit_due to confirmed", StatusDepositDue, StatusConfirmed, true},
		{"deposit_due to cancelled", StatusDepositDue, StatusCancelled, true},
		{"deposit_due to completed", StatusDepositDue, StatusCompleted, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to deposit_due", StatusConfirmed, StatusDepositDue, false},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to confirmed", StatusPending, StatusConfirmed, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusDepositDue, false},
		{"nothing leads into pending", StatusDepositDue, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusDepositDue, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, s.IsValid(), "status %s", s)
	}

	assert.False(t, BookingStatus("unknown").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBooking_IsActive(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusDepositDue, true},
		{StatusConfirmed, true},
		{StatusPending, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.IsActive())
			assert.Equal(t, tt.want, b.CanBeRescheduled())
		})
	}
}
