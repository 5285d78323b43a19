package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatus_CanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from ProjectStatus
		to   ProjectStatus
		want bool
	}{
		{"intake to design", ProjectIntake, ProjectDesign, true},
		{"intake to completed", ProjectIntake, ProjectCompleted, true},
		{"design to intake", ProjectDesign, ProjectIntake, false},
		{"same stage", ProjectApproved, ProjectApproved, false},
		{"completed cannot move", ProjectCompleted, ProjectSessionScheduled, false},
		{"unknown target", ProjectIntake, ProjectStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestProjectStatus_ShouldAutoAdvance(t *testing.T) {
	tests := []struct {
		status ProjectStatus
		want   bool
	}{
		{ProjectIntake, true},
		{ProjectDesign, true},
		{ProjectAwaitingApproval, true},
		{ProjectApproved, true},
		{ProjectSessionScheduled, false},
		{ProjectCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.ShouldAutoAdvance())
		})
	}
}
