package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/service/schedule/models"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeWorkingHoursRepo struct {
	rules    []*domain.WorkingHoursRule
	replaced []*domain.WorkingHoursRule
}

func (f *fakeWorkingHoursRepo) ListByArtist(ctx context.Context, artistID int64) ([]*domain.WorkingHoursRule, error) {
	return f.rules, nil
}

func (f *fakeWorkingHoursRepo) ReplaceForArtist(ctx context.Context, artistID int64, rules []*domain.WorkingHoursRule) error {
	f.replaced = rules
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestUpdateWorkingHours_ReplacesSchedule(t *testing.T) {
	repo := &fakeWorkingHoursRepo{}
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	resp, err := svc.UpdateWorkingHours(context.Background(), 1, &models.UpdateWorkingHoursRequest{
		Rules: []models.WorkingHoursRuleInput{
			{Weekday: 1, StartTime: "09:00", EndTime: "17:00"},
			{Weekday: 2, StartTime: "10:00", EndTime: "20:00"},
		},
	})
	require.NoError(t, err)

	require.Len(t, repo.replaced, 2)
	assert.Equal(t, int64(1), repo.replaced[0].ArtistID)
	assert.Equal(t, 1, repo.replaced[0].Weekday)

	assert.Equal(t, int64(1), resp.ArtistID)
	require.Len(t, resp.Rules, 2)
	assert.Equal(t, "09:00", resp.Rules[0].StartTime)
}

func TestUpdateWorkingHours_EmptyListClearsSchedule(t *testing.T) {
	repo := &fakeWorkingHoursRepo{}
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	resp, err := svc.UpdateWorkingHours(context.Background(), 1, &models.UpdateWorkingHoursRequest{})
	require.NoError(t, err)

	assert.Empty(t, repo.replaced)
	assert.Empty(t, resp.Rules)
}

func TestUpdateWorkingHours_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		rules  []models.WorkingHoursRuleInput
		target error
	}{
		{
			name:   "weekday above range",
			rules:  []models.WorkingHoursRuleInput{{Weekday: 7, StartTime: "09:00", EndTime: "17:00"}},
			target: ErrInvalidWeekday,
		},
		{
			name:   "negative weekday",
			rules:  []models.WorkingHoursRuleInput{{Weekday: -1, StartTime: "09:00", EndTime: "17:00"}},
			target: ErrInvalidWeekday,
		},
		{
			name: "duplicate weekday",
			rules: []models.WorkingHoursRuleInput{
				{Weekday: 1, StartTime: "09:00", EndTime: "17:00"},
				{Weekday: 1, StartTime: "10:00", EndTime: "18:00"},
			},
			target: ErrDuplicateWeekday,
		},
		{
			name:   "start equals end",
			rules:  []models.WorkingHoursRuleInput{{Weekday: 1, StartTime: "09:00", EndTime: "09:00"}},
			target: ErrInvalidTimeRange,
		},
		{
			name:   "start after end",
			rules:  []models.WorkingHoursRuleInput{{Weekday: 1, StartTime: "18:00", EndTime: "09:00"}},
			target: ErrInvalidTimeRange,
		},
		{
			name:   "bad time format",
			rules:  []models.WorkingHoursRuleInput{{Weekday: 1, StartTime: "9am", EndTime: "17:00"}},
			target: ErrInvalidTimeFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeWorkingHoursRepo{}
			svc := NewService(repo, fakeTxManager{}, noopLogger{})

			_, err := svc.UpdateWorkingHours(context.Background(), 1, &models.UpdateWorkingHoursRequest{Rules: tt.rules})
			assert.ErrorIs(t, err, tt.target)
			assert.Nil(t, repo.replaced)
		})
	}
}

func TestGetWorkingHours(t *testing.T) {
	repo := &fakeWorkingHoursRepo{rules: []*domain.WorkingHoursRule{
		{ArtistID: 1, Weekday: 1, StartTime: "09:00", EndTime: "17:00"},
	}}
	svc := NewService(repo, fakeTxManager{}, noopLogger{})

	resp, err := svc.GetWorkingHours(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Rules, 1)
	assert.Equal(t, 1, resp.Rules[0].Weekday)
	assert.Equal(t, "17:00", resp.Rules[0].EndTime)
}
