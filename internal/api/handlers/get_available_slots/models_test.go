package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/TSM-StudioService/internal/usecase/get_available_slots"
)

func TestFromUseCaseResponse_RendersRFC3339Instants(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	resp := FromUseCaseResponse(&getAvailableSlots.Response{
		Date:            date,
		ArtistID:        1,
		ServiceID:       10,
		DurationMinutes: 60,
		Slots: []getAvailableSlots.Slot{
			{
				Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
				End:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
			},
		},
	})

	assert.Equal(t, "2026-03-02", resp.Date)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2026-03-02T10:00:00Z", resp.Slots[0].Start)
	assert.Equal(t, "2026-03-02T11:00:00Z", resp.Slots[0].End)
}

func TestFromUseCaseResponse_EmptySlots(t *testing.T) {
	resp := FromUseCaseResponse(&getAvailableSlots.Response{
		Date:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Slots: []getAvailableSlots.Slot{},
	})

	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}
