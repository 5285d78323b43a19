package events

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSM-StudioService/pkg/logger"
)

type captureHandler struct {
	mu     sync.Mutex
	events []Event
}

func (h *captureHandler) Handle(ctx context.Context, event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

func (h *captureHandler) captured() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Event(nil), h.events...)
}

type panicHandler struct{}

func (panicHandler) Handle(ctx context.Context, event Event) {
	panic("boom")
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()

	logs, err := logger.New(filepath.Join(t.TempDir(), "test.log"), "info")
	require.NoError(t, err)
	t.Cleanup(func() { logs.Close() })
	return logs
}

func TestDispatcher_DeliversToAllHandlers(t *testing.T) {
	first := &captureHandler{}
	second := &captureHandler{}
	d := NewDispatcher(testLogger(t), first, second)

	d.Publish(Event{Type: EventBookingCreated, ArtistID: 1, BookingID: 5})
	d.Publish(Event{Type: EventDepositPaid, ArtistID: 1, BookingID: 5})
	d.Close()

	require.Len(t, first.captured(), 2)
	require.Len(t, second.captured(), 2)
	assert.Equal(t, EventBookingCreated, first.captured()[0].Type)
	assert.Equal(t, EventDepositPaid, first.captured()[1].Type)
}

func TestDispatcher_StampsOccurredAt(t *testing.T) {
	h := &captureHandler{}
	d := NewDispatcher(testLogger(t), h)

	d.Publish(Event{Type: EventBookingCreated, BookingID: 5})
	d.Close()

	events := h.captured()
	require.Len(t, events, 1)
	assert.False(t, events[0].OccurredAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), events[0].OccurredAt, time.Minute)
}

func TestDispatcher_PanicDoesNotStopDelivery(t *testing.T) {
	h := &captureHandler{}
	d := NewDispatcher(testLogger(t), panicHandler{}, h)

	d.Publish(Event{Type: EventBookingCreated, BookingID: 5})
	d.Publish(Event{Type: EventDepositPaid, BookingID: 5})
	d.Close()

	assert.Len(t, h.captured(), 2)
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(testLogger(t))

	d.Close()
	assert.NotPanics(t, func() { d.Close() })
}
