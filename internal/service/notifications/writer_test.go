package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSM-StudioService/internal/domain"
	"github.com/m04kA/TSM-StudioService/internal/events"
)

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fakeNotificationRepo struct {
	created   []*domain.Notification
	createErr error
	unread    int64
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByArtist(ctx context.Context, artistID int64, limit uint64) ([]*domain.Notification, error) {
	return f.created, nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, artistID int64) (int64, error) {
	return f.unread, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, artistID, notificationID int64) error {
	return nil
}

func TestWriter_BookingCreated(t *testing.T) {
	repo := &fakeNotificationRepo{}
	w := NewWriter(repo, noopLogger{})

	w.Handle(context.Background(), events.Event{
		Type:      events.EventBookingCreated,
		ArtistID:  1,
		BookingID: 5,
	})

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, domain.NotificationBookingCreated, n.Type)
	assert.Equal(t, int64(1), n.ArtistID)
	assert.Equal(t, "booking", n.EntityType)
	assert.Equal(t, int64(5), n.EntityID)
	assert.Equal(t, "Новая запись", n.Title)
}

func TestWriter_DepositPaid(t *testing.T) {
	repo := &fakeNotificationRepo{}
	w := NewWriter(repo, noopLogger{})

	w.Handle(context.Background(), events.Event{
		Type:      events.EventDepositPaid,
		ArtistID:  1,
		BookingID: 5,
	})

	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.NotificationDepositPaid, repo.created[0].Type)
}

func TestWriter_IgnoresUnknownEvents(t *testing.T) {
	repo := &fakeNotificationRepo{}
	w := NewWriter(repo, noopLogger{})

	w.Handle(context.Background(), events.Event{Type: events.EventType("unknown")})

	assert.Empty(t, repo.created)
}

func TestWriter_StorageErrorDoesNotPanic(t *testing.T) {
	repo := &fakeNotificationRepo{createErr: errors.New("db down")}
	w := NewWriter(repo, noopLogger{})

	assert.NotPanics(t, func() {
		w.Handle(context.Background(), events.Event{Type: events.EventBookingCreated, BookingID: 5})
	})
}

func TestService_GetFeed(t *testing.T) {
	repo := &fakeNotificationRepo{
		created: []*domain.Notification{
			{ID: 2, ArtistID: 1, Type: domain.NotificationDepositPaid, IsRead: false},
			{ID: 1, ArtistID: 1, Type: domain.NotificationBookingCreated, IsRead: true},
		},
		unread: 1,
	}
	svc := NewService(repo, noopLogger{})

	feed, err := svc.GetFeed(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, feed.Notifications, 2)
	assert.Equal(t, int64(1), feed.UnreadCount)
	assert.Equal(t, int64(2), feed.Notifications[0].ID)
}
