package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/idrealestat/aqariai-crm/internal/events"
	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/repositories/memory"
)

func newNotificationSvcForTest() (NotificationService, repositories.NotificationRepository, *events.Broadcaster) {
	repo := memory.NewNotificationRepository()
	b := events.NewBroadcaster()
	return NewNotificationService(repo, b), repo, b
}

func TestNotifyStoresAndBroadcasts(t *testing.T) {
	svc, _, b := newNotificationSvcForTest()

	var signals int
	b.Subscribe(events.NotificationsUpdated, func() { signals++ })

	n, err := svc.Notify(context.Background(), models.NotificationNewCustomer, "New customer", "Fahad was added", "open_customers")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, n.ID)
	require.False(t, n.Read)
	require.False(t, n.Timestamp.IsZero())
	require.Equal(t, 1, signals)
}

func TestListReturnsNewestFirst(t *testing.T) {
	svc, repo, _ := newNotificationSvcForTest()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, repo.Create(ctx, &models.Notification{
			ID:        uuid.New(),
			Type:      models.NotificationSystem,
			Title:     title,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "newest", list[0].Title)
	require.Equal(t, "oldest", list[2].Title)
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	svc, _, _ := newNotificationSvcForTest()
	ctx := context.Background()

	first, err := svc.Notify(ctx, models.NotificationSystem, "one", "", "")
	require.NoError(t, err)
	_, err = svc.Notify(ctx, models.NotificationSystem, "two", "", "")
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	require.NoError(t, svc.MarkRead(ctx, first.ID))
	count, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	require.Error(t, svc.MarkRead(ctx, uuid.New()))

	require.NoError(t, svc.MarkAllRead(ctx))
	count, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestDeleteAllClearsEverything(t *testing.T) {
	svc, _, _ := newNotificationSvcForTest()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Notify(ctx, models.NotificationReminder, "r", "", "")
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteAll(ctx))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestDeleteSingleNotification(t *testing.T) {
	svc, _, _ := newNotificationSvcForTest()
	ctx := context.Background()

	n, err := svc.Notify(ctx, models.NotificationSystem, "gone soon", "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, n.ID))
	require.Error(t, svc.Delete(ctx, n.ID))
}

func TestRouteForActionTypes(t *testing.T) {
	svc, _, _ := newNotificationSvcForTest()

	require.Equal(t, "/customers", svc.RouteFor(&models.Notification{ActionType: "open_customers"}))
	require.Equal(t, "/listings/offers", svc.RouteFor(&models.Notification{ActionType: "open_offers"}))
	require.Equal(t, "/finance", svc.RouteFor(&models.Notification{ActionType: "open_finance"}))
	require.Equal(t, "/", svc.RouteFor(&models.Notification{ActionType: "open_mystery"}))
	require.Equal(t, "/", svc.RouteFor(&models.Notification{}))
}
