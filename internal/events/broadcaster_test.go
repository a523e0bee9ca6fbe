package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBroadcasterFansOutPerTopic(t *testing.T) {
	b := NewBroadcaster()

	var customers, notifications int
	b.Subscribe(CustomersUpdated, func() { customers++ })
	b.Subscribe(CustomersUpdated, func() { customers++ })
	b.Subscribe(NotificationsUpdated, func() { notifications++ })

	b.Publish(CustomersUpdated)
	require.Equal(t, 2, customers)
	require.Equal(t, 0, notifications)

	b.Publish(NotificationsUpdated)
	require.Equal(t, 2, customers)
	require.Equal(t, 1, notifications)
}

func TestBroadcasterUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBroadcaster()

	var calls int
	unsubscribe := b.Subscribe(CustomersUpdated, func() { calls++ })

	b.Publish(CustomersUpdated)
	require.Equal(t, 1, calls)

	unsubscribe()
	b.Publish(CustomersUpdated)
	require.Equal(t, 1, calls)

	// unsubscribing twice is harmless
	unsubscribe()
	b.Publish(CustomersUpdated)
	require.Equal(t, 1, calls)
}

func TestBroadcasterPublishWithoutSubscribers(t *testing.T) {
	b := NewBroadcaster()
	require.NotPanics(t, func() { b.Publish(CustomersUpdated) })
}
