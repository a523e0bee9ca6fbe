package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/idrealestat/aqariai-crm/internal/events"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/repositories/memory"
)

func mustUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

// testStores bundles the memory-backed repositories and the services
// wired on top of them, the same shape main assembles in memory mode.
type testStores struct {
	customers     repositories.CustomerRepository
	listings      repositories.ListingRepository
	notifications repositories.NotificationRepository
	archive       repositories.OfferArchiveRepository

	broadcaster     *events.Broadcaster
	notificationSvc NotificationService
	publicationSvc  PublicationService
}

func newTestStores() *testStores {
	s := &testStores{
		customers:     memory.NewCustomerRepository(),
		listings:      memory.NewListingRepository(),
		notifications: memory.NewNotificationRepository(),
		archive:       memory.NewOfferArchiveRepository(),
		broadcaster:   events.NewBroadcaster(),
	}
	s.notificationSvc = NewNotificationService(s.notifications, s.broadcaster)
	s.publicationSvc = NewPublicationService(
		s.customers, s.listings, s.archive, s.notificationSvc, s.broadcaster,
	)
	return s
}
