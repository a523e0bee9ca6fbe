package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/idrealestat/aqariai-crm/internal/events"
	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

// PublicationService turns an accepted marketplace offer/request into a
// CRM customer and a dashboard listing without dropping any of the
// optional property attributes captured earlier in the flow.
type PublicationService interface {
	PublishAccepted(ctx context.Context, item *models.AcceptedItem) (*PublicationResult, error)
}

type PublicationResult struct {
	Customer *models.Customer `json:"customer,omitempty"`
	Listing  *models.Listing  `json:"listing"`
	Message  string           `json:"message"`
}

type publicationService struct {
	customers     repositories.CustomerRepository
	listings      repositories.ListingRepository
	archive       repositories.OfferArchiveRepository
	notifications NotificationService
	broadcaster   *events.Broadcaster
}

func NewPublicationService(
	customers repositories.CustomerRepository,
	listings repositories.ListingRepository,
	archive repositories.OfferArchiveRepository,
	notifications NotificationService,
	b *events.Broadcaster,
) PublicationService {
	return &publicationService{
		customers:     customers,
		listings:      listings,
		archive:       archive,
		notifications: notifications,
		broadcaster:   b,
	}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *publicationService) PublishAccepted(ctx context.Context, item *models.AcceptedItem) (*PublicationResult, error) {
	// 1) Resolve the full authored record when the summary references
	//    one; fall back to the summary itself.
	resolved := s.resolveFullRecord(ctx, item)

	// 2) Contact phone: the authored record's owner phone wins, then
	//    the caller-supplied customer phone. No phone means the listing
	//    is published unattached.
	phone := strings.TrimSpace(resolved.OwnerPhone)
	if phone == "" {
		phone = strings.TrimSpace(item.CustomerPhone)
	}

	// 3) Find-or-create the customer.
	var customer *models.Customer
	if phone == "" {
		utils.Logger.Warnf("Accepted item %s has no contact phone; publishing without a customer", item.ItemID)
	} else {
		var err error
		customer, err = s.findOrCreateCustomer(ctx, resolved, item, phone)
		if err != nil {
			return nil, err
		}
	}

	// 4) The listing is always created, attached or not.
	listing, err := s.createListing(ctx, resolved, customer)
	if err != nil {
		return nil, err
	}

	// 5) Let every open customer view re-read.
	s.broadcaster.Publish(events.CustomersUpdated)

	// 6) Confirmation naming the customer and phone.
	result := &PublicationResult{Customer: customer, Listing: listing}
	if customer != nil {
		result.Message = fmt.Sprintf("Published %s for %s (%s)", listing.Kind, customer.Name, customer.Phone)
	} else {
		result.Message = fmt.Sprintf("Published %s without a linked customer", listing.Kind)
	}

	notifType := models.NotificationOfferPublished
	action := "open_offers"
	if listing.Kind == models.KindRequest {
		notifType = models.NotificationRequestPublished
		action = "open_requests"
	}
	if _, err := s.notifications.Notify(ctx, notifType, "Listing published", result.Message, action); err != nil {
		// the publication itself succeeded; a lost notification is not
		// worth failing the flow over
		utils.Logger.WithError(err).Warn("Failed to enqueue publication notification")
	}

	return result, nil
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

func (s *publicationService) resolveFullRecord(ctx context.Context, item *models.AcceptedItem) *models.AcceptedItem {
	if item.RefID == "" {
		return item
	}
	full, err := s.archive.FindByItemID(ctx, item.RefID)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Archive lookup failed for ref %s; using the summary record", item.RefID)
		return item
	}
	if full == nil {
		utils.Logger.Debugf("No archived record for ref %s; using the summary record", item.RefID)
		return item
	}
	return full
}

func (s *publicationService) findOrCreateCustomer(
	ctx context.Context,
	resolved, item *models.AcceptedItem,
	phone string,
) (*models.Customer, error) {
	existing, err := s.customers.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	name := firstNonEmpty(resolved.OwnerName, item.CustomerName, "Unknown")

	// Snapshot the raw resolved record so the original payload can be
	// reconstructed later.
	snapshot, err := json.Marshal(resolved)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		ID:         uuid.New(),
		Name:       name,
		Phone:      phone,
		Category:   models.CategoryForRole(resolved.UserRole),
		Source:     "marketplace",
		City:       resolved.City,
		District:   strings.Join(resolved.Districts, ", "),
		Budget:     resolved.BudgetFigure(),
		Notes:      SynthesizeNotes(resolved),
		Status:     models.CustomerStatusNew,
		CustomData: snapshot,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	if _, err := s.notifications.Notify(
		ctx,
		models.NotificationNewCustomer,
		"New customer",
		fmt.Sprintf("%s (%s) was added from an accepted %s", customer.Name, customer.Phone, resolved.OfferType),
		"open_customers",
	); err != nil {
		utils.Logger.WithError(err).Warn("Failed to enqueue new-customer notification")
	}

	utils.Logger.Infof("Created customer %s from accepted item %s", customer.ID, resolved.ItemID)
	return customer, nil
}

func (s *publicationService) createListing(
	ctx context.Context,
	resolved *models.AcceptedItem,
	customer *models.Customer,
) (*models.Listing, error) {
	customerID := resolved.ItemID
	if customer != nil {
		customerID = customer.ID.String()
	}

	kind := resolved.OfferType
	if kind == "" {
		kind = models.KindOffer
	}

	title := resolved.Title
	if title == "" {
		title = strings.TrimSpace(fmt.Sprintf("%s for %s in %s", resolved.PropertyType, resolved.TransactionType, resolved.City))
	}

	listing := &models.Listing{
		ID:              uuid.New(),
		Title:           title,
		PropertyType:    resolved.PropertyType,
		TransactionType: resolved.TransactionType,
		Category:        resolved.Category,
		Kind:            kind,
		Budget:          resolved.BudgetFigure(),
		City:            resolved.City,
		Districts:       resolved.Districts,
		Description:     resolved.Description,
		Features:        resolved.Features.Names(),
		CustomerID:      customerID,
		Status:          models.ListingActive,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
