package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

/* ------------------------------------------------------------------
   Seed demo CRM data (test/demo purposes only)
------------------------------------------------------------------ */

// SeedDemoData inserts a small demo book of customers, listings,
// notifications and one archived full offer. It is a no-op when any
// customers already exist.
func SeedDemoData(
	ctx context.Context,
	customers repositories.CustomerRepository,
	listings repositories.ListingRepository,
	notifications repositories.NotificationRepository,
	archive repositories.OfferArchiveRepository,
) error {
	existing, err := customers.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("check existing customers: %w", err)
	}
	if len(existing) > 0 {
		utils.Logger.Infof("Demo seed skipped; %d customers already present", len(existing))
		return nil
	}

	demoOwnerID := uuid.MustParse("7b7c1c7e-3f64-4f37-9a31-0d62b1aaa001")
	demoBuyerID := uuid.MustParse("7b7c1c7e-3f64-4f37-9a31-0d62b1aaa002")

	owner := &models.Customer{
		ID:       demoOwnerID,
		Name:     "Fahad Al-Otaibi",
		Phone:    "+966500000001",
		Category: models.CategoryOwner,
		Source:   "demo",
		City:     "Riyadh",
		District: "Al Malqa",
		Budget:   1_250_000,
		Notes:    "Owns a villa in Al Malqa, open to offers above 1.2M.",
		Tags:     []string{"villa", "seller"},
		Status:   models.CustomerStatusContacted,
	}
	buyer := &models.Customer{
		ID:       demoBuyerID,
		Name:     "Sara Al-Harbi",
		Phone:    "+966500000002",
		Category: models.CategoryBuyer,
		Source:   "demo",
		City:     "Jeddah",
		District: "Ash Shati",
		Budget:   800_000,
		Notes:    "Looking for a 3-bedroom apartment near the corniche.",
		Tags:     []string{"apartment", "buyer"},
		Status:   models.CustomerStatusNew,
	}
	for _, c := range []*models.Customer{owner, buyer} {
		if err := customers.Create(ctx, c); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.Name, err)
		}
	}

	listing := &models.Listing{
		ID:              uuid.MustParse("7b7c1c7e-3f64-4f37-9a31-0d62b1bbb001"),
		Title:           "Villa for sale in Al Malqa",
		PropertyType:    "villa",
		TransactionType: models.TransactionSale,
		Category:        models.ListingResidential,
		Kind:            models.KindOffer,
		Budget:          1_250_000,
		City:            "Riyadh",
		Districts:       []string{"Al Malqa"},
		Description:     "Two-storey villa with a private pool.",
		Features:        []string{"pool", "driver room", "elevator"},
		CustomerID:      demoOwnerID.String(),
		Status:          models.ListingActive,
	}
	request := &models.Listing{
		ID:              uuid.MustParse("7b7c1c7e-3f64-4f37-9a31-0d62b1bbb002"),
		Title:           "Wanted: apartment in Ash Shati",
		PropertyType:    "apartment",
		TransactionType: models.TransactionSale,
		Category:        models.ListingResidential,
		Kind:            models.KindRequest,
		Budget:          800_000,
		City:            "Jeddah",
		Districts:       []string{"Ash Shati", "Al Hamra"},
		CustomerID:      demoBuyerID.String(),
		Status:          models.ListingActive,
	}
	for _, l := range []*models.Listing{listing, request} {
		if err := listings.Create(ctx, l); err != nil {
			return fmt.Errorf("seed listing %s: %w", l.Title, err)
		}
	}

	if err := notifications.Create(ctx, &models.Notification{
		ID:         uuid.MustParse("7b7c1c7e-3f64-4f37-9a31-0d62b1ccc001"),
		Type:       models.NotificationSystem,
		Title:      "Welcome to Aqariai CRM",
		Message:    "Demo data has been loaded.",
		Timestamp:  time.Now().UTC(),
		ActionType: "open_customers",
	}); err != nil {
		return fmt.Errorf("seed notification: %w", err)
	}

	if err := archive.Save(ctx, demoOwnerID.String(), models.KindOffer, &models.AcceptedItem{
		ItemID:          "demo-full-offer-1",
		OwnerID:         demoOwnerID.String(),
		OwnerName:       owner.Name,
		OwnerPhone:      owner.Phone,
		UserRole:        "seller",
		OfferType:       models.KindOffer,
		TransactionType: models.TransactionSale,
		Category:        models.ListingResidential,
		PropertyType:    "villa",
		Title:           listing.Title,
		City:            "Riyadh",
		Districts:       []string{"Al Malqa"},
		Rooms:           6,
		Bathrooms:       4,
		AreaM2:          420,
		Price:           1_250_000,
		Features:        models.FeatureList("pool", "driver room", "elevator"),
		Description:     listing.Description,
	}); err != nil {
		return fmt.Errorf("seed archived offer: %w", err)
	}

	utils.Logger.Info("Seeded demo CRM data")
	return nil
}
