package repositories

import (
	"context"
	"encoding/json"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// OfferArchiveRepository stores the full authored property records
// ("full offers" / "full requests") in per-owner collections. The
// publication pipeline resolves an accepted summary back to its full
// record by item id.
type OfferArchiveRepository interface {
	Save(ctx context.Context, ownerID string, kind models.ListingKind, item *models.AcceptedItem) error

	// FindByItemID scans the offer collections before the request
	// collections, oldest entry first; the first decodable match wins.
	// Entries whose stored payload no longer parses are skipped.
	FindByItemID(ctx context.Context, itemID string) (*models.AcceptedItem, error)

	ListByOwner(ctx context.Context, ownerID string, kind models.ListingKind) ([]*models.AcceptedItem, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type offerArchiveRepo struct {
	db DB
}

func NewOfferArchiveRepository(db DB) OfferArchiveRepository {
	return &offerArchiveRepo{db: db}
}

func (r *offerArchiveRepo) Save(ctx context.Context, ownerID string, kind models.ListingKind, item *models.AcceptedItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
        INSERT INTO offer_archive (item_id, owner_id, kind, payload, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `,
		item.ItemID, ownerID, kind, payload,
	)
	return err
}

func (r *offerArchiveRepo) FindByItemID(ctx context.Context, itemID string) (*models.AcceptedItem, error) {
	rows, err := r.db.Query(ctx, `
        SELECT payload FROM offer_archive
        WHERE item_id=$1
        ORDER BY kind='request', created_at
    `, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		item, ok := decodeArchived(payload, itemID)
		if ok {
			return item, rows.Err()
		}
	}
	return nil, rows.Err()
}

func (r *offerArchiveRepo) ListByOwner(ctx context.Context, ownerID string, kind models.ListingKind) ([]*models.AcceptedItem, error) {
	rows, err := r.db.Query(ctx, `
        SELECT payload FROM offer_archive
        WHERE owner_id=$1 AND kind=$2
        ORDER BY created_at
    `, ownerID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.AcceptedItem
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		if item, ok := decodeArchived(payload, ""); ok {
			out = append(out, item)
		}
	}
	return out, rows.Err()
}

// decodeArchived treats an unparsable stored payload as absent rather
// than failing the whole lookup.
func decodeArchived(payload []byte, itemID string) (*models.AcceptedItem, bool) {
	var item models.AcceptedItem
	if err := json.Unmarshal(payload, &item); err != nil {
		utils.Logger.WithError(err).Warnf("Skipping unparsable archived record (item_id=%s)", itemID)
		return nil, false
	}
	return &item, true
}
