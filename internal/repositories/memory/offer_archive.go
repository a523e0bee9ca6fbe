package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

// offerArchiveRepo keeps the legacy per-owner collection layout:
// "owner-full-offers-<ownerID>" and "owner-full-requests-<ownerID>",
// each an ordered list of raw JSON payloads.
type offerArchiveRepo struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
}

func NewOfferArchiveRepository() repositories.OfferArchiveRepository {
	return &offerArchiveRepo{collections: make(map[string][]json.RawMessage)}
}

func collectionKey(ownerID string, kind models.ListingKind) string {
	if kind == models.KindRequest {
		return "owner-full-requests-" + ownerID
	}
	return "owner-full-offers-" + ownerID
}

func (r *offerArchiveRepo) Save(_ context.Context, ownerID string, kind models.ListingKind, item *models.AcceptedItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := collectionKey(ownerID, kind)
	r.collections[key] = append(r.collections[key], payload)
	return nil
}

// SeedRaw injects a raw payload into a named collection. Tests use it to
// reproduce stored records this code did not author, including corrupt
// ones.
func (r *offerArchiveRepo) SeedRaw(collection string, payload json.RawMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.collections[collection] = append(r.collections[collection], payload)
}

func (r *offerArchiveRepo) FindByItemID(_ context.Context, itemID string) (*models.AcceptedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// offer collections first, then requests; owners in stable key order
	for _, prefix := range []string{"owner-full-offers-", "owner-full-requests-"} {
		for _, key := range r.sortedKeys(prefix) {
			for _, payload := range r.collections[key] {
				var item models.AcceptedItem
				if err := json.Unmarshal(payload, &item); err != nil {
					utils.Logger.WithError(err).Warnf("Skipping unparsable record in %s", key)
					continue
				}
				if item.ItemID == itemID {
					return &item, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *offerArchiveRepo) ListByOwner(_ context.Context, ownerID string, kind models.ListingKind) ([]*models.AcceptedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.AcceptedItem
	for _, payload := range r.collections[collectionKey(ownerID, kind)] {
		var item models.AcceptedItem
		if err := json.Unmarshal(payload, &item); err != nil {
			utils.Logger.WithError(err).Warn("Skipping unparsable archived record")
			continue
		}
		cp := item
		out = append(out, &cp)
	}
	return out, nil
}

func (r *offerArchiveRepo) sortedKeys(prefix string) []string {
	var keys []string
	for k := range r.collections {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
