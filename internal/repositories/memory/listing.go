package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
)

type listingRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*models.Listing
	order []uuid.UUID
}

func NewListingRepository() repositories.ListingRepository {
	return &listingRepo{byID: make(map[uuid.UUID]*models.Listing)}
}

func (r *listingRepo) Create(_ context.Context, l *models.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.byID[l.ID] = cloneListing(l)
	r.order = append(r.order, l.ID)
	return nil
}

func (r *listingRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneListing(l), nil
}

func (r *listingRepo) ListByKind(_ context.Context, kind models.ListingKind) ([]*models.Listing, error) {
	return r.list(func(l *models.Listing) bool { return l.Kind == kind })
}

func (r *listingRepo) ListByCustomerID(_ context.Context, customerID string) ([]*models.Listing, error) {
	return r.list(func(l *models.Listing) bool { return l.CustomerID == customerID })
}

func (r *listingRepo) ListAll(_ context.Context) ([]*models.Listing, error) {
	return r.list(func(*models.Listing) bool { return true })
}

func (r *listingRepo) list(keep func(*models.Listing) bool) ([]*models.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Listing
	for i := len(r.order) - 1; i >= 0; i-- {
		l, ok := r.byID[r.order[i]]
		if ok && keep(l) {
			out = append(out, cloneListing(l))
		}
	}
	return out, nil
}

func (r *listingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status models.ListingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	l.Status = status
	return nil
}

func (r *listingRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func cloneListing(l *models.Listing) *models.Listing {
	cp := *l
	cp.Districts = append([]string(nil), l.Districts...)
	cp.Features = append([]string(nil), l.Features...)
	return &cp
}
