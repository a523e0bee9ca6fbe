// Package memory provides map-backed implementations of the repository
// interfaces. They carry the same contracts as the Postgres versions and
// back the service in tests and in STORAGE_DRIVER=memory mode.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
)

type customerRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*models.Customer
	order []uuid.UUID
}

func NewCustomerRepository() repositories.CustomerRepository {
	return &customerRepo{byID: make(map[uuid.UUID]*models.Customer)}
}

func (r *customerRepo) Create(_ context.Context, c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	r.byID[c.ID] = cloneCustomer(c)
	r.order = append(r.order, c.ID)
	return nil
}

func (r *customerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneCustomer(c), nil
}

func (r *customerRepo) FindByPhone(_ context.Context, phone string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.Phone == phone {
			return cloneCustomer(c), nil
		}
	}
	return nil, nil
}

func (r *customerRepo) Search(_ context.Context, query string) ([]*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var out []*models.Customer
	// newest first, matching the ORDER BY created_at DESC of the SQL impl
	for i := len(r.order) - 1; i >= 0; i-- {
		c, ok := r.byID[r.order[i]]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) {
			out = append(out, cloneCustomer(c))
		}
	}
	return out, nil
}

func (r *customerRepo) ListAll(_ context.Context) ([]*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*models.Customer
	for i := len(r.order) - 1; i >= 0; i-- {
		if c, ok := r.byID[r.order[i]]; ok {
			out = append(out, cloneCustomer(c))
		}
	}
	return out, nil
}

func (r *customerRepo) Update(_ context.Context, c *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; !ok {
		return nil
	}
	c.UpdatedAt = time.Now().UTC()
	r.byID[c.ID] = cloneCustomer(c)
	return nil
}

func (r *customerRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
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

func cloneCustomer(c *models.Customer) *models.Customer {
	cp := *c
	cp.Tags = append([]string(nil), c.Tags...)
	cp.CustomData = append([]byte(nil), c.CustomData...)
	if c.CustomData == nil {
		cp.CustomData = nil
	}
	return &cp
}
