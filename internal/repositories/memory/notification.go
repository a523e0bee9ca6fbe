package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
)

type notificationRepo struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]*models.Notification
}

func NewNotificationRepository() repositories.NotificationRepository {
	return &notificationRepo{byID: make(map[uuid.UUID]*models.Notification)}
}

func (r *notificationRepo) Create(_ context.Context, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}
	cp := *n
	r.byID[n.ID] = &cp
	return nil
}

func (r *notificationRepo) List(_ context.Context) ([]*models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Notification, 0, len(r.byID))
	for _, n := range r.byID {
		cp := *n
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (r *notificationRepo) UnreadCount(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, n := range r.byID {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *notificationRepo) MarkRead(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	n.Read = true
	return true, nil
}

func (r *notificationRepo) MarkAllRead(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.byID {
		n.Read = true
	}
	return nil
}

func (r *notificationRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *notificationRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[uuid.UUID]*models.Notification)
	return nil
}
