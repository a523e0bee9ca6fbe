package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/idrealestat/aqariai-crm/internal/events"
	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type NotificationService interface {
	Notify(ctx context.Context, typ models.NotificationType, title, message, actionType string) (*models.Notification, error)

	List(ctx context.Context) ([]*models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)

	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) error

	// RouteFor maps a notification's action type to the UI route the
	// client should navigate to.
	RouteFor(n *models.Notification) string
}

type notificationService struct {
	repo        repositories.NotificationRepository
	broadcaster *events.Broadcaster
}

func NewNotificationService(repo repositories.NotificationRepository, b *events.Broadcaster) NotificationService {
	return &notificationService{repo: repo, broadcaster: b}
}

// actionRoutes drives notification-tap navigation. Unknown action types
// land on the dashboard root.
var actionRoutes = map[string]string{
	"open_customers":    "/customers",
	"open_offers":       "/listings/offers",
	"open_requests":     "/listings/requests",
	"open_finance":      "/finance",
	"open_pipeline":     "/pipeline",
	"open_appointments": "/appointments",
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *notificationService) Notify(
	ctx context.Context,
	typ models.NotificationType,
	title, message, actionType string,
) (*models.Notification, error) {
	n := &models.Notification{
		ID:         uuid.New(),
		Type:       typ,
		Title:      title,
		Message:    message,
		Timestamp:  time.Now().UTC(),
		Read:       false,
		ActionType: actionType,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.broadcaster.Publish(events.NotificationsUpdated)
	return n, nil
}

func (s *notificationService) List(ctx context.Context) ([]*models.Notification, error) {
	return s.repo.List(ctx)
}

func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	return s.repo.UnreadCount(ctx)
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	updated, err := s.repo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !updated {
		return notFoundNotification(id)
	}
	s.broadcaster.Publish(events.NotificationsUpdated)
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context) error {
	if err := s.repo.MarkAllRead(ctx); err != nil {
		return err
	}
	s.broadcaster.Publish(events.NotificationsUpdated)
	return nil
}

func (s *notificationService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundNotification(id)
	}
	s.broadcaster.Publish(events.NotificationsUpdated)
	return nil
}

func (s *notificationService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	s.broadcaster.Publish(events.NotificationsUpdated)
	return nil
}

func (s *notificationService) RouteFor(n *models.Notification) string {
	if route, ok := actionRoutes[n.ActionType]; ok {
		return route
	}
	return "/"
}

func notFoundNotification(id uuid.UUID) error {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    fmt.Sprintf("Notification %s not found", id),
	}
}
