package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/idrealestat/aqariai-crm/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error

	List(ctx context.Context) ([]*models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)

	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type notificationRepo struct {
	db DB
}

func NewNotificationRepository(db DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *models.Notification) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO notifications (id, type, title, message, ts, read, action_type)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
    `,
		n.ID, n.Type, n.Title, n.Message, n.Timestamp, n.Read, n.ActionType,
	)
	return err
}

func (r *notificationRepo) List(ctx context.Context) ([]*models.Notification, error) {
	rows, err := r.db.Query(ctx, baseSelectNotification()+" ORDER BY ts DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notificationRepo) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE read=false`).Scan(&count)
	return count, err
}

func (r *notificationRepo) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET read=true WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `UPDATE notifications SET read=true WHERE read=false`)
	return err
}

func (r *notificationRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *notificationRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM notifications`)
	return err
}

func baseSelectNotification() string {
	return `
        SELECT id, type, title, message, ts, read, action_type
        FROM notifications
    `
}

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.ID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Timestamp,
		&n.Read,
		&n.ActionType,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}
