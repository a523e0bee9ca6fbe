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

type ListingRepository interface {
	Create(ctx context.Context, l *models.Listing) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	ListByKind(ctx context.Context, kind models.ListingKind) ([]*models.Listing, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]*models.Listing, error)
	ListAll(ctx context.Context) ([]*models.Listing, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type listingRepo struct {
	db DB
}

func NewListingRepository(db DB) ListingRepository {
	return &listingRepo{db: db}
}

func (r *listingRepo) Create(ctx context.Context, l *models.Listing) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO listings (
            id, title, property_type, transaction_type, category, kind,
            budget, city, districts, description, features,
            customer_id, status, created_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13, NOW())
    `,
		l.ID,
		l.Title,
		l.PropertyType,
		l.TransactionType,
		l.Category,
		l.Kind,
		l.Budget,
		l.City,
		l.Districts,
		l.Description,
		l.Features,
		l.CustomerID,
		l.Status,
	)
	return err
}

func (r *listingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	row := r.db.QueryRow(ctx, baseSelectListing()+" WHERE id=$1", id)
	return scanListing(row)
}

func (r *listingRepo) ListByKind(ctx context.Context, kind models.ListingKind) ([]*models.Listing, error) {
	rows, err := r.db.Query(ctx, baseSelectListing()+" WHERE kind=$1 ORDER BY created_at DESC", kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *listingRepo) ListByCustomerID(ctx context.Context, customerID string) ([]*models.Listing, error) {
	rows, err := r.db.Query(ctx, baseSelectListing()+" WHERE customer_id=$1 ORDER BY created_at DESC", customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *listingRepo) ListAll(ctx context.Context) ([]*models.Listing, error) {
	rows, err := r.db.Query(ctx, baseSelectListing()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *listingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE listings SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *listingRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM listings WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func collectListings(rows pgx.Rows) ([]*models.Listing, error) {
	var out []*models.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func baseSelectListing() string {
	return `
        SELECT
            id, title, property_type, transaction_type, category, kind,
            budget, city, districts, description, features,
            customer_id, status, created_at
        FROM listings
    `
}

func scanListing(row pgx.Row) (*models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID,
		&l.Title,
		&l.PropertyType,
		&l.TransactionType,
		&l.Category,
		&l.Kind,
		&l.Budget,
		&l.City,
		&l.Districts,
		&l.Description,
		&l.Features,
		&l.CustomerID,
		&l.Status,
		&l.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
