package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/repositories"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type ListingService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	List(ctx context.Context, kind models.ListingKind) ([]*models.Listing, error)
	ListAll(ctx context.Context) ([]*models.Listing, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error

	// ArchiveFull stores a fully authored record in the owner's archive
	// collection so later accepted summaries can resolve back to it.
	ArchiveFull(ctx context.Context, ownerID string, kind models.ListingKind, item *models.AcceptedItem) error
	ListArchive(ctx context.Context, ownerID string, kind models.ListingKind) ([]*models.AcceptedItem, error)
}

type listingService struct {
	listings repositories.ListingRepository
	archive  repositories.OfferArchiveRepository
}

func NewListingService(listings repositories.ListingRepository, archive repositories.OfferArchiveRepository) ListingService {
	return &listingService{listings: listings, archive: archive}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *listingService) Get(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, notFoundListing(id)
	}
	return l, nil
}

func (s *listingService) List(ctx context.Context, kind models.ListingKind) ([]*models.Listing, error) {
	return s.listings.ListByKind(ctx, kind)
}

func (s *listingService) ListAll(ctx context.Context) ([]*models.Listing, error) {
	return s.listings.ListAll(ctx)
}

func (s *listingService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ListingStatus) error {
	switch status {
	case models.ListingActive, models.ListingSold, models.ListingRented:
	default:
		return &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    fmt.Sprintf("Invalid listing status %q", status),
		}
	}
	if err := s.listings.UpdateStatus(ctx, id, status); err != nil {
		if err == pgx.ErrNoRows {
			return notFoundListing(id)
		}
		return err
	}
	return nil
}

func (s *listingService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.listings.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return notFoundListing(id)
	}
	return nil
}

func (s *listingService) ArchiveFull(ctx context.Context, ownerID string, kind models.ListingKind, item *models.AcceptedItem) error {
	if item.ItemID == "" {
		item.ItemID = uuid.NewString()
	}
	if item.OwnerID == "" {
		item.OwnerID = ownerID
	}
	return s.archive.Save(ctx, ownerID, kind, item)
}

func (s *listingService) ListArchive(ctx context.Context, ownerID string, kind models.ListingKind) ([]*models.AcceptedItem, error) {
	return s.archive.ListByOwner(ctx, ownerID, kind)
}

func notFoundListing(id uuid.UUID) error {
	return &utils.AppError{
		StatusCode: http.StatusNotFound,
		Code:       utils.ErrCodeNotFound,
		Message:    fmt.Sprintf("Listing %s not found", id),
		Err:        utils.ErrListingNotFound,
	}
}
