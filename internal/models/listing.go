package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionSale TransactionType = "sale"
	TransactionRent TransactionType = "rent"
)

type ListingCategory string

const (
	ListingResidential ListingCategory = "residential"
	ListingCommercial  ListingCategory = "commercial"
)

// ListingKind selects which collection a published record lands in:
// offers authored by owners/lessors, requests authored by buyers/tenants.
type ListingKind string

const (
	KindOffer   ListingKind = "offer"
	KindRequest ListingKind = "request"
)

type ListingStatus string

const (
	ListingActive ListingStatus = "active"
	ListingSold   ListingStatus = "sold"
	ListingRented ListingStatus = "rented"
)

// Listing is a published offer or request shown on the dashboard.
// Immutable once created except for status transitions. CustomerID is a
// weak reference: it normally holds the owning customer's id, but falls
// back to the raw accepted-item id when no phone was available to attach
// a customer, so it stays a plain string.
type Listing struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	PropertyType    string          `json:"property_type"`
	TransactionType TransactionType `json:"transaction_type"`
	Category        ListingCategory `json:"category"`
	Kind            ListingKind     `json:"kind"`
	Budget          float64         `json:"budget"`
	City            string          `json:"city"`
	Districts       []string        `json:"districts"`
	Description     string          `json:"description"`
	Features        []string        `json:"features"`
	CustomerID      string          `json:"customer_id"`
	Status          ListingStatus   `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}
