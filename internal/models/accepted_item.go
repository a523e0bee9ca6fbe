package models

// AcceptedItem is the transient marketplace payload handed to the
// publication pipeline. It is a superset bag of optional attributes and is
// never persisted as-is: it is consumed once to produce a Customer and a
// Listing. Numeric absences decode to 0 and string absences to "" so the
// notes synthesizer never has to nil-check.
type AcceptedItem struct {
	ItemID string `json:"item_id"`
	// RefID points at the full authored record in the offer archive;
	// empty when only the summary exists.
	RefID   string `json:"ref_id,omitempty"`
	OwnerID string `json:"owner_id,omitempty"`

	OwnerName     string `json:"owner_name,omitempty"`
	OwnerPhone    string `json:"owner_phone,omitempty"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	UserRole      string `json:"user_role,omitempty"`

	OfferType       ListingKind     `json:"offer_type,omitempty"`
	TransactionType TransactionType `json:"transaction_type,omitempty"`
	Category        ListingCategory `json:"category,omitempty"`
	PropertyType    string          `json:"property_type,omitempty"`

	Title     string   `json:"title,omitempty"`
	City      string   `json:"city,omitempty"`
	Districts []string `json:"districts,omitempty"`
	Street    string   `json:"street,omitempty"`
	PlanNo    string   `json:"plan_no,omitempty"`
	ParcelNo  string   `json:"parcel_no,omitempty"`

	Rooms       int     `json:"rooms,omitempty"`
	Bathrooms   int     `json:"bathrooms,omitempty"`
	LivingRooms int     `json:"living_rooms,omitempty"`
	FloorNo     int     `json:"floor_no,omitempty"`
	AgeYears    int     `json:"age_years,omitempty"`
	AreaM2      float64 `json:"area_m2,omitempty"`

	Price      float64 `json:"price,omitempty"`
	PriceMin   float64 `json:"price_min,omitempty"`
	PriceMax   float64 `json:"price_max,omitempty"`
	Commission float64 `json:"commission,omitempty"`

	Features       FeatureSet `json:"features,omitempty"`
	Guarantees     string     `json:"guarantees,omitempty"`
	Description    string     `json:"description,omitempty"`
	VirtualTourURL string     `json:"virtual_tour_url,omitempty"`
	AgreementTerms string     `json:"agreement_terms,omitempty"`

	Images    []string `json:"images,omitempty"`
	MediaRefs []string `json:"media_refs,omitempty"`
}

// Budget picks the figure a customer record should carry: the firm price
// when set, otherwise the top of the stated range.
func (a *AcceptedItem) BudgetFigure() float64 {
	if a.Price > 0 {
		return a.Price
	}
	return a.PriceMax
}
