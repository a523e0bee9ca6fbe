package routes

const (
	// Health
	Health = "/health"

	// Customers
	Customers       = "/api/v1/customers"
	CustomerByID    = "/api/v1/customers/{id}"
	CustomersSearch = "/api/v1/customers/search"

	// Listings
	ListingsOffers   = "/api/v1/listings/offers"
	ListingsRequests = "/api/v1/listings/requests"
	ListingByID      = "/api/v1/listings/{id}"
	ListingStatus    = "/api/v1/listings/{id}/status"

	// Publication pipeline & owner archive
	PublishAccepted = "/api/v1/publications/accepted"
	OwnerArchive    = "/api/v1/archive/{ownerId}/{kind}"

	// Notifications
	Notifications        = "/api/v1/notifications"
	NotificationByID     = "/api/v1/notifications/{id}"
	NotificationRead     = "/api/v1/notifications/{id}/read"
	NotificationRoute    = "/api/v1/notifications/{id}/route"
	NotificationsReadAll = "/api/v1/notifications/read-all"
	NotificationsUnread  = "/api/v1/notifications/unread-count"

	// Finance
	FinanceEvaluate = "/api/v1/finance/evaluate"
	FinanceRates    = "/api/v1/finance/rates"

	// Kanban pipeline
	PipelineBoard     = "/api/v1/pipeline/{boardId}"
	PipelineLeads     = "/api/v1/pipeline/{boardId}/leads"
	PipelineMove      = "/api/v1/pipeline/{boardId}/move"
	PipelineCustomers = "/api/v1/pipeline/projections/customers"

	// Change-signal stream for UI subscribers
	EventsStream = "/api/v1/events"
)
