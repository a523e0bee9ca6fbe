package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/idrealestat/aqariai-crm/internal/dtos"
	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/services"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

type ListingController struct {
	svc services.ListingService
}

func NewListingController(s services.ListingService) *ListingController {
	return &ListingController{svc: s}
}

// -----------------------------------------------------------------------------
// GET /api/v1/listings/offers  and  /api/v1/listings/requests
// -----------------------------------------------------------------------------
func (c *ListingController) ListOffersHandler(w http.ResponseWriter, r *http.Request) {
	c.listByKind(w, r, models.KindOffer)
}

func (c *ListingController) ListRequestsHandler(w http.ResponseWriter, r *http.Request) {
	c.listByKind(w, r, models.KindRequest)
}

func (c *ListingController) listByKind(w http.ResponseWriter, r *http.Request, kind models.ListingKind) {
	listings, err := c.svc.List(r.Context(), kind)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listings)
}

// -----------------------------------------------------------------------------
// GET /api/v1/listings/{id}
// -----------------------------------------------------------------------------
func (c *ListingController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	listing, err := c.svc.Get(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, listing)
}

// -----------------------------------------------------------------------------
// PATCH /api/v1/listings/{id}/status
// -----------------------------------------------------------------------------
func (c *ListingController) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateListingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Status must be active, sold or rented", nil, err,
		)
		return
	}

	if err := c.svc.UpdateStatus(r.Context(), id, models.ListingStatus(req.Status)); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Status updated"})
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/listings/{id}
// -----------------------------------------------------------------------------
func (c *ListingController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Listing deleted"})
}

// -----------------------------------------------------------------------------
// POST / GET /api/v1/archive/{ownerId}/{kind}
// -----------------------------------------------------------------------------
func (c *ListingController) ArchiveFullHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, kind, ok := archiveVars(w, r)
	if !ok {
		return
	}

	var req dtos.ArchiveFullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}

	if err := c.svc.ArchiveFull(r.Context(), ownerID, kind, &req.Item); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, req.Item)
}

func (c *ListingController) ListArchiveHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, kind, ok := archiveVars(w, r)
	if !ok {
		return
	}
	items, err := c.svc.ListArchive(r.Context(), ownerID, kind)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func archiveVars(w http.ResponseWriter, r *http.Request) (string, models.ListingKind, bool) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]
	kind := models.ListingKind(vars["kind"])
	if kind != models.KindOffer && kind != models.KindRequest {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Kind must be offer or request", nil,
		)
		return "", "", false
	}
	return ownerID, kind, true
}
