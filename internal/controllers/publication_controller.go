package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/services"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

type PublicationController struct {
	svc services.PublicationService
}

func NewPublicationController(s services.PublicationService) *PublicationController {
	return &PublicationController{svc: s}
}

// -----------------------------------------------------------------------------
// POST /api/v1/publications/accepted
// -----------------------------------------------------------------------------
func (c *PublicationController) PublishAcceptedHandler(w http.ResponseWriter, r *http.Request) {
	var item models.AcceptedItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if item.ItemID == "" {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "item_id is required", nil,
		)
		return
	}

	result, err := c.svc.PublishAccepted(r.Context(), &item)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, result)
}
