package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/idrealestat/aqariai-crm/internal/dtos"
	"github.com/idrealestat/aqariai-crm/internal/services"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

type KanbanController struct {
	svc services.KanbanService
}

func NewKanbanController(s services.KanbanService) *KanbanController {
	return &KanbanController{svc: s}
}

// -----------------------------------------------------------------------------
// GET /api/v1/pipeline/{boardId}
// -----------------------------------------------------------------------------
func (c *KanbanController) BoardHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.svc.Board(mux.Vars(r)["boardId"]))
}

// -----------------------------------------------------------------------------
// POST /api/v1/pipeline/{boardId}/leads
// -----------------------------------------------------------------------------
func (c *KanbanController) AddLeadHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.AddLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "column_id is required", nil, err,
		)
		return
	}

	board, err := c.svc.AddLead(mux.Vars(r)["boardId"], req.ColumnID, req.Lead)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, board)
}

// -----------------------------------------------------------------------------
// POST /api/v1/pipeline/{boardId}/move
// -----------------------------------------------------------------------------
func (c *KanbanController) MoveLeadHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.MoveLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Source and destination are required", nil, err,
		)
		return
	}

	board, err := c.svc.MoveLead(mux.Vars(r)["boardId"], services.MoveRequest{
		LeadID:     req.LeadID,
		FromColumn: req.FromColumn,
		FromIndex:  req.FromIndex,
		ToColumn:   req.ToColumn,
		ToIndex:    req.ToIndex,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, board)
}

// -----------------------------------------------------------------------------
// GET /api/v1/pipeline/projections/customers
// -----------------------------------------------------------------------------
func (c *KanbanController) CustomerProjectionHandler(w http.ResponseWriter, r *http.Request) {
	board, err := c.svc.BoardFromCustomers(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, board)
}
