package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/idrealestat/aqariai-crm/internal/dtos"
	"github.com/idrealestat/aqariai-crm/internal/models"
	"github.com/idrealestat/aqariai-crm/internal/services"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

var validate = validator.New()

type CustomerController struct {
	svc services.CustomerService
}

func NewCustomerController(s services.CustomerService) *CustomerController {
	return &CustomerController{svc: s}
}

// -----------------------------------------------------------------------------
// POST /api/v1/customers
// -----------------------------------------------------------------------------
func (c *CustomerController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Name and phone are required", nil, err,
		)
		return
	}

	customer, err := c.svc.Create(r.Context(), services.CreateCustomerInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Category: models.CustomerCategory(req.Category),
		Source:   req.Source,
		City:     req.City,
		District: req.District,
		Budget:   req.Budget,
		Notes:    req.Notes,
		Tags:     req.Tags,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, customer)
}

// -----------------------------------------------------------------------------
// GET /api/v1/customers  and  GET /api/v1/customers/search?q=
// -----------------------------------------------------------------------------
func (c *CustomerController) ListHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customers)
}

func (c *CustomerController) SearchHandler(w http.ResponseWriter, r *http.Request) {
	customers, err := c.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customers)
}

// -----------------------------------------------------------------------------
// GET /api/v1/customers/{id}
// -----------------------------------------------------------------------------
func (c *CustomerController) GetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	customer, err := c.svc.GetByID(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customer)
}

// -----------------------------------------------------------------------------
// PATCH /api/v1/customers/{id}
// -----------------------------------------------------------------------------
func (c *CustomerController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dtos.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err,
		)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid field value", nil, err,
		)
		return
	}

	patch := services.CustomerPatch{
		Name:     req.Name,
		Source:   req.Source,
		City:     req.City,
		District: req.District,
		Budget:   req.Budget,
		Notes:    req.Notes,
		Tags:     req.Tags,
	}
	if req.Category != nil {
		patch.Category = utils.Ptr(models.CustomerCategory(*req.Category))
	}
	if req.Status != nil {
		patch.Status = utils.Ptr(models.CustomerStatus(*req.Status))
	}

	customer, err := c.svc.Update(r.Context(), id, patch)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, customer)
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/customers/{id}
// -----------------------------------------------------------------------------
func (c *CustomerController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Customer deleted"})
}

// pathID parses the {id} path variable, responding 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id", nil, err,
		)
		return uuid.Nil, false
	}
	return id, true
}
