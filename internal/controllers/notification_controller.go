package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/idrealestat/aqariai-crm/internal/dtos"
	"github.com/idrealestat/aqariai-crm/internal/services"
	"github.com/idrealestat/aqariai-crm/internal/utils"
)

type NotificationController struct {
	svc services.NotificationService
}

func NewNotificationController(s services.NotificationService) *NotificationController {
	return &NotificationController{svc: s}
}

// -----------------------------------------------------------------------------
// GET /api/v1/notifications
// -----------------------------------------------------------------------------
func (c *NotificationController) ListHandler(w http.ResponseWriter, r *http.Request) {
	notifications, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, notifications)
}

// -----------------------------------------------------------------------------
// GET /api/v1/notifications/unread-count
// -----------------------------------------------------------------------------
func (c *NotificationController) UnreadCountHandler(w http.ResponseWriter, r *http.Request) {
	count, err := c.svc.UnreadCount(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.UnreadCountResponse{Count: count})
}

// -----------------------------------------------------------------------------
// POST /api/v1/notifications/{id}/read  and  /read-all
// -----------------------------------------------------------------------------
func (c *NotificationController) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.MarkRead(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Marked as read"})
}

func (c *NotificationController) MarkAllReadHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.MarkAllRead(r.Context()); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "All marked as read"})
}

// -----------------------------------------------------------------------------
// GET /api/v1/notifications/{id}/route
// -----------------------------------------------------------------------------
func (c *NotificationController) RouteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	notifications, err := c.svc.List(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	for _, n := range notifications {
		if n.ID == id {
			utils.RespondWithJSON(w, http.StatusOK, dtos.NotificationRouteResponse{Route: c.svc.RouteFor(n)})
			return
		}
	}
	utils.RespondErrorWithCode(
		w, http.StatusNotFound, utils.ErrCodeNotFound, "Notification not found", nil,
	)
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/notifications/{id}  and  DELETE /api/v1/notifications
// -----------------------------------------------------------------------------
func (c *NotificationController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id", nil, err,
		)
		return
	}
	if err := c.svc.Delete(r.Context(), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Notification deleted"})
}

func (c *NotificationController) DeleteAllHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.svc.DeleteAll(r.Context()); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "All notifications deleted"})
}
