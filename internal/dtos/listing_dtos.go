package dtos

import "github.com/idrealestat/aqariai-crm/internal/models"

type UpdateListingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active sold rented"`
}

type ArchiveFullRequest struct {
	Item models.AcceptedItem `json:"item" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
