package dtos

import "github.com/idrealestat/aqariai-crm/internal/models"

type AddLeadRequest struct {
	ColumnID string      `json:"column_id" validate:"required"`
	Lead     models.Lead `json:"lead"`
}

type MoveLeadRequest struct {
	LeadID     string `json:"lead_id"`
	FromColumn string `json:"from_column" validate:"required"`
	FromIndex  int    `json:"from_index" validate:"gte=0"`
	ToColumn   string `json:"to_column" validate:"required"`
	ToIndex    int    `json:"to_index" validate:"gte=0"`
}
