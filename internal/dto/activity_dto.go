package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/models"
)

type CreateActivityRequest struct {
	GuideID      uuid.UUID `json:"guide_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	OpeningHours string    `json:"opening_hours"`
	Website      string    `json:"website"`
	Day          *int      `json:"day"`
	Order        *int      `json:"order"`
}

type UpdateActivityRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	OpeningHours *string `json:"opening_hours"`
	Website      *string `json:"website"`
	Day          *int    `json:"day"`
	Order        *int    `json:"order"`
}

type ActivityResponse struct {
	ID           uuid.UUID `json:"id"`
	GuideID      uuid.UUID `json:"guide_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	OpeningHours string    `json:"opening_hours"`
	Website      string    `json:"website"`
	Day          int       `json:"day"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewActivityResponse(a *models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID,
		GuideID:      a.GuideID,
		Title:        a.Title,
		Description:  a.Description,
		Category:     a.Category,
		Address:      a.Address,
		Phone:        a.Phone,
		OpeningHours: a.OpeningHours,
		Website:      a.Website,
		Day:          a.Day,
		Order:        a.Order,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func NewActivityListResponse(activities []models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i := range activities {
		out[i] = NewActivityResponse(&activities[i])
	}
	return out
}
