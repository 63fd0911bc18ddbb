package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/models"
)

type CreateGuideRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Days        *int   `json:"days"`
	Mobility    string `json:"mobility"`
	Season      string `json:"season"`
	Audience    string `json:"audience"`
}

type UpdateGuideRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Days        *int    `json:"days"`
	Mobility    *string `json:"mobility"`
	Season      *string `json:"season"`
	Audience    *string `json:"audience"`
}

// GuideResponse is the external guide shape: base fields, the owner's
// username, the flat activity list in canonical order, and the same
// activities grouped by day. The grouping is recomputed on every read.
type GuideResponse struct {
	ID              uuid.UUID                  `json:"id"`
	Title           string                     `json:"title"`
	Description     string                     `json:"description"`
	Days            int                        `json:"days"`
	Mobility        string                     `json:"mobility"`
	Season          string                     `json:"season"`
	Audience        string                     `json:"audience"`
	OwnerID         uuid.UUID                  `json:"owner_id"`
	OwnerUsername   string                     `json:"owner_username"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
	Activities      []ActivityResponse         `json:"activities"`
	ActivitiesByDay map[int][]ActivityResponse `json:"activities_by_day"`
}

// NewGuideResponse maps a guide whose Owner and Activities are preloaded,
// activities already in (day, order, id) order.
func NewGuideResponse(g *models.Guide) GuideResponse {
	activities := NewActivityListResponse(g.Activities)
	byDay := make(map[int][]ActivityResponse)
	for _, a := range activities {
		byDay[a.Day] = append(byDay[a.Day], a)
	}
	return GuideResponse{
		ID:              g.ID,
		Title:           g.Title,
		Description:     g.Description,
		Days:            g.Days,
		Mobility:        g.Mobility,
		Season:          g.Season,
		Audience:        g.Audience,
		OwnerID:         g.OwnerID,
		OwnerUsername:   g.Owner.Username,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
		Activities:      activities,
		ActivitiesByDay: byDay,
	}
}

func NewGuideListResponse(guides []models.Guide) []GuideResponse {
	out := make([]GuideResponse, len(guides))
	for i := range guides {
		out[i] = NewGuideResponse(&guides[i])
	}
	return out
}
