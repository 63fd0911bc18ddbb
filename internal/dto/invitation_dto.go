package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/models"
)

type CreateInvitationRequest struct {
	GuideID      uuid.UUID `json:"guide_id"`
	InvitedEmail string    `json:"invited_email"`
}

type InvitationResponse struct {
	ID            uuid.UUID  `json:"id"`
	GuideID       uuid.UUID  `json:"guide_id"`
	InvitedEmail  string     `json:"invited_email"`
	InvitedUserID *uuid.UUID `json:"invited_user_id"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

func NewInvitationResponse(inv *models.GuideInvitation) InvitationResponse {
	status := "pending"
	if inv.Accepted() {
		status = "accepted"
	}
	return InvitationResponse{
		ID:            inv.ID,
		GuideID:       inv.GuideID,
		InvitedEmail:  inv.InvitedEmail,
		InvitedUserID: inv.InvitedUserID,
		Status:        status,
		CreatedAt:     inv.CreatedAt,
	}
}

func NewInvitationListResponse(invitations []models.GuideInvitation) []InvitationResponse {
	out := make([]InvitationResponse, len(invitations))
	for i := range invitations {
		out[i] = NewInvitationResponse(&invitations[i])
	}
	return out
}
