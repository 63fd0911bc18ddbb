package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/models"
	"github.com/tripfolio/guides-backend/internal/visibility"
	"gorm.io/gorm"
)

type InvitationService struct {
	db *gorm.DB
}

func NewInvitationService(db *gorm.DB) *InvitationService {
	return &InvitationService{db: db}
}

// List returns the invitations that concern the caller: addressed to
// them, or issued on guides they own. Admins see all.
func (s *InvitationService) List(caller *models.User) ([]models.GuideInvitation, error) {
	var invitations []models.GuideInvitation
	err := s.db.Scopes(visibility.InvitationReadable(caller)).
		Order("created_at DESC").
		Find(&invitations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}

func (s *InvitationService) Get(caller *models.User, id uuid.UUID) (*models.GuideInvitation, error) {
	var inv models.GuideInvitation
	err := s.db.Scopes(visibility.InvitationReadable(caller)).
		First(&inv, "guide_invitations.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvitationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load invitation: %w", err)
	}
	return &inv, nil
}

// Create issues an invitation on a guide the caller owns (or any guide
// for admins). A second invitation for the same (guide, email) pair is a
// conflict, not a validation failure.
func (s *InvitationService) Create(caller *models.User, req *dto.CreateInvitationRequest) (*models.GuideInvitation, error) {
	if !validEmail(req.InvitedEmail) {
		verr := newValidationError()
		verr.add("invited_email", "malformed email address")
		return nil, verr
	}

	var guide models.Guide
	err := s.db.Scopes(visibility.GuideReadable(caller)).
		First(&guide, "guides.id = ?", req.GuideID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGuideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load guide: %w", err)
	}
	if guide.OwnerID != caller.ID && !caller.IsStaff {
		return nil, ErrForbidden
	}

	var existing models.GuideInvitation
	err = s.db.Where("guide_id = ? AND LOWER(invited_email) = LOWER(?)", guide.ID, req.InvitedEmail).
		First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateInvitation
	}

	inv := models.GuideInvitation{
		ID:           uuid.New(),
		GuideID:      guide.ID,
		InvitedEmail: req.InvitedEmail,
	}

	if err := s.db.Create(&inv).Error; err != nil {
		// Two concurrent creates can both pass the pre-check; the unique
		// index on (guide_id, invited_email) settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateInvitation
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}
	return &inv, nil
}

// Delete revokes an invitation. Invitees can read invitations addressed
// to them but only the guide owner or an admin can revoke.
func (s *InvitationService) Delete(caller *models.User, id uuid.UUID) error {
	inv, err := s.Get(caller, id)
	if err != nil {
		return err
	}

	if !caller.IsStaff {
		var guide models.Guide
		if err := s.db.First(&guide, "id = ?", inv.GuideID).Error; err != nil {
			return fmt.Errorf("failed to load guide: %w", err)
		}
		if guide.OwnerID != caller.ID {
			return ErrForbidden
		}
	}

	return s.db.Delete(&models.GuideInvitation{}, "id = ?", inv.ID).Error
}

// Accept binds a pending invitation to the caller's account. The
// caller's email must match invited_email case-insensitively; the match
// is checked only here, never re-validated afterwards. Accepting an
// invitation already bound to the caller is a no-op success.
func (s *InvitationService) Accept(caller *models.User, id uuid.UUID) (*models.GuideInvitation, error) {
	inv, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	if inv.Accepted() {
		if *inv.InvitedUserID == caller.ID {
			return inv, nil
		}
		return nil, ErrForbidden
	}

	if caller.Email == "" || !strings.EqualFold(caller.Email, inv.InvitedEmail) {
		return nil, ErrEmailMismatch
	}

	// Persist only the binding; no other invitation field changes.
	if err := s.db.Model(inv).Update("invited_user_id", caller.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}
	inv.InvitedUserID = &caller.ID
	return inv, nil
}
