package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/models"
	"github.com/tripfolio/guides-backend/internal/visibility"
	"gorm.io/gorm"
)

const activityOrder = `day, "order", id`

type GuideService struct {
	db *gorm.DB
}

func NewGuideService(db *gorm.DB) *GuideService {
	return &GuideService{db: db}
}

func orderedActivities(db *gorm.DB) *gorm.DB {
	return db.Order(activityOrder)
}

// List returns the guides the caller may read, most recent first.
func (s *GuideService) List(caller *models.User) ([]models.Guide, error) {
	var guides []models.Guide
	err := s.db.Scopes(visibility.GuideReadable(caller)).
		Preload("Owner").
		Preload("Activities", orderedActivities).
		Order("created_at DESC").
		Find(&guides).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	return guides, nil
}

// Get returns one readable guide. A guide outside the caller's visible
// set is reported as not found, never as forbidden.
func (s *GuideService) Get(caller *models.User, id uuid.UUID) (*models.Guide, error) {
	var guide models.Guide
	err := s.db.Scopes(visibility.GuideReadable(caller)).
		Preload("Owner").
		Preload("Activities", orderedActivities).
		First(&guide, "guides.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGuideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load guide: %w", err)
	}
	return &guide, nil
}

// Create stores a new guide owned by the caller. Any client-supplied
// owner is ignored; ownership always comes from the authenticated user.
func (s *GuideService) Create(caller *models.User, req *dto.CreateGuideRequest) (*models.Guide, error) {
	days := 1
	if req.Days != nil {
		days = *req.Days
	}

	verr := newValidationError()
	if req.Title == "" {
		verr.add("title", "title is required")
	}
	if days < 1 {
		verr.add("days", "days must be at least 1")
	}
	if !validChoice(models.GuideMobilities, req.Mobility) {
		verr.add("mobility", "unknown mobility value")
	}
	if !validChoice(models.GuideSeasons, req.Season) {
		verr.add("season", "unknown season value")
	}
	if !validChoice(models.GuideAudiences, req.Audience) {
		verr.add("audience", "unknown audience value")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	guide := models.Guide{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Days:        days,
		Mobility:    req.Mobility,
		Season:      req.Season,
		Audience:    req.Audience,
		OwnerID:     caller.ID,
	}

	if err := s.db.Create(&guide).Error; err != nil {
		return nil, fmt.Errorf("failed to create guide: %w", err)
	}

	guide.Owner = *caller
	return &guide, nil
}

// Update applies a partial update. Only the owner or an admin may write;
// the owner reference itself is immutable.
func (s *GuideService) Update(caller *models.User, id uuid.UUID, req *dto.UpdateGuideRequest) (*models.Guide, error) {
	guide, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}
	if guide.OwnerID != caller.ID && !caller.IsStaff {
		return nil, ErrForbidden
	}

	verr := newValidationError()
	if req.Title != nil {
		if *req.Title == "" {
			verr.add("title", "title is required")
		}
		guide.Title = *req.Title
	}
	if req.Description != nil {
		guide.Description = *req.Description
	}
	if req.Days != nil {
		if *req.Days < 1 {
			verr.add("days", "days must be at least 1")
		}
		guide.Days = *req.Days
	}
	if req.Mobility != nil {
		if !validChoice(models.GuideMobilities, *req.Mobility) {
			verr.add("mobility", "unknown mobility value")
		}
		guide.Mobility = *req.Mobility
	}
	if req.Season != nil {
		if !validChoice(models.GuideSeasons, *req.Season) {
			verr.add("season", "unknown season value")
		}
		guide.Season = *req.Season
	}
	if req.Audience != nil {
		if !validChoice(models.GuideAudiences, *req.Audience) {
			verr.add("audience", "unknown audience value")
		}
		guide.Audience = *req.Audience
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	if err := s.db.Save(guide).Error; err != nil {
		return nil, fmt.Errorf("failed to update guide: %w", err)
	}
	return guide, nil
}

// Delete removes a guide together with its activities and invitations in
// one transaction. Only the owner or an admin may delete.
func (s *GuideService) Delete(caller *models.User, id uuid.UUID) error {
	guide, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	if guide.OwnerID != caller.ID && !caller.IsStaff {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guide_id = ?", guide.ID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("guide_id = ?", guide.ID).Delete(&models.GuideInvitation{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Guide{}, "id = ?", guide.ID).Error
	})
}

// ListActivities returns one readable guide's activities in canonical
// (day, order, id) order.
func (s *GuideService) ListActivities(caller *models.User, guideID uuid.UUID) ([]models.Activity, error) {
	if _, err := s.Get(caller, guideID); err != nil {
		return nil, err
	}

	var activities []models.Activity
	err := s.db.Where("guide_id = ?", guideID).
		Order(activityOrder).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
