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

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// List returns the activities of every guide the caller may read.
func (s *ActivityService) List(caller *models.User) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.db.Scopes(visibility.ActivityReadable(caller)).
		Order(activityOrder).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

func (s *ActivityService) Get(caller *models.User, id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := s.db.Scopes(visibility.ActivityReadable(caller)).
		First(&activity, "activities.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	return &activity, nil
}

// Create adds an activity to a guide owned by the caller (or any guide
// for admins). A guide the caller cannot see reads as not found.
func (s *ActivityService) Create(caller *models.User, req *dto.CreateActivityRequest) (*models.Activity, error) {
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

	day, order := 1, 1
	if req.Day != nil {
		day = *req.Day
	}
	if req.Order != nil {
		order = *req.Order
	}

	verr := newValidationError()
	if req.Title == "" {
		verr.add("title", "title is required")
	}
	if !validChoice(models.ActivityCategories, req.Category) {
		verr.add("category", "unknown category value")
	}
	if day < 1 {
		verr.add("day", "day must be at least 1")
	}
	if order < 1 {
		verr.add("order", "order must be at least 1")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	activity := models.Activity{
		ID:           uuid.New(),
		GuideID:      guide.ID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Address:      req.Address,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
		Website:      req.Website,
		Day:          day,
		Order:        order,
	}

	if err := s.db.Create(&activity).Error; err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	return &activity, nil
}

// Update applies a partial update. The parent guide reference is
// immutable; moving an activity between guides is not supported.
func (s *ActivityService) Update(caller *models.User, id uuid.UUID, req *dto.UpdateActivityRequest) (*models.Activity, error) {
	activity, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireGuideOwner(caller, activity.GuideID); err != nil {
		return nil, err
	}

	verr := newValidationError()
	if req.Title != nil {
		if *req.Title == "" {
			verr.add("title", "title is required")
		}
		activity.Title = *req.Title
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Category != nil {
		if !validChoice(models.ActivityCategories, *req.Category) {
			verr.add("category", "unknown category value")
		}
		activity.Category = *req.Category
	}
	if req.Address != nil {
		activity.Address = *req.Address
	}
	if req.Phone != nil {
		activity.Phone = *req.Phone
	}
	if req.OpeningHours != nil {
		activity.OpeningHours = *req.OpeningHours
	}
	if req.Website != nil {
		activity.Website = *req.Website
	}
	if req.Day != nil {
		if *req.Day < 1 {
			verr.add("day", "day must be at least 1")
		}
		activity.Day = *req.Day
	}
	if req.Order != nil {
		if *req.Order < 1 {
			verr.add("order", "order must be at least 1")
		}
		activity.Order = *req.Order
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	if err := s.db.Save(activity).Error; err != nil {
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return activity, nil
}

func (s *ActivityService) Delete(caller *models.User, id uuid.UUID) error {
	activity, err := s.Get(caller, id)
	if err != nil {
		return err
	}
	if err := s.requireGuideOwner(caller, activity.GuideID); err != nil {
		return err
	}
	return s.db.Delete(&models.Activity{}, "id = ?", activity.ID).Error
}

func (s *ActivityService) requireGuideOwner(caller *models.User, guideID uuid.UUID) error {
	if caller.IsStaff {
		return nil
	}
	var guide models.Guide
	if err := s.db.First(&guide, "id = ?", guideID).Error; err != nil {
		return fmt.Errorf("failed to load guide: %w", err)
	}
	if guide.OwnerID != caller.ID {
		return ErrForbidden
	}
	return nil
}
