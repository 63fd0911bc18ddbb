package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns every account. Admin-only; the route gate enforces it,
// the service double-checks.
func (s *UserService) List(caller *models.User) ([]models.User, error) {
	if !caller.IsStaff {
		return nil, ErrForbidden
	}
	var users []models.User
	if err := s.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Get returns one account: callers read themselves, admins read anyone.
// Foreign accounts read as not found rather than forbidden.
func (s *UserService) Get(caller *models.User, id uuid.UUID) (*models.User, error) {
	if caller.ID != id && !caller.IsStaff {
		return nil, ErrUserNotFound
	}
	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Create adds an account on behalf of an admin.
func (s *UserService) Create(caller *models.User, req *dto.CreateUserRequest) (*models.User, error) {
	if !caller.IsStaff {
		return nil, ErrForbidden
	}

	verr := newValidationError()
	if req.Username == "" {
		verr.add("username", "username is required")
	}
	if len(req.Password) < 8 {
		verr.add("password", "password must be at least 8 characters")
	}
	if req.Email != "" && !validEmail(req.Email) {
		verr.add("email", "malformed email address")
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		IsStaff:  req.IsStaff,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Update applies a partial update. Users may edit their own record but
// an is_staff change is honored only when the caller is an admin; role
// changes ride a separate privilege, not a field write.
func (s *UserService) Update(caller *models.User, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(caller, id)
	if err != nil {
		return nil, err
	}

	verr := newValidationError()
	if req.Username != nil {
		if *req.Username == "" {
			verr.add("username", "username is required")
		} else if *req.Username != user.Username {
			var existing models.User
			if err := s.db.Where("username = ?", *req.Username).First(&existing).Error; err == nil {
				return nil, ErrUsernameTaken
			}
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		if *req.Email != "" && !validEmail(*req.Email) {
			verr.add("email", "malformed email address")
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			verr.add("password", "password must be at least 8 characters")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("failed to hash password: %w", err)
			}
			user.Password = string(hash)
		}
	}
	if req.IsStaff != nil && caller.IsStaff {
		user.IsStaff = *req.IsStaff
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete removes an account and everything it owns: guides (with their
// activities and invitations), refresh tokens, and the account row.
// Invitations the user accepted elsewhere revert to pending-by-email.
func (s *UserService) Delete(caller *models.User, id uuid.UUID) error {
	if !caller.IsStaff {
		return ErrForbidden
	}

	var user models.User
	err := s.db.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var ownedIDs []uuid.UUID
		if err := tx.Model(&models.Guide{}).Where("owner_id = ?", user.ID).Pluck("id", &ownedIDs).Error; err != nil {
			return err
		}
		if len(ownedIDs) > 0 {
			if err := tx.Where("guide_id IN ?", ownedIDs).Delete(&models.Activity{}).Error; err != nil {
				return err
			}
			if err := tx.Where("guide_id IN ?", ownedIDs).Delete(&models.GuideInvitation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("owner_id = ?", user.ID).Delete(&models.Guide{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&models.GuideInvitation{}).
			Where("invited_user_id = ?", user.ID).
			Update("invited_user_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
