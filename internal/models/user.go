package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account. Role is never stored: it is derived from IsStaff
// so it cannot be escalated through a plain field write.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string         `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Email     string         `gorm:"size:255;index" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	IsStaff   bool           `gorm:"default:false" json:"is_staff"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Role returns the derived role string exposed by the API.
func (u *User) Role() string {
	if u.IsStaff {
		return "admin"
	}
	return "user"
}
