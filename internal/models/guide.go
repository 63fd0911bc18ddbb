package models

import (
	"time"

	"github.com/google/uuid"
)

// Guide is a multi-day itinerary. The owner is set at creation from the
// authenticated caller and is immutable afterwards.
type Guide struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Days        int       `gorm:"not null;default:1" json:"days"`
	Mobility    string    `gorm:"size:20;not null" json:"mobility"`
	Season      string    `gorm:"size:12;not null" json:"season"`
	Audience    string    `gorm:"size:12;not null" json:"audience"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Owner       User              `gorm:"foreignKey:OwnerID" json:"-"`
	Activities  []Activity        `gorm:"foreignKey:GuideID" json:"-"`
	Invitations []GuideInvitation `gorm:"foreignKey:GuideID" json:"-"`
}

var (
	GuideMobilities = []string{"car", "bike", "foot", "moto", "public-transport"}
	GuideSeasons    = []string{"summer", "spring", "autumn", "winter"}
	GuideAudiences  = []string{"family", "solo", "group", "friends"}
)
