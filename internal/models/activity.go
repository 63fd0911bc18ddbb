package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a single stop within a Guide, positioned by (day, order).
// Both are 1-based; the canonical listing order is day, order, id.
type Activity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	GuideID      uuid.UUID `gorm:"type:uuid;not null;index" json:"guide_id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"size:20;not null" json:"category"`
	Address      string    `gorm:"size:255" json:"address"`
	Phone        string    `gorm:"size:30" json:"phone"`
	OpeningHours string    `gorm:"size:255" json:"opening_hours"`
	Website      string    `gorm:"size:255" json:"website"`
	Day          int       `gorm:"not null;default:1" json:"day"`
	Order        int       `gorm:"column:order;not null;default:1" json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Guide Guide `gorm:"foreignKey:GuideID" json:"-"`
}

var ActivityCategories = []string{
	"museum", "castle", "nautical", "park", "cave", "beach",
	"festival", "zoo", "aquarium", "guided-tour", "vineyard",
}
