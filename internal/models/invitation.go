package models

import (
	"time"

	"github.com/google/uuid"
)

// GuideInvitation offers read access to a guide, addressed to an email.
// InvitedUserID stays null until the matching account accepts; a guide
// cannot hold two invitations for the same email.
type GuideInvitation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	GuideID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_invitations_guide_email" json:"guide_id"`
	InvitedEmail  string     `gorm:"size:255;not null;uniqueIndex:idx_invitations_guide_email" json:"invited_email"`
	InvitedUserID *uuid.UUID `gorm:"type:uuid;index" json:"invited_user_id"`
	CreatedAt     time.Time  `json:"created_at"`

	Guide       Guide `gorm:"foreignKey:GuideID" json:"-"`
	InvitedUser *User `gorm:"foreignKey:InvitedUserID;constraint:OnDelete:SET NULL" json:"-"`
}

// Accepted reports whether the invitation has been bound to an account.
func (i *GuideInvitation) Accepted() bool {
	return i.InvitedUserID != nil
}
