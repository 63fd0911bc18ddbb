package visibility

import (
	"github.com/tripfolio/guides-backend/internal/models"
	"gorm.io/gorm"
)

// The one canonical readability rule. A non-admin reads a guide when they
// own it, when an invitation on it is bound to their account, or when a
// pending invitation is addressed to their email (case-insensitive).
// Admins bypass the filter entirely; the bypass is checked first so the
// admin query stays a plain unfiltered SELECT.

// GuideReadable restricts a guide query to rows the caller may read.
func GuideReadable(u *models.User) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if u.IsStaff {
			return db
		}
		invited := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.GuideInvitation{}).
			Select("guide_id")
		if u.Email != "" {
			invited = invited.Where("invited_user_id = ? OR LOWER(invited_email) = LOWER(?)", u.ID, u.Email)
		} else {
			// No email on file never matches the email branch.
			invited = invited.Where("invited_user_id = ?", u.ID)
		}
		return db.Where("guides.owner_id = ? OR guides.id IN (?)", u.ID, invited)
	}
}

// ActivityReadable restricts an activity query to activities whose parent
// guide is readable by the caller.
func ActivityReadable(u *models.User) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if u.IsStaff {
			return db
		}
		guides := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Guide{}).
			Select("guides.id").
			Scopes(GuideReadable(u))
		return db.Where("activities.guide_id IN (?)", guides)
	}
}

// InvitationReadable restricts an invitation query to invitations that
// concern the caller: addressed to them (by account or email) or issued
// on a guide they own.
func InvitationReadable(u *models.User) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if u.IsStaff {
			return db
		}
		owned := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.Guide{}).
			Select("id").
			Where("owner_id = ?", u.ID)
		if u.Email != "" {
			return db.Where(
				"invited_user_id = ? OR LOWER(invited_email) = LOWER(?) OR guide_id IN (?)",
				u.ID, u.Email, owned,
			)
		}
		return db.Where("invited_user_id = ? OR guide_id IN (?)", u.ID, owned)
	}
}
