package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tripfolio/guides-backend/internal/config"
	"github.com/tripfolio/guides-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database per test. The shared
// cache keeps every pooled connection on the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Guide{},
		&models.Activity{},
		&models.GuideInvitation{},
		&models.SystemLog{},
	))
	return db
}

func testConfig() *config.Config {
	cfg := config.Load()
	cfg.JWTSecret = "test-secret"
	return cfg
}

func seedUser(t *testing.T, db *gorm.DB, username, email string, staff bool) *models.User {
	t.Helper()
	u := &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: "x",
		IsStaff:  staff,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedGuide(t *testing.T, db *gorm.DB, owner *models.User, title string) *models.Guide {
	t.Helper()
	g := &models.Guide{
		ID:       uuid.New(),
		Title:    title,
		Days:     2,
		Mobility: "car",
		Season:   "summer",
		Audience: "family",
		OwnerID:  owner.ID,
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

func seedActivity(t *testing.T, db *gorm.DB, guide *models.Guide, title string, day, order int) *models.Activity {
	t.Helper()
	a := &models.Activity{
		ID:       uuid.New(),
		GuideID:  guide.ID,
		Title:    title,
		Category: "museum",
		Day:      day,
		Order:    order,
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func seedInvitation(t *testing.T, db *gorm.DB, guide *models.Guide, email string) *models.GuideInvitation {
	t.Helper()
	inv := &models.GuideInvitation{
		ID:           uuid.New(),
		GuideID:      guide.ID,
		InvitedEmail: email,
	}
	require.NoError(t, db.Create(inv).Error)
	return inv
}

func guideIDs(guides []models.Guide) []uuid.UUID {
	ids := make([]uuid.UUID, len(guides))
	for i, g := range guides {
		ids[i] = g.ID
	}
	return ids
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }
