package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/models"
)

func TestRoleDerivation(t *testing.T) {
	staff := &models.User{IsStaff: true}
	plain := &models.User{IsStaff: false}

	assert.Equal(t, "admin", dto.NewUserResponse(staff).Role)
	assert.Equal(t, "user", dto.NewUserResponse(plain).Role)
}

func TestUserAdminGates(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)

	admin := seedUser(t, db, "admin", "admin@example.com", true)
	user := seedUser(t, db, "user", "user@example.com", false)
	other := seedUser(t, db, "other", "other@example.com", false)

	t.Run("list is admin-only", func(t *testing.T) {
		_, err := svc.List(user)
		assert.ErrorIs(t, err, ErrForbidden)

		users, err := svc.List(admin)
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})

	t.Run("create is admin-only", func(t *testing.T) {
		_, err := svc.Create(user, &dto.CreateUserRequest{Username: "x", Password: "supersecret"})
		assert.ErrorIs(t, err, ErrForbidden)

		created, err := svc.Create(admin, &dto.CreateUserRequest{
			Username: "newbie", Email: "newbie@example.com", Password: "supersecret",
		})
		require.NoError(t, err)
		assert.False(t, created.IsStaff)
	})

	t.Run("delete is admin-only", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(user, other.ID), ErrForbidden)
		require.NoError(t, svc.Delete(admin, other.ID))
	})

	t.Run("foreign account reads as not found", func(t *testing.T) {
		_, err := svc.Get(user, admin.ID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("self read works", func(t *testing.T) {
		got, err := svc.Get(user, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "user", got.Username)
	})
}

func TestUserUpdateRoleEscalation(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)

	admin := seedUser(t, db, "admin", "admin@example.com", true)
	user := seedUser(t, db, "user", "user@example.com", false)

	t.Run("self update ignores is_staff", func(t *testing.T) {
		updated, err := svc.Update(user, user.ID, &dto.UpdateUserRequest{
			Email:   strPtr("new@example.com"),
			IsStaff: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", updated.Email)
		assert.False(t, updated.IsStaff)
	})

	t.Run("admin may change roles", func(t *testing.T) {
		updated, err := svc.Update(admin, user.ID, &dto.UpdateUserRequest{IsStaff: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, updated.IsStaff)
	})

	t.Run("password update is re-hashed", func(t *testing.T) {
		updated, err := svc.Update(user, user.ID, &dto.UpdateUserRequest{Password: strPtr("freshsecret")})
		require.NoError(t, err)
		assert.NotEqual(t, "freshsecret", updated.Password)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := svc.Update(user, user.ID, &dto.UpdateUserRequest{Password: strPtr("tiny")})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestUserDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)

	admin := seedUser(t, db, "admin", "admin@example.com", true)
	owner := seedUser(t, db, "owner", "owner@example.com", false)
	friend := seedUser(t, db, "friend", "friend@example.com", false)

	guide := seedGuide(t, db, owner, "Basque country")
	seedActivity(t, db, guide, "Surf", 1, 1)
	seedInvitation(t, db, guide, "friend@example.com")

	// The owner also accepted an invitation on someone else's guide.
	otherGuide := seedGuide(t, db, friend, "Landes")
	accepted := seedInvitation(t, db, otherGuide, "owner@example.com")
	require.NoError(t, db.Model(accepted).Update("invited_user_id", owner.ID).Error)

	require.NoError(t, svc.Delete(admin, owner.ID))

	var guides, activities, invitations int64
	db.Model(&models.Guide{}).Where("owner_id = ?", owner.ID).Count(&guides)
	db.Model(&models.Activity{}).Where("guide_id = ?", guide.ID).Count(&activities)
	db.Model(&models.GuideInvitation{}).Where("guide_id = ?", guide.ID).Count(&invitations)
	assert.Zero(t, guides)
	assert.Zero(t, activities)
	assert.Zero(t, invitations)

	// The accepted invitation elsewhere reverts to pending-by-email.
	var reverted models.GuideInvitation
	require.NoError(t, db.First(&reverted, "id = ?", accepted.ID).Error)
	assert.Nil(t, reverted.InvitedUserID)

	_, err := svc.Get(admin, owner.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
