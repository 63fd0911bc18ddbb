package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripfolio/guides-backend/internal/dto"
	"github.com/tripfolio/guides-backend/internal/models"
)

func TestInvitationCreate(t *testing.T) {
	db := openTestDB(t)
	svc := NewInvitationService(db)

	owner := seedUser(t, db, "owner", "owner@example.com", false)
	invitee := seedUser(t, db, "invitee", "invitee@example.com", false)
	outsider := seedUser(t, db, "outsider", "outsider@example.com", false)
	guide := seedGuide(t, db, owner, "Pyrenees")
	seedInvitation(t, db, guide, "invitee@example.com")

	t.Run("owner invites", func(t *testing.T) {
		inv, err := svc.Create(owner, &dto.CreateInvitationRequest{
			GuideID: guide.ID, InvitedEmail: "friend@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, guide.ID, inv.GuideID)
		assert.Nil(t, inv.InvitedUserID)
	})

	t.Run("duplicate email on same guide is a conflict", func(t *testing.T) {
		_, err := svc.Create(owner, &dto.CreateInvitationRequest{
			GuideID: guide.ID, InvitedEmail: "friend@example.com",
		})
		assert.ErrorIs(t, err, ErrDuplicateInvitation)
	})

	t.Run("duplicate check is case-insensitive", func(t *testing.T) {
		_, err := svc.Create(owner, &dto.CreateInvitationRequest{
			GuideID: guide.ID, InvitedEmail: "FRIEND@example.com",
		})
		assert.ErrorIs(t, err, ErrDuplicateInvitation)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		_, err := svc.Create(owner, &dto.CreateInvitationRequest{
			GuideID: guide.ID, InvitedEmail: "not-an-email",
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "invited_email")
	})

	t.Run("invitee cannot invite", func(t *testing.T) {
		_, err := svc.Create(invitee, &dto.CreateInvitationRequest{
			GuideID: guide.ID, InvitedEmail: "other@example.com",
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("invisible guide reads as not found", func(t *testing.T) {
		_, err := svc.Create(outsider, &dto.CreateInvitationRequest{
			GuideID: guide.ID, InvitedEmail: "other@example.com",
		})
		assert.ErrorIs(t, err, ErrGuideNotFound)
	})
}

func TestInvitationAccept(t *testing.T) {
	db := openTestDB(t)
	svc := NewInvitationService(db)

	owner := seedUser(t, db, "owner", "owner@example.com", false)
	invitee := seedUser(t, db, "alice", "Alice@Example.COM", false)
	stranger := seedUser(t, db, "bob", "bob@example.com", false)
	noEmail := seedUser(t, db, "ghost", "", false)
	guide := seedGuide(t, db, owner, "Jura")
	inv := seedInvitation(t, db, guide, "alice@example.com")

	t.Run("stranger cannot even see the invitation", func(t *testing.T) {
		_, err := svc.Accept(stranger, inv.ID)
		assert.ErrorIs(t, err, ErrInvitationNotFound)

		var stored models.GuideInvitation
		require.NoError(t, db.First(&stored, "id = ?", inv.ID).Error)
		assert.Nil(t, stored.InvitedUserID)
	})

	t.Run("no email on file is refused", func(t *testing.T) {
		_, err := svc.Accept(noEmail, inv.ID)
		assert.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("matching email accepts case-insensitively", func(t *testing.T) {
		accepted, err := svc.Accept(invitee, inv.ID)
		require.NoError(t, err)
		require.NotNil(t, accepted.InvitedUserID)
		assert.Equal(t, invitee.ID, *accepted.InvitedUserID)

		var stored models.GuideInvitation
		require.NoError(t, db.First(&stored, "id = ?", inv.ID).Error)
		require.NotNil(t, stored.InvitedUserID)
		assert.Equal(t, invitee.ID, *stored.InvitedUserID)
	})

	t.Run("repeat accept by the linked user is a no-op", func(t *testing.T) {
		accepted, err := svc.Accept(invitee, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, invitee.ID, *accepted.InvitedUserID)
	})

	t.Run("accept by the guide owner is refused", func(t *testing.T) {
		// The owner can read the invitation but is not its addressee.
		_, err := svc.Accept(owner, inv.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestInvitationAcceptEmailMismatch(t *testing.T) {
	db := openTestDB(t)
	svc := NewInvitationService(db)

	owner := seedUser(t, db, "owner", "owner@example.com", false)
	guide := seedGuide(t, db, owner, "Vosges")
	inv := seedInvitation(t, db, guide, "carol@example.com")

	// The owner sees every invitation on their guide but their email does
	// not match, so the transition is refused, not silently ignored.
	_, err := svc.Accept(owner, inv.ID)
	assert.ErrorIs(t, err, ErrEmailMismatch)

	var stored models.GuideInvitation
	require.NoError(t, db.First(&stored, "id = ?", inv.ID).Error)
	assert.Nil(t, stored.InvitedUserID)
}

func TestInvitationListAndDelete(t *testing.T) {
	db := openTestDB(t)
	svc := NewInvitationService(db)

	owner := seedUser(t, db, "owner", "owner@example.com", false)
	invitee := seedUser(t, db, "invitee", "invitee@example.com", false)
	outsider := seedUser(t, db, "outsider", "outsider@example.com", false)
	admin := seedUser(t, db, "admin", "admin@example.com", true)

	guide := seedGuide(t, db, owner, "Auvergne")
	other := seedGuide(t, db, outsider, "Languedoc")
	inv := seedInvitation(t, db, guide, "invitee@example.com")
	seedInvitation(t, db, other, "someone@example.com")

	t.Run("owner lists invitations on own guides", func(t *testing.T) {
		invitations, err := svc.List(owner)
		require.NoError(t, err)
		require.Len(t, invitations, 1)
		assert.Equal(t, inv.ID, invitations[0].ID)
	})

	t.Run("invitee lists invitations addressed to them", func(t *testing.T) {
		invitations, err := svc.List(invitee)
		require.NoError(t, err)
		require.Len(t, invitations, 1)
		assert.Equal(t, inv.ID, invitations[0].ID)
	})

	t.Run("admin lists all", func(t *testing.T) {
		invitations, err := svc.List(admin)
		require.NoError(t, err)
		assert.Len(t, invitations, 2)
	})

	t.Run("invitee cannot revoke", func(t *testing.T) {
		err := svc.Delete(invitee, inv.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner revokes", func(t *testing.T) {
		require.NoError(t, svc.Delete(owner, inv.ID))
		var count int64
		db.Model(&models.GuideInvitation{}).Where("id = ?", inv.ID).Count(&count)
		assert.Zero(t, count)
	})
}
