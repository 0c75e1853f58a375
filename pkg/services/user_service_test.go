package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdictlabs/verdict/ent/user"
)

func TestUserCreateAndPasswordCheck(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	u, err := f.users.Create(ctx, f.firmID, "aria@harlandmoss.test", "correct horse battery", "Aria Chen", user.RolePartner)
	require.NoError(t, err)
	assert.Equal(t, user.RolePartner, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "correct horse battery", u.PasswordHash, "password is stored hashed")

	assert.True(t, f.users.CheckPassword(u, "correct horse battery"))
	assert.False(t, f.users.CheckPassword(u, "wrong password"))
}

func TestUserCreate_Validation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, f.firmID, "", "longenough", "X", user.RolePartner)
	assert.True(t, IsValidationError(err))

	_, err = f.users.Create(ctx, f.firmID, "short@pw.test", "short", "X", user.RolePartner)
	assert.True(t, IsValidationError(err))
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, f.firmID, "aria@harlandmoss.test", "longenough", "Aria Chen", user.RolePartner)
	require.NoError(t, err)
	_, err = f.users.Create(ctx, f.otherFirmID, "aria@harlandmoss.test", "longenough", "Imposter", user.RolePartner)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestUserLookups(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	created, err := f.users.Create(ctx, f.firmID, "aria@harlandmoss.test", "longenough", "Aria Chen", user.RoleAdmin)
	require.NoError(t, err)

	byID, err := f.users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, byID.Email)

	byEmail, err := f.users.GetByEmail(ctx, "aria@harlandmoss.test")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = f.users.GetByID(ctx, "no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.users.GetByEmail(ctx, "nobody@nowhere.test")
	assert.ErrorIs(t, err, ErrNotFound)
}
