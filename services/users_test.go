package services

import (
	"testing"

	"github.com/jakhongirov/lazuno/auth"
	"github.com/jakhongirov/lazuno/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsersService(t *testing.T) (*Users, *auth.TokenManager) {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret")
	return NewUsers(newTestDB(t), tokens), tokens
}

func TestCreateSuperAdmin(t *testing.T) {
	svc, tokens := newUsersService(t)

	user, token, err := svc.CreateSuperAdmin(CreateUserInput{Username: "root", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, user.Role)
	assert.NotEqual(t, "secret", user.Password, "password must be stored hashed")

	claims, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
}

func TestCreateAdmin(t *testing.T) {
	svc, _ := newUsersService(t)

	user, token, err := svc.CreateAdmin(CreateUserInput{Username: "staff", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.NotEmpty(t, token)
}

func TestLogin(t *testing.T) {
	svc, tokens := newUsersService(t)

	_, _, err := svc.CreateAdmin(CreateUserInput{Username: "staff", Password: "secret"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, token, err := svc.Login("staff", "secret")
		require.NoError(t, err)
		assert.Equal(t, "staff", user.Username)

		claims, err := tokens.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, user.Role, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login("staff", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, _, err := svc.Login("ghost", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateUserPartial(t *testing.T) {
	svc, _ := newUsersService(t)

	created, _, err := svc.CreateAdmin(CreateUserInput{Username: "staff", Password: "secret"})
	require.NoError(t, err)

	// Password change only: username must survive.
	updated, err := svc.Update(created.ID, UpdateUserInput{Password: "rotated"})
	require.NoError(t, err)
	assert.Equal(t, "staff", updated.Username)

	_, _, err = svc.Login("staff", "rotated")
	require.NoError(t, err)
	_, _, err = svc.Login("staff", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := newUsersService(t)

	_, err := svc.Update(99, UpdateUserInput{Username: "nobody"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, _ := newUsersService(t)

	created, _, err := svc.CreateAdmin(CreateUserInput{Username: "staff", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrUserNotFound)
}

func TestListUsersPagination(t *testing.T) {
	svc, _ := newUsersService(t)

	for i := 0; i < 15; i++ {
		_, _, err := svc.CreateAdmin(CreateUserInput{
			Username: "user" + string(rune('a'+i)),
			Password: "secret",
		})
		require.NoError(t, err)
	}

	users, total, err := svc.List(PageParams{Take: 10, Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	require.Len(t, users, 10)
	assert.EqualValues(t, 15, users[0].ID, "listing is id-descending")

	users, total, err = svc.List(PageParams{Take: 10, Page: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	require.Len(t, users, 5)
	assert.EqualValues(t, 5, users[0].ID)

	// take=0 keeps its unlimited meaning
	users, _, err = svc.List(PageParams{Take: 0, Page: 1})
	require.NoError(t, err)
	assert.Len(t, users, 15)
}
