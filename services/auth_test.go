package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/models"
)

func TestAuthServiceRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		email     string
		password  string
		confirm   string
		wantField string
	}{
		{name: "valid", email: "ana@example.com", password: "secret1", confirm: "secret1"},
		{name: "malformed email", email: "not-an-email", password: "secret1", confirm: "secret1", wantField: "email"},
		{name: "short password", email: "ana@example.com", password: "abc", confirm: "abc", wantField: "password"},
		{name: "mismatched confirmation", email: "ana@example.com", password: "secret1", confirm: "secret2", wantField: "confirm_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			auth := NewAuthService(db, 4)

			user, err := auth.Register(tt.email, tt.password, tt.confirm)
			if tt.wantField != "" {
				var vErr ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr, tt.wantField)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.email, user.Email)
			assert.NotEqual(t, tt.password, user.Password, "plaintext must never be stored")
		})
	}
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	auth := NewAuthService(db, 4)

	_, err := auth.Register("dup@example.com", "secret1", "secret1")
	require.NoError(t, err)

	_, err = auth.Register("dup@example.com", "other-pass", "other-pass")
	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr, "email")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count, "second register must not create a row")
}

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	auth := NewAuthService(db, 4)
	_, err := auth.Register("ana@example.com", "secret1", "secret1")
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := auth.Login("ana@example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		_, errWrongPass := auth.Login("ana@example.com", "wrong")
		_, errNoUser := auth.Login("ghost@example.com", "secret1")

		assert.True(t, errors.Is(errWrongPass, ErrInvalidCredentials))
		assert.True(t, errors.Is(errNoUser, ErrInvalidCredentials))
		assert.Equal(t, errWrongPass, errNoUser)
	})
}

func TestAuthServiceUpdateProfile(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	auth := NewAuthService(db, 4)
	user := createTestUser(t, db, "ana@example.com")

	updated, err := auth.UpdateProfile(user.ID, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "Spanish", updated.ChosenLanguage)

	_, err = auth.UpdateProfile(user.ID, "Klingon")
	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr, "chosen_language")

	// Empty clears the preference
	updated, err = auth.UpdateProfile(user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, updated.ChosenLanguage)
}
