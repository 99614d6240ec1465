package services

import (
	"context"
	"testing"

	"github.com/getmorediners/backend/internal/apperr"
	"github.com/getmorediners/backend/internal/auth"
	"github.com/getmorediners/backend/internal/datasource"
	"github.com/getmorediners/backend/internal/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignUpValidation(t *testing.T) {
	tests := []struct {
		name  string
		in    SignUpInput
		field string
	}{
		{"bad email", SignUpInput{Email: "not-an-email", Password: "secret1"}, "email"},
		{"display name", SignUpInput{Email: "Owner <o@x.com>", Password: "secret1"}, "email"},
		{"short password", SignUpInput{Email: "o@x.com", Password: "12345"}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			_, _, err := env.auth.SignUp(context.Background(), tt.in)
			var ve *apperr.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestAuthService_SignUpThenSignIn(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	token, user, err := env.auth.SignUp(ctx, SignUpInput{Email: " Chef@Example.com ", Password: "secret1", FirstName: "Ana"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "chef@example.com", user.Email)
	require.NotNil(t, user.FirstName)
	assert.Nil(t, user.LastName)

	_, _, err = env.auth.SignUp(ctx, SignUpInput{Email: "chef@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)

	_, signedIn, err := env.auth.SignIn(ctx, "CHEF@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, signedIn.ID)

	_, _, err = env.auth.SignIn(ctx, "chef@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, _, err = env.auth.SignIn(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestAuthService_SignOutRevokesAndClearsSelection(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	token, user, err := env.auth.SignIn(ctx, datasource.DemoUserEmail, datasource.DemoUserPassword)
	require.NoError(t, err)
	_, err = env.selections.SelectAll(ctx, user.ID, directory.FilterCriteria{})
	require.NoError(t, err)

	claims, err := auth.ParseJWT("test-secret", token)
	require.NoError(t, err)
	require.NoError(t, env.auth.SignOut(ctx, claims))

	revoked, err := env.revoker.IsRevoked(ctx, claims.TokenID())
	require.NoError(t, err)
	assert.True(t, revoked)

	n, _ := env.selections.Count(ctx, user.ID)
	assert.Equal(t, 0, n)
}
