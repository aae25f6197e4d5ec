package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

func newTestTokenService() TokenService {
	return NewTokenService(config.App{
		TokenSignKey:         "test-sign-key",
		TokenIssuer:          "taskdeck-test",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: 30 * 24 * time.Hour,
	}, logger.Nop())
}

func TestIssuePair_RoundTrip(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	userID, err := svc.Validate(ctx, pair.AccessToken, models.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	userID, err = svc.Validate(ctx, pair.RefreshToken, models.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

// A refresh token must not pass as an access token and vice versa.
func TestValidate_TypeConfusion(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, 42)
	require.NoError(t, err)

	_, err = svc.Validate(ctx, pair.RefreshToken, models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.Validate(ctx, pair.AccessToken, models.TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestValidate_ForeignSignKey(t *testing.T) {
	ctx := context.Background()

	other := NewTokenService(config.App{
		TokenSignKey:         "different-key",
		TokenIssuer:          "taskdeck-test",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: time.Hour,
	}, logger.Nop())

	pair, err := other.IssuePair(ctx, 42)
	require.NoError(t, err)

	svc := newTestTokenService()
	_, err = svc.Validate(ctx, pair.AccessToken, models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestValidate_Garbage(t *testing.T) {
	svc := newTestTokenService()

	_, err := svc.Validate(context.Background(), "not-a-jwt", models.TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestRefresh_Success(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, 42)
	require.NoError(t, err)

	accessToken, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	userID, err := svc.Validate(ctx, accessToken, models.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

// Refreshing with an access token must be rejected; otherwise a leaked
// short-lived token could be upgraded into a long-lived session.
func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc := newTestTokenService()
	ctx := context.Background()

	pair, err := svc.IssuePair(ctx, 42)
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
