package service

import (
	"context"
	"fmt"
	"time"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/models"
)

// tokenService is the concrete implementation of [TokenService]. It signs
// tokens with HMAC-SHA256 using a single server-held secret; tampering with
// any claim invalidates the signature.
//
// All state is read-only after construction, so the service is safe for
// concurrent use.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify all tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token. Tokens
	// whose issuer does not match are rejected during validation.
	issuer string

	// accessDuration controls the access token lifetime (1h by default).
	accessDuration time.Duration

	// refreshDuration controls the refresh token lifetime (30d by default).
	refreshDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] with security parameters
// from cfg.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:         cfg.TokenSignKey,
		issuer:          cfg.TokenIssuer,
		accessDuration:  cfg.AccessTokenDuration,
		refreshDuration: cfg.RefreshTokenDuration,
		logger:          logger,
	}
}

// IssuePair mints an access token and a refresh token for userID. The two
// differ only in lifetime and the "typ" claim, which prevents one from being
// presented in place of the other.
func (t *tokenService) IssuePair(ctx context.Context, userID int64) (models.TokenPair, error) {
	access, err := utils.GenerateJWTToken(t.issuer, userID, models.TokenTypeAccess, t.accessDuration, t.signKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(t.issuer, userID, models.TokenTypeRefresh, t.refreshDuration, t.signKey)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Validate verifies tokenString and returns its subject user id.
//
// Any validation failure (bad signature, expired, wrong issuer, wrong type,
// malformed claims) is normalised to [ErrTokenIsExpiredOrInvalid] so that
// callers do not need to inspect low-level JWT errors — and so that error
// responses do not leak why a token was rejected.
func (t *tokenService) Validate(ctx context.Context, tokenString, expectedType string) (int64, error) {
	log := logger.FromContext(ctx)

	userID, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer, expectedType)
	if err != nil {
		log.Debug().Err(err).Str("expected_type", expectedType).Msg("token validation failed")
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return userID, nil
}

// Refresh validates refreshToken with the refresh type discriminator and
// issues a fresh access token for the same subject. The refresh token is
// neither rotated nor invalidated; it stays usable until natural expiry.
func (t *tokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := t.Validate(ctx, refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	access, err := utils.GenerateJWTToken(t.issuer, userID, models.TokenTypeAccess, t.accessDuration, t.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return access, nil
}
