package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskdeck/taskdeck/models"
)

// ErrUnexpectedTokenType is returned by ValidateAndParseJWTToken when the
// token is otherwise valid but its "typ" claim does not match the expected
// discriminator (e.g. a refresh token presented where an access token is
// required).
var ErrUnexpectedTokenType = errors.New("unexpected token type")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for the given user.
//
// The token carries the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a base-10 string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - Type      (typ): [models.TokenTypeAccess] or [models.TokenTypeRefresh]
//
// All parameters are required. Returns an error if any of them are empty or
// zero, or if signing fails.
func GenerateJWTToken(issuer string, userID int64, tokenType string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenType == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT token")
	}

	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies the given JWT string and extracts the
// user identifier from its subject claim.
//
// Validation includes:
//   - Signature verification using signKey (HS256 only)
//   - Issuer (iss) claim check against tokenIssuer
//   - Expiration (exp) check with zero leeway — a token is rejected the
//     instant its expiry has passed
//   - Type (typ) claim check against expectedType
//
// Returns the user ID from the subject claim, or a non-nil error if any
// check fails. Type mismatches are reported as [ErrUnexpectedTokenType].
func ValidateAndParseJWTToken(tokenString, signKey, tokenIssuer, expectedType string) (int64, error) {
	claims := &models.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.TokenType != expectedType {
		return 0, ErrUnexpectedTokenType
	}

	if claims.Subject == "" {
		return 0, errors.New("empty subject claim")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error occurred converting subject to user ID: %w", err)
	}

	return userID, nil
}
