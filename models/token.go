package models

import "github.com/golang-jwt/jwt/v5"

// Token type discriminators embedded in the "typ" claim of every issued JWT.
// The discriminator prevents a refresh token from being presented where an
// access token is expected, and vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the claim set carried by every token issued by the service.
// It extends the registered JWT claims with the token type discriminator.
type TokenClaims struct {
	jwt.RegisteredClaims

	// TokenType is either [TokenTypeAccess] or [TokenTypeRefresh].
	TokenType string `json:"typ"`
}

// TokenPair bundles the two tokens handed to a client after successful
// registration or login.
type TokenPair struct {
	// AccessToken is the short-lived credential attached to every
	// protected request.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived credential used solely to mint new
	// access tokens.
	RefreshToken string `json:"refresh_token"`
}
