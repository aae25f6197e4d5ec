// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it as an access token via [service.TokenService.Validate], loads
// the subject's account, and — on success — stores the authenticated user's
// ID in the request context under [utils.UserIDCtxKey] before delegating to
// the next handler.
//
// The middleware rejects requests in the following cases:
//   - 401 — the "Authorization" header is absent or malformed, or the token
//     fails any validation check (signature, expiry, issuer, type).
//   - 404 — the token is valid but its subject no longer exists.
//   - 403 — the subject's account has been deactivated.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		userID, err := h.services.TokenService.Validate(ctx, tokenString, models.TokenTypeAccess)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		user, err := h.services.AuthService.GetUser(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Warn().Int64("user_id", userID).Msg("token subject no longer exists")
			}
			h.respondError(w, r, err)
			return
		}

		if !user.IsActive {
			log.Warn().Int64("user_id", userID).Msg("request from deactivated account")
			utils.WriteError(w, "account is deactivated", http.StatusForbidden)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the bearer token string from the request's
// "Authorization" header.
//
// The header is expected to follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is absent.
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
