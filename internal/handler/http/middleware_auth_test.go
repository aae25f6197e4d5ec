package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/models"
)

// nextRecorder is a terminal handler that records whether it was reached and
// what user id the middleware put into the context.
type nextRecorder struct {
	called bool
	userID int64
	hasID  bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, n.hasID = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			require.Equal(t, int64(42), userID)
			return validUser, nil
		},
	}
	tokens := &mockTokenService{
		validateFn: func(_ context.Context, token, expectedType string) (int64, error) {
			assert.Equal(t, "good-token", token)
			assert.Equal(t, models.TokenTypeAccess, expectedType)
			return 42, nil
		},
	}

	h := newTestHandler(auth, tokens, nil, nil)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called, "next handler should run")
	assert.True(t, next.hasID)
	assert.Equal(t, int64(42), next.userID)
}

func TestAuthMiddleware_HeaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "missing header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "no token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, nil, nil, nil)
			next := &nextRecorder{}

			req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next.handler()).ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, tt.wantErr.Error(), errorMessage(t, rec))
			assert.False(t, next.called, "next handler must not run")
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := &mockTokenService{
		validateFn: func(_ context.Context, _, _ string) (int64, error) {
			return 0, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newTestHandler(nil, tokens, nil, nil)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, service.ErrTokenIsExpiredOrInvalid.Error(), errorMessage(t, rec))
	assert.False(t, next.called)
}

// A valid token whose subject has since been deleted must not authenticate.
func TestAuthMiddleware_SubjectGone(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	tokens := &mockTokenService{
		validateFn: func(_ context.Context, _, _ string) (int64, error) {
			return 42, nil
		},
	}

	h := newTestHandler(auth, tokens, nil, nil)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer orphan-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_DeactivatedAccount(t *testing.T) {
	inactive := validUser
	inactive.IsActive = false

	auth := &mockAuthService{
		getUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return inactive, nil
		},
	}
	tokens := &mockTokenService{
		validateFn: func(_ context.Context, _, _ string) (int64, error) {
			return 42, nil
		},
	}

	h := newTestHandler(auth, tokens, nil, nil)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "account is deactivated", errorMessage(t, rec))
	assert.False(t, next.called)
}
