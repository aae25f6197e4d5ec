package http

import (
	"errors"
	"net/http"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/internal/validators"
)

// errorStatusMap maps every sentinel a handler can observe to the HTTP status
// it renders as. Sentinel messages are stable and client-safe, so the matched
// sentinel's text doubles as the response body.
var errorStatusMap = map[error]int{
	validators.ErrInvalidEmail:     http.StatusBadRequest,
	validators.ErrUsernameLength:   http.StatusBadRequest,
	validators.ErrUsernameCharset:  http.StatusBadRequest,
	validators.ErrPasswordTooShort: http.StatusBadRequest,
	validators.ErrPasswordNoUpper:  http.StatusBadRequest,
	validators.ErrPasswordNoLower:  http.StatusBadRequest,
	validators.ErrPasswordNoDigit:  http.StatusBadRequest,

	service.ErrMissingRegisterFields: http.StatusBadRequest,
	service.ErrMissingLoginFields:    http.StatusBadRequest,
	service.ErrMissingPasswordFields: http.StatusBadRequest,
	service.ErrMissingResetFields:    http.StatusBadRequest,
	service.ErrEmailRequired:         http.StatusBadRequest,
	service.ErrNoFieldsToUpdate:      http.StatusBadRequest,
	service.ErrTitleRequired:         http.StatusBadRequest,
	service.ErrTitleTooLong:          http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccountDisabled:         http.StatusForbidden,
	service.ErrResetTokenInvalid:       http.StatusBadRequest,
	service.ErrSuggestionsUnavailable:  http.StatusServiceUnavailable,
	service.ErrSuggestionFailed:        http.StatusInternalServerError,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrTodoNotFound:          http.StatusNotFound,
	store.ErrResetTokenNotFound:    http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

// respondError translates err into the uniform {"error": ...} body. The
// matched sentinel supplies both status and message; unmatched errors render
// as a generic 500 so internal details never reach the client.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			log.Err(err).Int("status", status).Msg(target.Error())
			utils.WriteError(w, target.Error(), status)
			return
		}
	}

	log.Err(err).Msg("unexpected error")
	utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
