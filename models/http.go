package models

// Request bodies accepted by the HTTP API. Field names match the JSON wire
// format; validation happens in the service layer, not during decoding.

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest is the body of POST /api/auth/login. Identifier may be an
// email address or a username; Email and Username are accepted as aliases
// so existing clients can keep sending either field.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// LoginIdentifier returns the first non-empty identifier field.
func (r LoginRequest) LoginIdentifier() string {
	if r.Identifier != "" {
		return r.Identifier
	}
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}

// ChangePasswordRequest is the body of POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ResetRequest is the body of POST /api/auth/password-reset/request.
type ResetRequest struct {
	Email string `json:"email"`
}

// ResetConfirmRequest is the body of POST /api/auth/password-reset/confirm.
type ResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// RefreshRequest is the body of POST /api/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// CreateTodoRequest is the body of POST /api/todos.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// SuggestionRequest is the body of the AI suggestion endpoints.
type SuggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
