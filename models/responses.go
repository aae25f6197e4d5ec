package models

// AuthResponse is returned by register and login: the public user object plus
// a freshly issued token pair.
type AuthResponse struct {
	Message      string `json:"message"`
	User         User   `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserResponse wraps a single user object.
type UserResponse struct {
	User User `json:"user"`
}

// AccessTokenResponse is returned by the refresh endpoint.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// TokenValidationResponse is returned by the validate-token endpoint.
// Valid is false whenever the presented token failed any check; UserID is
// populated only when Valid is true.
type TokenValidationResponse struct {
	Valid  bool  `json:"valid"`
	UserID int64 `json:"user_id,omitempty"`
}

// MessageResponse is a generic acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body rendered for every failed request.
// Only a stable message string is exposed; internal error details never
// reach the client.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuggestionResponse is returned by POST /api/ai/suggestions.
type SuggestionResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DescriptionResponse is returned by POST /api/ai/generate-description.
type DescriptionResponse struct {
	Description string `json:"description"`
}

// TitleResponse is returned by POST /api/ai/improve-title.
type TitleResponse struct {
	Title string `json:"title"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
