package http

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/service"
	"github.com/taskdeck/taskdeck/models"
)

// Hand-rolled mocks for the service interfaces. Each method field can be
// overridden per test case; unset methods panic, which keeps tests honest
// about what they exercise.

type mockAuthService struct {
	registerUserFn         func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn                func(ctx context.Context, identifier, password string) (models.User, error)
	getUserFn              func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn        func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	changePasswordFn       func(ctx context.Context, userID int64, currentPassword, newPassword string) error
	requestPasswordResetFn func(ctx context.Context, email string) error
	confirmPasswordResetFn func(ctx context.Context, token, newPassword string) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, identifier, password string) (models.User, error) {
	return m.loginFn(ctx, identifier, password)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, userID, update)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	return m.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func (m *mockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.requestPasswordResetFn(ctx, email)
}

func (m *mockAuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	return m.confirmPasswordResetFn(ctx, token, newPassword)
}

type mockTokenService struct {
	issuePairFn func(ctx context.Context, userID int64) (models.TokenPair, error)
	validateFn  func(ctx context.Context, token, expectedType string) (int64, error)
	refreshFn   func(ctx context.Context, refreshToken string) (string, error)
}

func (m *mockTokenService) IssuePair(ctx context.Context, userID int64) (models.TokenPair, error) {
	return m.issuePairFn(ctx, userID)
}

func (m *mockTokenService) Validate(ctx context.Context, token, expectedType string) (int64, error) {
	return m.validateFn(ctx, token, expectedType)
}

func (m *mockTokenService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return m.refreshFn(ctx, refreshToken)
}

type mockTodoService struct {
	createTodoFn func(ctx context.Context, userID int64, req models.CreateTodoRequest) (models.Todo, error)
	listTodosFn  func(ctx context.Context, userID int64) ([]models.Todo, error)
	getTodoFn    func(ctx context.Context, userID, todoID int64) (models.Todo, error)
	updateTodoFn func(ctx context.Context, userID, todoID int64, update models.TodoUpdate) (models.Todo, error)
	deleteTodoFn func(ctx context.Context, userID, todoID int64) error
}

func (m *mockTodoService) CreateTodo(ctx context.Context, userID int64, req models.CreateTodoRequest) (models.Todo, error) {
	return m.createTodoFn(ctx, userID, req)
}

func (m *mockTodoService) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	return m.listTodosFn(ctx, userID)
}

func (m *mockTodoService) GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return m.getTodoFn(ctx, userID, todoID)
}

func (m *mockTodoService) UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) (models.Todo, error) {
	return m.updateTodoFn(ctx, userID, todoID, update)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	return m.deleteTodoFn(ctx, userID, todoID)
}

type mockSuggestionService struct {
	generateDescriptionFn func(ctx context.Context, title string) (string, error)
	improveTitleFn        func(ctx context.Context, title string) (string, error)
	generateSuggestionsFn func(ctx context.Context, title, description string) (models.SuggestionResponse, error)
}

func (m *mockSuggestionService) GenerateDescription(ctx context.Context, title string) (string, error) {
	return m.generateDescriptionFn(ctx, title)
}

func (m *mockSuggestionService) ImproveTitle(ctx context.Context, title string) (string, error) {
	return m.improveTitleFn(ctx, title)
}

func (m *mockSuggestionService) GenerateSuggestions(ctx context.Context, title, description string) (models.SuggestionResponse, error) {
	return m.generateSuggestionsFn(ctx, title, description)
}

// newTestHandler builds a Handler over the given mocks; nil mocks are
// replaced with empty ones.
func newTestHandler(auth service.AuthService, tokens service.TokenService, todos service.TodoService, suggestions service.SuggestionService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if tokens == nil {
		tokens = &mockTokenService{}
	}
	if todos == nil {
		todos = &mockTodoService{}
	}
	if suggestions == nil {
		suggestions = &mockSuggestionService{}
	}

	return NewHandler(&service.Services{
		AuthService:       auth,
		TokenService:      tokens,
		TodoService:       todos,
		SuggestionService: suggestions,
	}, logger.Nop())
}
