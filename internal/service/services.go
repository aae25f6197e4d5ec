package service

import (
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
)

// Services bundles every service behind a single dependency handed to the
// HTTP layer.
type Services struct {
	AuthService       AuthService
	TokenService      TokenService
	TodoService       TodoService
	SuggestionService SuggestionService
}

// NewServices wires all services on top of the given storages and config.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	resetMailer := NewLogResetMailer(cfg.App, logger)

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, resetMailer, cfg.App, logger),
		TokenService:      NewTokenService(cfg.App, logger),
		TodoService:       NewTodoService(storages.TodoRepository, logger),
		SuggestionService: NewSuggestionService(cfg.AI, logger),
	}
}
