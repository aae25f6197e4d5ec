package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/models"
)

// maxTitleLength is the upper bound on a todo title, in characters.
const maxTitleLength = 200

// todoService is the concrete implementation of [TodoService]. Ownership
// is enforced one layer down: every repository call carries the acting
// user's id, so a todo belonging to another user is indistinguishable from
// one that does not exist.
type todoService struct {
	todoRepository store.TodoRepository
	logger         *logger.Logger
}

// NewTodoService constructs a [TodoService] on top of the given repository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{todoRepository: todoRepository, logger: logger}
}

// CreateTodo validates the request and persists a new todo owned by userID.
// New todos always start incomplete.
func (t *todoService) CreateTodo(ctx context.Context, userID int64, req models.CreateTodoRequest) (models.Todo, error) {
	log := logger.FromContext(ctx)

	title, err := validateTitle(req.Title)
	if err != nil {
		return models.Todo{}, err
	}

	todo := models.Todo{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Completed:   false,
		UserID:      userID,
	}

	createdTodo, err := t.todoRepository.CreateTodo(ctx, todo)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("todo creation ended with error")
		return models.Todo{}, fmt.Errorf("todo creation ended with error: %w", err)
	}

	return createdTodo, nil
}

// ListTodos returns every todo owned by userID, newest first.
func (t *todoService) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	return t.todoRepository.ListTodos(ctx, userID)
}

// GetTodo returns a single todo if it exists and belongs to userID.
func (t *todoService) GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	return t.todoRepository.GetTodo(ctx, userID, todoID)
}

// UpdateTodo applies a partial update to a todo owned by userID. Only
// fields present in the update are touched; a present title is re-validated.
func (t *todoService) UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	if update.Title == nil && update.Description == nil && update.Completed == nil {
		return models.Todo{}, ErrNoFieldsToUpdate
	}

	if update.Title != nil {
		title, err := validateTitle(*update.Title)
		if err != nil {
			return models.Todo{}, err
		}
		update.Title = &title
	}

	updatedTodo, err := t.todoRepository.UpdateTodo(ctx, userID, todoID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo update ended with error")
		return models.Todo{}, fmt.Errorf("todo update ended with error: %w", err)
	}

	return updatedTodo, nil
}

// DeleteTodo removes a todo owned by userID.
func (t *todoService) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	return t.todoRepository.DeleteTodo(ctx, userID, todoID)
}

// validateTitle trims the title and checks the presence and length rules
// shared by create and update.
func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}
