package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

// todoColumns is the canonical column order used by every todo query and by
// scanTodo. Keep the two in sync.
var todoColumns = []string{
	"id", "title", "description", "completed", "user_id", "created_at", "updated_at",
}

// todoRepository is the SQL-backed implementation of [TodoRepository].
// Every statement it issues carries a user_id predicate, so an item owned by
// another user behaves exactly like a missing one.
type todoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTodoRepository constructs a [TodoRepository] backed by the provided
// database connection and logger.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var todo models.Todo
	err := row.Scan(
		&todo.ID, &todo.Title, &todo.Description, &todo.Completed,
		&todo.UserID, &todo.CreatedAt, &todo.UpdatedAt,
	)
	return todo, err
}

// CreateTodo persists a new item for todo.UserID and returns it with
// server-assigned fields populated.
func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := r.db.Builder().
		Insert(todo.TableName()).
		Columns("title", "description", "completed", "user_id", "created_at", "updated_at").
		Values(todo.Title, todo.Description, todo.Completed, todo.UserID, now, now).
		Suffix("RETURNING " + columnList(todoColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("error building insert query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("error inserting todo")
		return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// ListTodos returns all items owned by userID, newest first.
func (r *todoRepository) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error querying todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("error scanning todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todos, nil
}

// GetTodo returns the item with the given id if it belongs to userID,
// [ErrTodoNotFound] otherwise.
func (r *todoRepository) GetTodo(ctx context.Context, userID, todoID int64) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(todoColumns...).
		From(models.Todo{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetTodo").Msg("error building select query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}
		log.Err(err).Str("func", "*todoRepository.GetTodo").Msg("error querying todo")
		return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies a partial update to an item owned by userID. The SET
// clause is built dynamically from the non-nil fields of update; updated_at
// is always bumped.
func (r *todoRepository) UpdateTodo(ctx context.Context, userID, todoID int64, update models.TodoUpdate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	builder := r.db.Builder().
		Update(models.Todo{}.TableName()).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		Suffix("RETURNING " + columnList(todoColumns))

	changed := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		changed = true
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		changed = true
	}
	if update.Completed != nil {
		builder = builder.Set("completed", *update.Completed)
		changed = true
	}

	if !changed {
		return models.Todo{}, fmt.Errorf("%w: no todo fields to update", ErrBuildingSQLQuery)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("error building update query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanTodo(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Todo{}, ErrTodoNotFound
		}
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("error updating todo")
		return models.Todo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteTodo removes an item owned by userID. Deleting a missing or foreign
// item yields [ErrTodoNotFound].
func (r *todoRepository) DeleteTodo(ctx context.Context, userID, todoID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Delete(models.Todo{}.TableName()).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
