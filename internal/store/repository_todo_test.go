package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/models"
)

func newTestTodoRepo(t *testing.T) (*todoRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &todoRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func todoRows(todos ...models.Todo) *sqlmock.Rows {
	rows := sqlmock.NewRows(todoColumns)
	for _, todo := range todos {
		rows.AddRow(todo.ID, todo.Title, todo.Description, todo.Completed,
			todo.UserID, todo.CreatedAt, todo.UpdatedAt)
	}
	return rows
}

func TestCreateTodo_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	todo := models.Todo{Title: "buy milk", Description: "2 liters", UserID: 7}
	stored := todo
	stored.ID = 1
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt

	mock.ExpectQuery("INSERT INTO todos").
		WithArgs(todo.Title, todo.Description, todo.Completed, todo.UserID,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(todoRows(stored))

	created, err := repo.CreateTodo(context.Background(), todo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", created.UserID)
	}
}

func TestListTodos_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, title").
		WithArgs(int64(7)).
		WillReturnRows(todoRows(
			models.Todo{ID: 2, Title: "newer", UserID: 7, CreatedAt: now, UpdatedAt: now},
			models.Todo{ID: 1, Title: "older", UserID: 7, CreatedAt: now.Add(-time.Hour), UpdatedAt: now},
		))

	todos, err := repo.ListTodos(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos, got %d", len(todos))
	}
	if todos[0].Title != "newer" {
		t.Errorf("expected newest first, got %s", todos[0].Title)
	}
}

func TestListTodos_Empty(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title").
		WithArgs(int64(7)).
		WillReturnRows(todoRows())

	todos, err := repo.ListTodos(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("expected empty slice, got %d items", len(todos))
	}
}

func TestGetTodo_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	stored := models.Todo{ID: 3, Title: "buy milk", UserID: 7}

	mock.ExpectQuery("SELECT id, title").
		WithArgs(int64(3), int64(7)).
		WillReturnRows(todoRows(stored))

	todo, err := repo.GetTodo(context.Background(), 7, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.ID != 3 {
		t.Errorf("expected ID=3, got %d", todo.ID)
	}
}

// Items owned by another user must behave exactly like missing ones.
func TestGetTodo_ForeignOwner(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, title").
		WithArgs(int64(3), int64(8)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTodo(context.Background(), 8, 3)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestUpdateTodo_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	completed := true
	stored := models.Todo{ID: 3, Title: "buy milk", Completed: true, UserID: 7}

	mock.ExpectQuery("UPDATE todos").
		WithArgs(sqlmock.AnyArg(), completed, int64(3), int64(7)).
		WillReturnRows(todoRows(stored))

	updated, err := repo.UpdateTodo(context.Background(), 7, 3, models.TodoUpdate{Completed: &completed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Completed {
		t.Error("expected todo to be completed")
	}
}

func TestUpdateTodo_NotFound(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	title := "renamed"
	mock.ExpectQuery("UPDATE todos").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateTodo(context.Background(), 7, 404, models.TodoUpdate{Title: &title})
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestUpdateTodo_NoFields(t *testing.T) {
	repo, _, db := newTestTodoRepo(t)
	defer db.Close()

	_, err := repo.UpdateTodo(context.Background(), 7, 3, models.TodoUpdate{})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestDeleteTodo_Success(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM todos").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteTodo(context.Background(), 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteTodo_NotFound(t *testing.T) {
	repo, mock, db := newTestTodoRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM todos").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTodo(context.Background(), 7, 404)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Fatalf("expected ErrTodoNotFound, got %v", err)
	}
}
