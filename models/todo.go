package models

import "time"

// Todo is a single task item owned by exactly one user.
// All persistence paths are scoped by UserID so that one user can never
// observe or mutate another user's items.
type Todo struct {
	// ID is the server-assigned unique identifier of the item.
	ID int64 `json:"id"`

	// Title is the short description of the task. Required, at most 200 runes.
	Title string `json:"title"`

	// Description is the optional free-form body of the task.
	Description string `json:"description"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`

	// UserID is the identifier of the owning user. Rows are removed together
	// with the owner (ON DELETE CASCADE).
	UserID int64 `json:"user_id"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every mutation of the item.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoUpdate describes a partial update of a todo item. Nil fields are left
// untouched; non-nil fields replace the stored values.
type TodoUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}
