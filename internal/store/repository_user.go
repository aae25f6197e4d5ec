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

// userColumns is the canonical column order used by every user query and by
// scanUser. Keep the two in sync.
var userColumns = []string{
	"id", "email", "username", "password_hash", "first_name", "last_name",
	"is_active", "is_verified", "reset_token", "reset_token_expiry",
	"created_at", "updated_at",
}

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and mutation against the
// "users" table on either supported backend.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanUser.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser reads one row in userColumns order into a models.User.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user        models.User
		resetToken  sql.NullString
		resetExpiry sql.NullTime
	)

	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.PasswordHash,
		&user.FirstName, &user.LastName, &user.IsActive, &user.IsVerified,
		&resetToken, &resetExpiry, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if resetToken.Valid {
		user.ResetToken = &resetToken.String
	}
	if resetExpiry.Valid {
		t := resetExpiry.Time
		user.ResetTokenExpiry = &t
	}

	return user, nil
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, timestamps).
//
// Timestamps are assigned here rather than by the database so behaviour is
// identical on both backends.
//
// Error handling:
//   - unique violation on email/username → [ErrEmailAlreadyExists] /
//     [ErrUsernameAlreadyExists]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := r.db.Builder().
		Insert(user.TableName()).
		Columns("email", "username", "password_hash", "first_name", "last_name",
			"is_active", "is_verified", "created_at", "updated_at").
		Values(user.Email, user.Username, user.PasswordHash, user.FirstName, user.LastName,
			user.IsActive, user.IsVerified, now, now).
		Suffix("RETURNING " + columnList(userColumns)).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if conflictErr := mapUserConflict(err); conflictErr != err {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("uniqueness conflict")
			return models.User{}, conflictErr
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByID retrieves a user record by its primary key.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUserBy(ctx, sq.Eq{"id": id})
}

// FindUserByEmail retrieves a user record by its (lower-cased) email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, sq.Eq{"email": email})
}

// FindUserByUsername retrieves a user record by its username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUserBy(ctx, sq.Eq{"username": username})
}

// findUserBy runs a single-row SELECT with the given predicate.
//
// Error handling:
//   - empty result set → [ErrUserNotFound]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) findUserBy(ctx context.Context, predicate sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(predicate).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateProfile applies a partial update of first name, last name, and
// username. The SET clause is built dynamically from the non-nil fields of
// update; updated_at is always bumped.
//
// Error handling:
//   - no fields to update → [ErrBuildingSQLQuery]
//   - username unique violation → [ErrUsernameAlreadyExists]
//   - no matching row → [ErrUserNotFound]
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := r.db.Builder().
		Update(models.User{}.TableName()).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + columnList(userColumns))

	changed := false
	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
		changed = true
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
		changed = true
	}
	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
		changed = true
	}

	if !changed {
		return models.User{}, fmt.Errorf("%w: no profile fields to update", ErrBuildingSQLQuery)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		if conflictErr := mapUserConflict(err); conflictErr != err {
			log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("uniqueness conflict")
			return models.User{}, conflictErr
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// UpdatePassword replaces the stored password hash and bumps updated_at.
func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, ErrUserNotFound)
}

// SetResetToken stores a freshly generated password-reset token and its
// expiry on the user row, replacing any previous outstanding token.
//
// Error handling:
//   - token unique violation → [ErrResetTokenCollision]
//   - no matching row → [ErrUserNotFound]
func (r *userRepository) SetResetToken(ctx context.Context, userID int64, token string, expiry time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.User{}.TableName()).
		Set("reset_token", token).
		Set("reset_token_expiry", expiry.UTC()).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetToken").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.execExpectingRow(ctx, query, args, ErrUserNotFound); err != nil {
		if conflictErr := mapUserConflict(err); conflictErr != err {
			return conflictErr
		}
		return err
	}

	return nil
}

// ConsumeResetToken performs the single-use reset exchange as one UPDATE:
// the new password hash is set and the token cleared only where the token
// still matches and has not expired. A concurrent second confirm with the
// same token matches zero rows and observes [ErrResetTokenNotFound].
func (r *userRepository) ConsumeResetToken(ctx context.Context, token string, passwordHash string, now time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Set("reset_token", nil).
		Set("reset_token_expiry", nil).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"reset_token": token}).
		Where(sq.Gt{"reset_token_expiry": now.UTC()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConsumeResetToken").Msg("error building update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execExpectingRow(ctx, query, args, ErrResetTokenNotFound)
}

// ClearExpiredResetTokens removes reset tokens whose expiry has passed and
// returns the number of rows cleaned. Run periodically by the background
// janitor; expired tokens are already rejected at consumption time, this
// only keeps the unique token column from accumulating dead values.
func (r *userRepository) ClearExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Update(models.User{}.TableName()).
		Set("reset_token", nil).
		Set("reset_token_expiry", nil).
		Where(sq.NotEq{"reset_token": nil}).
		Where(sq.LtOrEq{"reset_token_expiry": now.UTC()}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearExpiredResetTokens").Msg("error building update query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearExpiredResetTokens").Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

// execExpectingRow runs a DML statement that must affect at least one row;
// zero affected rows map to notFoundErr.
func (r *userRepository) execExpectingRow(ctx context.Context, query string, args []any, notFoundErr error) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.execExpectingRow").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return notFoundErr
	}

	return nil
}
