package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/utils"
	"github.com/taskdeck/taskdeck/internal/validators"
	"github.com/taskdeck/taskdeck/models"
)

// resetTokenBytes is the entropy of a password-reset token before URL-safe
// encoding.
const resetTokenBytes = 32

// resetTokenAttempts bounds the retry loop on the (practically impossible)
// event of a reset token colliding with another outstanding one.
const resetTokenAttempts = 3

// authService is the concrete implementation of [AuthService].
// It owns user persistence access, bcrypt password hashing/verification,
// and the password-reset token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up
	// users. Uniqueness of email, username, and reset token is enforced
	// there by database constraints.
	userRepository store.UserRepository

	// resetMailer delivers reset tokens out of band. Never nil; the default
	// implementation logs the reset URL for development.
	resetMailer ResetMailer

	// bcryptCost is the cost factor for password hashing. Zero selects
	// bcrypt's default cost.
	bcryptCost int

	// resetTokenDuration is how long a password-reset token stays valid.
	resetTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and reset mailer, with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, resetMailer ResetMailer, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &authService{
		userRepository:     userRepository,
		resetMailer:        resetMailer,
		bcryptCost:         cost,
		resetTokenDuration: cfg.ResetTokenDuration,
		logger:             logger,
	}
}

// RegisterUser creates a new user account.
//
// Email, username shape, and password strength are validated before any
// write. The password is bcrypt-hashed with the configured cost; the email
// is stored lower-cased so uniqueness is case-insensitive.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - a validation sentinel if any field fails its rule
//   - [store.ErrEmailAlreadyExists] / [store.ErrUsernameAlreadyExists] on
//     a uniqueness conflict
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if email == "" || username == "" || req.Password == "" {
		return models.User{}, ErrMissingRegisterFields
	}
	if err := validators.ValidateEmail(email); err != nil {
		return models.User{}, err
	}
	if err := validators.ValidateUsername(username); err != nil {
		return models.User{}, err
	}
	if err := validators.ValidatePassword(req.Password); err != nil {
		return models.User{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		IsActive:     true,
		IsVerified:   false,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user by email or username.
//
// The lookup is an explicit two-branch search: the identifier is tried as a
// lower-cased email first and as a username second, each against its own
// unique column. "No such user" and "wrong password" both surface as
// [ErrInvalidCredentials]; a deactivated account surfaces as
// [ErrAccountDisabled] only after the identifier matched.
func (a *authService) Login(ctx context.Context, identifier, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return models.User{}, ErrMissingLoginFields
	}

	user, err := a.findByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn comparable time so a missing account is not
			// distinguishable from a wrong password by latency.
			a.checkPassword(dummyBcryptHash, password)
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.IsActive {
		log.Warn().Int64("id", user.ID).Msg("login attempt on deactivated account")
		return models.User{}, ErrAccountDisabled
	}

	if !a.checkPassword(user.PasswordHash, password) {
		log.Warn().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// findByIdentifier tries the unique email column first, then the unique
// username column, so the lookup stays auditable against both constraints.
func (a *authService) findByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, strings.ToLower(identifier))
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, err
	}

	return a.userRepository.FindUserByUsername(ctx, identifier)
}

// GetUser resolves a user id to its account record.
func (a *authService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return a.userRepository.FindUserByID(ctx, userID)
}

// UpdateProfile applies a partial update of first name, last name, and
// username. A username change is re-validated for shape; uniqueness against
// other accounts is enforced by the store.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.FirstName == nil && update.LastName == nil && update.Username == nil {
		return models.User{}, ErrNoFieldsToUpdate
	}

	if update.Username != nil {
		trimmed := strings.TrimSpace(*update.Username)
		if err := validators.ValidateUsername(trimmed); err != nil {
			return models.User{}, err
		}
		update.Username = &trimmed
	}

	updatedUser, err := a.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updatedUser, nil
}

// ChangePassword verifies the current password and replaces it with the new
// one. The new password passes the same strength rules as at registration.
func (a *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return ErrMissingPasswordFields
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if !a.checkPassword(user.PasswordHash, currentPassword) {
		log.Warn().Int64("id", userID).Msg("password change with wrong current password")
		return ErrWrongPassword
	}

	if err := validators.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := a.hashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("id", userID).Msg("password changed")
	return nil
}

// RequestPasswordReset issues a single-use reset token for the account
// registered under email and hands it to the reset mailer.
//
// The method reports success whether or not the email exists; the only
// errors it returns are internal storage failures. This is the documented
// anti-enumeration policy: response shape and timing must not reveal
// account existence.
func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrEmailRequired
	}
	if err := validators.ValidateEmail(email); err != nil {
		return err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("user lookup failed: %w", err)
	}

	expiry := time.Now().Add(a.resetTokenDuration)

	var token string
	for attempt := 0; attempt < resetTokenAttempts; attempt++ {
		token, err = utils.GenerateURLSafeToken(resetTokenBytes)
		if err != nil {
			return fmt.Errorf("reset token generation failed: %w", err)
		}

		err = a.userRepository.SetResetToken(ctx, user.ID, token, expiry)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrResetTokenCollision) {
			return fmt.Errorf("reset token storage failed: %w", err)
		}
	}
	if err != nil {
		return fmt.Errorf("reset token storage failed: %w", err)
	}

	if err := a.resetMailer.SendResetToken(ctx, user, token); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("reset token delivery failed")
		return fmt.Errorf("reset token delivery failed: %w", err)
	}

	return nil
}

// ConfirmPasswordReset exchanges a live reset token for a new password.
//
// Setting the new hash and clearing the token happen as one conditional
// UPDATE in the store, so a concurrent second confirm with the same token
// observes [ErrResetTokenInvalid] rather than a partial success.
func (a *authService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if token == "" || newPassword == "" {
		return ErrMissingResetFields
	}
	if err := validators.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := a.hashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := a.userRepository.ConsumeResetToken(ctx, token, hash, time.Now()); err != nil {
		if errors.Is(err, store.ErrResetTokenNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("reset confirmation failed: %w", err)
	}

	log.Info().Msg("password reset confirmed")
	return nil
}

// hashPassword derives the stored bcrypt hash for a raw password. bcrypt
// embeds a random salt, so equal passwords produce distinct hashes.
func (a *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword reports whether password verifies against the stored hash.
func (a *authService) checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// dummyBcryptHash is compared against when the login identifier matches no
// account, equalising the response time of the two failure paths.
// bcrypt hash of an unguessable throwaway string.
const dummyBcryptHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
