package adminuser

import (
	"errors"
	"log/slog"
	"time"

	"github.com/storelane/store-backend/pkg/admin-user/pwhash"
	"github.com/storelane/store-backend/pkg/admin-user/types"
	"github.com/storelane/store-backend/pkg/admin-user/utils"
)

const (
	MAX_FAILED_LOGIN_ATTEMPTS = 5
	LOCKOUT_DURATION          = 30 * time.Minute

	DEFAULT_SESSION_TTL = 7 * 24 * time.Hour
)

// AccountStore persists admin accounts, implemented by the admin user DB
// service.
type AccountStore interface {
	GetAdminUserByUsername(username string) (*types.AdminUser, error)
	GetAdminUserByID(id string) (*types.AdminUser, error)
	SaveAdminUser(user *types.AdminUser) (*types.AdminUser, error)
}

// TokenCodec signs and verifies bearer session tokens.
type TokenCodec interface {
	IssueAdminUserToken(accountID string, role string, expiresIn time.Duration) (string, error)
	VerifyAdminUserToken(token string) (accountID string, err error)
}

// Guard owns admin credential verification, lockout bookkeeping and session
// token handling. Route handlers consult it before executing privileged
// logic.
type Guard struct {
	store      AccountStore
	codec      TokenCodec
	sessionTTL time.Duration
}

func NewGuard(store AccountStore, codec TokenCodec, sessionTTL time.Duration) *Guard {
	if sessionTTL <= 0 {
		sessionTTL = DEFAULT_SESSION_TTL
	}
	return &Guard{
		store:      store,
		codec:      codec,
		sessionTTL: sessionTTL,
	}
}

// SessionTTL returns the lifetime used for issued session tokens.
func (g *Guard) SessionTTL() time.Duration {
	return g.sessionTTL
}

// Authenticate verifies the credentials and issues a session token. Failed
// attempts are counted on the account; the fifth consecutive failure locks
// the account for LOCKOUT_DURATION. The lockout check runs before the
// password comparison. Storage errors during bookkeeping abort the attempt.
func (g *Guard) Authenticate(username string, password string) (*types.AdminUser, string, error) {
	username = utils.SanitizeUsername(username)

	user, err := g.store.GetAdminUserByUsername(username)
	if err != nil {
		slog.Warn("login attempt with unknown username", slog.String("username", username))
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		slog.Warn("login attempt for disabled account", slog.String("username", username))
		return nil, "", ErrAccountDisabled
	}

	now := time.Now()
	if user.IsLocked(now) {
		slog.Warn("login attempt for locked account", slog.String("username", username))
		return nil, "", ErrAccountLocked
	}

	match, err := pwhash.ComparePasswordWithHash(user.Password, password)
	if err != nil || !match {
		if err == nil {
			err = errors.New("passwords do not match")
		}
		slog.Warn("login attempt with wrong password", slog.String("username", username), slog.String("error", err.Error()))

		user.RegisterFailedLogin(now, MAX_FAILED_LOGIN_ATTEMPTS, LOCKOUT_DURATION)
		if _, saveErr := g.store.SaveAdminUser(user); saveErr != nil {
			// fail closed: do not report invalid credentials if the counter
			// could not be persisted
			return nil, "", saveErr
		}
		if user.IsLocked(now) {
			return nil, "", ErrAccountLocked
		}
		return nil, "", ErrInvalidCredentials
	}

	user.RegisterSuccessfulLogin(now)
	if _, err := g.store.SaveAdminUser(user); err != nil {
		return nil, "", err
	}

	token, err := g.codec.IssueAdminUserToken(user.ID.Hex(), user.Role, g.sessionTTL)
	if err != nil {
		return nil, "", err
	}

	slog.Info("login successful", slog.String("username", username), slog.String("accountID", user.ID.Hex()))

	principal := user.Sanitized()
	return &principal, token, nil
}

// VerifySession validates the bearer token and reloads the account it refers
// to. A token that refers to a deleted account is reported as invalid, not as
// not-found.
func (g *Guard) VerifySession(token string) (*types.AdminUser, error) {
	accountID, err := g.codec.VerifyAdminUserToken(token)
	if err != nil {
		slog.Warn("session token validation failed", slog.String("error", err.Error()))
		return nil, ErrInvalidToken
	}

	user, err := g.store.GetAdminUserByID(accountID)
	if err != nil {
		slog.Warn("session token for unknown account", slog.String("accountID", accountID))
		return nil, ErrInvalidToken
	}

	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if user.IsLocked(time.Now()) {
		return nil, ErrAccountLocked
	}

	principal := user.Sanitized()
	return &principal, nil
}

// ChangePassword replaces the account's password hash after re-verifying the
// current password. Lockout bookkeeping is deliberately not applied here: the
// caller already holds a valid session.
func (g *Guard) ChangePassword(accountID string, currentPassword string, newPassword string) error {
	user, err := g.store.GetAdminUserByID(accountID)
	if err != nil {
		return err
	}

	match, err := pwhash.ComparePasswordWithHash(user.Password, currentPassword)
	if err != nil || !match {
		slog.Warn("password change with wrong current password", slog.String("accountID", accountID))
		return ErrInvalidCredentials
	}

	if !utils.CheckPasswordFormat(newPassword) {
		return ErrWeakPassword
	}

	hash, err := pwhash.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	user.UpdatedAt = time.Now()

	_, err = g.store.SaveAdminUser(user)
	return err
}

// NewAccount validates and assembles a new admin account record with a hashed
// password. Persisting it is up to the caller.
func NewAccount(username string, password string, email string, role string, permissions []string) (*types.AdminUser, error) {
	username = utils.SanitizeUsername(username)
	if !utils.CheckUsernameFormat(username) {
		return nil, errors.New("invalid username format")
	}
	if !utils.CheckPasswordFormat(password) {
		return nil, ErrWeakPassword
	}
	if email != "" {
		email = utils.SanitizeEmail(email)
		if !utils.CheckEmailFormat(email) {
			return nil, errors.New("invalid email format")
		}
	}
	if !types.IsValidRole(role) {
		return nil, errors.New("invalid role")
	}

	hash, err := pwhash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &types.AdminUser{
		Username:    username,
		Password:    hash,
		Email:       email,
		Role:        role,
		Permissions: permissions,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
