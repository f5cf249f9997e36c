package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ADMIN_USER_ROLE_ADMIN   = "admin"
	ADMIN_USER_ROLE_MANAGER = "manager"
	ADMIN_USER_ROLE_EDITOR  = "editor"
)

func IsValidRole(role string) bool {
	switch role {
	case ADMIN_USER_ROLE_ADMIN, ADMIN_USER_ROLE_MANAGER, ADMIN_USER_ROLE_EDITOR:
		return true
	}
	return false
}

type AdminUser struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	Password string             `bson:"password" json:"-"`
	Email    string             `bson:"email,omitempty" json:"email,omitempty"`

	Role        string   `bson:"role" json:"role"`
	Permissions []string `bson:"permissions" json:"permissions"`
	IsActive    bool     `bson:"isActive" json:"isActive"`

	FailedLoginAttempts int       `bson:"failedLoginAttempts" json:"-"`
	LockedUntil         time.Time `bson:"lockedUntil,omitempty" json:"lockedUntil,omitempty"`

	LastLoginAt time.Time `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsLocked reports whether the account is currently locked out. Lock expiry
// is lazy: there is no background job, the lock is simply ignored once
// lockedUntil has passed.
func (u AdminUser) IsLocked(now time.Time) bool {
	return !u.LockedUntil.IsZero() && u.LockedUntil.After(now)
}

// RegisterFailedLogin increments the failed attempt counter and locks the
// account when the threshold is reached.
func (u *AdminUser) RegisterFailedLogin(now time.Time, maxAttempts int, lockFor time.Duration) {
	u.FailedLoginAttempts += 1
	if u.FailedLoginAttempts >= maxAttempts {
		u.LockedUntil = now.Add(lockFor)
	}
	u.UpdatedAt = now
}

// RegisterSuccessfulLogin resets the lockout bookkeeping and updates the
// login timestamp.
func (u *AdminUser) RegisterSuccessfulLogin(now time.Time) {
	u.FailedLoginAttempts = 0
	u.LockedUntil = time.Time{}
	u.LastLoginAt = now
	u.UpdatedAt = now
}

// Sanitized returns a copy of the account without the password hash, for use
// as the request principal or in API responses.
func (u AdminUser) Sanitized() AdminUser {
	u.Password = ""
	return u
}
