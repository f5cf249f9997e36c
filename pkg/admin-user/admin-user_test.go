package adminuser

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	jwthandling "github.com/storelane/store-backend/pkg/jwt-handling"

	"github.com/storelane/store-backend/pkg/admin-user/types"
)

type memStore struct {
	users   map[string]*types.AdminUser
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*types.AdminUser{}}
}

func (s *memStore) add(user *types.AdminUser) *types.AdminUser {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	copied := *user
	s.users[user.ID.Hex()] = &copied
	return user
}

func (s *memStore) GetAdminUserByUsername(username string) (*types.AdminUser, error) {
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, errors.New("no document found")
}

func (s *memStore) GetAdminUserByID(id string) (*types.AdminUser, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errors.New("no document found")
	}
	copied := *u
	return &copied, nil
}

func (s *memStore) SaveAdminUser(user *types.AdminUser) (*types.AdminUser, error) {
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	copied := *user
	s.users[user.ID.Hex()] = &copied
	return user, nil
}

func newTestGuard(store *memStore) *Guard {
	return NewGuard(store, &jwthandling.AdminSessionCodec{SignKey: "testSignKey"}, time.Hour)
}

func mustNewAccount(t *testing.T, username string, password string, role string, permissions []string) *types.AdminUser {
	t.Helper()
	user, err := NewAccount(username, password, "", role, permissions)
	if err != nil {
		t.Fatalf("failed to prepare account: %v", err)
	}
	return user
}

func TestAuthenticate(t *testing.T) {
	t.Run("with unknown username", func(t *testing.T) {
		store := newMemStore()
		store.add(mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil))
		guard := newTestGuard(store)

		_, _, err := guard.Authenticate("nobody", "correctPW")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with wrong password below threshold", func(t *testing.T) {
		store := newMemStore()
		acc := store.add(mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil))
		guard := newTestGuard(store)

		for i := 1; i <= 3; i++ {
			_, _, err := guard.Authenticate("alice", "wrongPW")
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("attempt %d: unexpected error: %v", i, err)
			}
			saved, _ := store.GetAdminUserByID(acc.ID.Hex())
			if saved.FailedLoginAttempts != i {
				t.Fatalf("attempt %d: unexpected counter: %d", i, saved.FailedLoginAttempts)
			}
			if !saved.LockedUntil.IsZero() {
				t.Fatalf("attempt %d: account should not be locked yet", i)
			}
		}
	})

	t.Run("fifth failure locks the account", func(t *testing.T) {
		store := newMemStore()
		acc := mustNewAccount(t, "bob", "correctPW", types.ADMIN_USER_ROLE_EDITOR, []string{PERMISSION_PRODUCTS_READ})
		acc.FailedLoginAttempts = 4
		store.add(acc)
		guard := newTestGuard(store)

		_, _, err := guard.Authenticate("bob", "wrongPW")
		if !errors.Is(err, ErrAccountLocked) {
			t.Fatalf("unexpected error: %v", err)
		}

		saved, _ := store.GetAdminUserByID(acc.ID.Hex())
		if saved.FailedLoginAttempts != 5 {
			t.Errorf("unexpected counter: %d", saved.FailedLoginAttempts)
		}
		lockedFor := time.Until(saved.LockedUntil)
		if lockedFor < 29*time.Minute || lockedFor > 31*time.Minute {
			t.Errorf("unexpected lockout window: %v", lockedFor)
		}
	})

	t.Run("correct password while locked", func(t *testing.T) {
		store := newMemStore()
		acc := mustNewAccount(t, "bob", "correctPW", types.ADMIN_USER_ROLE_EDITOR, nil)
		acc.FailedLoginAttempts = 5
		acc.LockedUntil = time.Now().Add(10 * time.Minute)
		store.add(acc)
		guard := newTestGuard(store)

		_, _, err := guard.Authenticate("bob", "correctPW")
		if !errors.Is(err, ErrAccountLocked) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("expired lock allows authentication again", func(t *testing.T) {
		store := newMemStore()
		acc := mustNewAccount(t, "bob", "correctPW", types.ADMIN_USER_ROLE_EDITOR, nil)
		acc.FailedLoginAttempts = 5
		acc.LockedUntil = time.Now().Add(-time.Minute)
		store.add(acc)
		guard := newTestGuard(store)

		user, token, err := guard.Authenticate("bob", "correctPW")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Error("expected a session token")
		}
		if user.FailedLoginAttempts != 0 {
			t.Errorf("counter should be reset, got %d", user.FailedLoginAttempts)
		}
	})

	t.Run("success resets counters and lock", func(t *testing.T) {
		store := newMemStore()
		acc := mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil)
		acc.FailedLoginAttempts = 3
		store.add(acc)
		guard := newTestGuard(store)

		user, _, err := guard.Authenticate("alice", "correctPW")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		saved, _ := store.GetAdminUserByID(acc.ID.Hex())
		if saved.FailedLoginAttempts != 0 {
			t.Errorf("unexpected counter: %d", saved.FailedLoginAttempts)
		}
		if !saved.LockedUntil.IsZero() {
			t.Error("lock should be cleared")
		}
		if saved.LastLoginAt.IsZero() {
			t.Error("lastLoginAt should be set")
		}
		if user.Password != "" {
			t.Error("principal must not carry the password hash")
		}
	})

	t.Run("with mixed case username", func(t *testing.T) {
		store := newMemStore()
		store.add(mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil))
		guard := newTestGuard(store)

		if _, _, err := guard.Authenticate("   Alice\n", "correctPW"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with disabled account", func(t *testing.T) {
		store := newMemStore()
		acc := mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil)
		acc.IsActive = false
		store.add(acc)
		guard := newTestGuard(store)

		_, _, err := guard.Authenticate("alice", "correctPW")
		if !errors.Is(err, ErrAccountDisabled) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("storage error during bookkeeping fails closed", func(t *testing.T) {
		store := newMemStore()
		store.add(mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil))
		store.saveErr = errors.New("connection reset")
		guard := newTestGuard(store)

		_, _, err := guard.Authenticate("alice", "wrongPW")
		if errors.Is(err, ErrInvalidCredentials) || err == nil {
			t.Errorf("storage error should be propagated, got: %v", err)
		}
	})
}

func TestVerifySession(t *testing.T) {
	store := newMemStore()
	acc := store.add(mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil))
	guard := newTestGuard(store)

	t.Run("round trip after authentication", func(t *testing.T) {
		_, token, err := guard.Authenticate("alice", "correctPW")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		principal, err := guard.VerifySession(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if principal.ID.Hex() != acc.ID.Hex() {
			t.Errorf("unexpected principal id: %s", principal.ID.Hex())
		}
		if principal.Password != "" {
			t.Error("principal must not carry the password hash")
		}
	})

	t.Run("with empty token", func(t *testing.T) {
		if _, err := guard.VerifySession(""); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with tampered token", func(t *testing.T) {
		_, token, err := guard.Authenticate("alice", "correctPW")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := guard.VerifySession(token + "x"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with expired token", func(t *testing.T) {
		codec := &jwthandling.AdminSessionCodec{SignKey: "testSignKey"}
		expired, err := codec.IssueAdminUserToken(acc.ID.Hex(), acc.Role, -time.Minute)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := guard.VerifySession(expired); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with deleted account", func(t *testing.T) {
		other := newMemStore()
		ghost := other.add(mustNewAccount(t, "ghost", "correctPW", types.ADMIN_USER_ROLE_EDITOR, nil))
		ghostGuard := newTestGuard(other)
		_, token, err := ghostGuard.Authenticate("ghost", "correctPW")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		delete(other.users, ghost.ID.Hex())

		if _, err := ghostGuard.VerifySession(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with account disabled after login", func(t *testing.T) {
		other := newMemStore()
		u := other.add(mustNewAccount(t, "carol", "correctPW", types.ADMIN_USER_ROLE_MANAGER, nil))
		g := newTestGuard(other)
		_, token, err := g.Authenticate("carol", "correctPW")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		other.users[u.ID.Hex()].IsActive = false

		if _, err := g.VerifySession(token); !errors.Is(err, ErrAccountDisabled) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("with account locked after login", func(t *testing.T) {
		other := newMemStore()
		u := other.add(mustNewAccount(t, "dave", "correctPW", types.ADMIN_USER_ROLE_MANAGER, nil))
		g := newTestGuard(other)
		_, token, err := g.Authenticate("dave", "correctPW")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		other.users[u.ID.Hex()].LockedUntil = time.Now().Add(10 * time.Minute)

		if _, err := g.VerifySession(token); !errors.Is(err, ErrAccountLocked) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("with wrong current password", func(t *testing.T) {
		store := newMemStore()
		acc := store.add(mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil))
		before, _ := store.GetAdminUserByID(acc.ID.Hex())
		guard := newTestGuard(store)

		err := guard.ChangePassword(acc.ID.Hex(), "wrongPW", "newSecretPW")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("unexpected error: %v", err)
		}
		after, _ := store.GetAdminUserByID(acc.ID.Hex())
		if before.Password != after.Password {
			t.Error("password hash should be unchanged")
		}
	})

	t.Run("with too short new password", func(t *testing.T) {
		store := newMemStore()
		acc := store.add(mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil))
		before, _ := store.GetAdminUserByID(acc.ID.Hex())
		guard := newTestGuard(store)

		err := guard.ChangePassword(acc.ID.Hex(), "correctPW", "12345")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("unexpected error: %v", err)
		}
		after, _ := store.GetAdminUserByID(acc.ID.Hex())
		if before.Password != after.Password {
			t.Error("password hash should be unchanged")
		}
	})

	t.Run("with valid new password", func(t *testing.T) {
		store := newMemStore()
		acc := store.add(mustNewAccount(t, "alice", "correctPW", types.ADMIN_USER_ROLE_ADMIN, nil))
		guard := newTestGuard(store)

		if err := guard.ChangePassword(acc.ID.Hex(), "correctPW", "newSecretPW"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, _, err := guard.Authenticate("alice", "newSecretPW"); err != nil {
			t.Errorf("authentication with new password failed: %v", err)
		}
		if _, _, err := guard.Authenticate("alice", "correctPW"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("old password should be rejected, got: %v", err)
		}
	})
}

func TestLockoutScenario(t *testing.T) {
	// account bob (editor, products.read): five wrong passwords lock the
	// account, the correct password is then rejected until the lock expires
	store := newMemStore()
	acc := store.add(mustNewAccount(t, "bob", "correctPW", types.ADMIN_USER_ROLE_EDITOR, []string{PERMISSION_PRODUCTS_READ}))
	guard := newTestGuard(store)

	for i := 1; i <= 4; i++ {
		_, _, err := guard.Authenticate("bob", "wrongPW")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: unexpected error: %v", i, err)
		}
	}

	_, _, err := guard.Authenticate("bob", "wrongPW")
	if !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("fifth attempt: unexpected error: %v", err)
	}

	_, _, err = guard.Authenticate("bob", "correctPW")
	if !errors.Is(err, ErrAccountLocked) {
		t.Fatalf("locked account accepted the correct password: %v", err)
	}

	saved, _ := store.GetAdminUserByID(acc.ID.Hex())
	if !saved.IsLocked(time.Now()) {
		t.Error("account should report locked state")
	}
}

func TestNewAccount(t *testing.T) {
	t.Run("with invalid username", func(t *testing.T) {
		if _, err := NewAccount("A!", "validPW", "", types.ADMIN_USER_ROLE_EDITOR, nil); err == nil {
			t.Error("should return error")
		}
	})
	t.Run("with weak password", func(t *testing.T) {
		if _, err := NewAccount("alice", "12345", "", types.ADMIN_USER_ROLE_EDITOR, nil); !errors.Is(err, ErrWeakPassword) {
			t.Error("should return ErrWeakPassword")
		}
	})
	t.Run("with invalid email", func(t *testing.T) {
		if _, err := NewAccount("alice", "validPW", "not-an-email", types.ADMIN_USER_ROLE_EDITOR, nil); err == nil {
			t.Error("should return error")
		}
	})
	t.Run("with invalid role", func(t *testing.T) {
		if _, err := NewAccount("alice", "validPW", "", "superuser", nil); err == nil {
			t.Error("should return error")
		}
	})
	t.Run("with valid inputs", func(t *testing.T) {
		user, err := NewAccount("Alice", "validPW", "alice@example.com", types.ADMIN_USER_ROLE_MANAGER, []string{PERMISSION_ORDERS_READ})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "alice" {
			t.Errorf("username should be normalized, got %s", user.Username)
		}
		if user.Password == "validPW" || user.Password == "" {
			t.Error("password must be stored hashed")
		}
		if !user.IsActive {
			t.Error("new accounts should be active")
		}
	})
}
