package utils

import (
	"strings"
	"testing"
)

func TestSanitizeUsername(t *testing.T) {
	t.Run("with different formats", func(t *testing.T) {
		if u := SanitizeUsername("\nStoreAdmin"); u != "storeadmin" {
			t.Errorf("unexpected username: %s", u)
		}
		if u := SanitizeUsername("  bob_22 \n\r"); u != "bob_22" {
			t.Errorf("unexpected username: %s", u)
		}
		if u := SanitizeUsername("alice"); u != "alice" {
			t.Errorf("unexpected username: %s", u)
		}
	})
}

func TestCheckUsernameFormat(t *testing.T) {
	t.Run("with too short username", func(t *testing.T) {
		if CheckUsernameFormat("ab") {
			t.Error("should be false")
		}
	})
	t.Run("with too long username", func(t *testing.T) {
		if CheckUsernameFormat(strings.Repeat("a", 31)) {
			t.Error("should be false")
		}
	})
	t.Run("with uppercase characters", func(t *testing.T) {
		if CheckUsernameFormat("Alice") {
			t.Error("should be false")
		}
	})
	t.Run("with forbidden characters", func(t *testing.T) {
		if CheckUsernameFormat("al ice") {
			t.Error("should be false")
		}
		if CheckUsernameFormat("alice!") {
			t.Error("should be false")
		}
		if CheckUsernameFormat("al-ice") {
			t.Error("should be false")
		}
	})
	t.Run("with good usernames", func(t *testing.T) {
		if !CheckUsernameFormat("alice") {
			t.Error("should be true")
		}
		if !CheckUsernameFormat("bob_22") {
			t.Error("should be true")
		}
		if !CheckUsernameFormat("x0_") {
			t.Error("should be true")
		}
	})
}

func TestCheckEmailFormat(t *testing.T) {
	t.Run("with missing @", func(t *testing.T) {
		if CheckEmailFormat("t.t.com") {
			t.Error("should be false")
		}
	})
	t.Run("with wrong domain format", func(t *testing.T) {
		if CheckEmailFormat("t@t.") {
			t.Error("should be false")
		}
	})
	t.Run("with missing top level domain", func(t *testing.T) {
		if CheckEmailFormat("t@com") {
			t.Error("should be false")
		}
	})
	t.Run("with correct format", func(t *testing.T) {
		if !CheckEmailFormat("t@t.com") {
			t.Error("should be true")
		}
		if !CheckEmailFormat("t+1@t.com") {
			t.Error("should be true")
		}
	})
}

func TestCheckPasswordFormat(t *testing.T) {
	t.Run("with too short password", func(t *testing.T) {
		if CheckPasswordFormat("12345") {
			t.Error("should be false")
		}
	})
	t.Run("with too long password", func(t *testing.T) {
		if CheckPasswordFormat(strings.Repeat("a", 513)) {
			t.Error("should be false")
		}
	})
	t.Run("with good passwords", func(t *testing.T) {
		if !CheckPasswordFormat("123456") {
			t.Error("should be true")
		}
		if !CheckPasswordFormat("a longer passphrase") {
			t.Error("should be true")
		}
	})
}
