package pwhash

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces encoded argon2id hash", func(t *testing.T) {
		hash, err := HashPassword("correct horse battery staple")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(hash, "$argon2id$") {
			t.Errorf("unexpected hash format: %s", hash)
		}
		if strings.Contains(hash, "correct horse") {
			t.Error("plaintext must not appear in the hash")
		}
	})

	t.Run("different salts for same password", func(t *testing.T) {
		h1, err := HashPassword("samepassword")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		h2, err := HashPassword("samepassword")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h1 == h2 {
			t.Error("two hashes of the same password should differ")
		}
	})
}

func TestComparePasswordWithHash(t *testing.T) {
	hash, err := HashPassword("secretPW1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("with matching password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "secretPW1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !match {
			t.Error("should match")
		}
	})

	t.Run("with wrong password", func(t *testing.T) {
		match, err := ComparePasswordWithHash(hash, "secretPW2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if match {
			t.Error("should not match")
		}
	})

	t.Run("with malformed hash", func(t *testing.T) {
		if _, err := ComparePasswordWithHash("not-a-hash", "secretPW1"); err == nil {
			t.Error("should return error")
		}
	})
}
