package jwthandling

import (
	"testing"
	"time"
)

func TestAdminUserTokenRoundTrip(t *testing.T) {
	token, err := GenerateNewAdminUserToken(time.Hour, "account-1", "editor", "testSignKey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("with valid token", func(t *testing.T) {
		claims, valid, err := ValidateAdminUserToken(token, "testSignKey")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !valid {
			t.Fatal("token should be valid")
		}
		if claims.Subject != "account-1" {
			t.Errorf("unexpected subject: %s", claims.Subject)
		}
		if claims.Role != "editor" {
			t.Errorf("unexpected role: %s", claims.Role)
		}
	})

	t.Run("with wrong sign key", func(t *testing.T) {
		_, valid, err := ValidateAdminUserToken(token, "otherSignKey")
		if err == nil && valid {
			t.Error("token should not validate with a different key")
		}
	})

	t.Run("with tampered token", func(t *testing.T) {
		_, valid, err := ValidateAdminUserToken(token+"x", "testSignKey")
		if err == nil && valid {
			t.Error("tampered token should not validate")
		}
	})

	t.Run("with empty token", func(t *testing.T) {
		_, valid, err := ValidateAdminUserToken("", "testSignKey")
		if err == nil && valid {
			t.Error("empty token should not validate")
		}
	})
}

func TestAdminUserTokenExpiry(t *testing.T) {
	token, err := GenerateNewAdminUserToken(-time.Minute, "account-1", "admin", "testSignKey")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, valid, err := ValidateAdminUserToken(token, "testSignKey")
	if err == nil && valid {
		t.Error("expired token should not validate")
	}
}

func TestAdminSessionCodec(t *testing.T) {
	codec := &AdminSessionCodec{SignKey: "testSignKey"}

	token, err := codec.IssueAdminUserToken("account-9", "manager", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accountID, err := codec.VerifyAdminUserToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if accountID != "account-9" {
		t.Errorf("unexpected account id: %s", accountID)
	}

	if _, err := codec.VerifyAdminUserToken("not.a.token"); err == nil {
		t.Error("should return error")
	}
}
