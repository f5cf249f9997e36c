package utils

import (
	"testing"
	"time"
)

func TestParseDurationString(t *testing.T) {
	t.Run("with valid durations", func(t *testing.T) {
		d, err := ParseDurationString("30m")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if d != 30*time.Minute {
			t.Errorf("unexpected duration: %v", d)
		}

		d, err = ParseDurationString("168h")
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if d != 7*24*time.Hour {
			t.Errorf("unexpected duration: %v", d)
		}
	})

	t.Run("with invalid duration", func(t *testing.T) {
		if _, err := ParseDurationString("7 days"); err == nil {
			t.Error("should return error")
		}
	})

	t.Run("with empty string", func(t *testing.T) {
		if _, err := ParseDurationString(""); err == nil {
			t.Error("should return error")
		}
	})
}

func TestContainsString(t *testing.T) {
	t.Run("with value in slice", func(t *testing.T) {
		if !ContainsString([]string{"a", "b", "c"}, "b") {
			t.Error("should be true")
		}
	})

	t.Run("with value not in slice", func(t *testing.T) {
		if ContainsString([]string{"a", "b", "c"}, "d") {
			t.Error("should be false")
		}
	})

	t.Run("with empty slice", func(t *testing.T) {
		if ContainsString([]string{}, "a") {
			t.Error("should be false")
		}
	})
}

func TestGetFileExtensionFromContentType(t *testing.T) {
	cases := []struct {
		contentType string
		expected    string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/gif", ".gif"},
		{"image/webp", ".webp"},
		{"application/pdf", ""},
	}

	for _, c := range cases {
		t.Run(c.contentType, func(t *testing.T) {
			if ext := GetFileExtensionFromContentType(c.contentType); ext != c.expected {
				t.Errorf("GetFileExtensionFromContentType(%q) = %q, want %q", c.contentType, ext, c.expected)
			}
		})
	}
}
