package slug

import "testing"

func TestFrom(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Blue Mug", "blue-mug"},
		{"accents removed", "Café Crème", "cafe-creme"},
		{"special characters", "50% off! (today)", "50-off-today"},
		{"consecutive separators", "a  --  b", "a-b"},
		{"leading and trailing junk", "  ---hello--- ", "hello"},
		{"already a slug", "running-shoes-42", "running-shoes-42"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := From(c.input)
			if got != c.expected {
				t.Errorf("unexpected slug: %s", got)
			}
		})
	}
}
