package app

import "testing"

func TestAllowOrigins(t *testing.T) {
	allow := allowOrigins([]string{
		"sevenxleaks.com",
		"*.sevenxleaks.com",
		"localhost:*",
	})

	tests := []struct {
		origin string
		want   bool
	}{
		{"https://sevenxleaks.com", true},
		{"https://SEVENXLEAKS.com", true},
		{"https://www.sevenxleaks.com", true},
		{"https://cdn.assets.sevenxleaks.com", true},
		{"http://localhost:5173", true},
		{"http://localhost:3000", true},
		{"https://sevenxleaks.com.evil.com", false},
		{"https://evilsevenxleaks.com", false},
		{"https://example.org", false},
	}
	for _, tt := range tests {
		if got := allow(tt.origin); got != tt.want {
			t.Errorf("allow(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}

func TestAllowOriginsEmptyPatternList(t *testing.T) {
	allow := allowOrigins(nil)
	if allow("https://sevenxleaks.com") {
		t.Error("empty pattern list should deny every origin")
	}
}
