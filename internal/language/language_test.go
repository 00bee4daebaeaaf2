package language

import "testing"

func TestLocale(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"English", "en-US"},
		{"english", "en-US"},
		{"Urdu", "ur-PK"},
		{"Spanish", "es-ES"},
		{"Tswana", "tn-ZA"},
		{"Klingon", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Locale(tt.name); got != tt.expected {
			t.Errorf("Locale(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestFallbackCode(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"English", "en"},
		{"Spanish", "es"},
		{"French", "fr"},
		{"Urdu", "ur"},
		{"Arabic", "ar"},
		{"Afrikaans", "af"},
		{"Zulu", "zu"},
		{"Xhosa", "xh"},
		{"Sotho", "st"},
		{"Tswana", "tn"},
		// unrecognized and empty names fall back to English
		{"Klingon", "en"},
		{"", "en"},
		{"X", "en"},
	}

	for _, tt := range tests {
		if got := FallbackCode(tt.name); got != tt.expected {
			t.Errorf("FallbackCode(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestEverySupportedLanguageHasFallback(t *testing.T) {
	for _, l := range Supported() {
		code := FallbackCode(l.Name)
		if len(code) != 2 {
			t.Errorf("FallbackCode(%q) = %q, want two-letter code", l.Name, code)
		}
		if code != l.Code[:2] {
			t.Errorf("FallbackCode(%q) = %q, want %q", l.Name, code, l.Code[:2])
		}
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("French") {
		t.Error("French should be supported")
	}
	if IsSupported("Klingon") {
		t.Error("Klingon should not be supported")
	}
}
