// Package language maps human-readable language names to BCP-47 locale tags
// and derives the two-letter codes used for prompts and speech synthesis.
package language

import "strings"

// Language pairs a display name with its BCP-47 locale tag.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// supported lists every language the translator handles, in display order.
// The BCP-47 tag selects the speech-recognition locale; its first two letters
// select the system prompt and synthesis voice.
var supported = []Language{
	{"English", "en-US"},
	{"Urdu", "ur-PK"},
	{"Spanish", "es-ES"},
	{"French", "fr-FR"},
	{"Arabic", "ar-SA"},
	{"Afrikaans", "af-ZA"},
	{"Zulu", "zu-ZA"},
	{"Xhosa", "xh-ZA"},
	{"Sotho", "st-ZA"},
	{"Tswana", "tn-ZA"},
}

// Supported returns the language list in display order.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}

// Locale returns the BCP-47 tag for a display name, or "" if unsupported.
// Lookup is case-insensitive.
func Locale(displayName string) string {
	for _, l := range supported {
		if strings.EqualFold(l.Name, displayName) {
			return l.Code
		}
	}
	return ""
}

// FallbackCode derives the two-letter code for a display name by matching the
// name's first two letters against each supported name, case-insensitively.
// Unrecognized or empty names fall back to "en".
func FallbackCode(displayName string) string {
	if len(displayName) >= 2 {
		prefix := strings.ToLower(displayName[:2])
		for _, l := range supported {
			if strings.HasPrefix(strings.ToLower(l.Name), prefix) {
				return l.Code[:2]
			}
		}
	}
	return "en"
}

// IsSupported reports whether the display name is in the supported set.
func IsSupported(displayName string) bool {
	return Locale(displayName) != ""
}
