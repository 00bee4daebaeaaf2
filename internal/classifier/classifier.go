// Package classifier maps explanation text to error categories and severity
// levels using keyword heuristics.
package classifier

import "strings"

// Category is the topical class of a network error.
type Category string

const (
	CategoryDNS        Category = "DNS"
	CategorySSL        Category = "SSL"
	CategoryConnection Category = "Connection"
	CategoryNetwork    Category = "Network"
)

// Severity describes the urgency of an error.
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityWarning  Severity = "Warning"
	SeverityInfo     Severity = "Info"
)

// keywordGroup pairs a category with its trigger keywords. Order matters:
// groups are checked top to bottom and the first match wins, so overlapping
// text (e.g. "ssl connection refused") classifies by the earlier group.
type keywordGroup struct {
	category Category
	keywords []string
}

var keywordGroups = []keywordGroup{
	{CategoryDNS, []string{"dns", "domain", "server"}},
	{CategorySSL, []string{"ssl", "certificate", "handshake"}},
	{CategoryConnection, []string{"connection", "timeout", "refused", "route"}},
}

// Classify returns the category for the given error text. Matching is
// case-insensitive substring search; CategoryNetwork is the fallback when no
// keyword group matches.
func Classify(text string) Category {
	lower := strings.ToLower(text)
	for _, group := range keywordGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.category
			}
		}
	}
	return CategoryNetwork
}

// DetectSeverity derives a severity from surface keyword presence. Critical
// markers are checked before warning markers, so text containing both is
// Critical.
func DetectSeverity(text string) Severity {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "critical") || strings.Contains(lower, "severe") {
		return SeverityCritical
	}
	if strings.Contains(lower, "warning") {
		return SeverityWarning
	}
	return SeverityInfo
}

// quickFixes maps each category to a canned shell command.
var quickFixes = map[Category]string{
	CategoryDNS:        "ipconfig /flushdns",
	CategorySSL:        "sudo update-ca-certificates",
	CategoryConnection: "ping 8.8.8.8",
	CategoryNetwork:    "netsh winsock reset",
}

// QuickFixFor returns the suggested shell command for a category.
func QuickFixFor(cat Category) string {
	return quickFixes[cat]
}

// CommonError is a predefined network error shown to users as a starting point.
type CommonError struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var commonErrors = []CommonError{
	{"DNS_PROBE_FINISHED_NO_INTERNET", "DNS resolution failed. Unable to connect to internet."},
	{"Connection Timed Out", "Network connection could not be established within expected timeframe."},
	{"No Route to Host", "Network path to destination is unavailable."},
	{"Connection Refused", "Remote server rejected connection attempt."},
	{"SSL Handshake Failed", "Secure connection could not be established."},
}

// CommonErrors returns the predefined error list in display order.
func CommonErrors() []CommonError {
	out := make([]CommonError, len(commonErrors))
	copy(out, commonErrors)
	return out
}
