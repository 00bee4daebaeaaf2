package classifier

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
	}{
		{
			name:     "dns keyword",
			input:    "The DNS lookup failed for this host",
			expected: CategoryDNS,
		},
		{
			name:     "domain keyword",
			input:    "The domain could not be resolved",
			expected: CategoryDNS,
		},
		{
			name:     "server keyword",
			input:    "The server did not respond",
			expected: CategoryDNS,
		},
		{
			name:     "ssl keyword",
			input:    "An SSL error occurred",
			expected: CategorySSL,
		},
		{
			name:     "certificate keyword",
			input:    "The certificate has expired",
			expected: CategorySSL,
		},
		{
			name:     "connection refused",
			input:    "Connection Refused",
			expected: CategoryConnection,
		},
		{
			name:     "timeout keyword",
			input:    "the request hit a timeout",
			expected: CategoryConnection,
		},
		{
			name:     "no route",
			input:    "no route to host",
			expected: CategoryConnection,
		},
		{
			name:     "no keywords falls back to network",
			input:    "something unusual happened",
			expected: CategoryNetwork,
		},
		{
			name:     "empty text",
			input:    "",
			expected: CategoryNetwork,
		},
		{
			name:     "dns wins over ssl",
			input:    "dns failure during ssl handshake",
			expected: CategoryDNS,
		},
		{
			name:     "ssl wins over connection",
			input:    "This is a critical SSL certificate warning about the connection",
			expected: CategorySSL,
		},
		{
			name:     "case insensitive",
			input:    "DNS_PROBE_FINISHED_NO_INTERNET",
			expected: CategoryDNS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDetectSeverity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Severity
	}{
		{"critical keyword", "a critical failure", SeverityCritical},
		{"severe keyword", "a severe outage", SeverityCritical},
		{"warning keyword", "just a warning", SeverityWarning},
		{"no keywords", "all fine here", SeverityInfo},
		{"empty text", "", SeverityInfo},
		{
			// critical/severe are checked before warning
			name:     "critical beats warning",
			input:    "This is a critical SSL certificate warning",
			expected: SeverityCritical,
		},
		{"severe beats warning", "severe warning issued", SeverityCritical},
		{"uppercase", "CRITICAL ERROR", SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectSeverity(tt.input); got != tt.expected {
				t.Errorf("DetectSeverity(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestQuickFixFor(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{CategoryDNS, "ipconfig /flushdns"},
		{CategorySSL, "sudo update-ca-certificates"},
		{CategoryConnection, "ping 8.8.8.8"},
		{CategoryNetwork, "netsh winsock reset"},
	}

	for _, tt := range tests {
		if got := QuickFixFor(tt.category); got != tt.expected {
			t.Errorf("QuickFixFor(%v) = %q, want %q", tt.category, got, tt.expected)
		}
	}
}

func TestConnectionRefusedEndToEnd(t *testing.T) {
	cat := Classify("Connection Refused")
	if cat != CategoryConnection {
		t.Fatalf("expected Connection, got %v", cat)
	}
	if fix := QuickFixFor(cat); fix != "ping 8.8.8.8" {
		t.Errorf("expected ping 8.8.8.8, got %q", fix)
	}
}

func TestCommonErrorsReturnsCopy(t *testing.T) {
	first := CommonErrors()
	if len(first) != 5 {
		t.Fatalf("expected 5 common errors, got %d", len(first))
	}
	first[0].Name = "mutated"
	if second := CommonErrors(); second[0].Name == "mutated" {
		t.Error("CommonErrors returned shared backing array")
	}
}
