package utils

import (
	"errors"
	"testing"
)

func TestValidateDomain(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"example.com", "example.com", false},
		{"  example.com\n", "example.com", false},
		{"https://example.com/path", "https://example.com/path", false},
		{"", "", true},
		{"   ", "", true},
		{"exa mple.com", "", true},
		{"http://[::1", "", true},
	}

	for _, tt := range tests {
		got, err := ValidateDomain(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDomain(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ValidateDomain(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ValidateDomain(""); !errors.Is(err, ErrDomainRequired) {
		t.Errorf("empty domain error = %v", err)
	}
}
