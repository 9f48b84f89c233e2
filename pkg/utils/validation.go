package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrDomainRequired is returned for an empty or blank domain.
var ErrDomainRequired = errors.New("domain is required")

// ValidateDomain trims and validates a domain string for submission,
// returning the value to send or an error if it is empty or unparsable.
// Scheme and path are left to the scanner to interpret.
func ValidateDomain(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrDomainRequired
	}
	if strings.ContainsAny(s, " \t\n") {
		return "", fmt.Errorf("invalid domain %q: contains whitespace", s)
	}
	if _, err := url.Parse(s); err != nil {
		return "", fmt.Errorf("invalid domain: %w", err)
	}
	return s, nil
}
