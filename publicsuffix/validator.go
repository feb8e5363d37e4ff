// Package publicsuffix validates domain syntax against the public suffix
// list, implementing favscan.DomainValidator.
package publicsuffix

import (
	"strings"

	"github.com/fwojciec/favscan"
	"golang.org/x/net/publicsuffix"
)

// Ensure Validator implements favscan.DomainValidator at compile time.
var _ favscan.DomainValidator = (*Validator)(nil)

// Validator accepts hostnames whose effective TLD appears in the ICANN
// section of the public suffix list. Private-section suffixes and bare
// suffixes ("com") are rejected, as is anything that is not a plain host
// (schemes, paths, ports, whitespace).
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// IsValid reports whether domain is a syntactically plausible registrable
// domain.
func (v *Validator) IsValid(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" || len(domain) > 253 {
		return false
	}
	if strings.ContainsAny(domain, "/:@?#& \t") {
		return false
	}
	domain = strings.TrimSuffix(domain, ".")

	suffix, icann := publicsuffix.PublicSuffix(domain)
	if !icann {
		return false
	}
	// At least one label must precede the suffix.
	if len(domain) <= len(suffix) {
		return false
	}
	rest := strings.TrimSuffix(domain, "."+suffix)
	if len(rest) == len(domain) || rest == "" {
		return false
	}

	for _, label := range strings.Split(domain, ".") {
		if !validLabel(label) {
			return false
		}
	}
	return true
}

// validLabel checks a single DNS label: 1-63 characters, letters, digits
// and hyphens, no leading or trailing hyphen.
func validLabel(label string) bool {
	if len(label) == 0 || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
