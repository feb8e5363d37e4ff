package publicsuffix_test

import (
	"testing"

	"github.com/fwojciec/favscan"
	"github.com/fwojciec/favscan/publicsuffix"
	"github.com/stretchr/testify/assert"
)

func TestValidator_IsValid(t *testing.T) {
	t.Parallel()

	v := publicsuffix.NewValidator()

	valid := []string{
		"example.com",
		"sub.example.com",
		"EXAMPLE.COM",
		"  example.org  ",
		"example.co.uk",
		"a-b.example.net",
		"example.com.",
	}
	for _, domain := range valid {
		domain := domain
		t.Run("accepts "+domain, func(t *testing.T) {
			t.Parallel()
			assert.True(t, v.IsValid(domain))
		})
	}

	invalid := []string{
		"",
		" ",
		"com",
		"co.uk",
		"localhost",
		"example",
		"http://example.com",
		"example.com/path",
		"example.com:8080",
		"user@example.com",
		"exa mple.com",
		"-example.com",
		"example-.com",
		"example..com",
		"example.nosuchtld",
	}
	for _, domain := range invalid {
		domain := domain
		name := domain
		if name == "" {
			name = "(empty)"
		} else if name == " " {
			name = "(blank)"
		}
		t.Run("rejects "+name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, v.IsValid(domain))
		})
	}
}

// Compile-time verification that Validator implements favscan.DomainValidator
var _ favscan.DomainValidator = (*publicsuffix.Validator)(nil)
