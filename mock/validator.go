package mock

import "github.com/fwojciec/favscan"

var _ favscan.DomainValidator = (*DomainValidator)(nil)

// DomainValidator is a mock implementation of favscan.DomainValidator.
type DomainValidator struct {
	IsValidFn func(domain string) bool
}

func (v *DomainValidator) IsValid(domain string) bool {
	return v.IsValidFn(domain)
}
