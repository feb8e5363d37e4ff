package favscan_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/favscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := favscan.Errorf(favscan.EINVALID, "domain %q is not valid", "not a domain")

	assert.Equal(t, favscan.EINVALID, favscan.ErrorCode(err))
	assert.Equal(t, "domain \"not a domain\" is not valid", favscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, favscan.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, favscan.EINTERNAL, favscan.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, favscan.ErrorMessage(nil))
}
