package browseruse_test

import (
	"fmt"
	"testing"

	browseruse "github.com/rknoche6/fast-browser-use"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := browseruse.Errorf(browseruse.ENOTFOUND, "capture %q not found", "test")

	assert.Equal(t, browseruse.ENOTFOUND, browseruse.ErrorCode(err))
	assert.Equal(t, "capture \"test\" not found", browseruse.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, browseruse.ErrorCode(nil))
}

func TestErrorCode_NonDomainError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, browseruse.EINTERNAL, browseruse.ErrorCode(fmt.Errorf("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, browseruse.ErrorMessage(nil))
}
