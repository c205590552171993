package docsite_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docsite.Errorf(docsite.ENOTFOUND, "document %q not found", "guides/setup")

	assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
	assert.Equal(t, "document \"guides/setup\" not found", docsite.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docsite.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, docsite.EINTERNAL, docsite.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docsite.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", docsite.ErrorMessage(errors.New("boom")))
}
