package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewAppError("STORE_WRITE", "saving result", cause)

	assert.Equal(t, "STORE_WRITE: saving result: disk full", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := NewAppError("PDF_PARSE", "malformed document", nil)
	assert.Equal(t, "PDF_PARSE: malformed document", bare.Error())
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))

	wrapped := WrapError(ErrNoText, "reading page")
	assert.ErrorIs(t, wrapped, ErrNoText)
	assert.Equal(t, "reading page: no text extracted", wrapped.Error())
}
