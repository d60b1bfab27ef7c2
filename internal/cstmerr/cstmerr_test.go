package cstmerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := NewTokenStoreError("write slot", cause)

	assert.Equal(t, "Token store error: write slot: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestRequestPreparationErrorAs(t *testing.T) {
	cause := NewTokenStoreError("read slot", errors.New("boom"))
	wrapped := fmt.Errorf("login: %w", NewRequestPreparationError(cause))

	var prepErr *RequestPreparationError
	require.ErrorAs(t, wrapped, &prepErr)

	var storeErr *TokenStoreError
	assert.ErrorAs(t, wrapped, &storeErr)
}

func TestAPILogicalFailureMessage(t *testing.T) {
	err := NewAPILogicalFailure(200, 40101, "bad credentials", []byte(`{"ok":false}`), nil)

	assert.Equal(t, "API request failed with status 200 (code 40101) - bad credentials", err.Error())
	assert.Equal(t, 40101, err.Code)
}

func TestServerInternalErrorKeepsDiagnostic(t *testing.T) {
	err := NewServerInternalError("http://example/api/apps", []byte("stack trace"))

	assert.Equal(t, "server internal error", err.Error())
	assert.Equal(t, []byte("stack trace"), err.Diagnostic)
}

func TestTransportErrorNilResponse(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewTransportError(nil, cause)

	assert.Nil(t, err.Response)
	assert.ErrorIs(t, err, cause)
}

func TestVersionParseError(t *testing.T) {
	err := NewVersionParseError("one.two", errors.New("bad"))

	assert.Equal(t, "one.two", err.Version)
	assert.Contains(t, err.Error(), `"one.two"`)
}
