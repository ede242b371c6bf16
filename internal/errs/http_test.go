package errs

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Country with code ZZ not found")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, 404, err.Status)
	assert.Equal(t, "Country with code ZZ not found", err.Error())
}

func TestHTTPErrorSerializesMessageUnderErrorKey(t *testing.T) {
	raw, marshalErr := json.Marshal(NewNotFoundError("gone"))
	require.NoError(t, marshalErr)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "gone", body["error"])
	assert.Equal(t, "NOT_FOUND", body["code"])
	// Empty field errors are omitted from the payload.
	assert.NotContains(t, body, "errors")
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := errors.Wrap(NewNotFoundError("missing"), "handler failed")

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, 404, httpErr.Status)
}
