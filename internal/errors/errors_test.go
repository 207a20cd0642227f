package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorImplementsError(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "INVALID_REQUEST", err.ErrorCode)
}

func TestAPIErrorRenderSetsStatus(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	apiErr := FormatUndetectedError("statement.csv")
	require.NoError(t, render.Render(w, r, NewErrorResponse(apiErr)))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "FORMAT_UNDETECTED")
	assert.Contains(t, w.Body.String(), "statement.csv")
}

func TestPredefinedErrorCodes(t *testing.T) {
	tests := []struct {
		err    *APIError
		status int
		code   string
	}{
		{ErrFileUnreadable, http.StatusBadRequest, "FILE_UNREADABLE"},
		{ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{ErrFormatUndetected, http.StatusUnprocessableEntity, "FORMAT_UNDETECTED"},
		{ErrUnsupportedFormat, http.StatusUnprocessableEntity, "UNSUPPORTED_FORMAT"},
		{ErrRateLimitExceeded, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.Equal(t, tt.code, tt.err.ErrorCode)
		})
	}
}

func TestAppErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("disk gone")
	err := NewParsingError("reading upload", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "PARSING")
	assert.Contains(t, err.Error(), "disk gone")
}

func TestAppErrorContext(t *testing.T) {
	err := NewDetectionError("mystery.csv")
	assert.Equal(t, "mystery.csv", err.Context["filename"])
	assert.Equal(t, ErrTypeDetection, err.Type)
}
