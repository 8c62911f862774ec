package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/service"
)

func TestErrorMessage_OmitsEmptyErrors(t *testing.T) {
	body, err := json.Marshal(ErrorMessage{Status: 404, Message: msgPostNotFound})
	require.NoError(t, err)

	assert.JSONEq(t, `{"status":404,"message":"BlogPost not found"}`, string(body))
	assert.NotContains(t, string(body), "errors")
}

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "post_not_found",
			err:         service.ErrPostNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: msgPostNotFound,
		},
		{
			name:        "wrapped_post_not_found",
			err:         service.NewPostServiceError("get post", "lookup failed", service.ErrPostNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: msgPostNotFound,
		},
		{
			name:        "unknown_error",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: msgUnexpectedError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/posts/1", nil)
			rr := httptest.NewRecorder()

			RespondWithServiceError(rr, req, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var msg ErrorMessage
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
			assert.Equal(t, tt.wantStatus, msg.Status)
			assert.Equal(t, tt.wantMessage, msg.Message)

			// The errors key must be absent, not an empty list.
			var raw map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
			assert.NotContains(t, raw, "errors")
		})
	}
}

func TestRespondWithValidationErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rr := httptest.NewRecorder()

	violations := []ErrorDetails{
		{Field: "title", RejectedValue: "", Message: "Title cannot be empty"},
	}
	RespondWithValidationErrors(rr, req, violations)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var msg ErrorMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
	assert.Equal(t, http.StatusBadRequest, msg.Status)
	assert.Equal(t, msgValidationFailed, msg.Message)
	require.Len(t, msg.Errors, 1)
	assert.Equal(t, "title", msg.Errors[0].Field)
	assert.Equal(t, "", msg.Errors[0].RejectedValue)
	assert.Equal(t, "Title cannot be empty", msg.Errors[0].Message)
}

func TestRespondWithMalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	rr := httptest.NewRecorder()

	RespondWithMalformedBody(rr, req, errors.New("unexpected EOF"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.Equal(t, float64(http.StatusBadRequest), raw["status"])
	assert.Equal(t, msgMalformedBody, raw["message"])
	assert.NotContains(t, raw, "errors")
}
