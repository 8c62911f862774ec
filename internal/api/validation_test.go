package api

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/domain"
)

// hasViolation reports whether any violation targets the given field with
// the given message. Empty values can legitimately trip more than one
// constraint, so tests assert membership rather than exact counts.
func hasViolation(violations []ErrorDetails, field, message string) bool {
	for _, v := range violations {
		if v.Field == field && v.Message == message {
			return true
		}
	}
	return false
}

func TestValidateRequest_CreatePost(t *testing.T) {
	tests := []struct {
		name        string
		req         CreatePostRequest
		wantValid   bool
		wantField   string
		wantMessage string
	}{
		{
			name:      "valid_request",
			req:       CreatePostRequest{Title: "Title", Content: "Content"},
			wantValid: true,
		},
		{
			name:      "title_at_max",
			req:       CreatePostRequest{Title: strings.Repeat("a", 64), Content: "Content"},
			wantValid: true,
		},
		{
			name:      "content_at_max",
			req:       CreatePostRequest{Title: "Title", Content: strings.Repeat("a", 256)},
			wantValid: true,
		},
		{
			name:      "multibyte_title_at_max",
			req:       CreatePostRequest{Title: strings.Repeat("é", 64), Content: "Content"},
			wantValid: true,
		},
		{
			name:        "empty_title",
			req:         CreatePostRequest{Title: "", Content: "Content"},
			wantField:   "title",
			wantMessage: "Title cannot be empty",
		},
		{
			name:        "whitespace_only_title",
			req:         CreatePostRequest{Title: "   ", Content: "Content"},
			wantField:   "title",
			wantMessage: "Title cannot be empty",
		},
		{
			name:        "title_too_long",
			req:         CreatePostRequest{Title: strings.Repeat("a", 65), Content: "Content"},
			wantField:   "title",
			wantMessage: "Title must be between 1 and 64 characters",
		},
		{
			name:        "multibyte_title_over_max",
			req:         CreatePostRequest{Title: strings.Repeat("é", 65), Content: "Content"},
			wantField:   "title",
			wantMessage: "Title must be between 1 and 64 characters",
		},
		{
			name:        "empty_content",
			req:         CreatePostRequest{Title: "Title", Content: ""},
			wantField:   "content",
			wantMessage: "Content cannot be empty",
		},
		{
			name:        "whitespace_only_content",
			req:         CreatePostRequest{Title: "Title", Content: " \t\n"},
			wantField:   "content",
			wantMessage: "Content cannot be empty",
		},
		{
			name:        "content_too_long",
			req:         CreatePostRequest{Title: "Title", Content: strings.Repeat("a", 257)},
			wantField:   "content",
			wantMessage: "Content must be between 1 and 256 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateRequest(tt.req)

			if tt.wantValid {
				assert.Nil(t, violations)
				return
			}

			require.NotEmpty(t, violations)
			assert.True(t, hasViolation(violations, tt.wantField, tt.wantMessage),
				"expected violation for field %q with message %q, got %+v",
				tt.wantField, tt.wantMessage, violations)
		})
	}
}

func TestValidateRequest_CreateComment(t *testing.T) {
	tests := []struct {
		name        string
		req         CreateCommentRequest
		wantValid   bool
		wantMessage string
	}{
		{
			name:      "valid_request",
			req:       CreateCommentRequest{Message: "hi"},
			wantValid: true,
		},
		{
			name:      "multibyte_message_at_max",
			req:       CreateCommentRequest{Message: strings.Repeat("é", 256)},
			wantValid: true,
		},
		{
			name:        "empty_message",
			req:         CreateCommentRequest{Message: ""},
			wantMessage: "Message cannot be empty",
		},
		{
			name:        "whitespace_only_message",
			req:         CreateCommentRequest{Message: "   "},
			wantMessage: "Message cannot be empty",
		},
		{
			name:        "message_too_long",
			req:         CreateCommentRequest{Message: strings.Repeat("a", 257)},
			wantMessage: "Message must be between 1 and 256 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateRequest(tt.req)

			if tt.wantValid {
				assert.Nil(t, violations)
				return
			}

			require.NotEmpty(t, violations)
			assert.True(t, hasViolation(violations, "message", tt.wantMessage),
				"expected violation with message %q, got %+v", tt.wantMessage, violations)
		})
	}
}

// Payloads that pass request validation must also be accepted by the
// domain constructors, so boundary-length input never surfaces as an
// unexpected server error.
func TestValidateRequest_AgreesWithDomain(t *testing.T) {
	t.Run("multibyte_post_at_limits", func(t *testing.T) {
		title := strings.Repeat("é", 64)
		content := strings.Repeat("日", 256)

		require.Nil(t, ValidateRequest(CreatePostRequest{Title: title, Content: content}))

		post, err := domain.NewPost(title, content)
		require.NoError(t, err)
		assert.Equal(t, title, post.Title)
	})

	t.Run("multibyte_comment_at_limit", func(t *testing.T) {
		message := strings.Repeat("é", 256)

		require.Nil(t, ValidateRequest(CreateCommentRequest{Message: message}))

		comment, err := domain.NewComment(1, message)
		require.NoError(t, err)
		assert.Equal(t, message, comment.Message)
	})
}

func TestValidateRequest_RejectedValue(t *testing.T) {
	longTitle := strings.Repeat("a", 65)
	violations := ValidateRequest(CreatePostRequest{Title: longTitle, Content: "Content"})

	require.Len(t, violations, 1)
	assert.Equal(t, longTitle, violations[0].RejectedValue)
}

func TestValidatePathID(t *testing.T) {
	tests := []struct {
		name              string
		raw               string
		wantID            int64
		wantValid         bool
		wantRejectedValue interface{}
	}{
		{
			name:      "positive_id",
			raw:       "5",
			wantID:    5,
			wantValid: true,
		},
		{
			name:      "large_id",
			raw:       "999999",
			wantID:    999999,
			wantValid: true,
		},
		{
			name:              "zero",
			raw:               "0",
			wantRejectedValue: int64(0),
		},
		{
			name:              "negative",
			raw:               "-3",
			wantRejectedValue: int64(-3),
		},
		{
			name:              "not_a_number",
			raw:               "abc",
			wantRejectedValue: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, violations := ValidatePathID("id", tt.raw)

			if tt.wantValid {
				assert.Nil(t, violations)
				assert.Equal(t, tt.wantID, id)
				return
			}

			require.Len(t, violations, 1)
			assert.Equal(t, "id", violations[0].Field)
			assert.Equal(t, "must be greater than 0", violations[0].Message)
			assert.Equal(t, tt.wantRejectedValue, violations[0].RejectedValue)
		})
	}
}
