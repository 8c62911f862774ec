package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxMessageLen is the maximum length of a comment message.
const MaxMessageLen = 256

// Common validation errors for Comment
var (
	ErrEmptyCommentMessage   = errors.New("comment message cannot be empty")
	ErrCommentMessageTooLong = errors.New("comment message exceeds maximum length")
	ErrInvalidCommentPostID  = errors.New("comment post ID must be positive")
)

// Comment represents a single comment on a blog post. PostID is a
// back-reference to the owning post, kept only for lookups; the post
// owns the comment, never the other way around.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment creates a new Comment for the given post.
// The ID is zero until the store assigns one at creation.
// Returns an error if validation fails.
func NewComment(postID int64, message string) (*Comment, error) {
	comment := &Comment{
		PostID:    postID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
// Returns an error if any field fails validation.
// The message length counts characters, not bytes, and blank means
// empty or whitespace-only.
func (c *Comment) Validate() error {
	if c.PostID <= 0 {
		return ErrInvalidCommentPostID
	}

	if strings.TrimSpace(c.Message) == "" {
		return ErrEmptyCommentMessage
	}

	if utf8.RuneCountInString(c.Message) > MaxMessageLen {
		return ErrCommentMessageTooLong
	}

	return nil
}
