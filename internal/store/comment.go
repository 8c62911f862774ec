package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/blog-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment to the store. The store assigns the ID
	// and writes it back to the entity. Returns ErrPostNotFound if the
	// referenced post does not exist, or ErrInvalidEntity wrapping the
	// domain validation error if the data is invalid.
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByPost retrieves all comments for the given post in insertion
	// order. A post with no comments yields an empty slice, not an error.
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)

	// WithTx returns a store instance bound to the given transaction.
	WithTx(tx *sql.Tx) CommentStore
}
