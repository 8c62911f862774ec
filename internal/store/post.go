package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/blog-api/internal/domain"
)

// PostStore defines the interface for blog post data persistence.
type PostStore interface {
	// Create saves a new post to the store. The store assigns the ID and
	// writes it back to the entity. Returns ErrInvalidEntity wrapping the
	// domain validation error if the data is invalid.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its ID, without its comments.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// List retrieves all posts ordered by ID, without their comments.
	List(ctx context.Context) ([]*domain.Post, error)

	// Delete removes a post and, cascading, every comment that belongs
	// to it. Returns ErrPostNotFound if the post does not exist.
	// A reserved capability: no API endpoint exposes it yet.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a store instance bound to the given transaction.
	WithTx(tx *sql.Tx) PostStore

	// DB returns the underlying database connection.
	DB() *sql.DB
}
