package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// pgForeignKeyViolationCode is the PostgreSQL error code for a
// foreign key constraint violation.
const pgForeignKeyViolationCode = "23503"

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// the default logger is used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// WithTx implements store.CommentStore.WithTx
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CommentStore.Create
// It saves a new comment, letting the database assign the ID, and writes
// the assigned ID back to the entity. Returns store.ErrPostNotFound if the
// referenced post does not exist (foreign key violation), or
// store.ErrInvalidEntity wrapping the domain validation error if the
// comment data is invalid.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()),
			slog.Int64("post_id", comment.PostID))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO comments (post_id, message, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, comment.PostID, comment.Message, comment.CreatedAt).
		Scan(&comment.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode {
			log.Warn("foreign key violation during comment creation",
				slog.String("error", err.Error()),
				slog.Int64("post_id", comment.PostID))
			return fmt.Errorf("%w: post with ID %d does not exist",
				store.ErrPostNotFound, comment.PostID)
		}

		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int64("post_id", comment.PostID))
		return err
	}

	log.Debug("comment created successfully",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", comment.PostID))
	return nil
}

// ListByPost implements store.CommentStore.ListByPost
// It retrieves all comments for the given post in insertion order.
func (s *PostgresCommentStore) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, post_id, message, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, postID)
	if err != nil {
		log.Error("failed to list comments for post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows",
				slog.String("error", closeErr.Error()))
		}
	}()

	comments := []*domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.Message,
			&comment.CreatedAt,
		); err != nil {
			log.Error("failed to scan comment row",
				slog.String("error", err.Error()),
				slog.Int64("post_id", postID))
			return nil, err
		}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating comment rows",
			slog.String("error", err.Error()),
			slog.Int64("post_id", postID))
		return nil, err
	}

	return comments, nil
}
