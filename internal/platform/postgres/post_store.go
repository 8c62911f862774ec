package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	sqlDB  *sql.DB
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, the default
// logger is used.
func NewPostgresPostStore(db *sql.DB, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		sqlDB:  db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// WithTx implements store.PostStore.WithTx
// It returns a store bound to the given transaction, keeping the original
// connection for DB().
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		sqlDB:  s.sqlDB,
		logger: s.logger,
	}
}

// DB implements store.PostStore.DB
func (s *PostgresPostStore) DB() *sql.DB {
	return s.sqlDB
}

// Create implements store.PostStore.Create
// It saves a new post, letting the database assign the ID, and writes the
// assigned ID back to the entity. Returns store.ErrInvalidEntity wrapping
// the domain validation error if the post data is invalid.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO posts (title, content, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, post.Title, post.Content, post.CreatedAt).
		Scan(&post.ID)
	if err != nil {
		log.Error("failed to create post",
			slog.String("error", err.Error()))
		return err
	}

	log.Debug("post created successfully",
		slog.Int64("post_id", post.ID))
	return nil
}

// GetByID implements store.PostStore.GetByID
// It retrieves a post by its ID, without comments.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, created_at
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, err
	}

	return &post, nil
}

// List implements store.PostStore.List
// It retrieves all posts ordered by ID, without comments.
func (s *PostgresPostStore) List(ctx context.Context) ([]*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, created_at
		FROM posts
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list posts",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows",
				slog.String("error", closeErr.Error()))
		}
	}()

	posts := []*domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
		); err != nil {
			log.Error("failed to scan post row",
				slog.String("error", err.Error()))
			return nil, err
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating post rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return posts, nil
}

// Delete implements store.PostStore.Delete
// It removes the post and all comments that belong to it in a single
// transaction, comments first so no orphaned comment is ever observable.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	return store.RunInTransaction(ctx, s.sqlDB, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM comments WHERE post_id = $1`, id); err != nil {
			log.Error("failed to delete comments for post",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
			return err
		}

		result, err := tx.ExecContext(ctx,
			`DELETE FROM posts WHERE id = $1`, id)
		if err != nil {
			log.Error("failed to delete post",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
			return err
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return store.ErrPostNotFound
		}

		log.Debug("post deleted with its comments",
			slog.Int64("post_id", id))
		return nil
	})
}
