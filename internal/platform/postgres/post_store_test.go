package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

func newPostStore(t *testing.T) (*PostgresPostStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresPostStore(db, nil), mock
}

func TestPostStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns_id_from_database", func(t *testing.T) {
		s, mock := newPostStore(t)

		mock.ExpectQuery(`INSERT INTO posts`).
			WithArgs("Title", "Content", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

		post, err := domain.NewPost("Title", "Content")
		require.NoError(t, err)

		require.NoError(t, s.Create(ctx, post))
		assert.Equal(t, int64(5), post.ID)
		assert.False(t, post.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects_invalid_post_before_query", func(t *testing.T) {
		s, mock := newPostStore(t)

		err := s.Create(ctx, &domain.Post{Title: "", Content: "Content"})
		assert.ErrorIs(t, err, domain.ErrEmptyPostTitle)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates_query_error", func(t *testing.T) {
		s, mock := newPostStore(t)

		queryErr := errors.New("connection reset")
		mock.ExpectQuery(`INSERT INTO posts`).
			WillReturnError(queryErr)

		post, err := domain.NewPost("Title", "Content")
		require.NoError(t, err)

		assert.ErrorIs(t, s.Create(ctx, post), queryErr)
	})
}

func TestPostStoreGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		s, mock := newPostStore(t)

		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT id, title, content, created_at\s+FROM posts\s+WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at"}).
				AddRow(int64(42), "Title", "Content", createdAt))

		post, err := s.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), post.ID)
		assert.Equal(t, "Title", post.Title)
		assert.Equal(t, "Content", post.Content)
		assert.Equal(t, createdAt, post.CreatedAt)
	})

	t.Run("not_found", func(t *testing.T) {
		s, mock := newPostStore(t)

		mock.ExpectQuery(`SELECT id, title, content, created_at\s+FROM posts`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		post, err := s.GetByID(ctx, 99)
		assert.Nil(t, post)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostStoreList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_posts_in_id_order", func(t *testing.T) {
		s, mock := newPostStore(t)

		now := time.Now().UTC()
		mock.ExpectQuery(`SELECT id, title, content, created_at\s+FROM posts\s+ORDER BY id`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at"}).
				AddRow(int64(1), "First", "A", now).
				AddRow(int64(2), "Second", "B", now))

		posts, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, int64(1), posts[0].ID)
		assert.Equal(t, int64(2), posts[1].ID)
	})

	t.Run("empty_table_yields_empty_slice", func(t *testing.T) {
		s, mock := newPostStore(t)

		mock.ExpectQuery(`SELECT id, title, content, created_at\s+FROM posts`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "created_at"}))

		posts, err := s.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})
}

func TestPostStoreDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_comments_then_post", func(t *testing.T) {
		s, mock := newPostStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM comments WHERE post_id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(`DELETE FROM posts WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.Delete(ctx, 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing_post_rolls_back", func(t *testing.T) {
		s, mock := newPostStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM comments WHERE post_id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM posts WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, s.Delete(ctx, 99), store.ErrPostNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("comment_delete_failure_rolls_back", func(t *testing.T) {
		s, mock := newPostStore(t)

		execErr := errors.New("deadlock detected")
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM comments WHERE post_id = \$1`).
			WithArgs(int64(42)).
			WillReturnError(execErr)
		mock.ExpectRollback()

		assert.ErrorIs(t, s.Delete(ctx, 42), execErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostStoreWithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	s := NewPostgresPostStore(db, nil)
	txStore := s.WithTx(tx)

	// The transactional store still exposes the original connection.
	assert.Same(t, db, txStore.DB())
}
