package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// Common sentinel errors for PostService
var (
	// ErrPostNotFound indicates that the referenced blog post does not exist.
	ErrPostNotFound = errors.New("blog post not found")
)

// PostService provides the blog's use-case operations.
type PostService interface {
	// GetPostByID retrieves a post together with its comments in
	// insertion order. Returns ErrPostNotFound if the post does not exist.
	GetPostByID(ctx context.Context, id int64) (*domain.Post, error)

	// GetAllPosts retrieves every post, each with its comments loaded.
	GetAllPosts(ctx context.Context) ([]*domain.Post, error)

	// CreatePost persists a new post and returns it with its assigned ID.
	CreatePost(ctx context.Context, title, content string) (*domain.Post, error)

	// CreateComment persists a new comment on the given post and returns
	// it with its assigned ID. The existence check and the insert run in
	// one transaction. Returns ErrPostNotFound if the post does not exist.
	CreateComment(ctx context.Context, postID int64, message string) (*domain.Comment, error)
}

// PostServiceError wraps errors from the post service with context.
type PostServiceError struct {
	// Operation is the operation that failed (e.g., "create_post")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PostServiceError.
func (e *PostServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("post service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("post service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PostServiceError) Unwrap() error {
	return e.Err
}

// NewPostServiceError creates a new PostServiceError.
// Known sentinel errors pass through unwrapped so callers can match
// them directly with errors.Is.
func NewPostServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrPostNotFound) {
		return ErrPostNotFound
	}

	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}

	return &PostServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	postStore    store.PostStore
	commentStore store.CommentStore
	logger       *slog.Logger
}

// NewPostService creates a new PostService.
// It returns an error if any of the required dependencies are nil.
func NewPostService(
	postStore store.PostStore,
	commentStore store.CommentStore,
	logger *slog.Logger,
) (PostService, error) {
	if postStore == nil {
		return nil, &PostServiceError{
			Operation: "create_service",
			Message:   "postStore cannot be nil",
		}
	}
	if commentStore == nil {
		return nil, &PostServiceError{
			Operation: "create_service",
			Message:   "commentStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		postStore:    postStore,
		commentStore: commentStore,
		logger:       logger.With("component", "post_service"),
	}, nil
}

// GetPostByID retrieves a post and attaches its comments.
func (s *postServiceImpl) GetPostByID(ctx context.Context, id int64) (*domain.Post, error) {
	s.logger.Debug("get post by id", "post_id", id)

	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("failed to retrieve post",
			"error", err,
			"post_id", id)
		return nil, NewPostServiceError("get_post", "failed to retrieve post", err)
	}

	comments, err := s.commentStore.ListByPost(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve comments for post",
			"error", err,
			"post_id", id)
		return nil, NewPostServiceError("get_post", "failed to retrieve comments", err)
	}
	post.Comments = comments

	return post, nil
}

// GetAllPosts retrieves every post with its comments loaded.
func (s *postServiceImpl) GetAllPosts(ctx context.Context) ([]*domain.Post, error) {
	s.logger.Debug("get all posts")

	posts, err := s.postStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list posts", "error", err)
		return nil, NewPostServiceError("list_posts", "failed to list posts", err)
	}

	for _, post := range posts {
		comments, err := s.commentStore.ListByPost(ctx, post.ID)
		if err != nil {
			s.logger.Error("failed to retrieve comments for post",
				"error", err,
				"post_id", post.ID)
			return nil, NewPostServiceError("list_posts", "failed to retrieve comments", err)
		}
		post.Comments = comments
	}

	return posts, nil
}

// CreatePost persists a new post.
func (s *postServiceImpl) CreatePost(ctx context.Context, title, content string) (*domain.Post, error) {
	s.logger.Debug("create post", "title", title)

	post, err := domain.NewPost(title, content)
	if err != nil {
		s.logger.Warn("invalid post data", "error", err)
		return nil, NewPostServiceError("create_post", "invalid post data", err)
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		s.logger.Error("failed to save post", "error", err)
		return nil, NewPostServiceError("create_post", "failed to save post", err)
	}

	s.logger.Info("post created", "post_id", post.ID)
	return post, nil
}

// CreateComment verifies the post exists and persists the comment in a
// single transaction, so a comment can never be stored without a valid
// post link.
func (s *postServiceImpl) CreateComment(ctx context.Context, postID int64, message string) (*domain.Comment, error) {
	s.logger.Debug("create comment", "post_id", postID)

	comment, err := domain.NewComment(postID, message)
	if err != nil {
		s.logger.Warn("invalid comment data",
			"error", err,
			"post_id", postID)
		return nil, NewPostServiceError("create_comment", "invalid comment data", err)
	}

	err = store.RunInTransaction(ctx, s.postStore.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txPosts := s.postStore.WithTx(tx)
		txComments := s.commentStore.WithTx(tx)

		post, err := txPosts.GetByID(ctx, postID)
		if err != nil {
			if errors.Is(err, store.ErrPostNotFound) {
				return ErrPostNotFound
			}
			return NewPostServiceError("create_comment", "failed to verify post", err)
		}

		if err := txComments.Create(ctx, comment); err != nil {
			return NewPostServiceError("create_comment", "failed to save comment", err)
		}

		post.AddComment(comment)
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPostNotFound) {
			s.logger.Error("failed to create comment",
				"error", err,
				"post_id", postID)
		}
		return nil, err
	}

	s.logger.Info("comment created",
		"comment_id", comment.ID,
		"post_id", postID)
	return comment, nil
}
