package api

import (
	"github.com/phrazzld/blog-api/internal/domain"
)

// Request payloads

// CreatePostRequest defines the payload for the create-post endpoint.
type CreatePostRequest struct {
	Title   string `json:"title"   validate:"required,notblank,min=1,max=64"`
	Content string `json:"content" validate:"required,notblank,min=1,max=256"`
}

// CreateCommentRequest defines the payload for the create-comment endpoint.
type CreateCommentRequest struct {
	Message string `json:"message" validate:"required,notblank,min=1,max=256"`
}

// Response representations

// CommentResponse is the wire representation of a comment. Only the
// message is exposed; the ID and post link stay internal.
type CommentResponse struct {
	Message string `json:"message"`
}

// PostWithCommentsResponse is the full representation of a post,
// comments included as objects in insertion order.
type PostWithCommentsResponse struct {
	ID       int64             `json:"id"`
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Comments []CommentResponse `json:"comments"`
}

// PostSummaryResponse is the list representation of a post: the comments
// collection is replaced by its count.
type PostSummaryResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Comments int    `json:"comments"`
}

// PostCreatedResponse is the representation returned after creating a
// post. It carries no comments field at all.
type PostCreatedResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Mapping functions between domain entities and wire representations.
// These are pure translations: no validation, no side effects.

// postToResponse converts a domain.Post to its full representation.
func postToResponse(post *domain.Post) PostWithCommentsResponse {
	comments := make([]CommentResponse, 0, len(post.Comments))
	for _, comment := range post.Comments {
		comments = append(comments, commentToResponse(comment))
	}

	return PostWithCommentsResponse{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		Comments: comments,
	}
}

// postToSummaryResponse converts a domain.Post to its summary
// representation, replacing the comment list with its length.
func postToSummaryResponse(post *domain.Post) PostSummaryResponse {
	return PostSummaryResponse{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		Comments: post.CommentCount(),
	}
}

// postToCreatedResponse converts a domain.Post to the create-post
// response representation.
func postToCreatedResponse(post *domain.Post) PostCreatedResponse {
	return PostCreatedResponse{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
	}
}

// commentToResponse converts a domain.Comment to its wire representation.
func commentToResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		Message: comment.Message,
	}
}
