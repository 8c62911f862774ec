package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Field length limits for blog posts.
const (
	MaxTitleLen   = 64
	MaxContentLen = 256
)

// Common validation errors for Post
var (
	ErrEmptyPostTitle     = errors.New("post title cannot be empty")
	ErrPostTitleTooLong   = errors.New("post title exceeds maximum length")
	ErrEmptyPostContent   = errors.New("post content cannot be empty")
	ErrPostContentTooLong = errors.New("post content exceeds maximum length")
)

// Post represents a blog post. A post owns its comments: deleting a post
// removes every comment that references it, and a comment never outlives
// its post.
type Post struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	Comments  []*Comment `json:"comments"`
}

// NewPost creates a new Post with the given title and content.
// The ID is zero until the store assigns one at creation; the comments
// collection starts empty. Returns an error if validation fails.
func NewPost(title, content string) (*Post, error) {
	post := &Post{
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		Comments:  []*Comment{},
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
// Returns an error if any field fails validation.
// Length limits count characters, not bytes, and blank means empty or
// whitespace-only.
func (p *Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyPostTitle
	}

	if utf8.RuneCountInString(p.Title) > MaxTitleLen {
		return ErrPostTitleTooLong
	}

	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyPostContent
	}

	if utf8.RuneCountInString(p.Content) > MaxContentLen {
		return ErrPostContentTooLong
	}

	return nil
}

// AddComment appends a comment to the post's in-memory comment collection
// and sets the comment's back-reference to this post.
func (p *Post) AddComment(comment *Comment) {
	comment.PostID = p.ID
	p.Comments = append(p.Comments, comment)
}

// CommentCount returns the number of comments attached to the post.
func (p *Post) CommentCount() int {
	return len(p.Comments)
}
