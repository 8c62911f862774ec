// Package service implements the blog's use cases: fetching a post with
// its comments, listing all posts, creating posts, and attaching comments.
// It orchestrates the store layer, enforces existence checks, and scopes
// multi-step writes in transactions. It knows nothing about HTTP.
package service
