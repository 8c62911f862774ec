// Package store defines the persistence interfaces for posts and
// comments, the sentinel errors they return, and the transaction
// helper that scopes multi-step writes. Implementations live in
// internal/platform/postgres; business logic depends only on the
// interfaces here.
package store
