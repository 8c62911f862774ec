// Package domain contains the core business entities of the blog:
// posts and their comments, together with the validation rules that
// must hold before an entity is accepted for persistence. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
