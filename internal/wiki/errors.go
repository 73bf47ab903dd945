// ABOUTME: Sentinel errors for wiki policies
// ABOUTME: Callers distinguish outcomes with errors.Is

package wiki

import "errors"

var (
	// ErrNotFound is returned when no article is stored under the requested name.
	ErrNotFound = errors.New("article not found")

	// ErrDuplicateName is returned when a new article's name matches an existing
	// one under case-insensitive comparison.
	ErrDuplicateName = errors.New("article already exists")

	// ErrEmptyStore is returned by Random when there are no articles to pick from.
	ErrEmptyStore = errors.New("wiki has no articles")

	// ErrEmptyBody is returned by Edit for an empty submission.
	ErrEmptyBody = errors.New("article body is empty")
)
