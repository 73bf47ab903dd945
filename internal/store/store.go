// ABOUTME: Entry store interface and shared helpers for wiki persistence
// ABOUTME: Defines the Store contract, name validation, and newline normalization

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidName is returned when an article name cannot be used as a storage key
var ErrInvalidName = errors.New("invalid article name")

// ErrUnknownBackend is returned by Open for an unrecognized backend name
var ErrUnknownBackend = errors.New("unknown storage backend")

// MaxNameLength bounds article names so they stay valid file names on common filesystems.
const MaxNameLength = 100

// MaxNameBytes bounds the encoded size of a name so <name>.md fits the common
// 255-byte file name limit.
const MaxNameBytes = 255 - len(EntryExt)

// Backend names accepted by Open
const (
	BackendFiles  = "files"
	BackendSQLite = "sqlite"
)

// Store persists article bodies keyed by name, one unit of storage per article.
//
// Lookups are exact: GetEntry("python") does not find an article stored as "Python".
// Case-insensitive uniqueness is a policy enforced by callers, not by the store.
type Store interface {
	// ListEntries returns every stored article name as of the call.
	ListEntries(ctx context.Context) ([]string, error)

	// GetEntry returns the body stored under exactly name. found is false, with a nil
	// error, when no such article exists.
	GetEntry(ctx context.Context, name string) (body string, found bool, err error)

	// SaveEntry creates or replaces the article. Line endings are normalized first.
	SaveEntry(ctx context.Context, name, body string) error

	// Close releases any resources held by the store
	Close() error
}

// Open returns the backend selected by name, rooted at path.
// An empty backend name selects the file backend.
func Open(backend, path string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch backend {
	case "", BackendFiles:
		s, err = NewFileStore(path)
	case BackendSQLite:
		s, err = NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NormalizeNewlines converts CRLF line endings to LF so stored content does not depend
// on the client's platform.
func NormalizeNewlines(body string) string {
	return strings.ReplaceAll(body, "\r\n", "\n")
}

// ValidateName reports whether name can be used as an article name.
// Names become file names in the file backend, so path syntax is rejected.
func ValidateName(name string) error {
	err := validation.Validate(name,
		validation.Required,
		validation.RuneLength(1, MaxNameLength),
		validation.Length(1, MaxNameBytes),
		validation.By(func(value any) error {
			s, _ := value.(string)
			if strings.TrimSpace(s) == "" {
				return validation.NewError("wiki.name.blank", "must not be blank")
			}
			if strings.HasPrefix(s, ".") {
				return validation.NewError("wiki.name.dot", "must not start with a dot")
			}
			if strings.ContainsAny(s, `/\`) {
				return validation.NewError("wiki.name.separator", "must not contain path separators")
			}
			for _, r := range s {
				if unicode.IsControl(r) {
					return validation.NewError("wiki.name.control", "must not contain control characters")
				}
			}
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidName, name, err)
	}
	return nil
}
