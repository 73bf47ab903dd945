// ABOUTME: Wiki service composing article policies over the entry store
// ABOUTME: Handles index, lookup, new-article duplicate checks, and blind edits

package wiki

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/2389/coven-wiki/internal/store"
)

// Article is a stored article as returned to callers.
type Article struct {
	Name string
	Body string
}

// Service implements the wiki's policies on top of a store.Store.
type Service struct {
	store  store.Store
	picker Picker
	logger *slog.Logger
}

// New creates a Service. A nil picker falls back to NewPicker(); a nil logger to slog.Default().
func New(s store.Store, picker Picker, logger *slog.Logger) *Service {
	if picker == nil {
		picker = NewPicker()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  s,
		picker: picker,
		logger: logger.With("component", "wiki"),
	}
}

// Store returns the underlying entry store.
func (s *Service) Store() store.Store {
	return s.store
}

// Index returns every article name.
func (s *Service) Index(ctx context.Context) ([]string, error) {
	names, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return names, nil
}

// Article returns the article stored under exactly name.
// Lookup is case-sensitive; a case variant of a stored name is ErrNotFound.
func (s *Service) Article(ctx context.Context, name string) (Article, error) {
	body, found, err := s.store.GetEntry(ctx, name)
	if err != nil {
		return Article{}, fmt.Errorf("getting entry: %w", err)
	}
	if !found {
		return Article{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return Article{Name: name, Body: body}, nil
}

// Create saves a new article unless a name equal under case-insensitive
// comparison already exists, in which case the store is left unchanged and
// ErrDuplicateName is returned.
func (s *Service) Create(ctx context.Context, name, body string) error {
	if err := store.ValidateName(name); err != nil {
		return err
	}

	existing, err := s.Exists(ctx, name)
	if err != nil {
		return err
	}
	if existing != "" {
		s.logger.Info("rejected duplicate article", "name", name, "existing", existing)
		return fmt.Errorf("%w: %q matches %q", ErrDuplicateName, name, existing)
	}

	if err := s.store.SaveEntry(ctx, name, body); err != nil {
		return fmt.Errorf("saving entry: %w", err)
	}
	s.logger.Info("article created", "name", name)
	return nil
}

// Edit replaces the body stored under exactly name. No existence or duplicate
// check is made, so editing a case variant of an existing title creates a
// second article under that exact name. Only an empty body is refused;
// whitespace is saved as submitted.
func (s *Service) Edit(ctx context.Context, name, body string) error {
	if body == "" {
		return ErrEmptyBody
	}
	if err := s.store.SaveEntry(ctx, name, body); err != nil {
		return fmt.Errorf("saving entry: %w", err)
	}
	s.logger.Info("article edited", "name", name)
	return nil
}

// Exists returns the stored name equal to name under case-insensitive
// comparison, or "" if there is none.
func (s *Service) Exists(ctx context.Context, name string) (string, error) {
	names, err := s.Index(ctx)
	if err != nil {
		return "", err
	}
	candidate := store.Name(name)
	for _, n := range names {
		if candidate.EqualFold(store.Name(n)) {
			return n, nil
		}
	}
	return "", nil
}
