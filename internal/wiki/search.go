// ABOUTME: Title search over the entry store
// ABOUTME: Case-insensitive substring match classified as no match, direct hit, or ambiguous

package wiki

import (
	"context"

	"github.com/2389/coven-wiki/internal/store"
)

// Outcome classifies a search by how many titles matched.
type Outcome int

const (
	// NoMatch means no title contains the query.
	NoMatch Outcome = iota
	// DirectHit means exactly one title matched; callers navigate straight to it.
	DirectHit
	// Ambiguous means two or more titles matched and need disambiguation.
	Ambiguous
)

// String returns the outcome's wire name.
func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no_match"
	case DirectHit:
		return "direct_hit"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

// SearchResult is the classified result of a title search.
type SearchResult struct {
	Query   string
	Outcome Outcome
	Names   []string // every matching title, in store order
}

// Name returns the single matching title of a DirectHit, or "".
func (r SearchResult) Name() string {
	if r.Outcome != DirectHit {
		return ""
	}
	return r.Names[0]
}

// Search returns all titles containing query, ignoring case.
func (s *Service) Search(ctx context.Context, query string) (SearchResult, error) {
	names, err := s.Index(ctx)
	if err != nil {
		return SearchResult{}, err
	}

	matches := Filter(names, query)
	result := SearchResult{Query: query, Names: matches}
	switch len(matches) {
	case 0:
		result.Outcome = NoMatch
	case 1:
		result.Outcome = DirectHit
	default:
		result.Outcome = Ambiguous
	}

	s.logger.Debug("search", "query", query, "matches", len(matches))
	return result, nil
}

// Filter returns the names whose lowercase form contains the lowercase query,
// preserving input order. An empty query matches every name.
func Filter(names []string, query string) []string {
	matches := []string{}
	for _, n := range names {
		if store.Name(n).Contains(query) {
			matches = append(matches, n)
		}
	}
	return matches
}
