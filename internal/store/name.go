// ABOUTME: Name value type for article titles
// ABOUTME: Preserves stored casing while exposing a case-insensitive comparison key

package store

import "strings"

// Name is an article title. The stored casing is kept for display and storage,
// Key gives the form used for uniqueness checks.
type Name string

// String returns the name with its original casing.
func (n Name) String() string {
	return string(n)
}

// Key returns the case-insensitive comparison key.
func (n Name) Key() string {
	return strings.ToLower(string(n))
}

// EqualFold reports whether n and other name the same article under
// case-insensitive comparison.
func (n Name) EqualFold(other Name) bool {
	return n.Key() == other.Key()
}

// Contains reports whether query occurs in n, ignoring case.
func (n Name) Contains(query string) bool {
	return strings.Contains(n.Key(), strings.ToLower(query))
}
