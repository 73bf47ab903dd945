// Package wiki implements the wiki's article policies on top of the entry store.
//
// # Operations
//
//   - Index: all article names
//   - Article: body by exact name, ErrNotFound when absent
//   - Search: case-insensitive substring match over names, classified as
//     NoMatch, DirectHit, or Ambiguous
//   - Random: uniform pick through an injected Picker, ErrEmptyStore when empty
//   - Create: rejects names equal to an existing one ignoring case (ErrDuplicateName)
//   - Edit: overwrites the exact name with no duplicate check
//
// # Name Handling
//
// Uniqueness is case-insensitive but lookups are exact. Create("python") fails
// when "Python" exists, while Edit("python", ...) silently creates a second
// article under that exact name.
package wiki
