// Package store provides persistent storage for wiki articles.
//
// # Architecture
//
// Store is the single interface the rest of the wiki depends on:
//
//   - ListEntries: every article name, read fresh on each call
//   - GetEntry: body by exact name, with an explicit found flag
//   - SaveEntry: unconditional create-or-replace
//
// Three implementations exist:
//
//   - FileStore: one <name>.md file per article in a directory
//   - SQLiteStore: one row per article in an "entries" table
//   - MockStore: in-memory map for tests
//
// Open selects between the first two from configuration:
//
//	s, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
//
// # Names
//
// Lookups are case-sensitive. Uniqueness across case variants is a policy of the
// wiki package, which compares names through Name.Key. ValidateName rejects
// names that could escape the entries directory.
//
// # Line Endings
//
// Every backend passes bodies through NormalizeNewlines before writing, so a body
// submitted with CRLF line endings reads back with LF.
//
// # Concurrency
//
// There is no locking across saves. Two concurrent saves to the same name race and
// the last writer wins.
package store
