// Package palette contains the command palette engine.
//
// Allowed here:
// - command records, registry, and category policy
// - query filtering, fuzzy ranking, and result grouping
// - the navigation controller state machine (cursor, confirm/cancel)
// - recent/favorite history over the Store port
//
// Not allowed here:
// - terminal rendering, key decoding, or bubbletea plumbing
// - concrete storage backends (those live in internal/storage)
package palette
