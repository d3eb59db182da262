// Package storage provides the concrete palette.Store backends: JSON files
// under the user config dir, and a sqlite key-value table sharing the ticket
// database. It also owns database open and migration plumbing.
package storage
