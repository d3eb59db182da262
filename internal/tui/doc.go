// Package tui renders the service-desk console: the ticket queue, status and
// help bars, and the command palette overlay driven by the palette package.
//
// Allowed here:
// - the bubbletea model, key registry, and screen wiring
// - lipgloss styling and bar/panel rendering
//
// Not allowed here:
// - filtering, ranking, or history policy (palette package)
// - storage or ticket persistence details
package tui
