package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestDefaultBindingsOpenPaletteEverywhere(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	if !r.IsAction(keyMsg("ctrl+k"), "open-palette", "app") {
		t.Fatalf("ctrl+k should open the palette at app scope")
	}
	if !r.IsAction(keyMsg("ctrl+k"), "open-palette", "screen:palette") {
		t.Fatalf("ctrl+k binding should be global")
	}
}

func TestScopedBindingDoesNotLeak(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	if r.IsAction(keyMsg("enter"), "select", "app") {
		t.Fatalf("palette select must not fire at app scope")
	}
	if !r.IsAction(keyMsg("enter"), "select", "screen:palette") {
		t.Fatalf("enter should select inside the palette")
	}
}

func TestLookupResolvesSharedChordByScope(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	down := tea.KeyMsg{Type: tea.KeyDown}
	if action, ok := r.Lookup(down, "app"); !ok || action != "row-down" {
		t.Fatalf("down at app scope = %q, want row-down", action)
	}
	if action, ok := r.Lookup(down, "screen:palette"); !ok || action != "palette-down" {
		t.Fatalf("down at palette scope = %q, want palette-down", action)
	}
	if _, ok := r.Lookup(keyMsg("x"), "app"); ok {
		t.Fatalf("unbound key should not resolve")
	}
}

func TestApplyActionKeybindingsOverrides(t *testing.T) {
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		"open-palette": {"ctrl+p"},
	})
	r := NewKeyRegistry(bindings)
	if r.IsAction(keyMsg("ctrl+k"), "open-palette", "app") {
		t.Fatalf("default key should be replaced by the override")
	}
	if !r.IsAction(tea.KeyMsg{Type: tea.KeyCtrlP}, "open-palette", "app") {
		t.Fatalf("override key not honored")
	}
}

func TestBindingsForScopeFiltersFooterHelp(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	for _, b := range r.BindingsForScope("app") {
		for _, s := range b.Scopes {
			if s == "screen:palette" {
				t.Fatalf("palette-only binding leaked into app scope: %+v", b)
			}
		}
	}
}
