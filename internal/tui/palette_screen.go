package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/haldane/opsdeck/palette"
)

// PaletteScreen is the overlay wrapping the palette controller: a search
// input above the grouped, keyboard-navigable result list.
type PaletteScreen struct {
	controller *palette.Controller
	history    *palette.History
	keys       *KeyRegistry
	input      textinput.Model
}

func NewPaletteScreen(c *palette.Controller, h *palette.History, keys *KeyRegistry) *PaletteScreen {
	inp := textinput.New()
	inp.Placeholder = "Type a command"
	inp.Prompt = "> "
	inp.Focus()
	c.Open()
	return &PaletteScreen{controller: c, history: h, keys: keys, input: inp}
}

func (s *PaletteScreen) Scope() string { return "screen:palette" }

// Update handles one message. The bool reports whether the palette closed;
// the caller discards the screen and refreshes its own state when it did.
func (s *PaletteScreen) Update(msg tea.Msg) (tea.Cmd, bool) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd, false
	}

	action, _ := s.keys.Lookup(key, s.Scope())
	switch action {
	case "close", "open-palette":
		// ctrl+k toggles: pressing it again dismisses the palette
		s.controller.Cancel()
		return nil, true
	case "select":
		err := s.controller.Confirm()
		if err != nil {
			return ErrorCmd(err), !s.controller.IsOpen()
		}
		return nil, !s.controller.IsOpen()
	case "palette-down":
		s.controller.Next()
		return nil, false
	case "palette-up":
		s.controller.Prev()
		return nil, false
	case "favorite":
		sel, ok := s.controller.Selected()
		if !ok {
			return nil, false
		}
		fav, err := s.controller.ToggleFavorite()
		if err != nil {
			return ErrorCmd(err), false
		}
		if fav {
			return StatusCmd("Pinned " + sel.Command.Title), false
		}
		return StatusCmd("Unpinned " + sel.Command.Title), false
	}

	// unbound keys feed the search input
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	s.controller.SetQuery(strings.TrimSpace(s.input.Value()))
	return cmd, false
}

func groupLabel(c palette.Category) string {
	switch c {
	case palette.CategoryRecent:
		return "Recent"
	case palette.CategoryFavorites:
		return "Favorites"
	}
	if len(c) == 0 {
		return "Other"
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (s *PaletteScreen) View(st Styles, width, height int) string {
	inner := max(20, width-4)
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("\n")

	groups := s.controller.Groups()
	if len(groups) == 0 {
		b.WriteString(st.ResultDesc.Render("No matching commands"))
	}

	idx := 0
	lines := 0
	maxLines := max(4, height-6)
	for _, g := range groups {
		if lines >= maxLines {
			break
		}
		b.WriteString(st.GroupHeading.Render(groupLabel(g.Category)))
		b.WriteString("\n")
		lines++
		for _, r := range g.Results {
			if lines >= maxLines {
				break
			}
			line := "  " + r.Command.Title
			if r.Command.Subtitle != "" {
				line += "  " + st.ResultDesc.Render(r.Command.Subtitle)
			}
			if r.Favorite || s.history.IsFavorite(r.Command.ID) {
				line += " " + st.Favorite.Render("*")
			}
			line = ansi.Truncate(line, inner, "…")
			if idx == s.controller.Cursor() {
				line = st.ResultSel.Render(ansi.Strip(line))
			} else {
				line = st.Result.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
			idx++
			lines++
		}
	}

	return st.Panel.Width(inner).Render(strings.TrimRight(b.String(), "\n"))
}
