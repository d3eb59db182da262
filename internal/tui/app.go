package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/haldane/opsdeck/internal/config"
	"github.com/haldane/opsdeck/internal/ticket"
	"github.com/haldane/opsdeck/palette"
)

// filter cycle order for the queue view; "" means all.
var filterCycle = []ticket.Status{"", ticket.StatusOpen, ticket.StatusInProgress, ticket.StatusClosed}

// App is the top-level bubbletea model.
type App struct {
	ctx  context.Context
	cfg  config.Config
	repo *ticket.Repo

	keys       *KeyRegistry
	registry   *palette.Registry
	controller *palette.Controller
	history    *palette.History
	pal        *PaletteScreen

	styles Styles
	theme  string

	width, height int
	tickets       []ticket.Ticket
	counts        map[ticket.Status]int
	row           int
	filterIdx     int

	statusText string
	statusErr  bool
	wantQuit   bool
}

// New wires the app: commands close over the returned *App, so the palette
// registry is built after the struct exists.
func New(ctx context.Context, cfg config.Config, repo *ticket.Repo, store palette.Store) *App {
	a := &App{
		ctx:        ctx,
		cfg:        cfg,
		repo:       repo,
		theme:      cfg.UI.Theme,
		statusText: "Ready",
		width:      100,
		height:     32,
	}
	a.styles = NewStyles(themeByName(a.theme))
	a.keys = NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), cfg.Keys))
	a.history = palette.NewHistory(store, cfg.Palette.RecentCap, cfg.Palette.FavoriteCap)
	a.registry = palette.NewRegistry(Categories(), BuildCommands(a))
	filter := palette.NewFilter(palette.NewLevenshteinMatcher(cfg.Palette.Threshold), cfg.Palette.ResultLimit)
	a.controller = palette.NewController(a.registry, filter, a.history)
	a.controller.SetStatusFunc(a.setStatus)
	return a
}

func (a *App) Init() tea.Cmd {
	return a.loadTickets()
}

func (a *App) setStatus(msg string) {
	a.statusText = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		return
	}
	a.statusText = err.Error()
	a.statusErr = true
}

func (a *App) statusFilter() ticket.Status {
	return filterCycle[a.filterIdx%len(filterCycle)]
}

func (a *App) cycleFilter() {
	a.filterIdx = (a.filterIdx + 1) % len(filterCycle)
	if f := a.statusFilter(); f == "" {
		a.setStatus("Showing all tickets")
	} else {
		a.setStatus("Showing " + string(f) + " tickets")
	}
}

func (a *App) toggleTheme() {
	if a.theme == "light" {
		a.theme = "dark"
	} else {
		a.theme = "light"
	}
	a.cfg.UI.Theme = a.theme
	a.styles = NewStyles(themeByName(a.theme))
}

func (a *App) selectedTicket() *ticket.Ticket {
	if a.row < 0 || a.row >= len(a.tickets) {
		return nil
	}
	t := a.tickets[a.row]
	return &t
}

func (a *App) loadTickets() tea.Cmd {
	status := a.statusFilter()
	return func() tea.Msg {
		tickets, err := a.repo.List(a.ctx, status)
		if err != nil {
			return ticketsLoadedMsg{Err: err}
		}
		counts, err := a.repo.CountByStatus(a.ctx)
		if err != nil {
			return ticketsLoadedMsg{Err: err}
		}
		return ticketsLoadedMsg{Tickets: tickets, Counts: counts}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil
	case StatusMsg:
		if msg.Text == "" {
			return a, nil
		}
		a.statusText = msg.Text
		a.statusErr = msg.IsErr
		return a, nil
	case ticketsLoadedMsg:
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, nil
		}
		a.tickets = msg.Tickets
		a.counts = msg.Counts
		if a.row >= len(a.tickets) {
			a.row = len(a.tickets) - 1
		}
		if a.row < 0 {
			a.row = 0
		}
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if a.pal != nil {
		cmd, closed := a.pal.Update(msg)
		if closed {
			a.pal = nil
		}
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.pal != nil {
		cmd, closed := a.pal.Update(msg)
		if !closed {
			return a, cmd
		}
		a.pal = nil
		if a.wantQuit {
			return a, tea.Quit
		}
		// actions may have touched the queue or the filter
		return a, tea.Batch(cmd, a.loadTickets())
	}

	action, ok := a.keys.Lookup(msg, "app")
	if !ok {
		return a, nil
	}
	switch action {
	case "open-palette":
		a.pal = NewPaletteScreen(a.controller, a.history, a.keys)
	case "quit":
		return a, tea.Quit
	case "row-down":
		if a.row < len(a.tickets)-1 {
			a.row++
		}
	case "row-up":
		if a.row > 0 {
			a.row--
		}
	case "refresh":
		return a, a.loadTickets()
	case "cycle-filter":
		a.cycleFilter()
		return a, a.loadTickets()
	}
	return a, nil
}

func (a *App) activeScope() string {
	if a.pal != nil {
		return a.pal.Scope()
	}
	return "app"
}

func (a *App) View() string {
	if a.wantQuit {
		return "Goodbye\n"
	}
	header := a.renderHeader()
	status := a.renderStatusBar()
	footer := a.renderFooter()
	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	if a.pal != nil {
		panel := a.pal.View(a.styles, min(72, a.width-4), bodyHeight)
		body = lipgloss.Place(max(1, a.width), max(1, bodyHeight), lipgloss.Center, lipgloss.Center, panel)
	} else {
		body = a.renderQueue(bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	view := strings.Join([]string{header, status, body, footer}, "\n")
	return a.styles.App.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(view)
}

func (a *App) renderHeader() string {
	left := a.styles.Header.Render("opsdeck")
	right := fmt.Sprintf("open %d · in-progress %d · closed %d",
		a.counts[ticket.StatusOpen], a.counts[ticket.StatusInProgress], a.counts[ticket.StatusClosed])
	if f := a.statusFilter(); f != "" {
		right += "  [" + string(f) + "]"
	}
	line := left + padBetween(ansi.StringWidth(left), ansi.StringWidth(right), a.width) + right
	return renderBar(a.styles.HeaderBar, max(1, a.width), line)
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.statusText)
	if msg == "" {
		msg = "Ready"
	}
	if a.statusErr {
		return renderBar(a.styles.StatusErrBar, max(1, a.width), msg)
	}
	return renderBar(a.styles.StatusBar, max(1, a.width), msg)
}

func (a *App) renderFooter() string {
	bindings := a.keys.BindingsForScope(a.activeScope())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		parts = append(parts, a.styles.Key.Render(b.Keys[0])+" "+a.styles.HelpDesc.Render(b.Description))
	}
	line := strings.Join(parts, "  ")
	if line == "" {
		line = a.styles.HelpDesc.Render("No shortcuts")
	}
	return renderBar(a.styles.Footer, max(1, a.width), line)
}

func (a *App) renderQueue(height int) string {
	if height <= 0 {
		return ""
	}
	if len(a.tickets) == 0 {
		return a.styles.RowMuted.Render("  Queue is empty")
	}

	var b strings.Builder
	b.WriteString(a.styles.TableHeader.Render(fmt.Sprintf("  %-10s %-44s %-12s %-8s", "ID", "TITLE", "STATUS", "PRIO")))
	b.WriteString("\n")

	// keep the selected row visible when the queue outgrows the body
	offset := 0
	rows := height - 1
	if len(a.tickets) > rows && a.row >= rows {
		offset = a.row - rows + 1
	}
	visible := a.tickets[offset:min(len(a.tickets), offset+rows)]

	for i, t := range visible {
		line := fmt.Sprintf("  %-10s %-44s %-12s %-8s",
			shortID(t.ID), ansi.Truncate(t.Title, 44, "…"), string(t.Status), string(t.Priority))
		switch {
		case i+offset == a.row:
			b.WriteString(a.styles.SelectedRow.Render(line))
		case t.Status == ticket.StatusClosed:
			b.WriteString(a.styles.RowMuted.Render(line))
		case t.Priority == ticket.PriorityHigh:
			b.WriteString(a.styles.PrioHigh.Render(line))
		default:
			b.WriteString(a.styles.Row.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func padBetween(leftW, rightW, width int) string {
	gap := width - leftW - rightW
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", gap)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
