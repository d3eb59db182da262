package tui

import (
	"errors"

	"github.com/haldane/opsdeck/internal/config"
	"github.com/haldane/opsdeck/internal/ticket"
	"github.com/haldane/opsdeck/palette"
)

// Domain categories in display order.
const (
	CategoryTickets    palette.Category = "tickets"
	CategoryView       palette.Category = "view"
	CategoryNavigation palette.Category = "navigation"
	CategoryAdmin      palette.Category = "admin"
)

func Categories() []palette.Category {
	return []palette.Category{CategoryTickets, CategoryView, CategoryNavigation, CategoryAdmin}
}

var errNoSelection = errors.New("no ticket selected")

// BuildCommands assembles the palette command set over the app. Actions run
// synchronously inside the confirm handler; the app reloads the queue after
// the palette closes, so actions only touch the repo and app state.
func BuildCommands(a *App) []palette.Command {
	return []palette.Command{
		{
			ID: "ticket.new", Title: "Create Ticket", Subtitle: "add a draft to the queue",
			Category: CategoryTickets, Keywords: []string{"new", "open", "add"},
			Action: func() error {
				created, err := a.repo.Create(a.ctx, ticket.Ticket{
					Title:     "Untitled ticket",
					Requester: a.cfg.UI.Assignee,
				})
				if err != nil {
					return err
				}
				a.setStatus("Created ticket " + shortID(created.ID))
				return nil
			},
		},
		{
			ID: "ticket.assign", Title: "Assign To Me", Subtitle: "take the selected ticket",
			Category: CategoryTickets, Keywords: []string{"claim", "take"},
			Action: func() error {
				sel := a.selectedTicket()
				if sel == nil {
					return errNoSelection
				}
				if err := a.repo.Assign(a.ctx, sel.ID, a.cfg.UI.Assignee); err != nil {
					return err
				}
				a.setStatus("Assigned " + shortID(sel.ID) + " to " + a.cfg.UI.Assignee)
				return nil
			},
		},
		{
			ID: "ticket.close", Title: "Close Ticket", Subtitle: "resolve the selected ticket",
			Category: CategoryTickets, Keywords: []string{"resolve", "done"},
			Action: func() error {
				sel := a.selectedTicket()
				if sel == nil {
					return errNoSelection
				}
				if err := a.repo.UpdateStatus(a.ctx, sel.ID, ticket.StatusClosed); err != nil {
					return err
				}
				a.setStatus("Closed " + shortID(sel.ID))
				return nil
			},
		},
		{
			ID: "ticket.reopen", Title: "Reopen Ticket", Subtitle: "put the selected ticket back in the queue",
			Category: CategoryTickets, Keywords: []string{"undo"},
			Action: func() error {
				sel := a.selectedTicket()
				if sel == nil {
					return errNoSelection
				}
				if err := a.repo.UpdateStatus(a.ctx, sel.ID, ticket.StatusOpen); err != nil {
					return err
				}
				a.setStatus("Reopened " + shortID(sel.ID))
				return nil
			},
		},
		{
			ID: "view.filter", Title: "Cycle Status Filter", Subtitle: "all / open / in-progress / closed",
			Category: CategoryView, Keywords: []string{"show", "status"},
			Action: func() error {
				a.cycleFilter()
				return nil
			},
		},
		{
			ID: "view.theme", Title: "Toggle Theme", Subtitle: "dark / light",
			Category: CategoryView,
			Action: func() error {
				a.toggleTheme()
				return nil
			},
		},
		{
			ID: "nav.top", Title: "Go To First Ticket",
			Category: CategoryNavigation,
			Action: func() error {
				a.row = 0
				return nil
			},
		},
		{
			ID: "nav.bottom", Title: "Go To Last Ticket",
			Category: CategoryNavigation,
			Action: func() error {
				if n := len(a.tickets); n > 0 {
					a.row = n - 1
				}
				return nil
			},
		},
		{
			ID: "nav.quit", Title: "Quit", Subtitle: "leave opsdeck",
			Category: CategoryNavigation, Keywords: []string{"exit"},
			Action: func() error {
				a.wantQuit = true
				return nil
			},
		},
		{
			ID: "admin.history", Title: "Clear Palette History", Subtitle: "forget recents and favorites",
			Category: CategoryAdmin, Keywords: []string{"reset"},
			Action: func() error {
				if err := a.history.Clear(); err != nil {
					return err
				}
				a.setStatus("Palette history cleared")
				return nil
			},
		},
		{
			ID: "admin.save", Title: "Save Preferences", Subtitle: "write config.toml",
			Category: CategoryAdmin, Keywords: []string{"config"},
			Action: func() error {
				if err := config.Save(a.cfg); err != nil {
					return err
				}
				a.setStatus("Preferences saved")
				return nil
			},
		},
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
