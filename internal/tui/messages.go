package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/haldane/opsdeck/internal/ticket"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type ticketsLoadedMsg struct {
	Tickets []ticket.Ticket
	Counts  map[ticket.Status]int
	Err     error
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
