package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	App          lipgloss.Style
	Header       lipgloss.Style
	HeaderBar    lipgloss.Style
	StatusBar    lipgloss.Style
	StatusErrBar lipgloss.Style
	Footer       lipgloss.Style
	Key          lipgloss.Style
	HelpDesc     lipgloss.Style

	TableHeader lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	RowMuted    lipgloss.Style
	PrioHigh    lipgloss.Style

	Panel        lipgloss.Style
	GroupHeading lipgloss.Style
	Result       lipgloss.Style
	ResultSel    lipgloss.Style
	ResultDesc   lipgloss.Style
	Favorite     lipgloss.Style
}

func NewStyles(th Theme) Styles {
	return Styles{
		App:          lipgloss.NewStyle().Foreground(th.Text),
		Header:       lipgloss.NewStyle().Foreground(th.Accent).Bold(true),
		HeaderBar:    lipgloss.NewStyle().Background(th.Surface).Foreground(th.Text),
		StatusBar:    lipgloss.NewStyle().Foreground(th.Success).Background(th.Surface),
		StatusErrBar: lipgloss.NewStyle().Foreground(th.Error).Background(th.Surface),
		Footer:       lipgloss.NewStyle().Background(th.Surface),
		Key:          lipgloss.NewStyle().Foreground(th.Accent).Bold(true),
		HelpDesc:     lipgloss.NewStyle().Foreground(th.Muted),

		TableHeader: lipgloss.NewStyle().Foreground(th.Muted).Bold(true),
		Row:         lipgloss.NewStyle().Foreground(th.Text),
		SelectedRow: lipgloss.NewStyle().Foreground(th.Accent).Background(th.Surface).Bold(true),
		RowMuted:    lipgloss.NewStyle().Foreground(th.Muted),
		PrioHigh:    lipgloss.NewStyle().Foreground(th.Error).Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Border).
			Padding(0, 1),
		GroupHeading: lipgloss.NewStyle().Foreground(th.Muted).Bold(true),
		Result:       lipgloss.NewStyle().Foreground(th.Text),
		ResultSel:    lipgloss.NewStyle().Foreground(th.Accent).Background(th.Surface).Bold(true),
		ResultDesc:   lipgloss.NewStyle().Foreground(th.Muted),
		Favorite:     lipgloss.NewStyle().Foreground(th.Warn),
	}
}
