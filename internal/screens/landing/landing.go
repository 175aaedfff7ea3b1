package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/resiliq/internal/api"
	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/logging"
	"github.com/abhisek/resiliq/internal/router"
	"github.com/abhisek/resiliq/internal/screen"
	"github.com/abhisek/resiliq/internal/screens/orginfo"
	"github.com/abhisek/resiliq/internal/ui/components"
	"github.com/abhisek/resiliq/internal/ui/layout"
	"github.com/abhisek/resiliq/internal/ui/theme"
)

// highlights summarizes the areas the questionnaire covers. Purely
// descriptive; the real question set comes from the service schema.
var highlights = []string{
	"Recovery objectives (RTO / RPO)",
	"Backup protection and immutability",
	"Recovery testing and validation",
	"Detection and response readiness",
	"Coverage gaps and critical systems",
}

// LandingScreen is the entry step: branding, a short intro, and the way in.
type LandingScreen struct {
	cfg    *api.AppConfig
	store  *assessment.Store
	flow   *assessment.Flow
	client api.Client
	menu   components.Menu
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates the landing screen.
func New(cfg *api.AppConfig, store *assessment.Store, flow *assessment.Flow, client api.Client) *LandingScreen {
	l := &LandingScreen{
		cfg:    cfg,
		store:  store,
		flow:   flow,
		client: client,
	}
	l.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start Assessment", Action: l.start},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return l
}

func (l *LandingScreen) start() tea.Cmd {
	if err := l.flow.Advance(); err != nil {
		logging.L().Warn("landing advance rejected", zap.Error(err))
		return nil
	}
	next := orginfo.New(l.cfg, l.store, l.flow, l.client)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (l *LandingScreen) Init() tea.Cmd {
	return nil
}

func (l *LandingScreen) Title() string {
	return "Welcome"
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(l.cfg.AppTitle))
	if l.cfg.AppSubtitle != "" {
		sections = append(sections, theme.Subtitle.Render(l.cfg.AppSubtitle))
	}
	if l.cfg.CompanyTagline != "" {
		sections = append(sections, theme.Hint.Render(l.cfg.CompanyTagline))
	}
	sections = append(sections, "")

	intro := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 72)).
		Align(lipgloss.Center).
		Render("This assessment evaluates your organization's resilience maturity " +
			"across key domains and produces an actionable scorecard.")
	sections = append(sections, intro, "")

	var areas strings.Builder
	for _, h := range highlights {
		areas.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("  • "))
		areas.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(h))
		areas.WriteString("\n")
	}
	sections = append(sections, areas.String())

	sections = append(sections, l.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
