package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/resiliq/internal/api"
	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/logging"
	"github.com/abhisek/resiliq/internal/router"
	"github.com/abhisek/resiliq/internal/screen"
	"github.com/abhisek/resiliq/internal/screens/landing"
	"github.com/abhisek/resiliq/internal/ui/layout"
	"github.com/abhisek/resiliq/internal/ui/theme"
)

// configLoadedMsg carries the outcome of the startup configuration fetch.
type configLoadedMsg struct {
	seq int
	cfg *api.AppConfig
	err error
}

// AppModel is the root Bubble Tea model. It gates all screens on the
// service configuration: until /api/config succeeds nothing renders but
// the loading view, so no screen can paint with half-applied branding.
type AppModel struct {
	client api.Client
	store  *assessment.Store
	flow   *assessment.Flow

	router *router.Router
	cfg    *api.AppConfig
	cfgErr string
	seq    int
	width  int
	height int
}

func newAppModel(client api.Client) AppModel {
	store := assessment.NewStore()
	return AppModel{
		client: client,
		store:  store,
		flow:   assessment.NewFlow(store),
		seq:    1,
	}
}

func (m AppModel) Init() tea.Cmd {
	return fetchConfigCmd(m.client, m.seq)
}

func fetchConfigCmd(client api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		cfg, err := client.FetchConfig(context.Background())
		return configLoadedMsg{seq: seq, cfg: cfg, err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case configLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			logging.L().Warn("configuration fetch failed", zap.Error(msg.err))
			m.cfgErr = api.UserMessage(msg.err)
			return m, nil
		}
		m.cfg = msg.cfg
		theme.Apply(theme.Tokens{
			Primary:    msg.cfg.Colors.Primary,
			Secondary:  msg.cfg.Colors.Secondary,
			Text:       msg.cfg.Colors.Text,
			Background: msg.cfg.Colors.Background,
			CardBG:     msg.cfg.Colors.CardBG,
		})
		m.router = router.New(landing.New(m.cfg, m.store, m.flow, m.client))
		return m, m.router.Active().Init()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.cfg == nil && m.cfgErr != "" {
				m.cfgErr = ""
				m.seq++
				return m, fetchConfigCmd(m.client, m.seq)
			}
		}
	}

	if m.router == nil {
		return m, nil
	}
	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.router == nil {
		v.SetContent(m.loadingView())
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	org := ""
	if info, ok := m.store.OrganizationInfo(); ok {
		org = info.CompanyName
	}

	header := layout.RenderHeader(m.cfg.AppTitle, title, org, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// loadingView renders the pre-configuration state: a spinner-less wait
// line, or the failure with a retry hint.
func (m AppModel) loadingView() string {
	var content string
	if m.cfgErr != "" {
		content = theme.FieldError.Render("Could not reach the assessment service") +
			"\n\n" + theme.Body.Render(m.cfgErr) +
			"\n\n" + theme.Hint.Render("Press r to retry, Ctrl+C to quit")
	} else {
		content = theme.Hint.Render("Connecting to assessment service...")
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program against the given service client.
func Run(client api.Client) error {
	p := tea.NewProgram(newAppModel(client))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
