package orginfo

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/resiliq/internal/api"
	"github.com/abhisek/resiliq/internal/assessment"
	"github.com/abhisek/resiliq/internal/logging"
	"github.com/abhisek/resiliq/internal/router"
	"github.com/abhisek/resiliq/internal/screen"
	"github.com/abhisek/resiliq/internal/screens/questionnaire"
	"github.com/abhisek/resiliq/internal/ui/components"
	"github.com/abhisek/resiliq/internal/ui/layout"
	"github.com/abhisek/resiliq/internal/ui/theme"
)

// Form field positions, in focus order.
const (
	fieldCompanyName = iota
	fieldIndustry
	fieldCompanySize
	fieldRegion
	fieldContactEmail
	fieldContactName
	fieldNotes
	fieldContinue
	fieldCount
)

// companyCreatedMsg carries the outcome of the company registration
// request. seq identifies the attempt it belongs to.
type companyCreatedMsg struct {
	seq          int
	assessmentID string
	err          error
}

// OrgInfoScreen collects the organization profile and registers it with
// the service before the questionnaire starts.
type OrgInfoScreen struct {
	cfg    *api.AppConfig
	store  *assessment.Store
	flow   *assessment.Flow
	client api.Client

	companyName  components.TextInput
	industry     components.Picker
	companySize  components.Picker
	region       components.Picker
	contactEmail components.TextInput
	contactName  components.TextInput
	notes        components.TextInput
	continueBtn  components.Button

	focus      int
	submitting bool
	seq        int
	requestErr string
}

var _ screen.Screen = (*OrgInfoScreen)(nil)
var _ screen.KeyHintProvider = (*OrgInfoScreen)(nil)

// New creates the organization-info screen. Pickers take their option
// lists from the service configuration.
func New(cfg *api.AppConfig, store *assessment.Store, flow *assessment.Flow, client api.Client) *OrgInfoScreen {
	s := &OrgInfoScreen{
		cfg:    cfg,
		store:  store,
		flow:   flow,
		client: client,

		companyName:  components.NewTextInput("Company Name", "Acme Corp", true, 120),
		industry:     components.NewPicker("Industry", cfg.Industries, true),
		companySize:  components.NewPicker("Company Size", cfg.CompanySizes, true),
		region:       components.NewPicker("Region", cfg.Regions, true),
		contactEmail: components.NewTextInput("Contact Email", "you@example.com", true, 120),
		contactName:  components.NewTextInput("Contact Name", "", false, 120),
		notes:        components.NewTextInput("Additional Notes", "", false, 240),
	}
	s.continueBtn = components.NewButton("Continue", s.submit)

	// Returning to this step keeps what was entered before.
	if prev, ok := store.OrganizationInfo(); ok {
		s.companyName.SetValue(prev.CompanyName)
		s.contactEmail.SetValue(prev.ContactEmail)
		s.contactName.SetValue(prev.ContactName)
		s.notes.SetValue(prev.AdditionalNotes)
		s.industry.SetChosen(prev.Industry)
		s.companySize.SetChosen(prev.CompanySize)
		s.region.SetChosen(prev.Region)
	}
	return s
}

func (s *OrgInfoScreen) Init() tea.Cmd {
	return s.applyFocus()
}

func (s *OrgInfoScreen) Title() string {
	return "Organization"
}

func (s *OrgInfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "◂▸", Description: "Pick value"},
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

// info assembles the record from the current field values.
func (s *OrgInfoScreen) info() assessment.OrganizationInfo {
	return assessment.OrganizationInfo{
		CompanyName:     strings.TrimSpace(s.companyName.Value()),
		Industry:        s.industry.Value(),
		CompanySize:     s.companySize.Value(),
		Region:          s.region.Value(),
		ContactEmail:    strings.TrimSpace(s.contactEmail.Value()),
		ContactName:     strings.TrimSpace(s.contactName.Value()),
		AdditionalNotes: strings.TrimSpace(s.notes.Value()),
	}
}

// submit validates the form and, if clean, registers the company. A
// second press while a request is in flight does nothing because the
// button is disabled for the duration.
//
// Registration happens at most once per organization record: returning
// here from the questionnaire and continuing with the form unchanged
// advances directly, keeping the assessment id and every recorded answer.
// Only an edited form re-registers (a different organization voids the
// answers, so the store resetting them is correct then).
func (s *OrgInfoScreen) submit() tea.Cmd {
	info := s.info()
	if errs := info.Validate(); len(errs) > 0 {
		s.companyName.SetError(errs[assessment.FieldCompanyName])
		s.industry.SetError(errs[assessment.FieldIndustry])
		s.companySize.SetError(errs[assessment.FieldCompanySize])
		s.region.SetError(errs[assessment.FieldRegion])
		s.contactEmail.SetError(errs[assessment.FieldContactEmail])
		return nil
	}

	if prev, ok := s.store.OrganizationInfo(); ok && prev == info && s.store.AssessmentID() != "" {
		return s.proceed()
	}

	s.submitting = true
	s.continueBtn.Disabled = true
	s.requestErr = ""
	s.seq++

	seq := s.seq
	client := s.client
	return func() tea.Msg {
		id, err := client.CreateCompany(context.Background(), info)
		return companyCreatedMsg{seq: seq, assessmentID: id, err: err}
	}
}

func (s *OrgInfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case companyCreatedMsg:
		if msg.seq != s.seq {
			return s, nil // a newer attempt superseded this one
		}
		s.submitting = false
		s.continueBtn.Disabled = false
		if msg.err != nil {
			logging.L().Warn("company registration failed", zap.Error(msg.err))
			s.requestErr = api.UserMessage(msg.err)
			return s, nil
		}
		s.store.RecordOrganizationInfo(s.info(), msg.assessmentID)
		return s, s.proceed()

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			if s.flow.Retreat() {
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return s, nil
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		}
	}

	return s, s.updateFocused(msg)
}

// proceed advances the flow and pushes the questionnaire.
func (s *OrgInfoScreen) proceed() tea.Cmd {
	if err := s.flow.Advance(); err != nil {
		logging.L().Warn("orginfo advance rejected", zap.Error(err))
		return nil
	}
	next := questionnaire.New(s.store, s.flow, s.client)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *OrgInfoScreen) moveFocus(delta int) tea.Cmd {
	s.focus = (s.focus + delta + fieldCount) % fieldCount
	return s.applyFocus()
}

func (s *OrgInfoScreen) applyFocus() tea.Cmd {
	s.companyName.Blur()
	s.industry.Blur()
	s.companySize.Blur()
	s.region.Blur()
	s.contactEmail.Blur()
	s.contactName.Blur()
	s.notes.Blur()
	s.continueBtn.Active = false

	switch s.focus {
	case fieldCompanyName:
		return s.companyName.Focus()
	case fieldIndustry:
		s.industry.Focus()
	case fieldCompanySize:
		s.companySize.Focus()
	case fieldRegion:
		s.region.Focus()
	case fieldContactEmail:
		return s.contactEmail.Focus()
	case fieldContactName:
		return s.contactName.Focus()
	case fieldNotes:
		return s.notes.Focus()
	case fieldContinue:
		s.continueBtn.Active = true
	}
	return nil
}

// updateFocused routes remaining input to the focused field. Editing a
// field clears its validation message.
func (s *OrgInfoScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldCompanyName:
		s.companyName, cmd = s.companyName.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			s.companyName.SetError("")
		}
	case fieldIndustry:
		s.industry, cmd = s.industry.Update(msg)
		s.industry.SetError("")
	case fieldCompanySize:
		s.companySize, cmd = s.companySize.Update(msg)
		s.companySize.SetError("")
	case fieldRegion:
		s.region, cmd = s.region.Update(msg)
		s.region.SetError("")
	case fieldContactEmail:
		s.contactEmail, cmd = s.contactEmail.Update(msg)
		if _, ok := msg.(tea.KeyMsg); ok {
			s.contactEmail.SetError("")
		}
	case fieldContactName:
		s.contactName, cmd = s.contactName.Update(msg)
	case fieldNotes:
		s.notes, cmd = s.notes.Update(msg)
	case fieldContinue:
		s.continueBtn, cmd = s.continueBtn.Update(msg)
	}
	return cmd
}

func (s *OrgInfoScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Tell us about your organization"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("All fields marked * are required"))
	b.WriteString("\n\n")

	for _, field := range []string{
		s.companyName.View(),
		s.industry.View(),
		s.companySize.View(),
		s.region.View(),
		s.contactEmail.View(),
		s.contactName.View(),
		s.notes.View(),
	} {
		b.WriteString(field)
		b.WriteString("\n\n")
	}

	if s.submitting {
		b.WriteString(theme.Hint.Render("Registering organization..."))
	} else {
		b.WriteString(s.continueBtn.View())
	}
	if s.requestErr != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.FieldError.Render(s.requestErr))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
