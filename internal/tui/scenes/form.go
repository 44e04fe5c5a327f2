package scenes

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/lifegrid/internal/config"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/tui/components"
	"github.com/rgehrsitz/lifegrid/internal/tui/tuimsg"
	"github.com/rgehrsitz/lifegrid/internal/tui/tuistyles"
)

type formField int

const (
	fieldBirthDate formField = iota
	fieldLifeExpectancy
)

// FormModel edits the birth date and life expectancy
type FormModel struct {
	profile   domain.Profile
	birthDate textinput.Model
	slider    *components.ParameterSlider
	focus     formField
	errors    map[string]string
	now       func() time.Time
	width     int
	height    int
}

// NewFormModel creates the form pre-filled from profile. now is the
// reference clock for the "in the past" check.
func NewFormModel(profile domain.Profile, now func() time.Time) *FormModel {
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	if profile.BirthDate != nil {
		ti.SetValue(profile.BirthDate.Format("2006-01-02"))
	}

	slider := components.NewParameterSlider("Life expectancy",
		profile.LifeExpectancy, domain.MinLifeExpectancy, domain.MaxLifeExpectancy, 1).
		WithUnit(" years").
		WithPresets(domain.LifeExpectancyOptions)

	m := &FormModel{
		profile:   profile,
		birthDate: ti,
		slider:    slider,
		errors:    map[string]string{},
		now:       now,
	}
	m.setFocus(fieldBirthDate)
	return m
}

// SetSize updates the model dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Profile returns the last accepted profile
func (m *FormModel) Profile() domain.Profile {
	return m.profile
}

// Editing reports whether keystrokes belong to the text input.
func (m *FormModel) Editing() bool {
	return m.focus == fieldBirthDate
}

// Errors returns the current inline validation messages keyed by field.
func (m *FormModel) Errors() map[string]string {
	return m.errors
}

func (m *FormModel) setFocus(f formField) tea.Cmd {
	m.focus = f
	m.slider.SetFocused(f == fieldLifeExpectancy)
	if f == fieldBirthDate {
		return m.birthDate.Focus()
	}
	m.birthDate.Blur()
	return nil
}

// Update handles messages for the form scene
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.focus == fieldBirthDate {
			var cmd tea.Cmd
			m.birthDate, cmd = m.birthDate.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "shift+tab"))):
		if m.focus == fieldBirthDate {
			return m, m.setFocus(fieldLifeExpectancy)
		}
		return m, m.setFocus(fieldBirthDate)
	}

	if m.focus == fieldBirthDate {
		if keyMsg.Type == tea.KeyEnter {
			return m, m.submitBirthDate()
		}
		var cmd tea.Cmd
		m.birthDate, cmd = m.birthDate.Update(msg)
		return m, cmd
	}

	changed := false
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h", "-"))):
		changed = m.slider.Decrement()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "+"))):
		changed = m.slider.Increment()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("p"))):
		changed = m.slider.CyclePreset()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter", "up", "k"))):
		return m, m.setFocus(fieldBirthDate)
	}
	if !changed {
		return m, nil
	}

	next := m.profile
	next.LifeExpectancy = m.slider.Value
	return m, m.accept(next, false)
}

// submitBirthDate parses and validates the typed date.
func (m *FormModel) submitBirthDate() tea.Cmd {
	next := m.profile
	raw := strings.TrimSpace(m.birthDate.Value())
	if raw == "" {
		next.BirthDate = nil
	} else {
		birth, err := config.ParseBirthDate(raw)
		if err != nil {
			m.errors[config.FieldBirthDate] = "enter the date as YYYY-MM-DD"
			return nil
		}
		next.BirthDate = &birth
	}

	cmd := m.accept(next, true)
	if cmd != nil && next.BirthDate != nil {
		m.birthDate.SetValue(next.BirthDate.Format("2006-01-02"))
		return tea.Batch(cmd, m.setFocus(fieldLifeExpectancy))
	}
	return cmd
}

// accept validates next and, if clean, stores it and announces the change.
// A missing birth date only counts as an error when requireBirth is set.
func (m *FormModel) accept(next domain.Profile, requireBirth bool) tea.Cmd {
	m.errors = map[string]string{}
	parser := &config.InputParser{Now: m.now, RequireBirthDate: requireBirth}
	if err := parser.ValidateProfile(&next, m.now()); err != nil {
		var ve config.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				m.errors[fe.Field] = fe.Message
			}
		} else {
			m.errors[config.FieldBirthDate] = err.Error()
		}
		return nil
	}

	m.profile = next
	return func() tea.Msg {
		return tuimsg.ProfileChangedMsg{Profile: next}
	}
}

// View renders the form
func (m *FormModel) View() string {
	var content strings.Builder

	heading := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorForeground)
	content.WriteString(heading.Render("Tell us about yourself"))
	content.WriteString("\n\n")

	labelStyle := tuistyles.ParameterLabelStyle
	if m.focus == fieldBirthDate {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
	}
	content.WriteString(labelStyle.Render("Birth date"))
	content.WriteString("\n")
	content.WriteString(m.birthDate.View())
	if msg := m.errors[config.FieldBirthDate]; msg != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.ErrorStyle.Render(msg))
	}
	content.WriteString("\n\n")

	content.WriteString(m.slider.Render())
	if msg := m.errors[config.FieldLifeExpectancy]; msg != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.ErrorStyle.Render(msg))
	}
	content.WriteString("\n\n")

	hint := "enter to confirm • tab to switch field"
	content.WriteString(tuistyles.SubtitleStyle.Render(hint))

	return tuistyles.BorderStyle.Render(content.String())
}
