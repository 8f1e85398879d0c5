package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/runescope/internal/unidata"
)

// promptState is the line editor shown on the status row. The allow
// predicate decides which runes may be appended; everything else is
// either a control action or ignored.
type promptState struct {
	input   textinput.Model
	purpose promptPurpose
	allow   func(rune) bool
}

func (p *promptState) resize(width int) {
	avail := width - len(p.input.Prompt) - 1
	if avail < 1 {
		avail = 1
	}
	p.input.Width = avail
}

func (m *model) openPrompt(purpose promptPurpose) {
	ti := textinput.New()
	switch purpose {
	case promptJump:
		ti.Prompt = jumpPromptLabel
		ti.CharLimit = maxJumpInput
		m.prompt.allow = isHexDigit
	default:
		ti.Prompt = searchPromptLabel
		ti.CharLimit = maxSearchInput
		m.prompt.allow = unicode.IsPrint
	}
	ti.Focus()
	m.prompt.input = ti
	m.prompt.purpose = purpose
	m.prompt.resize(m.width)
	m.mode = modePrompt
}

func (m *model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submitPrompt()
	case tea.KeyEsc, tea.KeyCtrlG:
		m.mode = modeTable
		return m, nil
	case tea.KeyCtrlU:
		m.prompt.input.SetValue("")
		return m, nil
	case tea.KeyBackspace:
		if m.prompt.input.Value() == "" {
			m.bell()
			return m, nil
		}
	case tea.KeySpace, tea.KeyRunes:
		runes := msg.Runes
		if msg.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		for _, r := range runes {
			if !m.prompt.allow(r) {
				return m, nil
			}
		}
		limit := m.prompt.input.CharLimit
		if limit > 0 && len([]rune(m.prompt.input.Value()))+len(runes) > limit {
			m.bell()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

// submitPrompt closes the prompt and applies its value. An empty search
// submission repeats the remembered query; any rejected target rings
// the bell and leaves the position untouched.
func (m *model) submitPrompt() (tea.Model, tea.Cmd) {
	value := m.prompt.input.Value()
	m.mode = modeTable
	switch m.prompt.purpose {
	case promptJump:
		r, err := unidata.ParseCodepoint(value)
		if err != nil {
			m.bell()
			return m, nil
		}
		m.leading = m.catalog.LookupNearest(r)
	default:
		idx, ok := m.searcher.Find(value, m.leading, 1)
		if !ok {
			m.bell()
			return m, nil
		}
		m.leading = idx
	}
	m.clampView()
	return m, nil
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
