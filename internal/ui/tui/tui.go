// Package tui renders a play session as a bubbletea program. The flow
// machine stays terminal-agnostic: a Bridge adapts its input and output
// seams to program messages, and the Model draws the transcript, the
// active prompt, and a spinner while a battle resolves.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/message"

	"github.com/louisbranch/emberclash.quest/internal/platform/branding"
)

// Model is the bubbletea model for one play session.
type Model struct {
	bridge  *Bridge
	printer *message.Printer

	transcript []string
	prompt     string
	awaiting   bool
	quitting   bool
	err        error

	input   textinput.Model
	spinner spinner.Model
}

// NewModel returns a Model answering prompts through bridge.
func NewModel(bridge *Bridge, printer *message.Printer) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot

	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 32

	return Model{
		bridge:  bridge,
		printer: printer,
		input:   ti,
		spinner: s,
	}
}

// Init starts the cursor blink and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update routes program messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.awaiting {
				value := m.input.Value()
				m.input.Reset()
				m.awaiting = false
				m.bridge.reply(value)
				return m, m.spinner.Tick
			}
		default:
			if m.awaiting {
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
		}
	case lineMsg:
		m.transcript = append(m.transcript, string(msg))
		return m, nil
	case promptMsg:
		m.prompt = string(msg)
		m.awaiting = true
		return m, tea.Batch(m.input.Focus(), textinput.Blink)
	case doneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.awaiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View draws the transcript, then either the active prompt or the
// battle spinner.
func (m Model) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s --\n\n", branding.GameTitle)

	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if m.err != nil {
		fmt.Fprintf(&b, "Error: %v\n", m.err)
	}
	if m.quitting {
		return b.String()
	}

	b.WriteString("\n")
	if m.awaiting {
		b.WriteString(m.prompt)
		b.WriteString(m.input.View())
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "%s %s\n", m.spinner.View(), m.printer.Sprintf("core.tui.battle_spinner"))
	}
	b.WriteString(m.printer.Sprintf("core.tui.quit_hint"))
	b.WriteString("\n")
	return b.String()
}
