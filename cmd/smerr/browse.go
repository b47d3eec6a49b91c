package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/sourcemap/errors"
)

func newBrowseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively pick a kind, attach a reason and see the rendered message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.styled(cmd.OutOrStdout()) {
				return fmt.Errorf("browse requires a terminal")
			}
			p := tea.NewProgram(newBrowseModel(), tea.WithOutput(cmd.OutOrStdout()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			return nil
		},
	}
}

type browseState int

const (
	stateSelectKind browseState = iota
	stateInputReason
	stateShowMessage
)

type browseModel struct {
	kinds       []errors.Kind
	input       textinput.Model
	message     string
	selected    int
	state       browseState
	emptyReason bool // render an empty input as "", not as no reason
}

func newBrowseModel() *browseModel {
	return &browseModel{
		kinds: errors.Kinds(),
		state: stateSelectKind,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "q":
		if m.state != stateInputReason {
			return m, tea.Quit
		}

	case "up", "k":
		if m.state == stateSelectKind && m.selected > 0 {
			m.selected--
			return m, nil
		}

	case "down", "j":
		if m.state == stateSelectKind && m.selected < len(m.kinds)-1 {
			m.selected++
			return m, nil
		}

	case "enter":
		switch m.state {
		case stateSelectKind:
			m.prepareInput()
			m.state = stateInputReason
			return m, textinput.Blink
		case stateInputReason:
			m.renderSelected()
			m.state = stateShowMessage
			return m, nil
		case stateShowMessage:
			m.state = stateSelectKind
			m.message = ""
			return m, nil
		}

	case "tab":
		if m.state == stateInputReason {
			m.emptyReason = !m.emptyReason
			return m, nil
		}

	case "esc":
		if m.state != stateSelectKind {
			m.state = stateSelectKind
			m.message = ""
			return m, nil
		}
	}

	if m.state == stateInputReason {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = "no reason"
	ti.Prompt = "reason: "
	ti.Width = 50
	ti.Focus()
	m.input = ti
	m.emptyReason = false
}

// renderSelected builds the carrier for the selected kind. An empty input
// means no reason unless emptyReason is set.
func (m *browseModel) renderSelected() {
	k := m.kinds[m.selected]
	var e *errors.Error
	if reason := m.input.Value(); reason != "" || m.emptyReason {
		e = errors.NewWithReason(k, reason)
	} else {
		e = errors.New(k)
	}
	m.message = render(e)
	Logger().Debug("browse render", zap.Stringer("kind", k))
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sourcemap errors"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectKind:
		for i, k := range m.kinds {
			line := fmt.Sprintf("%2d  %s", k.Code(), k)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputReason:
		k := m.kinds[m.selected]
		b.WriteString(fmt.Sprintf("%s (%d)\n\n", nameStyle.Render(k.String()), k.Code()))
		b.WriteString(m.input.View())
		if m.emptyReason && m.input.Value() == "" {
			b.WriteString(" " + helpStyle.Render("(empty reason)"))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter render • tab toggle empty reason • esc back"))

	case stateShowMessage:
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}
