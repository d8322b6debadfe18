package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/unitkit/unitkit/pkg/convert"
	"github.com/unitkit/unitkit/pkg/errors"
	"github.com/unitkit/unitkit/pkg/prefix"
)

// replCommand creates the interactive conversion shell.
func (c *CLI) replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive conversion shell",
		Long: `Start an interactive shell for quick conversions.

Each line is "<value> <unit> [target-unit]"; without a target the value is
pretty-printed with its best prefix. Type q or press esc to leave.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := c.Engine()
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newReplModel(e)).Run()
			return err
		},
	}
}

// replEntry is one evaluated line with its outcome.
type replEntry struct {
	input  string
	output string
	failed bool
}

// ReplModel is the bubbletea model for the conversion shell.
type ReplModel struct {
	engine  *convert.Engine
	input   string
	history []replEntry
	height  int
}

func newReplModel(e *convert.Engine) ReplModel {
	return ReplModel{engine: e, height: 12}
}

func (m ReplModel) Init() tea.Cmd {
	return nil
}

func (m ReplModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input)
			m.input = ""
			if line == "" {
				return m, nil
			}
			if line == "q" || line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			m.history = append(m.history, m.eval(line))
			if len(m.history) > m.height {
				m.history = m.history[len(m.history)-m.height:]
			}
		case "backspace":
			if len(m.input) > 0 {
				runes := []rune(m.input)
				m.input = string(runes[:len(runes)-1])
			}
		default:
			if msg.Type == tea.KeyRunes {
				m.input += string(msg.Runes)
			} else if msg.Type == tea.KeySpace {
				m.input += " "
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 4 {
			m.height = 4
		}
	}
	return m, nil
}

// eval runs one shell line through the engine.
func (m ReplModel) eval(line string) replEntry {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return replEntry{input: line, output: "usage: <value> <unit> [target-unit]", failed: true}
	}

	q, err := parseQuantity(m.engine, fields[0], fields[1])
	if err != nil {
		return replEntry{input: line, output: errors.UserMessage(err), failed: true}
	}

	if len(fields) == 3 {
		out, err := m.engine.To(q, fields[2])
		if err != nil {
			return replEntry{input: line, output: errors.UserMessage(err), failed: true}
		}
		return replEntry{input: line, output: formatQuantity(m.engine, out)}
	}
	return replEntry{input: line, output: m.engine.Pretty(q, 4, prefix.Thousands)}
}

func (m ReplModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("unitkit repl"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("<value> <unit> [target-unit]  ·  esc to quit"))
	b.WriteString("\n\n")

	for _, entry := range m.history {
		b.WriteString(StyleDim.Render(entry.input))
		b.WriteString("  " + StyleDim.Render(iconArrow) + "  ")
		if entry.failed {
			b.WriteString(StyleError.Render(entry.output))
		} else {
			b.WriteString(StyleNumber.Render(entry.output))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleValue.Render("> " + m.input))
	b.WriteString(StyleDim.Render("█"))
	b.WriteString("\n")

	return b.String()
}
