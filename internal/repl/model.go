package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Model is the bubbletea model for the interactive loop.
type Model struct {
	opts     Options
	logger   *log.Logger
	styles   styles
	input    textinput.Model
	results  []Result
	quitting bool
}

// NewModel creates the interactive model.
func NewModel(opts Options) *Model {
	st := newStyles(opts.Renderer)

	ti := textinput.New()
	ti.Placeholder = "TT+, AQo+, 76-"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 80
	ti.Prompt = opts.Prompt
	ti.PromptStyle = st.echo

	return &Model{
		opts:   opts,
		logger: opts.logger().WithPrefix("repl"),
		styles: st,
		input:  ti,
	}
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses: enter submits, ctrl+c and esc quit.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line != "" {
				m.submit(line)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(line string) {
	res := Evaluate(line)
	logResult(m.logger, res)

	m.results = append(m.results, res)
	if limit := m.opts.History; limit > 0 && len(m.results) > limit {
		m.results = m.results[len(m.results)-limit:]
	}
}

// Results returns the results currently kept on screen, oldest first.
func (m *Model) Results() []Result {
	return m.results
}

// Quitting reports whether the user asked to leave.
func (m *Model) Quitting() bool {
	return m.quitting
}

// View renders the banner, the kept results and the prompt.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(Banner(m.opts.Version))
	b.WriteString("\n")
	for _, res := range m.results {
		b.WriteString(m.styles.echo.Render("» " + res.Input))
		b.WriteString("\n")
		b.WriteString(m.styles.format(res, m.opts.Grid))
		b.WriteString("\n\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// Run starts the interactive loop on the given terminal streams and blocks
// until the user quits.
func Run(in io.Reader, out io.Writer, opts Options) error {
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(out)
	}
	p := tea.NewProgram(NewModel(opts), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
