package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mlutz/depline/pkg/deps"
	"github.com/mlutz/depline/pkg/errors"
)

// editCommand creates the edit command: an interactive editor with a live
// expansion preview, the terminal analog of a paste field.
func (c *CLI) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit a dependency document with live expansion preview",
		Long: `Edit a dependency document with live expansion preview.

Type or paste listings in the "X depends on Y Z" notation. The preview
below the editor updates as you type. Press ctrl+d to accept and print
the expanded output, esc or ctrl+c to abort.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit()
		},
	}
}

func runEdit() error {
	p := tea.NewProgram(newEditorModel())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	m := final.(editorModel)
	if !m.accepted {
		return nil
	}
	fmt.Println(m.result)
	return nil
}

// editorModel is the bubbletea model for the interactive editor.
type editorModel struct {
	input textarea.Model

	result   string // expanded output for the current text, if valid
	errMsg   string // pipeline error for the current text, if any
	accepted bool   // set when the user accepts with ctrl+d
}

func newEditorModel() editorModel {
	ta := textarea.New()
	ta.Placeholder = "X depends on Y Z"
	ta.SetWidth(72)
	ta.SetHeight(10)
	ta.Focus()

	return editorModel{input: ta}
}

func (m editorModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "ctrl+d":
			if m.result != "" && m.errMsg == "" {
				m.accepted = true
				return m, tea.Quit
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 100 {
			width = 100
		}
		if width > 0 {
			m.input.SetWidth(width)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// refresh recomputes the preview for the current editor contents.
func (m *editorModel) refresh() {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.result, m.errMsg = "", ""
		return
	}

	res, err := deps.Process(text)
	if err != nil {
		m.result = ""
		m.errMsg = errors.UserMessage(err)
		return
	}
	m.result = res.ExpandedOutput
	m.errMsg = ""
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Dependency listings"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(StyleError.Render(m.errMsg))
	case m.result != "":
		b.WriteString(StyleSuccess.Render("Expanded:"))
		b.WriteString("\n")
		b.WriteString(StyleValue.Render(m.result))
	default:
		b.WriteString(StyleDim.Render("Preview appears here as you type."))
	}

	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("ctrl+d accept  esc quit"))
	b.WriteString("\n")

	return b.String()
}
