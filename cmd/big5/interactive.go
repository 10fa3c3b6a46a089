package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hanconv/big5/table"
	"github.com/hanconv/big5/transcode"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	charStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type focusArea int

const (
	focusText focusArea = iota
	focusCode
)

type interactiveModel struct {
	tbl      *table.Table
	text     textarea.Model
	code     textinput.Model
	focus    focusArea
	annotate bool
	copied   bool
}

func newInteractiveModel() *interactiveModel {
	ta := textarea.New()
	ta.Placeholder = "輸入文字…"
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(4)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "A4A4"
	ti.Prompt = "code: "
	ti.CharLimit = 4
	ti.Width = 8

	return &interactiveModel{
		tbl:  table.Default(),
		text: ta,
		code: ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			if m.focus == focusText {
				m.focus = focusCode
				m.text.Blur()
				m.code.Focus()
			} else {
				m.focus = focusText
				m.code.Blur()
				m.text.Focus()
			}
			return m, nil

		case "ctrl+a":
			m.annotate = !m.annotate
			m.copied = false
			return m, nil

		case "ctrl+y":
			out := m.transcoded()
			if err := clipboard.WriteAll(out); err == nil {
				m.copied = true
			}
			return m, nil
		}
		m.copied = false
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusText:
		m.text, cmd = m.text.Update(msg)
	case focusCode:
		m.code, cmd = m.code.Update(msg)
	}
	return m, cmd
}

func (m *interactiveModel) transcoded() string {
	return transcode.New(m.tbl, m.annotate).Transcode(m.text.Value())
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Big5 Transcoder"))
	if m.annotate {
		b.WriteString(" ")
		b.WriteString(labelStyle.Render("[annotated]"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Text"))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Big5 codes"))
	if m.copied {
		b.WriteString(" ")
		b.WriteString(helpStyle.Render("(copied)"))
	}
	b.WriteString("\n")
	if out := m.transcoded(); out != "" {
		b.WriteString(codeStyle.Render(out))
	} else {
		b.WriteString(helpStyle.Render("—"))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Reverse lookup"))
	b.WriteString("\n")
	b.WriteString(m.code.View())
	b.WriteString("  ")
	b.WriteString(m.resolutionView())
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("tab switch pane • ctrl+a annotate • ctrl+y copy • esc quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *interactiveModel) resolutionView() string {
	candidate := m.code.Value()
	if candidate == "" {
		return helpStyle.Render("…")
	}
	res := transcode.Resolve(m.tbl, candidate)
	switch res.State {
	case transcode.Found:
		return charStyle.Render(string(res.Char))
	case transcode.NotFound:
		return missStyle.Render("not found")
	default:
		return helpStyle.Render("incomplete")
	}
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
