package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	exportStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type model struct {
	report *report
	view   viewport.Model
	ready  bool
}

func newModel(r *report) *model {
	return &model{report: r}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-2)
			m.view.SetContent(m.render())
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - 2
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.view.View() + "\n" + helpStyle.Render("↑/↓ scroll · q quit")
}

func (m *model) render() string {
	r := m.report
	var b strings.Builder

	b.WriteString(titleStyle.Render("wasm-embed definition: " + r.file))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render(label+":"), value))
	}

	row("output", r.def.T.String())
	row("mode", r.def.Mode().String())
	if r.def.E != "" {
		row("imports", r.def.E)
	}
	row("size", fmt.Sprintf("%d bytes decoded, %d encoded", r.rawSize, len(r.def.D)))

	if r.hasMemory {
		row("memory", "exported")
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("memory:"),
			warnStyle.Render("not exported (callers expect a \"memory\" export)")))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("exports:"))
	b.WriteString("\n")
	if len(r.exports) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, e := range r.exports {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			exportStyle.Render(e.name),
			helpStyle.Render(fmt.Sprintf("(%d params, %d results)", e.params, e.results))))
	}

	return b.String()
}
