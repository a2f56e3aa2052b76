package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jiexingtech/kryo-serializers/wire"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	matchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err      error
	filename string
	values   []valueInfo
	selected int
	scroll   int
	height   int
	filter   textinput.Model
	state    modelState
}

type valueInfo struct {
	summary string
	lines   []string
	offset  int
	size    int
}

type modelState int

const (
	stateSelectValue modelState = iota
	stateBrowse
	stateFilter
)

func newInteractiveModel(filename string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Prompt = "/"
	ti.Width = 40
	return &interactiveModel{
		filename: filename,
		height:   24,
		filter:   ti,
		state:    stateSelectValue,
	}
}

type loadedMsg struct {
	err    error
	values []valueInfo
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadStream
}

func (m *interactiveModel) loadStream() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	e, err := newEngine()
	if err != nil {
		return loadedMsg{err: err}
	}

	var values []valueInfo
	r := wire.NewReader(bytes.NewReader(data))
	for r.Position() < len(data) {
		start := r.Position()
		v, err := e.ReadTagged(r)
		if err != nil {
			return loadedMsg{err: fmt.Errorf("value %d at offset %d: %w", len(values), start, err)}
		}
		root := describe(v)
		var lines []string
		flatten(root, 0, &lines)
		values = append(values, valueInfo{
			summary: root.label,
			lines:   lines,
			offset:  start,
			size:    r.Position() - start,
		})
	}
	if len(values) == 0 {
		return loadedMsg{err: fmt.Errorf("empty stream")}
	}
	return loadedMsg{values: values}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		if m.state == stateFilter {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter", "esc":
				if msg.String() == "esc" {
					m.filter.SetValue("")
				}
				m.filter.Blur()
				m.state = stateBrowse
				m.scroll = 0
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			switch m.state {
			case stateSelectValue:
				if m.selected > 0 {
					m.selected--
				}
			case stateBrowse:
				if m.scroll > 0 {
					m.scroll--
				}
			}

		case "down", "j":
			switch m.state {
			case stateSelectValue:
				if m.selected < len(m.values)-1 {
					m.selected++
				}
			case stateBrowse:
				if m.scroll < len(m.visibleLines())-1 {
					m.scroll++
				}
			}

		case "pgup":
			if m.state == stateBrowse {
				m.scroll -= m.pageSize()
				if m.scroll < 0 {
					m.scroll = 0
				}
			}

		case "pgdown":
			if m.state == stateBrowse {
				m.scroll += m.pageSize()
				if max := len(m.visibleLines()) - 1; m.scroll > max {
					m.scroll = max
				}
			}

		case "enter":
			if m.state == stateSelectValue && len(m.values) > 0 {
				m.state = stateBrowse
				m.scroll = 0
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "esc":
			if m.state == stateBrowse {
				m.state = stateSelectValue
				m.scroll = 0
				m.filter.SetValue("")
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.values = msg.values
	}

	return m, nil
}

func (m *interactiveModel) pageSize() int {
	n := m.height - 6
	if n < 1 {
		n = 1
	}
	return n
}

// visibleLines applies the current filter to the selected value's tree.
func (m *interactiveModel) visibleLines() []string {
	lines := m.values[m.selected].lines
	needle := strings.TrimSpace(m.filter.Value())
	if needle == "" {
		return lines
	}
	var out []string
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), strings.ToLower(needle)) {
			out = append(out, line)
		}
	}
	return out
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.values) == 0 {
		return "Loading stream..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Stream Inspector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectValue:
		b.WriteString("Select a value to browse:\n\n")
		for i, v := range m.values {
			line := fmt.Sprintf("%s %s", valueStyle.Render(v.summary),
				metaStyle.Render(fmt.Sprintf("offset %d, %s", v.offset, humanize.IBytes(uint64(v.size)))))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> ") + line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter browse • q quit"))

	case stateBrowse, stateFilter:
		v := m.values[m.selected]
		b.WriteString(fmt.Sprintf("Value at offset %d (%s)\n\n",
			v.offset, humanize.IBytes(uint64(v.size))))

		lines := m.visibleLines()
		page := m.pageSize()
		end := m.scroll + page
		if end > len(lines) {
			end = len(lines)
		}
		for _, line := range lines[m.scroll:end] {
			if m.filter.Value() != "" {
				b.WriteString(matchStyle.Render(line))
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
		if len(lines) == 0 {
			b.WriteString(helpStyle.Render("no matching lines"))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(m.filter.View())
			b.WriteString("\n")
			b.WriteString(helpStyle.Render("enter apply • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ scroll • / filter • esc back • q quit"))
		}
	}

	return b.String()
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
