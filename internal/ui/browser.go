// Package ui renders the interactive opcode browser.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"wasmir/internal/opcode"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

type browserModel struct {
	filter   textinput.Model
	all      []opcode.Opcode
	visible  []opcode.Opcode
	cursor   int
	offset   int
	height   int
	width    int
	quitting bool
}

// NewBrowser returns a Bubble Tea model that lists the catalogue with
// incremental mnemonic filtering.
func NewBrowser() tea.Model {
	ti := textinput.New()
	ti.Placeholder = "filter mnemonics"
	ti.Prompt = "/ "
	ti.Focus()

	all := make([]opcode.Opcode, 0, opcode.Count())
	for i := 0; i < opcode.Count(); i++ {
		all = append(all, opcode.Opcode(i))
	}
	return &browserModel{
		filter:  ti,
		all:     all,
		visible: all,
		height:  24,
		width:   80,
	}
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampScroll()
			return m, nil
		case "down":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			m.clampScroll()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *browserModel) refilter() {
	needle := strings.TrimSpace(m.filter.Value())
	if needle == "" {
		m.visible = m.all
	} else {
		var out []opcode.Opcode
		for _, op := range m.all {
			if strings.Contains(op.Text(), needle) {
				out = append(out, op)
			}
		}
		m.visible = out
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
	m.clampScroll()
}

func (m *browserModel) clampScroll() {
	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m *browserModel) listHeight() int {
	// Title, filter, detail pane and footer take five rows.
	return max(1, m.height-5)
}

func (m *browserModel) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("opcode catalogue"))
	fmt.Fprintf(&sb, " %s\n", dimStyle.Render(fmt.Sprintf("(%d/%d)", len(m.visible), len(m.all))))
	sb.WriteString(m.filter.View())
	sb.WriteString("\n")

	rows := m.listHeight()
	end := min(m.offset+rows, len(m.visible))
	for i := m.offset; i < end; i++ {
		op := m.visible[i]
		line := fmt.Sprintf("%s %s", encodingLabel(op), op.Text())
		line = runewidth.Truncate(line, max(10, m.width-2), "…")
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if m.cursor < len(m.visible) {
		sb.WriteString(detailStyle.Render(detailLine(m.visible[m.cursor])))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("↑/↓ move · type to filter · esc quit"))
	return sb.String()
}

func encodingLabel(op opcode.Opcode) string {
	if op.HasPrefix() {
		return fmt.Sprintf("0x%02x 0x%02x", op.Prefix(), op.Code())
	}
	return fmt.Sprintf("     0x%02x", op.Code())
}

func detailLine(op opcode.Opcode) string {
	var params []string
	for _, p := range op.Params() {
		params = append(params, p.String())
	}
	detail := fmt.Sprintf("(%s) -> %s · %s", strings.Join(params, ", "), op.Result(), op.Features())
	if op.MemorySize() > 0 {
		detail += fmt.Sprintf(" · mem %dB", op.MemorySize())
	}
	return detail
}
