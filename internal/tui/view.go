package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

func (m *model) View() string {
	switch m.mode {
	case modeBlocks:
		return m.viewBlocks()
	case modeHelp:
		return m.viewHelp()
	case modePrompt:
		return m.viewTable(m.prompt.input.View())
	default:
		return m.viewTable("")
	}
}

// viewTable renders the character table column-major, one screenful
// starting at the leading index, with the given status row. An empty
// status shows the displayed codepoint range, or the pending notice.
func (m *model) viewTable(status string) string {
	lay := computeLayout(m.width, m.height, m.columns)
	rows := make([]string, lay.visibleRows)
	last := m.leading
	for col := 0; col < lay.columns; col++ {
		for row := 0; row < lay.visibleRows; row++ {
			i := m.leading + col*lay.visibleRows + row
			if i >= m.catalog.Len() {
				continue
			}
			rows[row] += m.renderCell(i, lay.columnWidth)
			last = i
		}
	}
	if status == "" {
		if m.notice != "" {
			status = m.notice
		} else {
			status = fmt.Sprintf("[%04X - %04X]", m.catalog.Rune(m.leading), m.catalog.Rune(last))
		}
	}
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.TrimRight(row, " "))
		b.WriteByte('\n')
	}
	b.WriteString(status)
	return b.String()
}

// renderCell lays out one table entry in exactly colwidth cells: the
// hex label, the (possibly truncated) name, then the glyph flush right
// with a one-cell gap to the next column. Combining marks are drawn on
// the accent base when that rendering is active.
func (m *model) renderCell(i, colwidth int) string {
	cw := colwidth - 1
	r := m.catalog.Rune(i)
	label := fmt.Sprintf(" %04X", r)
	gw := glyphCells(r, m.catalog.Combining(i), m.showCombining)

	var b strings.Builder
	b.WriteString(hexLabel(r))
	used := 5
	if len(label)+3 < cw {
		b.WriteByte(' ')
		name := truncateName(m.catalog.Name(i), cw-7-gw)
		b.WriteString(name)
		used = 6 + runewidth.StringWidth(name)
	}
	for pad := cw - gw - used; pad > 0; pad-- {
		b.WriteByte(' ')
	}
	if gw > 0 {
		if m.catalog.Combining(i) && m.showCombining {
			b.WriteRune(m.accent)
		}
		b.WriteRune(r)
	}
	b.WriteByte(' ')
	return b.String()
}

// viewBlocks renders the block picker, centered as closely as possible
// on the highlighted entry. Empty blocks are dimmed and labeled.
func (m *model) viewBlocks() string {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	top := m.blockCursor - m.height/2
	if top+visible > m.blocks.Len() {
		top = m.blocks.Len() - visible
	}
	if top < 0 {
		top = 0
	}
	nameWidth := m.width - 32
	if nameWidth < 1 {
		nameWidth = 1
	}
	var b strings.Builder
	for i := top; i < m.blocks.Len() && i < top+visible; i++ {
		blk := m.blocks.At(i)
		name := truncate.String(blk.Name, uint(nameWidth))
		row := fmt.Sprintf("    %6s ..%6s  %-*s",
			fmt.Sprintf("%04X", blk.Lo), fmt.Sprintf("%04X", blk.Hi), nameWidth, name)
		switch {
		case i == m.blockCursor && m.blocks.Empty(i):
			row = blockSelectedEmptyStyle.Render(row)
		case i == m.blockCursor:
			row = blockSelectedStyle.Render(row)
		case m.blocks.Empty(i):
			row = blockEmptyStyle.Render(row)
		}
		if m.blocks.Empty(i) {
			row += " [empty]"
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}
	if m.notice != "" {
		b.WriteString(m.notice)
	} else {
		b.WriteString("Character Blocks")
	}
	return b.String()
}

func (m *model) viewHelp() string {
	var rows [][]key.Binding
	if m.helpCtx == helpBlocks {
		rows = blockHelpRows(m.keys)
	} else {
		rows = tableHelpRows(m.keys)
	}
	var b strings.Builder
	for _, row := range rows {
		line := fmt.Sprintf("   %-6s %s", row[0].Help().Key, row[0].Help().Desc)
		if len(row) > 1 {
			line = fmt.Sprintf("   %-6s %-28s %-6s %s",
				row[0].Help().Key, row[0].Help().Desc, row[1].Help().Key, row[1].Help().Desc)
		}
		b.WriteString(wordwrap.String(strings.TrimRight(line, " "), m.width))
		b.WriteByte('\n')
	}
	b.WriteString("[Press any key to continue]")
	return b.String()
}

func tableHelpRows(k keyMap) [][]key.Binding {
	return [][]key.Binding{
		{k.PageForward, k.PageBack},
		{k.ColumnForward, k.ColumnBack},
		{k.RowForward, k.RowBack},
		{k.JumpForward, k.JumpBack},
		{k.AddColumn, k.DropColumn},
		{k.Goto, k.Blocks},
		{k.Search},
		{k.SearchNext, k.SearchPrev},
		{k.Version, k.Help},
		{k.Redraw, k.Quit},
	}
}

func blockHelpRows(k keyMap) [][]key.Binding {
	bottom := key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "Move to end of list"))
	top := key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "Move to top of list"))
	cancel := key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Cancel and return"))
	return [][]key.Binding{
		{k.PageForward, k.PageBack},
		{k.RowForward, k.RowBack},
		{bottom, top},
		{k.Confirm},
		{k.Version, k.Help},
		{k.Redraw, cancel},
	}
}

var (
	blockSelectedStyle      = lipgloss.NewStyle().Reverse(true)
	blockEmptyStyle         = lipgloss.NewStyle().Faint(true)
	blockSelectedEmptyStyle = lipgloss.NewStyle().Reverse(true).Faint(true)
)
