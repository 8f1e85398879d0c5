package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// command is the abstract alphabet the state machine consumes. Raw key
// events never reach the mode handlers; translate maps them here first.
type command int

const (
	cmdNone command = iota
	cmdRowForward
	cmdRowBack
	cmdColumnForward
	cmdColumnBack
	cmdPageForward
	cmdPageBack
	cmdJumpForward
	cmdJumpBack
	cmdSearch
	cmdSearchNext
	cmdSearchPrev
	cmdGoto
	cmdBlocks
	cmdAddColumn
	cmdDropColumn
	cmdHelp
	cmdVersion
	cmdRedraw
	cmdConfirm
	cmdCancel
	cmdQuit
	cmdHardQuit
)

type keyMap struct {
	RowForward    key.Binding
	RowBack       key.Binding
	ColumnForward key.Binding
	ColumnBack    key.Binding
	PageForward   key.Binding
	PageBack      key.Binding
	JumpForward   key.Binding
	JumpBack      key.Binding
	Search        key.Binding
	SearchNext    key.Binding
	SearchPrev    key.Binding
	Goto          key.Binding
	Blocks        key.Binding
	AddColumn     key.Binding
	DropColumn    key.Binding
	Help          key.Binding
	Version       key.Binding
	Redraw        key.Binding
	Confirm       key.Binding
	Cancel        key.Binding
	Quit          key.Binding
	HardQuit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		RowForward:    key.NewBinding(key.WithKeys("down", "+"), key.WithHelp("Down", "Move forward one row")),
		RowBack:       key.NewBinding(key.WithKeys("up", "-"), key.WithHelp("Up", "Move back one row")),
		ColumnForward: key.NewBinding(key.WithKeys("right", ">"), key.WithHelp("Right", "Move forward one column")),
		ColumnBack:    key.NewBinding(key.WithKeys("left", "<"), key.WithHelp("Left", "Move back one column")),
		PageForward:   key.NewBinding(key.WithKeys(" ", "pgdown"), key.WithHelp("Spc", "Move forward one screenful")),
		PageBack:      key.NewBinding(key.WithKeys("backspace", "pgup"), key.WithHelp("Bkspc", "Move back one screenful")),
		JumpForward:   key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "Move forward by U+1000")),
		JumpBack:      key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "Move back by U+1000")),
		Search:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Search forward for a codepoint name")),
		SearchNext:    key.NewBinding(key.WithKeys("n"), key.WithHelp("N", "Repeat the last search")),
		SearchPrev:    key.NewBinding(key.WithKeys("p"), key.WithHelp("P", "To previous search result")),
		Goto:          key.NewBinding(key.WithKeys("u", "s"), key.WithHelp("U or S", "Go to a specific codepoint")),
		Blocks:        key.NewBinding(key.WithKeys("j", "b"), key.WithHelp("J or B", "Jump to a selected block")),
		AddColumn:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "Add another column")),
		DropColumn:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "Reduce number of columns")),
		Help:          key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "Display this help text")),
		Version:       key.NewBinding(key.WithKeys("v"), key.WithHelp("V", "Display Unicode version")),
		Redraw:        key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^L", "Redraw the screen")),
		Confirm:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "View the characters at the selected block")),
		Cancel:        key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("^G", "Cancel and return")),
		Quit:          key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Exit the program")),
		HardQuit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^C", "Quit immediately")),
	}
}

// translate maps one key event to the command alphabet. Printable runes
// are case-folded to lowercase before matching, so N and n both repeat
// the last search.
func (k keyMap) translate(msg tea.KeyMsg) command {
	if msg.Type == tea.KeyRunes {
		folded := make([]rune, len(msg.Runes))
		for i, r := range msg.Runes {
			folded[i] = unicode.ToLower(r)
		}
		msg.Runes = folded
	}
	switch {
	case key.Matches(msg, k.HardQuit):
		return cmdHardQuit
	case key.Matches(msg, k.RowForward):
		return cmdRowForward
	case key.Matches(msg, k.RowBack):
		return cmdRowBack
	case key.Matches(msg, k.ColumnForward):
		return cmdColumnForward
	case key.Matches(msg, k.ColumnBack):
		return cmdColumnBack
	case key.Matches(msg, k.PageForward):
		return cmdPageForward
	case key.Matches(msg, k.PageBack):
		return cmdPageBack
	case key.Matches(msg, k.JumpForward):
		return cmdJumpForward
	case key.Matches(msg, k.JumpBack):
		return cmdJumpBack
	case key.Matches(msg, k.Search):
		return cmdSearch
	case key.Matches(msg, k.SearchNext):
		return cmdSearchNext
	case key.Matches(msg, k.SearchPrev):
		return cmdSearchPrev
	case key.Matches(msg, k.Goto):
		return cmdGoto
	case key.Matches(msg, k.Blocks):
		return cmdBlocks
	case key.Matches(msg, k.AddColumn):
		return cmdAddColumn
	case key.Matches(msg, k.DropColumn):
		return cmdDropColumn
	case key.Matches(msg, k.Help):
		return cmdHelp
	case key.Matches(msg, k.Version):
		return cmdVersion
	case key.Matches(msg, k.Redraw):
		return cmdRedraw
	case key.Matches(msg, k.Confirm):
		return cmdConfirm
	case key.Matches(msg, k.Cancel):
		return cmdCancel
	case key.Matches(msg, k.Quit):
		return cmdQuit
	}
	return cmdNone
}
