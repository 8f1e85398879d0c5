package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslate(t *testing.T) {
	keys := defaultKeyMap()
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want command
	}{
		{name: "down arrow", msg: tea.KeyMsg{Type: tea.KeyDown}, want: cmdRowForward},
		{name: "plus steps a row", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")}, want: cmdRowForward},
		{name: "up arrow", msg: tea.KeyMsg{Type: tea.KeyUp}, want: cmdRowBack},
		{name: "right arrow", msg: tea.KeyMsg{Type: tea.KeyRight}, want: cmdColumnForward},
		{name: "space pages forward", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, want: cmdPageForward},
		{name: "pgdown pages forward", msg: tea.KeyMsg{Type: tea.KeyPgDown}, want: cmdPageForward},
		{name: "backspace pages back", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: cmdPageBack},
		{name: "closing brace jumps forward", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("}")}, want: cmdJumpForward},
		{name: "opening brace jumps back", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("{")}, want: cmdJumpBack},
		{name: "slash searches", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")}, want: cmdSearch},
		{name: "upper N folds to repeat", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("N")}, want: cmdSearchNext},
		{name: "upper P folds to reverse repeat", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("P")}, want: cmdSearchPrev},
		{name: "u opens goto", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")}, want: cmdGoto},
		{name: "s opens goto", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, want: cmdGoto},
		{name: "j opens blocks", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, want: cmdBlocks},
		{name: "bracket adds column", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")}, want: cmdAddColumn},
		{name: "h shows help", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, want: cmdHelp},
		{name: "question mark shows help", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, want: cmdHelp},
		{name: "v shows version", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")}, want: cmdVersion},
		{name: "ctrl+l redraws", msg: tea.KeyMsg{Type: tea.KeyCtrlL}, want: cmdRedraw},
		{name: "enter confirms", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: cmdConfirm},
		{name: "ctrl+g cancels", msg: tea.KeyMsg{Type: tea.KeyCtrlG}, want: cmdCancel},
		{name: "q quits", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, want: cmdQuit},
		{name: "ctrl+c hard-quits", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: cmdHardQuit},
		{name: "unmapped rune is ignored", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, want: cmdNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.translate(tc.msg); got != tc.want {
				t.Fatalf("translate(%q) = %d, want %d", tc.msg.String(), got, tc.want)
			}
		})
	}
}
