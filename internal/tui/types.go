package tui

type mode int

const (
	modeTable mode = iota
	modeBlocks
	modePrompt
	modeHelp
)

type promptPurpose int

const (
	promptSearch promptPurpose = iota
	promptJump
)

type helpContext int

const (
	helpTable helpContext = iota
	helpBlocks
)

const (
	// jumpDelta is the codepoint distance covered by the { and } keys.
	jumpDelta = 0x1000

	// minColumnWidth is the smallest width a table column may shrink to.
	minColumnWidth = 8

	// DefaultColumns is the table column count before the user adjusts it.
	DefaultColumns = 2

	// DefaultAccent is the base character combining marks are rendered on.
	DefaultAccent rune = 0x00B7
)

const (
	searchPromptLabel = "/"
	jumpPromptLabel   = "U+"

	maxSearchInput = 255
	maxJumpInput   = 6
)
