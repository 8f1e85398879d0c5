package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/runescope/internal/unidata"
)

// Config wires the dataset and startup options into the TUI program.
type Config struct {
	Catalog  *unidata.Catalog
	Blocks   *unidata.Blocks
	Searcher *unidata.Searcher
	Start    int
	Columns  int
	Accent   rune
	Bell     func()
}

// New returns a tea.Model ready to be mounted into a Program. Searcher
// is optional; passing one in preserves search memory seeded before the
// program starts. Accent zero suppresses combining-mark rendering.
func New(config Config) tea.Model {
	searcher := config.Searcher
	if searcher == nil {
		searcher = unidata.NewSearcher(config.Catalog)
	}
	columns := config.Columns
	if columns < 1 {
		columns = DefaultColumns
	}
	accent := config.Accent
	showCombining := accent != 0
	if accent == 0 {
		accent = DefaultAccent
	}
	bell := config.Bell
	if bell == nil {
		bell = func() { fmt.Fprint(os.Stdout, "\a") }
	}
	return &model{
		catalog:       config.Catalog,
		blocks:        config.Blocks,
		searcher:      searcher,
		keys:          defaultKeyMap(),
		bell:          bell,
		leading:       config.Start,
		columns:       columns,
		accent:        accent,
		showCombining: showCombining,
		width:         80,
		height:        24,
	}
}

type model struct {
	catalog  *unidata.Catalog
	blocks   *unidata.Blocks
	searcher *unidata.Searcher
	keys     keyMap
	bell     func()

	mode          mode
	leading       int
	columns       int
	accent        rune
	showCombining bool
	width         int
	height        int

	blockCursor int
	prompt      promptState
	helpFrom    mode
	helpCtx     helpContext
	notice      string
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.mode == modePrompt {
			m.prompt.resize(m.width)
		}
		m.clampView()
		return m, nil
	case tea.KeyMsg:
		if m.mode == modePrompt {
			return m.updatePrompt(msg)
		}
		cmd := m.keys.translate(msg)
		if cmd == cmdHardQuit {
			return m, tea.Quit
		}
		m.notice = ""
		switch m.mode {
		case modeHelp:
			m.mode = m.helpFrom
			return m, nil
		case modeBlocks:
			return m.updateBlocks(cmd)
		default:
			return m.updateTable(cmd)
		}
	}
	return m, nil
}

func (m *model) updateTable(cmd command) (tea.Model, tea.Cmd) {
	lay := computeLayout(m.width, m.height, m.columns)
	switch cmd {
	case cmdRowForward:
		m.leading++
	case cmdRowBack:
		m.leading--
	case cmdColumnForward:
		m.leading += lay.visibleRows
	case cmdColumnBack:
		m.leading -= lay.visibleRows
	case cmdPageForward:
		m.leading += lay.tableSize
	case cmdPageBack:
		m.leading -= lay.tableSize
	case cmdJumpForward:
		m.leading = m.catalog.OffsetByDelta(m.leading, jumpDelta)
	case cmdJumpBack:
		m.leading = m.catalog.OffsetByDelta(m.leading, -jumpDelta)
	case cmdSearch:
		m.openPrompt(promptSearch)
	case cmdSearchNext:
		m.repeatSearch(1)
	case cmdSearchPrev:
		m.repeatSearch(-1)
	case cmdGoto:
		m.openPrompt(promptJump)
	case cmdBlocks:
		m.openBlocks()
	case cmdAddColumn:
		m.columns++
	case cmdDropColumn:
		m.columns--
	case cmdHelp:
		m.openHelp(helpTable)
	case cmdVersion:
		m.showVersion()
	case cmdRedraw:
		return m, tea.ClearScreen
	case cmdQuit:
		return m, tea.Quit
	}
	m.clampView()
	return m, nil
}

func (m *model) updateBlocks(cmd command) (tea.Model, tea.Cmd) {
	switch cmd {
	case cmdRowForward:
		m.blockCursor++
	case cmdRowBack:
		m.blockCursor--
	case cmdPageForward:
		m.blockCursor += m.height - 1
	case cmdPageBack:
		m.blockCursor -= m.height - 1
	case cmdJumpBack:
		m.blockCursor = 0
	case cmdJumpForward:
		m.blockCursor = m.blocks.Len() - 1
	case cmdHelp:
		m.openHelp(helpBlocks)
	case cmdVersion:
		m.showVersion()
	case cmdRedraw:
		return m, tea.ClearScreen
	case cmdQuit, cmdCancel:
		m.mode = modeTable
	case cmdConfirm:
		if m.blocks.Empty(m.blockCursor) {
			m.bell()
		} else {
			m.leading = m.catalog.LookupNearest(m.blocks.At(m.blockCursor).Lo)
			m.mode = modeTable
			m.clampView()
		}
	}
	if m.blockCursor < 0 {
		m.blockCursor = 0
	}
	if m.blockCursor >= m.blocks.Len() {
		m.blockCursor = m.blocks.Len() - 1
	}
	return m, nil
}

// clampView re-resolves the column count against the terminal and pins
// the leading index back inside the table. Called after every state
// change; a resize moves the leading index only through this rule.
func (m *model) clampView() {
	lay := computeLayout(m.width, m.height, m.columns)
	m.columns = lay.columns
	m.leading = clampLeading(m.leading, m.catalog.Len(), lay.tableSize)
}

func (m *model) repeatSearch(dir int) {
	idx, ok := m.searcher.Find("", m.leading, dir)
	if !ok {
		m.bell()
		return
	}
	m.leading = idx
}

func (m *model) openBlocks() {
	m.blocks.Classify(m.catalog)
	m.blockCursor = m.blocks.IndexFor(m.catalog.Rune(m.leading))
	m.mode = modeBlocks
}

func (m *model) openHelp(ctx helpContext) {
	m.helpFrom = m.mode
	m.helpCtx = ctx
	m.mode = modeHelp
}

func (m *model) showVersion() {
	v := m.catalog.Version()
	if v == "" {
		m.bell()
		return
	}
	m.notice = "Unicode version " + v
}
