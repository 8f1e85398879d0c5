package main

import (
	"flag"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/runescope/internal/tui"
	"github.com/csheth/runescope/internal/unidata"
)

const versionString = "runescope: Unicode character set browser, version 1.0"

func main() {
	accent := flag.String("accent", "", "codepoint or literal character to render combining marks on (default U+00B7)")
	noAccent := flag.Bool("noaccent", false, "suppress display of combining accent characters")
	columns := flag.Int("columns", tui.DefaultColumns, "number of table columns")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	showVersion := flag.Bool("version", false, "display version information and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Println(versionString)
		fmt.Println("Unicode data version", unicode.Version)
		return
	}
	if flag.NArg() > 1 {
		fatal("bad command-line argument\nTry -h for more information.")
	}

	catalog := unidata.Build()
	blocks := unidata.NewBlocks()
	searcher := unidata.NewSearcher(catalog)

	start := 0
	if flag.NArg() == 1 {
		idx, err := resolveStart(catalog, searcher, flag.Arg(0))
		if err != nil {
			fatal("%v", err)
		}
		start = idx
	}

	accentRune := tui.DefaultAccent
	if *accent != "" {
		r, err := resolveAccent(catalog, *accent)
		if err != nil {
			fatal("%v", err)
		}
		accentRune = r
	}
	if *noAccent {
		accentRune = 0
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Catalog:  catalog,
			Blocks:   blocks,
			Searcher: searcher,
			Start:    start,
			Columns:  *columns,
			Accent:   accentRune,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fatal("program error: %v", err)
	}
}

// resolveStart turns the positional argument into an initial catalog
// index: a literal single character, then a hex codepoint with an
// optional U+ prefix, then a name substring searched from the top of
// the catalog. A successful name search seeds the in-session repeat
// memory, since the searcher is shared with the browser.
func resolveStart(c *unidata.Catalog, s *unidata.Searcher, arg string) (int, error) {
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		return c.LookupNearest(r), nil
	}
	if r, err := unidata.ParseCodepoint(arg); err == nil {
		return c.LookupNearest(r), nil
	}
	if idx, ok := s.Find(arg, 0, 1); ok {
		return idx, nil
	}
	return 0, fmt.Errorf("invalid start value: %q", arg)
}

// resolveAccent parses the -accent flag: a literal character is taken
// as-is, anything else must be a valid codepoint, snapped to the
// nearest catalog entry.
func resolveAccent(c *unidata.Catalog, arg string) (rune, error) {
	if utf8.RuneCountInString(arg) == 1 {
		r, _ := utf8.DecodeRuneInString(arg)
		return r, nil
	}
	r, err := unidata.ParseCodepoint(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid accent character value: %q", arg)
	}
	return c.Rune(c.LookupNearest(r)), nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: runescope [OPTIONS] [CHAR | CODEPOINT | STRING]")
	fmt.Fprintln(os.Stderr, "Display Unicode characters in a scrolling table.")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "CHAR is a literal character with which to initialize the list position.")
	fmt.Fprintln(os.Stderr, "CODEPOINT is specified as a hex value, optionally prefixed with \"U+\".")
	fmt.Fprintln(os.Stderr, "STRING is a substring to search for in the codepoint names.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Use \"?\" while the program is running to see a list of key commands.")
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
