package main

import (
	"testing"

	"github.com/csheth/runescope/internal/unidata"
)

func startCatalog() *unidata.Catalog {
	return unidata.New("test", []unidata.Char{
		{Rune: 0x34, Name: "DIGIT FOUR"},
		{Rune: 0x41, Name: "LATIN CAPITAL LETTER A"},
		{Rune: 0x42, Name: "LATIN CAPITAL LETTER B"},
		{Rune: 0xB7, Name: "MIDDLE DOT"},
		{Rune: 0x300, Name: "COMBINING GRAVE ACCENT", Combining: true},
	})
}

func TestResolveStart(t *testing.T) {
	cases := []struct {
		name    string
		arg     string
		want    rune
		wantErr bool
	}{
		{name: "literal character", arg: "B", want: 0x42},
		{name: "literal digit beats hex parse", arg: "4", want: 0x34},
		{name: "hex codepoint", arg: "00B7", want: 0xB7},
		{name: "prefixed codepoint", arg: "U+0300", want: 0x300},
		{name: "name substring", arg: "middle dot", want: 0xB7},
		{name: "unresolvable", arg: "no such character name", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := startCatalog()
			idx, err := resolveStart(catalog, unidata.NewSearcher(catalog), tc.arg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("resolveStart(%q) = %d, want error", tc.arg, idx)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveStart(%q): %v", tc.arg, err)
			}
			if got := catalog.Rune(idx); got != tc.want {
				t.Fatalf("resolveStart(%q) = %#x, want %#x", tc.arg, got, tc.want)
			}
		})
	}
}

func TestResolveStartSeedsSearchMemory(t *testing.T) {
	catalog := startCatalog()
	searcher := unidata.NewSearcher(catalog)
	if _, err := resolveStart(catalog, searcher, "latin"); err != nil {
		t.Fatal(err)
	}
	if !searcher.HasMemory() {
		t.Fatal("a name-search start must seed the repeat memory")
	}
}

func TestResolveAccent(t *testing.T) {
	catalog := startCatalog()
	cases := []struct {
		name    string
		arg     string
		want    rune
		wantErr bool
	}{
		{name: "literal", arg: "x", want: 'x'},
		{name: "codepoint snaps to catalog", arg: "0301", want: 0x300},
		{name: "invalid", arg: "zz", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveAccent(catalog, tc.arg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("resolveAccent(%q) = %#x, want error", tc.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveAccent(%q): %v", tc.arg, err)
			}
			if got != tc.want {
				t.Fatalf("resolveAccent(%q) = %#x, want %#x", tc.arg, got, tc.want)
			}
		})
	}
}
