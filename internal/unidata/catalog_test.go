package unidata

import "testing"

func fixtureCatalog() *Catalog {
	return New("15.0.0", []Char{
		{Rune: 0x41, Name: "LATIN CAPITAL LETTER A"},
		{Rune: 0x42, Name: "LATIN CAPITAL LETTER B"},
		{Rune: 0x43, Name: "LATIN CAPITAL LETTER C"},
		{Rune: 0x45, Name: "LATIN CAPITAL LETTER E"},
	})
}

func TestLookupNearest(t *testing.T) {
	c := fixtureCatalog()
	cases := []struct {
		name string
		r    rune
		want int
	}{
		{name: "exact hit", r: 0x42, want: 1},
		{name: "tie resolves to larger codepoint", r: 0x44, want: 3},
		{name: "below range clamps to first", r: 0x00, want: 0},
		{name: "above range clamps to last", r: 0x1000, want: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.LookupNearest(tc.r); got != tc.want {
				t.Fatalf("LookupNearest(%#x) = %d, want %d", tc.r, got, tc.want)
			}
		})
	}
}

func TestLookupNearestRoundTrip(t *testing.T) {
	c := fixtureCatalog()
	for i := 0; i < c.Len(); i++ {
		if got := c.LookupNearest(c.Rune(i)); got != i {
			t.Fatalf("LookupNearest(Rune(%d)) = %d, want %d", i, got, i)
		}
	}
}

func TestLookupNearestIsMinimalDistance(t *testing.T) {
	c := New("test", []Char{
		{Rune: 10, Name: "TEN"},
		{Rune: 20, Name: "TWENTY"},
		{Rune: 30, Name: "THIRTY"},
		{Rune: 100, Name: "HUNDRED"},
	})
	abs := func(v rune) rune {
		if v < 0 {
			return -v
		}
		return v
	}
	for r := rune(0); r <= 120; r++ {
		got := c.LookupNearest(r)
		best := 0
		for i := 1; i < c.Len(); i++ {
			di, db := abs(c.Rune(i)-r), abs(c.Rune(best)-r)
			if di < db || (di == db && c.Rune(i) > c.Rune(best)) {
				best = i
			}
		}
		if got != best {
			t.Fatalf("LookupNearest(%d) = %d (%#x), want %d (%#x)",
				r, got, c.Rune(got), best, c.Rune(best))
		}
	}
}

func TestOffsetByDeltaStaysInRange(t *testing.T) {
	c := fixtureCatalog()
	for i := 0; i < c.Len(); i++ {
		for _, delta := range []rune{-0x1000, -1, 0, 1, 0x1000} {
			got := c.OffsetByDelta(i, delta)
			if got < 0 || got >= c.Len() {
				t.Fatalf("OffsetByDelta(%d, %d) = %d, out of range", i, delta, got)
			}
		}
	}
}

func TestOffsetByDeltaSnaps(t *testing.T) {
	c := fixtureCatalog()
	// 0x43 + 1 = 0x44 is unassigned; the tie snaps up to 0x45.
	if got := c.OffsetByDelta(2, 1); got != 3 {
		t.Fatalf("OffsetByDelta(2, 1) = %d, want 3", got)
	}
	if got := c.OffsetByDelta(0, -0x1000); got != 0 {
		t.Fatalf("OffsetByDelta(0, -0x1000) = %d, want 0", got)
	}
}

func TestCatalogNames(t *testing.T) {
	c := fixtureCatalog()
	if got := c.Name(0); got != "LATIN CAPITAL LETTER A" {
		t.Fatalf("Name(0) = %q", got)
	}
	if got := c.Name(3); got != "LATIN CAPITAL LETTER E" {
		t.Fatalf("Name(3) = %q", got)
	}
	if got := c.Version(); got != "15.0.0" {
		t.Fatalf("Version() = %q", got)
	}
}

func TestParseCodepoint(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    rune
		wantErr bool
	}{
		{name: "bare hex", in: "41", want: 0x41},
		{name: "upper prefix", in: "U+1F600", want: 0x1F600},
		{name: "lower prefix", in: "u+00b7", want: 0xB7},
		{name: "max rune", in: "10FFFF", want: 0x10FFFF},
		{name: "beyond max", in: "110000", wantErr: true},
		{name: "not hex", in: "zz", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "prefix only", in: "U+", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCodepoint(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseCodepoint(%q) = %#x, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCodepoint(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("ParseCodepoint(%q) = %#x, want %#x", tc.in, got, tc.want)
			}
		})
	}
}
