package tui

import "testing"

func TestComputeLayout(t *testing.T) {
	cases := []struct {
		name        string
		width       int
		height      int
		columns     int
		wantColumns int
		wantRows    int
	}{
		{name: "request fits", width: 80, height: 24, columns: 2, wantColumns: 2, wantRows: 23},
		{name: "width 40 clamps six columns to four", width: 40, height: 24, columns: 6, wantColumns: 4, wantRows: 23},
		{name: "narrow terminal floors at one column", width: 10, height: 24, columns: 3, wantColumns: 1, wantRows: 23},
		{name: "zero request floors at one", width: 80, height: 24, columns: 0, wantColumns: 1, wantRows: 23},
		{name: "tiny height keeps one row", width: 80, height: 1, columns: 2, wantColumns: 2, wantRows: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lay := computeLayout(tc.width, tc.height, tc.columns)
			if lay.columns != tc.wantColumns {
				t.Fatalf("columns = %d, want %d", lay.columns, tc.wantColumns)
			}
			if lay.visibleRows != tc.wantRows {
				t.Fatalf("visibleRows = %d, want %d", lay.visibleRows, tc.wantRows)
			}
			if lay.tableSize != lay.columns*lay.visibleRows {
				t.Fatalf("tableSize = %d, want columns*rows", lay.tableSize)
			}
			if lay.columnWidth != tc.width/lay.columns {
				t.Fatalf("columnWidth = %d, want %d", lay.columnWidth, tc.width/lay.columns)
			}
		})
	}
}

func TestClampLeading(t *testing.T) {
	cases := []struct {
		name      string
		leading   int
		n         int
		tableSize int
		want      int
	}{
		{name: "in range", leading: 5, n: 100, tableSize: 12, want: 5},
		{name: "past end", leading: 95, n: 100, tableSize: 12, want: 88},
		{name: "negative", leading: -3, n: 100, tableSize: 12, want: 0},
		{name: "catalog smaller than one page", leading: 7, n: 10, tableSize: 12, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampLeading(tc.leading, tc.n, tc.tableSize); got != tc.want {
				t.Fatalf("clampLeading(%d, %d, %d) = %d, want %d",
					tc.leading, tc.n, tc.tableSize, got, tc.want)
			}
		})
	}
}

func TestGlyphCells(t *testing.T) {
	cases := []struct {
		name      string
		r         rune
		combining bool
		accented  bool
		want      int
	}{
		{name: "plain letter", r: 'A', want: 1},
		{name: "wide ideograph", r: 0x4E00, want: 2},
		{name: "combining mark with accent base", r: 0x300, combining: true, accented: true, want: 1},
		{name: "combining mark suppressed", r: 0x300, combining: true, accented: false, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := glyphCells(tc.r, tc.combining, tc.accented); got != tc.want {
				t.Fatalf("glyphCells(%#x, %v, %v) = %d, want %d",
					tc.r, tc.combining, tc.accented, got, tc.want)
			}
		})
	}
}

func TestHexLabel(t *testing.T) {
	cases := []struct {
		r    rune
		want string
	}{
		{r: 0x41, want: " 0041"},
		{r: 0xB7, want: " 00B7"},
		{r: 0x1F600, want: "1F600"},
		{r: 0x10FFFF, want: "0FFFF"},
	}
	for _, tc := range cases {
		if got := hexLabel(tc.r); got != tc.want {
			t.Fatalf("hexLabel(%#x) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestTruncateName(t *testing.T) {
	const name = "LATIN CAPITAL LETTER A" // 22 bytes
	cases := []struct {
		name   string
		budget int
		want   string
	}{
		{name: "fits whole", budget: 22, want: name},
		{name: "generous budget keeps both ends", budget: 11, want: "LATIN" + ellipsis + "TER A"},
		{name: "tight budget keeps suffix", budget: 6, want: ellipsis + "TER A"},
		{name: "two cells", budget: 2, want: ellipsis + "A"},
		{name: "single cell", budget: 1, want: ellipsis},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncateName(name, tc.budget); got != tc.want {
				t.Fatalf("truncateName(%d) = %q, want %q", tc.budget, got, tc.want)
			}
		})
	}
}
