package unidata

// Block is a named codepoint range. The table is ordered ascending by
// Lo; ranges may leave gaps between one another, and a block may
// contain no assigned codepoints at all.
type Block struct {
	Lo, Hi rune
	Name   string
}

// Blocks pairs a block table with a write-once emptiness mask.
type Blocks struct {
	list  []Block
	empty []bool
}

// NewBlocks returns the standard Unicode block table.
func NewBlocks() *Blocks { return &Blocks{list: blockTable} }

// NewBlocksFrom builds a catalog over an explicit table.
func NewBlocksFrom(list []Block) *Blocks { return &Blocks{list: list} }

// Len returns the number of blocks.
func (b *Blocks) Len() int { return len(b.list) }

// At returns block i.
func (b *Blocks) At(i int) Block { return b.list[i] }

// Classify marks every block that contains no catalog entry. The mask
// is built once; repeat calls are no-ops. Cost is O(blocks · log N).
func (b *Blocks) Classify(c *Catalog) {
	if b.empty != nil {
		return
	}
	b.empty = make([]bool, len(b.list))
	for i, blk := range b.list {
		n := c.LookupNearest(blk.Lo)
		switch {
		case c.Rune(n) >= blk.Lo && c.Rune(n) <= blk.Hi:
		case n+1 < c.Len() && c.Rune(n+1) >= blk.Lo && c.Rune(n+1) <= blk.Hi:
		default:
			b.empty[i] = true
		}
	}
}

// Empty reports whether block i was classified empty. Classify must
// have run first.
func (b *Blocks) Empty(i int) bool { return b.empty[i] }

// IndexFor returns the first block whose upper bound reaches r, which
// is where the picker highlight starts for a given table position.
func (b *Blocks) IndexFor(r rune) int {
	for i, blk := range b.list {
		if blk.Hi >= r {
			return i
		}
	}
	return len(b.list) - 1
}
