package sdes

// Table is a bit permutation (or expansion). Output position i takes the
// input bit at 1-based position t[i].
type Table []int

// Apply permutes in according to the table. The table must only reference
// positions inside in.
func (t Table) Apply(in Bits) Bits {
	out := make(Bits, len(t))
	for i, pos := range t {
		out[i] = in[pos-1]
	}
	return out
}

var (
	p10       = Table{3, 5, 2, 7, 4, 10, 1, 9, 8, 6}
	p8        = Table{6, 3, 7, 4, 8, 5, 10, 9}
	ip        = Table{2, 6, 3, 1, 4, 8, 5, 7}
	ipInverse = Table{4, 1, 3, 5, 7, 2, 8, 6}
	ep        = Table{4, 1, 2, 3, 2, 3, 4, 1}
	p4        = Table{2, 4, 3, 1}
)

// SBox is a 4x4 substitution table of 2-bit values
type SBox [4][4]uint8

var sBoxes = [2]SBox{
	{
		{1, 0, 3, 2},
		{3, 2, 1, 0},
		{0, 2, 1, 3},
		{3, 1, 0, 2},
	},
	{
		{0, 1, 2, 3},
		{2, 3, 1, 0},
		{3, 0, 1, 2},
		{2, 1, 0, 3},
	},
}

// Lookup maps a 4-bit input to a 2-bit output. The row comes from the outer
// bits (0 and 3), the column from the inner bits (1 and 2).
func (s SBox) Lookup(in Bits) Bits {
	row := Bits{in[0], in[3]}.Uint()
	col := Bits{in[1], in[2]}.Uint()
	return BitsFromUint(uint(s[row][col]), 2)
}
