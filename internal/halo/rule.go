package halo

// Rule computes a cell's next state from its three-cell neighborhood.
type Rule func(west, center, east Cell) Cell

// Wolfram returns the elementary automaton rule for the given 8-bit
// code. The neighborhood is packed as (west<<2)|(center<<1)|east and
// used to index into the code's bits.
func Wolfram(code uint8) Rule {
	return func(west, center, east Cell) Cell {
		idx := (west&1)<<2 | (center&1)<<1 | east&1
		return (code >> idx) & 1
	}
}

// Rule30 is the default rule: next = west XOR (center OR east).
var Rule30 = Wolfram(30)
