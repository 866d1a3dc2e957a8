package halo

import "halo-ca/pkg/core"

// SingleSeed returns a width-n row with one live cell in the middle,
// the classic starting state for the Rule 30 triangle.
func SingleSeed(n int) []Cell {
	row := make([]Cell, n)
	if n > 0 {
		row[n/2] = 1
	}
	return row
}

// RandomRow returns a width-n row of random 0/1 cells, deterministic
// for a given seed.
func RandomRow(n int, seed int64) []Cell {
	row := make([]Cell, n)
	core.FillBinary(core.NewRNG(seed).Source(), row)
	return row
}
