package core

import (
	"slices"
	"testing"
)

func TestScrollDown(t *testing.T) {
	g := NewByteGrid(3, 3)
	copy(g.Row(0), []uint8{1, 2, 3})
	copy(g.Row(1), []uint8{4, 5, 6})
	copy(g.Row(2), []uint8{7, 8, 9})

	g.ScrollDown()

	if !slices.Equal(g.Row(1), []uint8{1, 2, 3}) {
		t.Fatalf("row 1 = %v, want old row 0", g.Row(1))
	}
	if !slices.Equal(g.Row(2), []uint8{4, 5, 6}) {
		t.Fatalf("row 2 = %v, want old row 1", g.Row(2))
	}
	if !slices.Equal(g.Row(0), []uint8{1, 2, 3}) {
		t.Fatalf("row 0 = %v, should keep its contents until overwritten", g.Row(0))
	}
}
