// Package pbm writes plain-text PBM (magic "P1") bitmaps row by row,
// the format the automaton's history is checkpointed in.
package pbm

import (
	"bufio"
	"fmt"
	"io"
)

// Writer emits a P1 bitmap of fixed dimensions. The header goes out
// before the first row; every row is width space-separated 0/1 tokens.
type Writer struct {
	bw      *bufio.Writer
	width   int
	height  int
	comment string

	headerDone bool
	rows       int
}

// NewWriter returns a Writer for a width x height bitmap. A non-empty
// comment is placed on a "#" line inside the header.
func NewWriter(w io.Writer, width, height int, comment string) *Writer {
	return &Writer{bw: bufio.NewWriter(w), width: width, height: height, comment: comment}
}

// WriteRow appends one row of cells. Values other than zero count as
// set bits. The row length must match the configured width.
func (w *Writer) WriteRow(cells []uint8) error {
	if len(cells) != w.width {
		return fmt.Errorf("pbm: row has %d cells, want %d", len(cells), w.width)
	}
	if !w.headerDone {
		if err := w.writeHeader(); err != nil {
			return err
		}
	}
	if w.rows >= w.height {
		return fmt.Errorf("pbm: bitmap already holds %d rows", w.height)
	}
	for _, c := range cells {
		bit := byte('0')
		if c != 0 {
			bit = '1'
		}
		if err := w.bw.WriteByte(bit); err != nil {
			return err
		}
		if err := w.bw.WriteByte(' '); err != nil {
			return err
		}
	}
	if err := w.bw.WriteByte('\n'); err != nil {
		return err
	}
	w.rows++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if !w.headerDone {
		if err := w.writeHeader(); err != nil {
			return err
		}
	}
	return w.bw.Flush()
}

func (w *Writer) writeHeader() error {
	if _, err := fmt.Fprintln(w.bw, "P1"); err != nil {
		return err
	}
	if w.comment != "" {
		if _, err := fmt.Fprintf(w.bw, "# %s\n", w.comment); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w.bw, "%d %d\n", w.width, w.height); err != nil {
		return err
	}
	w.headerDone = true
	return nil
}
