// internal/mask/mask.go
//
// Pre-revealed cell table for the game board.
// A Mask declares which (attempt, position) cells are shown to the player
// up front; those cells are exempt from guess evaluation and from keyboard
// aggregation. The table is fixed at construction and shared read-only.

package mask

import "fmt"

// Mask is an immutable boolean table indexed by (attempt row, letter column).
type Mask struct {
	rows  int
	cols  int
	cells []bool
}

// New builds a mask from a row-major cell slice of length rows*cols.
// A mismatched slice is a configuration error and panics.
func New(rows, cols int, cells []bool) *Mask {
	if len(cells) != rows*cols {
		panic(fmt.Sprintf("mask: %d cells for a %dx%d table", len(cells), rows, cols))
	}
	copied := make([]bool, len(cells))
	copy(copied, cells)
	return &Mask{rows: rows, cols: cols, cells: copied}
}

// None returns an all-false mask: no cell is pre-revealed.
func None(rows, cols int) *Mask {
	return &Mask{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// Default returns the shipped hint schedule: one revealed cell on each of the
// first five rows (position 2 on rows 0, 3 and 4; position 1 on rows 1 and 2),
// nothing afterwards. The asymmetry is configuration data, not a derived rule.
func Default(rows, cols int) *Mask {
	m := None(rows, cols)
	schedule := []int{2, 1, 1, 2, 2}
	for row, col := range schedule {
		if row < rows && col < cols {
			m.cells[row*cols+col] = true
		}
	}
	return m
}

// Rows reports the number of attempt rows the mask covers.
func (m *Mask) Rows() int { return m.rows }

// Cols reports the number of letter columns the mask covers.
func (m *Mask) Cols() int { return m.cols }

// Masked reports whether the cell at (row, col) is pre-revealed.
// Out-of-range coordinates are a programmer error and panic.
func (m *Mask) Masked(row, col int) bool {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("mask: cell (%d,%d) outside %dx%d table", row, col, m.rows, m.cols))
	}
	return m.cells[row*m.cols+col]
}
