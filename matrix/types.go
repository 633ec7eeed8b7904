// SPDX-License-Identifier: MIT

// Package matrix: orientation state of a Vertex.
package matrix

// Orientation is the two-state row/column tag carried by every Vertex.
// Transitions happen only through an explicit transpose.
type Orientation uint8

const (
	// Row marks a horizontal (1×n) vertex. It is the zero value.
	Row Orientation = iota
	// Column marks a vertical (n×1) vertex.
	Column
)

// Transposed returns the opposite orientation.
func (o Orientation) Transposed() Orientation {
	if o == Row {
		return Column
	}

	return Row
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == Column {
		return "column"
	}

	return "row"
}

// orientationPair enumerates the four (left, right) orientation states a
// binary vertex operation can meet. Every product entry point switches on it.
type orientationPair uint8

const (
	rowRow orientationPair = iota
	rowColumn
	columnRow
	columnColumn
)

// pairOf classifies (left, right).
func pairOf(left, right Orientation) orientationPair {
	switch {
	case left == Row && right == Row:
		return rowRow
	case left == Row:
		return rowColumn
	case right == Row:
		return columnRow
	default:
		return columnColumn
	}
}
