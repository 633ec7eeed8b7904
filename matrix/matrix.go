// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/numeric"
)

// Matrix is a row-major grid of width×height values.
// Invariant: len(data) == width*height. Row j occupies data[j*width:(j+1)*width].
type Matrix[T numeric.Element] struct {
	data          []T // flat backing storage
	width, height int // columns, rows
}

// New builds a Matrix from a rectangular sequence of rows.
// An empty rows slice yields the 0×0 matrix.
// Errors: ErrRaggedRows if rows differ in length.
// Complexity: O(width*height).
func New[T numeric.Element](rows [][]T) (*Matrix[T], error) {
	height := len(rows)
	if height == 0 {
		return &Matrix[T]{}, nil
	}
	width := len(rows[0])
	data := make([]T, 0, width*height)
	for j, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("New: row %d has %d values, want %d: %w", j, len(row), width, ErrRaggedRows)
		}
		data = append(data, row...)
	}

	return &Matrix[T]{data: data, width: width, height: height}, nil
}

// Zeros returns a zero-filled matrix of the given shape.
// Errors: ErrBadShape on negative dimensions.
func Zeros[T numeric.Element](width, height int) (*Matrix[T], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("Zeros(%d,%d): %w", width, height, ErrBadShape)
	}

	return newMatrix[T](width, height), nil
}

// newMatrix allocates without validation; callers guarantee non-negative dims.
func newMatrix[T numeric.Element](width, height int) *Matrix[T] {
	return &Matrix[T]{data: make([]T, width*height), width: width, height: height}
}

// Width returns the number of columns.
func (m *Matrix[T]) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix[T]) Height() int { return m.height }

// Shape returns [width, height].
func (m *Matrix[T]) Shape() [2]int { return [2]int{m.width, m.height} }

// Len returns width*height.
func (m *Matrix[T]) Len() int { return len(m.data) }

// IsEmpty reports whether the matrix holds no values.
func (m *Matrix[T]) IsEmpty() bool { return len(m.data) == 0 }

// IsSquare reports width == height.
func (m *Matrix[T]) IsSquare() bool { return m.width == m.height }

// at is the unchecked accessor for row j, column i.
func (m *Matrix[T]) at(j, i int) T { return m.data[j*m.width+i] }

// At returns the value at row j, column i.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) At(j, i int) (T, error) {
	if j < 0 || j >= m.height || i < 0 || i >= m.width {
		var zero T

		return zero, fmt.Errorf("Matrix.At(%d,%d): %w", j, i, ErrOutOfRange)
	}

	return m.at(j, i), nil
}

// Set assigns x at row j, column i.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Set(j, i int, x T) error {
	if j < 0 || j >= m.height || i < 0 || i >= m.width {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", j, i, ErrOutOfRange)
	}
	m.data[j*m.width+i] = x

	return nil
}

// Row returns row j as a sub-slice of the backing storage (writes are
// visible in m; capacity is clipped so appends never alias the next row).
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Row(j int) ([]T, error) {
	if j < 0 || j >= m.height {
		return nil, fmt.Errorf("Matrix.Row(%d): %w", j, ErrOutOfRange)
	}

	return m.row(j), nil
}

func (m *Matrix[T]) row(j int) []T {
	lo, hi := j*m.width, (j+1)*m.width

	return m.data[lo:hi:hi]
}

// Column returns a copy of column i.
// Errors: ErrOutOfRange.
func (m *Matrix[T]) Column(i int) ([]T, error) {
	if i < 0 || i >= m.width {
		return nil, fmt.Errorf("Matrix.Column(%d): %w", i, ErrOutOfRange)
	}
	out := make([]T, m.height)
	for j := range out {
		out[j] = m.at(j, i)
	}

	return out, nil
}

// Values returns a copy of the flat row-major storage.
func (m *Matrix[T]) Values() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Rows returns a deep copy as a slice of rows.
func (m *Matrix[T]) Rows() [][]T {
	out := make([][]T, m.height)
	for j := range out {
		out[j] = append([]T(nil), m.row(j)...)
	}

	return out
}

// Clone returns a deep copy.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{data: m.Values(), width: m.width, height: m.height}
}

// T transposes m in place (swaps width/height, permutes storage) and
// returns m for chaining. T is self-inverse.
// Complexity: O(width*height) time and memory.
func (m *Matrix[T]) T() *Matrix[T] {
	w, h := m.width, m.height
	if w > 1 && h > 1 {
		out := make([]T, len(m.data))
		for j := 0; j < h; j++ {
			base := j * w
			for i := 0; i < w; i++ {
				out[i*h+j] = m.data[base+i]
			}
		}
		m.data = out
	}
	m.width, m.height = h, w

	return m
}

// Transposed returns a transposed copy, leaving m untouched.
func (m *Matrix[T]) Transposed() *Matrix[T] {
	return m.Clone().T()
}

// Equal reports whether m and o have identical shape and values.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.width != o.width || m.height != o.height {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for j := 0; j < m.height; j++ {
		sb.WriteByte('[')
		for i := 0; i < m.width; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.at(j, i))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
