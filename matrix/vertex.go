// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linalg/numeric"
)

// Vertex is a one-dimensional numeric sequence with an Orientation.
// Its length is fixed at creation; orientation toggles in place via T and
// only changes product semantics, never storage.
type Vertex[T numeric.Element] struct {
	data   []T         // owned copy, len fixed
	orient Orientation // Row by default
}

// NewVertex returns a Row vertex holding a copy of values.
// Complexity: O(n).
func NewVertex[T numeric.Element](values ...T) *Vertex[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Vertex[T]{data: data, orient: Row}
}

// NewColumn returns a Column vertex holding a copy of values.
func NewColumn[T numeric.Element](values ...T) *Vertex[T] {
	v := NewVertex(values...)
	v.orient = Column

	return v
}

// newVertexLen allocates a zeroed vertex of length n.
func newVertexLen[T numeric.Element](n int, o Orientation) *Vertex[T] {
	return &Vertex[T]{data: make([]T, n), orient: o}
}

// Len returns the number of elements.
func (v *Vertex[T]) Len() int { return len(v.data) }

// IsEmpty reports whether the vertex has no elements.
func (v *Vertex[T]) IsEmpty() bool { return len(v.data) == 0 }

// Orientation returns the current row/column state.
func (v *Vertex[T]) Orientation() Orientation { return v.orient }

// IsRow reports whether v is a row vertex.
func (v *Vertex[T]) IsRow() bool { return v.orient == Row }

// IsColumn reports whether v is a column vertex.
func (v *Vertex[T]) IsColumn() bool { return v.orient == Column }

// T transposes v in place (O(1)) and returns v for chaining.
// Applying T twice restores the previous state.
func (v *Vertex[T]) T() *Vertex[T] {
	v.orient = v.orient.Transposed()

	return v
}

// Transposed returns a transposed copy, leaving v untouched.
func (v *Vertex[T]) Transposed() *Vertex[T] {
	return v.Clone().T()
}

// At returns element i or ErrOutOfRange.
func (v *Vertex[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T

		return zero, fmt.Errorf("Vertex.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set assigns element i or returns ErrOutOfRange.
func (v *Vertex[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vertex.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the elements.
func (v *Vertex[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy with the same orientation.
func (v *Vertex[T]) Clone() *Vertex[T] {
	c := NewVertex(v.data...)
	c.orient = v.orient

	return c
}

// Equal reports whether v and w have the same orientation and elements.
func (v *Vertex[T]) Equal(w *Vertex[T]) bool {
	if v == nil || w == nil {
		return v == w
	}
	if v.orient != w.orient || len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// Magnitude returns the Euclidean norm √(Σ vᵢ²), computed in float64.
// Orientation is irrelevant.
func (v *Vertex[T]) Magnitude() float64 {
	var sum float64
	for _, x := range v.data {
		f := float64(x)
		sum += f * f
	}

	return math.Sqrt(sum)
}

// Unit returns the L2-normalized float64 copy of v with the same
// orientation. A zero vertex stays zero.
func (v *Vertex[T]) Unit() *Vertex[float64] {
	out := ConvertVertex[float64](v)
	norm := out.Magnitude()
	if norm == 0 {
		return out
	}
	for i := range out.data {
		out.data[i] /= norm
	}

	return out
}

// Inner returns Σ vᵢ² in T arithmetic (may overflow for narrow integer kinds).
func (v *Vertex[T]) Inner() T {
	var sum T
	for _, x := range v.data {
		sum += x * x
	}

	return sum
}

// String renders "[a b c]" for rows and "[a b c]ᵀ" for columns.
func (v *Vertex[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte(']')
	if v.orient == Column {
		sb.WriteString("ᵀ")
	}

	return sb.String()
}
