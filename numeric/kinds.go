// SPDX-License-Identifier: MIT

package numeric

import "math"

// Signed is the set of signed integer kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer kinds.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is the union of Signed and Unsigned.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point kinds.
type Float interface {
	~float32 | ~float64
}

// Element is every kind a Vertex or Matrix may hold.
type Element interface {
	Integer | Float
}

// IsFloat reports whether T is a floating-point kind.
// Complexity: O(1).
func IsFloat[T Element]() bool {
	half := 0.5

	return T(half) != 0 // integer kinds truncate 0.5 to zero
}

// IsUnsigned reports whether T is an unsigned integer kind.
// Complexity: O(1).
func IsUnsigned[T Element]() bool {
	var zero T

	return zero-1 > 0 // only unsigned kinds wrap around
}

// ToFloat64 widens x to float64.
// Integers beyond 2^53 lose their low bits; this is the documented promotion
// used by every decomposition-based algorithm.
func ToFloat64[T Element](x T) float64 {
	return float64(x)
}

// FromFloat64 narrows f to T (truncation toward zero for integer kinds).
func FromFloat64[T Element](f float64) T {
	return T(f)
}

// Abs returns |x| as float64 for any Element kind.
func Abs[T Element](x T) float64 {
	return math.Abs(float64(x))
}
