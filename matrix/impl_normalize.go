// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/linalg/numeric"
)

// Normalize returns a float64 copy of m whose every column has unit L2 norm.
// Columns that are entirely zero stay zero.
// Errors: ErrNilOperand.
// Complexity: O(width*height).
func Normalize[T numeric.Element](m *Matrix[T]) (*Matrix[float64], error) {
	if err := validateMatrix(m); err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	out := promote(m)

	norms := make([]float64, out.width)
	for j := 0; j < out.height; j++ {
		for i, x := range out.row(j) {
			norms[i] += x * x
		}
	}
	for i := range norms {
		norms[i] = math.Sqrt(norms[i])
	}
	for j := 0; j < out.height; j++ {
		row := out.row(j)
		for i := range row {
			if norms[i] != 0 {
				row[i] /= norms[i]
			}
		}
	}

	return out, nil
}
