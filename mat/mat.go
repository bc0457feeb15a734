/*mat contains the small dense-matrix routines used to cross-check the
moment-propagation code: multiplication, transposition and LU-based
determinants. Everything works on row-major float64 matrices and pretty much
everything only works on square matrices because that's all the checks need.
*/
package mat

import (
	"math"
)

// Matrix represents a row-major matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors caches the LU decomposition of a matrix so the determinant can
// be computed without redoing the elimination.
type LUFactors struct {
	lu    Matrix
	pivot []int
	d     float64
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < m1.Height; i++ {
		off := i * m1.Width
		for j := 0; j < m2.Width; j++ {
			outIdx := i*m2.Width + j
			for k := 0; k < m1.Width; k++ {
				out.Vals[outIdx] += m1.Vals[off+k] * m2.Vals[k*m2.Width+j]
			}
		}
	}

	return out
}

// Transpose returns the transpose of a matrix.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(make([]float64, len(m.Vals)), m.Height, m.Width)
	return m.TransposeAt(out)
}

// TransposeAt writes the transpose of a matrix to the specified matrix.
func (m *Matrix) TransposeAt(out *Matrix) *Matrix {
	if out.Width != m.Height || out.Height != m.Width {
		panic("Transposition target has incompatible dimensions.")
	}

	for i := 0; i < m.Height; i++ {
		for j := 0; j < m.Width; j++ {
			out.Vals[j*out.Width+i] = m.Vals[i*m.Width+j]
		}
	}

	return out
}

// Determinant computes the determinant of a matrix.
func (m *Matrix) Determinant() float64 {
	lu := m.LU()
	return lu.Determinant()
}

// LU returns the LU decomposition of a matrix.
func (m *Matrix) LU() *LUFactors {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	luf := &LUFactors{}
	n := m.Width
	luf.lu.Vals = make([]float64, n*n)
	luf.lu.Width, luf.lu.Height = n, n
	luf.pivot = make([]int, n)
	luf.d = 1

	m.luFactorsAt(luf)
	return luf
}

// luFactorsAt performs Crout's method with partial pivoting.
func (m *Matrix) luFactorsAt(luf *LUFactors) {
	n := m.Width
	lu := luf.lu.Vals
	copy(lu, m.Vals)

	// Implicit scaling of each row.
	scale := make([]float64, n)
	for i := 0; i < n; i++ {
		max := 0.0
		for j := 0; j < n; j++ {
			if v := math.Abs(lu[i*n+j]); v > max {
				max = v
			}
		}
		if max == 0 {
			panic("Singular matrix given to LU().")
		}
		scale[i] = 1 / max
	}

	for k := 0; k < n; k++ {
		// Find the pivot row.
		max, iMax := 0.0, k
		for i := k; i < n; i++ {
			if v := scale[i] * math.Abs(lu[i*n+k]); v > max {
				max, iMax = v, i
			}
		}

		if k != iMax {
			for j := 0; j < n; j++ {
				lu[iMax*n+j], lu[k*n+j] = lu[k*n+j], lu[iMax*n+j]
			}
			luf.d = -luf.d
			scale[iMax] = scale[k]
		}
		luf.pivot[k] = iMax

		if lu[k*n+k] == 0 {
			lu[k*n+k] = 1e-300
		}

		for i := k + 1; i < n; i++ {
			lu[i*n+k] /= lu[k*n+k]
			for j := k + 1; j < n; j++ {
				lu[i*n+j] -= lu[i*n+k] * lu[k*n+j]
			}
		}
	}
}

// Determinant computes the determinant from the cached decomposition.
func (luf *LUFactors) Determinant() float64 {
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < n; i++ {
		d *= lu[i*n+i]
	}
	return d
}
