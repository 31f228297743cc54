package math3d

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense rows x cols grid of float64, stored row-major.
//
// Shape mismatches are programming errors: Mul, Vector3 and Transform panic
// instead of returning an error.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix returns a zero matrix of the given shape.
func NewMatrix(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("math3d: invalid matrix shape %dx%d", rows, cols))
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// MatrixFromRows builds a matrix from a slice of equally sized rows.
func MatrixFromRows(rows [][]float64) *Matrix {
	if len(rows) == 0 {
		panic("math3d: matrix needs at least one row")
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.cols {
			panic(fmt.Sprintf("math3d: row %d has %d columns, want %d", r, len(row), m.cols))
		}
		copy(m.data[r*m.cols:], row)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func (m *Matrix) Rows() int { return m.rows }
func (m *Matrix) Cols() int { return m.cols }

func (m *Matrix) At(r, c int) float64 { return m.data[m.index(r, c)] }

func (m *Matrix) Set(r, c int, v float64) { m.data[m.index(r, c)] = v }

func (m *Matrix) index(r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("math3d: index (%d,%d) out of range for %dx%d matrix", r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

// Mul returns m·o. It panics unless m.Cols() == o.Rows().
func (m *Matrix) Mul(o *Matrix) *Matrix {
	if m.cols != o.rows {
		panic(fmt.Sprintf("math3d: invalid dimension %d != %d", m.cols, o.rows))
	}
	r := NewMatrix(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < o.cols; j++ {
			var sum float64
			for k := 0; k < m.cols; k++ {
				sum += m.data[i*m.cols+k] * o.data[k*o.cols+j]
			}
			r.data[i*r.cols+j] = sum
		}
	}
	return r
}

func (m *Matrix) Transpose() *Matrix {
	r := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.data[j*r.cols+i] = m.data[i*m.cols+j]
		}
	}
	return r
}

// Equal reports whether m and o have the same shape and every entry
// differs by at most tol.
func (m *Matrix) Equal(o *Matrix, tol float64) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-o.data[i]) > tol {
			return false
		}
	}
	return true
}

// Vector3 reads a 3x1 column matrix back as a vector.
func (m *Matrix) Vector3() Vector3 {
	if m.rows != 3 || m.cols != 1 {
		panic(fmt.Sprintf("math3d: invalid dimensions of matrix %dx%d, want 3x1", m.rows, m.cols))
	}
	return Vector3{m.data[0], m.data[1], m.data[2]}
}

func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%.4f", m.data[i*m.cols+j])
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// Transform applies the 4x4 homogeneous transform m to p taken as the row
// vector (x, y, z, 1) and returns the result divided by w. Every projection
// goes through here.
func Transform(p Vector3, m *Matrix) Vector3 {
	if m.rows != 4 || m.cols != 4 {
		panic(fmt.Sprintf("math3d: transform needs a 4x4 matrix, got %dx%d", m.rows, m.cols))
	}
	d := m.data
	x := p.X*d[0] + p.Y*d[4] + p.Z*d[8] + d[12]
	y := p.X*d[1] + p.Y*d[5] + p.Z*d[9] + d[13]
	z := p.X*d[2] + p.Y*d[6] + p.Z*d[10] + d[14]
	w := 1 / (p.X*d[3] + p.Y*d[7] + p.Z*d[11] + d[15])
	return Vector3{x * w, y * w, z * w}
}
