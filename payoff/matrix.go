// SPDX-License-Identifier: MIT

package payoff

import "math"

// Matrix is an immutable rectangular table of finite real payoffs, stored
// row-major. The zero value is not usable; construct via New or Parse.
//
// Invariants (established by New, assumed everywhere else):
//   - Rows() ≥ 1, Cols() ≥ 1,
//   - every entry is finite.
type Matrix struct {
	rows int
	cols int
	data []float64 // row-major, len == rows*cols
}

// New builds a Matrix from a nested slice of rows, deep-copying the input.
//
// Returns ErrBadShape if the table is empty or not rectangular, and ErrNaNInf
// if any entry is NaN or ±Inf. Mutating the input afterwards does not affect
// the constructed Matrix.
//
// Complexity: O(rows·cols) time and space.
func New(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	for _, r := range rows[1:] {
		if len(r) != cols {
			return nil, ErrBadShape
		}
	}

	m := &Matrix{rows: len(rows), cols: cols, data: make([]float64, len(rows)*cols)}
	var k int
	for _, r := range rows {
		for _, v := range r {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			m.data[k] = v
			k++
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// At returns the entry at row i, column j. Indices out of range are a
// programmer error and panic. Complexity: O(1).
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("payoff: index out of range")
	}

	return m.data[i*m.cols+j]
}

// Row returns a copy of row i. Complexity: O(cols).
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out
}

// Clone returns an independent deep copy. Complexity: O(rows·cols).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Transpose returns a new Matrix with rows and columns exchanged.
// Complexity: O(rows·cols).
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}

	return out
}

// Scale returns a new Matrix with every entry multiplied by k.
// Complexity: O(rows·cols).
func (m *Matrix) Scale(k float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= k
	}

	return out
}

// Shift returns a new Matrix with c added to every entry.
// Complexity: O(rows·cols).
func (m *Matrix) Shift(c float64) *Matrix {
	out := m.Clone()
	for i := range out.data {
		out.data[i] += c
	}

	return out
}

// Neg returns a new Matrix with every entry negated: the same game seen from
// the column player's side (combine with Transpose to swap the players).
// Complexity: O(rows·cols).
func (m *Matrix) Neg() *Matrix { return m.Scale(-1) }

// Submatrix returns a new Matrix restricted to the given row and column
// indices, in the given order. Empty or out-of-range index sets are a
// programmer error and panic (the solver only ever passes surviving indices).
//
// Complexity: O(len(rows)·len(cols)).
func (m *Matrix) Submatrix(rows, cols []int) *Matrix {
	if len(rows) == 0 || len(cols) == 0 {
		panic("payoff: empty submatrix selection")
	}
	out := &Matrix{rows: len(rows), cols: len(cols), data: make([]float64, len(rows)*len(cols))}
	var k int
	for _, i := range rows {
		for _, j := range cols {
			out.data[k] = m.At(i, j)
			k++
		}
	}

	return out
}

// Min returns the smallest entry. Complexity: O(rows·cols).
func (m *Matrix) Min() float64 {
	min := m.data[0]
	for _, v := range m.data[1:] {
		if v < min {
			min = v
		}
	}

	return min
}

// MaxAbs returns the largest entry magnitude, used to derive the relative
// comparison tolerance. Complexity: O(rows·cols).
func (m *Matrix) MaxAbs() float64 {
	var max float64
	for _, v := range m.data {
		if a := math.Abs(v); a > max {
			max = a
		}
	}

	return max
}
