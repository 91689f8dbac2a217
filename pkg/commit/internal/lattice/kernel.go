package lattice

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// KernelVector returns a non-zero column vector x with a*x = 0 mod q, or nil
// when a has full column rank. q must be prime.
//
// For a wide uniform matrix the result is a uniform-looking vector whose
// norm is far above any binding bound, which is exactly the collision the
// shortness check exists to exclude.
func KernelVector(a *Matrix) *Matrix {
	q := a.q
	r := a.Clone()
	pivotCol := make([]int, 0, r.rows)
	row := 0
	for col := 0; col < r.cols && row < r.rows; col++ {
		p := -1
		for i := row; i < r.rows; i++ {
			if r.At(i, col) != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		r.swapRows(p, row)
		inv := ring.ModExp(r.At(row, col), q-2, q)
		r.scaleRow(row, inv)
		for i := 0; i < r.rows; i++ {
			if i != row && r.At(i, col) != 0 {
				r.subRow(i, row, r.At(i, col))
			}
		}
		pivotCol = append(pivotCol, col)
		row++
	}

	free := -1
	isPivot := make([]bool, r.cols)
	for _, c := range pivotCol {
		isPivot[c] = true
	}
	for c := 0; c < r.cols; c++ {
		if !isPivot[c] {
			free = c
			break
		}
	}
	if free < 0 {
		return nil
	}
	x := NewMatrix(r.cols, 1, q)
	x.Set(free, 0, 1)
	for i, c := range pivotCol {
		x.Set(c, 0, q-r.At(i, free))
	}
	return x
}

func (m *Matrix) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

func (m *Matrix) scaleRow(i int, k uint64) {
	for c := 0; c < m.cols; c++ {
		m.data[i*m.cols+c] = ring.BRed(m.data[i*m.cols+c], k, m.q, m.bred)
	}
}

// subRow sets row i to row i - k*row j.
func (m *Matrix) subRow(i, j int, k uint64) {
	if i == j {
		panic(fmt.Sprintf("lattice: subRow on the same row %d", i))
	}
	for c := 0; c < m.cols; c++ {
		t := ring.BRed(m.data[j*m.cols+c], k, m.q, m.bred)
		m.data[i*m.cols+c] = ring.CRed(m.data[i*m.cols+c]+m.q-t, m.q)
	}
}
