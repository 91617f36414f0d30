// SPDX-License-Identifier: MIT

// Package simplex: tableau construction and the two phases.
//
// Layout (one Dense, m+1 rows):
//
//	cols  [ x⁺ (n) | x⁻ (n) | slacks (s) | artificials (m) | rhs ]
//	rows  m constraint rows, then the reduced-cost row (rhs entry = −z)
//
// Every pivot goes through matrix.Pivot, which also updates the cost row.

package simplex

import (
	"math"

	"github.com/katalvlaran/conedual/matrix"
	"github.com/katalvlaran/conedual/model"
	"github.com/katalvlaran/conedual/solver"
)

type tableau struct {
	t        *matrix.Dense
	m, n     int // constraint rows, original variables
	nSlack   int
	rowOf    []int  // tableau row → lp row
	flipped  []bool // row multiplied by −1 to make rhs ≥ 0
	basis    []int
	artStart int
	rhs      int
	tol      float64
	iters    int
	maxIter  int
}

func newTableau(p *lp, tol float64, maxIter int) (*tableau, error) {
	tb := &tableau{n: len(p.cols), tol: tol, maxIter: maxIter}
	for i, k := range p.kinds {
		if k == rowFree {
			continue
		}
		tb.rowOf = append(tb.rowOf, i)
		if k != rowZero {
			tb.nSlack++
		}
	}
	tb.m = len(tb.rowOf)
	tb.artStart = 2*tb.n + tb.nSlack
	tb.rhs = tb.artStart + tb.m
	t, err := matrix.NewDense(tb.m+1, tb.rhs+1)
	if err != nil {
		return nil, err
	}
	tb.t = t
	tb.flipped = make([]bool, tb.m)
	tb.basis = make([]int, tb.m)

	slack := 2 * tb.n
	for r, i := range tb.rowOf {
		row, _ := t.RowView(r)
		for j, a := range p.a[i] {
			row[j], row[tb.n+j] = a, -a
		}
		switch p.kinds[i] {
		case rowNonneg: // a x − s = −b
			row[slack] = -1
			slack++
		case rowNonpos: // a x + s = −b
			row[slack] = 1
			slack++
		}
		row[tb.rhs] = -p.b[i]
		if row[tb.rhs] < 0 {
			for j := range row {
				row[j] = -row[j]
			}
			tb.flipped[r] = true
		}
		row[tb.artStart+r] = 1
		tb.basis[r] = tb.artStart + r
	}

	return tb, nil
}

// setCosts writes costs into the last row and prices out the basis.
func (tb *tableau) setCosts(cost []float64) {
	z, _ := tb.t.RowView(tb.m)
	copy(z, cost)
	z[tb.rhs] = 0
	for r, bv := range tb.basis {
		cb := cost[bv]
		if cb == 0 {
			continue
		}
		row, _ := tb.t.RowView(r)
		for j := range z {
			z[j] -= cb * row[j]
		}
	}
}

type phaseResult int

const (
	phaseOptimal phaseResult = iota
	phaseUnbounded
	phaseLimit
)

// run pivots with Bland's rule over columns [0, limit) until optimal.
func (tb *tableau) run(limit int) (phaseResult, error) {
	z, _ := tb.t.RowView(tb.m)
	for {
		enter := -1
		for j := 0; j < limit; j++ {
			if z[j] < -tb.tol {
				enter = j
				break
			}
		}
		if enter < 0 {
			return phaseOptimal, nil
		}
		leave, best := -1, math.Inf(1)
		for r := 0; r < tb.m; r++ {
			row, _ := tb.t.RowView(r)
			if row[enter] <= tb.tol {
				continue
			}
			ratio := row[tb.rhs] / row[enter]
			if ratio < best-tb.tol || (ratio <= best+tb.tol && leave >= 0 && tb.basis[r] < tb.basis[leave]) {
				leave, best = r, ratio
			}
		}
		if leave < 0 {
			return phaseUnbounded, nil
		}
		if tb.iters >= tb.maxIter {
			return phaseLimit, nil
		}
		if err := matrix.Pivot(tb.t, leave, enter); err != nil {
			return phaseOptimal, err
		}
		tb.basis[leave] = enter
		tb.iters++
	}
}

// driveOutArtificials pivots basic artificials (at zero level) onto any
// structural column; rows without one are redundant and keep their artificial.
func (tb *tableau) driveOutArtificials() error {
	for r, bv := range tb.basis {
		if bv < tb.artStart {
			continue
		}
		row, _ := tb.t.RowView(r)
		for j := 0; j < tb.artStart; j++ {
			if math.Abs(row[j]) > tb.tol {
				if err := matrix.Pivot(tb.t, r, j); err != nil {
					return err
				}
				tb.basis[r] = j
				break
			}
		}
	}
	return nil
}

// solve runs both phases on p and extracts primal values and row multipliers.
func solve(p *lp, tol float64, maxIter int) (*solution, solver.Status, int, error) {
	tb, err := newTableau(p, tol, maxIter)
	if err != nil {
		return nil, solver.NumericalError, 0, err
	}
	width := tb.rhs + 1

	// phase 1: minimize Σ artificials
	cost := make([]float64, width)
	for r := 0; r < tb.m; r++ {
		cost[tb.artStart+r] = 1
	}
	tb.setCosts(cost)
	res, err := tb.run(tb.artStart)
	if err != nil {
		return nil, solver.NumericalError, tb.iters, err
	}
	if res == phaseLimit {
		return nil, solver.IterationLimit, tb.iters, nil
	}
	z, _ := tb.t.RowView(tb.m)
	if -z[tb.rhs] > tol*float64(1+tb.m) {
		return nil, solver.Infeasible, tb.iters, nil
	}
	if err := tb.driveOutArtificials(); err != nil {
		return nil, solver.NumericalError, tb.iters, err
	}

	// phase 2: minimize ±cᵀx
	sign := 1.0
	switch p.sense {
	case model.Maximize:
		sign = -1
	case model.Feasibility:
		sign = 0
	}
	cost = make([]float64, width)
	for j, c := range p.c {
		cost[j], cost[tb.n+j] = sign*c, -sign*c
	}
	tb.setCosts(cost)
	res, err = tb.run(tb.artStart)
	if err != nil {
		return nil, solver.NumericalError, tb.iters, err
	}
	switch res {
	case phaseUnbounded:
		return nil, solver.DualInfeasible, tb.iters, nil
	case phaseLimit:
		return nil, solver.IterationLimit, tb.iters, nil
	}

	return tb.extract(p), solver.Optimal, tb.iters, nil
}

func (tb *tableau) extract(p *lp) *solution {
	u := make([]float64, tb.artStart)
	for r, bv := range tb.basis {
		if bv < tb.artStart {
			v, _ := tb.t.At(r, tb.rhs)
			u[bv] = v
		}
	}
	sol := &solution{x: make([]float64, tb.n), y: make([]float64, len(p.a)), objv: p.c0}
	for j := 0; j < tb.n; j++ {
		sol.x[j] = u[j] - u[tb.n+j]
		sol.objv += p.c[j] * sol.x[j]
	}

	// multiplier of tableau row r = −(reduced cost of its artificial)
	z, _ := tb.t.RowView(tb.m)
	for r, i := range tb.rowOf {
		y := -z[tb.artStart+r]
		if tb.flipped[r] {
			y = -y
		}
		sol.y[i] = y
	}

	return sol
}
