// Package models builds the algebraic forms exercises are made of from
// randomly sampled lattice coefficients: the expanded and factored quadratic
// and the rational function p(x)/q(x).
//
// Every constructor takes the *rand.Rand it samples from, so a model is a
// pure function of the rng state. Models are values; nothing mutates them
// after construction.
package models

import (
	"math/rand"

	"github.com/njchilds90/nadlogar/lattice"
	"github.com/njchilds90/nadlogar/symbolic"
)

// Var is the variable every model is written in.
const Var = "x"

// Quadratic is a*x^2 + b*x + c. A is nonzero whenever it comes from a
// lattice, since lattices exclude zero.
type Quadratic struct {
	A, B, C *symbolic.Num
}

// NewQuadratic draws a, b, c independently from set.
func NewQuadratic(r *rand.Rand, set lattice.Set) Quadratic {
	a := set.Pick(r)
	b := set.Pick(r)
	c := set.Pick(r)
	return Quadratic{A: a, B: b, C: c}
}

// Poly returns the expanded polynomial.
func (q Quadratic) Poly() *symbolic.Poly { return symbolic.NewPoly(Var, q.A, q.B, q.C) }

// Factored is a*(x - x1)*(x - x2), kept unevaluated for display.
type Factored struct {
	A, X1, X2 *symbolic.Num
}

// NewFactored draws the leading coefficient from lead and both roots from
// roots; the two sets may span different bounds.
func NewFactored(r *rand.Rand, lead, roots lattice.Set) Factored {
	a := lead.Pick(r)
	x1 := roots.Pick(r)
	x2 := roots.Pick(r)
	return Factored{A: a, X1: x1, X2: x2}
}

// Expr returns the product a*(x - x1)*(x - x2) without expanding it.
func (f Factored) Expr() symbolic.Expr {
	x := symbolic.S(Var)
	return symbolic.Product(f.A, symbolic.Sum(x, f.X1.Neg()), symbolic.Sum(x, f.X2.Neg()))
}

// Expand multiplies the factors out.
func (f Factored) Expand() *symbolic.Poly {
	p, err := symbolic.Expand(f.Expr(), Var)
	if err != nil {
		// The tree holds only numbers and Var.
		panic(err)
	}
	return p
}

// RationalFunction is (p3*x^3 + p2*x^2 + p1*x) / (q2*x^2 + q1*x + q0).
// The numerator's constant term is fixed at 0, so x = 0 is always a zero.
// Common factors are never cancelled.
type RationalFunction struct {
	Numerator   *symbolic.Poly
	Denominator *symbolic.Poly
}

// NewRationalFunction draws p3, p2, p1 and q2, q1, q0 from set.
func NewRationalFunction(r *rand.Rand, set lattice.Set) RationalFunction {
	p3, p2, p1 := set.Pick(r), set.Pick(r), set.Pick(r)
	q2, q1, q0 := set.Pick(r), set.Pick(r), set.Pick(r)
	return RationalFunction{
		Numerator:   symbolic.NewPoly(Var, p3, p2, p1, symbolic.N(0)),
		Denominator: symbolic.NewPoly(Var, q2, q1, q0),
	}
}

// NumeratorBlock is the quadratic p3*x^2 + p2*x + p1 left after factoring
// x out of the numerator.
func (f RationalFunction) NumeratorBlock() Quadratic {
	return Quadratic{A: f.Numerator.Coeff(3), B: f.Numerator.Coeff(2), C: f.Numerator.Coeff(1)}
}

// DenominatorQuadratic views the denominator as q2*x^2 + q1*x + q0.
func (f RationalFunction) DenominatorQuadratic() Quadratic {
	return Quadratic{A: f.Denominator.Coeff(2), B: f.Denominator.Coeff(1), C: f.Denominator.Coeff(0)}
}

// Expr is the unevaluated quotient.
func (f RationalFunction) Expr() symbolic.Expr {
	return symbolic.Ratio(f.Numerator, f.Denominator)
}
