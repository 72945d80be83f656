// Package symbolic is the exact arithmetic kernel behind the exercise
// generator.
//
// Design goals:
//   - Exact rational arithmetic (math/big.Rat), never floating point
//   - Unevaluated expression trees for display forms that must not be expanded
//   - Dense univariate polynomials over Q with exact long division
//   - Quadratic surds p + q*sqrt(d) so quadratic roots stay exact, real or complex
//   - Stable, sympy-compatible LaTeX output
package symbolic

import (
	"fmt"
	"math/big"
)

// ============================================================
// Num: exact rational number
// ============================================================

// Num is an immutable, always reduced rational number.
type Num struct{ val *big.Rat }

func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// F returns p/q. A zero denominator is a programming error and panics.
func F(p, q int64) *Num {
	if q == 0 {
		panic("symbolic: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NRat copies r into a Num.
func NRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) Rat() *big.Rat    { return new(big.Rat).Set(n.val) }
func (n *Num) Numer() *big.Int  { return new(big.Int).Set(n.val.Num()) }
func (n *Num) Denom() *big.Int  { return new(big.Int).Set(n.val.Denom()) }
func (n *Num) Sign() int        { return n.val.Sign() }
func (n *Num) Cmp(o *Num) int   { return n.val.Cmp(o.val) }
func (n *Num) IsZero() bool     { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool      { return n.val.Cmp(big.NewRat(1, 1)) == 0 }
func (n *Num) IsInteger() bool  { return n.val.IsInt() }
func (n *Num) IsNegative() bool { return n.val.Sign() < 0 }
func (n *Num) exprType() string { return "num" }
func (n *Num) Add(o *Num) *Num  { return &Num{val: new(big.Rat).Add(n.val, o.val)} }
func (n *Num) Sub(o *Num) *Num  { return &Num{val: new(big.Rat).Sub(n.val, o.val)} }
func (n *Num) Mul(o *Num) *Num  { return &Num{val: new(big.Rat).Mul(n.val, o.val)} }
func (n *Num) Neg() *Num        { return &Num{val: new(big.Rat).Neg(n.val)} }
func (n *Num) Abs() *Num        { return &Num{val: new(big.Rat).Abs(n.val)} }

// Quo returns n/o and panics when o is zero; callers check their divisors.
func (n *Num) Quo(o *Num) *Num {
	if o.IsZero() {
		panic("symbolic: division by zero")
	}
	return &Num{val: new(big.Rat).Quo(n.val, o.val)}
}

// Inv returns 1/n.
func (n *Num) Inv() *Num        { return N(1).Quo(n) }

// Equal reports structural equality with another expression.
func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.val.Cmp(o.val) == 0
}

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

// LaTeX renders integers plainly and fractions as \frac{p}{q}; a negative
// fraction gets a detached "- " the way sympy prints it.
func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "- "
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}
