package symbolic

import (
	"fmt"
	"strings"
)

// ============================================================
// Poly: dense univariate polynomial over Q
// ============================================================

// Poly is an immutable polynomial in one named variable. Coefficients are
// stored lowest degree first with no trailing zeros, so the zero polynomial
// has no coefficients and degree -1.
type Poly struct {
	v string
	c []*Num
}

// NewPoly builds a polynomial from coefficients listed highest degree first,
// the order a CoefficientSet is written in: NewPoly("x", 1, 0, -4) is x^2 - 4.
func NewPoly(varName string, coeffs ...*Num) *Poly {
	c := make([]*Num, len(coeffs))
	for i, k := range coeffs {
		c[len(coeffs)-1-i] = k
	}
	return trimmed(varName, c)
}

// Monomial returns coeff*x^deg.
func Monomial(varName string, coeff *Num, deg int) *Poly {
	c := make([]*Num, deg+1)
	for i := range c {
		c[i] = N(0)
	}
	c[deg] = coeff
	return trimmed(varName, c)
}

func Constant(varName string, k *Num) *Poly { return trimmed(varName, []*Num{k}) }
func Zero(varName string) *Poly             { return &Poly{v: varName} }

func trimmed(varName string, c []*Num) *Poly {
	n := len(c)
	for n > 0 && c[n-1].IsZero() {
		n--
	}
	out := make([]*Num, n)
	copy(out, c[:n])
	return &Poly{v: varName, c: out}
}

func (p *Poly) Var() string      { return p.v }
func (p *Poly) Degree() int      { return len(p.c) - 1 }
func (p *Poly) IsZero() bool     { return len(p.c) == 0 }
func (p *Poly) exprType() string { return "poly" }

// Coeff returns the coefficient of x^k, zero outside the stored range.
func (p *Poly) Coeff(k int) *Num {
	if k < 0 || k >= len(p.c) {
		return N(0)
	}
	return p.c[k]
}

// Lead returns the leading coefficient, zero for the zero polynomial.
func (p *Poly) Lead() *Num { return p.Coeff(p.Degree()) }

// Coeffs lists coefficients highest degree first.
func (p *Poly) Coeffs() []*Num {
	out := make([]*Num, len(p.c))
	for i, k := range p.c {
		out[len(p.c)-1-i] = k
	}
	return out
}

func (p *Poly) Add(o *Poly) *Poly {
	n := max(len(p.c), len(o.c))
	c := make([]*Num, n)
	for i := range c {
		c[i] = p.Coeff(i).Add(o.Coeff(i))
	}
	return trimmed(p.v, c)
}

func (p *Poly) Neg() *Poly        { return p.Scale(N(-1)) }
func (p *Poly) Sub(o *Poly) *Poly { return p.Add(o.Neg()) }

func (p *Poly) Scale(k *Num) *Poly {
	c := make([]*Num, len(p.c))
	for i, x := range p.c {
		c[i] = x.Mul(k)
	}
	return trimmed(p.v, c)
}

func (p *Poly) Mul(o *Poly) *Poly {
	if p.IsZero() || o.IsZero() {
		return Zero(p.v)
	}
	c := make([]*Num, len(p.c)+len(o.c)-1)
	for i := range c {
		c[i] = N(0)
	}
	for i, a := range p.c {
		for j, b := range o.c {
			c[i+j] = c[i+j].Add(a.Mul(b))
		}
	}
	return trimmed(p.v, c)
}

func (p *Poly) Pow(n int) *Poly {
	acc := Constant(p.v, N(1))
	for i := 0; i < n; i++ {
		acc = acc.Mul(p)
	}
	return acc
}

// DivMod performs exact long division p = q*d + r with deg r < deg d.
func (p *Poly) DivMod(d *Poly) (q, r *Poly, err error) {
	if d.IsZero() {
		return nil, nil, fmt.Errorf("%w: zero polynomial divisor", ErrZeroDivisor)
	}
	if p.Degree() < d.Degree() {
		return Zero(p.v), p, nil
	}
	rem := make([]*Num, len(p.c))
	copy(rem, p.c)
	quo := make([]*Num, p.Degree()-d.Degree()+1)
	for i := range quo {
		quo[i] = N(0)
	}
	lead := d.Lead()
	for k := p.Degree(); k >= d.Degree(); k-- {
		if rem[k].IsZero() {
			continue
		}
		t := rem[k].Quo(lead)
		quo[k-d.Degree()] = t
		for j, dj := range d.c {
			rem[k-d.Degree()+j] = rem[k-d.Degree()+j].Sub(t.Mul(dj))
		}
	}
	return trimmed(p.v, quo), trimmed(p.v, rem), nil
}

// Monic scales p so its leading coefficient is 1.
func (p *Poly) Monic() *Poly {
	if p.IsZero() {
		return p
	}
	return p.Scale(p.Lead().Inv())
}

// GCD returns the monic greatest common divisor of p and o.
func GCD(p, o *Poly) *Poly {
	a, b := p, o
	for !b.IsZero() {
		_, r, _ := a.DivMod(b)
		a, b = b, r
	}
	return a.Monic()
}

// Eval evaluates p at x by Horner's rule.
func (p *Poly) Eval(x *Num) *Num {
	acc := N(0)
	for k := p.Degree(); k >= 0; k-- {
		acc = acc.Mul(x).Add(p.c[k])
	}
	return acc
}

// EvalSurd evaluates p at a surd. Coefficients are rational, so the result
// stays in the surd's quadratic field.
func (p *Poly) EvalSurd(x Surd) (Surd, error) {
	acc := Rational(N(0))
	for k := p.Degree(); k >= 0; k-- {
		prod, err := acc.Mul(x)
		if err != nil {
			return Surd{}, err
		}
		acc = prod.Shift(p.c[k])
	}
	return acc, nil
}

func (p *Poly) EqualPoly(o *Poly) bool {
	if len(p.c) != len(o.c) {
		return false
	}
	if p.Degree() > 0 && p.v != o.v {
		return false
	}
	for i := range p.c {
		if p.c[i].Cmp(o.c[i]) != 0 {
			return false
		}
	}
	return true
}

func (p *Poly) Equal(other Expr) bool {
	o, ok := other.(*Poly)
	return ok && p.EqualPoly(o)
}

// Terms returns the nonzero monomials highest degree first as expression
// nodes, e.g. -3/2*x^2 becomes Product(-3/2, Power(x, 2)).
func (p *Poly) Terms() []Expr {
	var out []Expr
	for k := p.Degree(); k >= 0; k-- {
		c := p.c[k]
		if c.IsZero() {
			continue
		}
		var base Expr
		switch k {
		case 0:
			out = append(out, c)
			continue
		case 1:
			base = S(p.v)
		default:
			base = Power(S(p.v), k)
		}
		out = append(out, Product(c, base))
	}
	return out
}

func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	return Sum(p.Terms()...).String()
}

// LaTeX prints p highest degree first in sympy's layout: 3 x^{2}, a rational
// coefficient folded into the fraction as \frac{3 x^{2}}{2}, and binary signs
// between terms.
func (p *Poly) LaTeX() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for k := p.Degree(); k >= 0; k-- {
		c := p.c[k]
		if c.IsZero() {
			continue
		}
		neg := c.IsNegative()
		switch {
		case first && neg && k == 0 && c.IsInteger():
			sb.WriteString("-")
		case first && neg:
			sb.WriteString("- ")
		case neg:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		sb.WriteString(termLaTeX(c.Abs(), p.v, k))
		first = false
	}
	return sb.String()
}

func termLaTeX(c *Num, varName string, k int) string {
	power := ""
	switch k {
	case 0:
	case 1:
		power = varName
	default:
		power = fmt.Sprintf("%s^{%d}", varName, k)
	}
	if power == "" {
		return c.LaTeX()
	}
	num := c.Numer().String()
	if num == "1" {
		num = power
	} else {
		num += " " + power
	}
	if c.IsInteger() {
		return num
	}
	return fmt.Sprintf("\\frac{%s}{%s}", num, c.Denom().String())
}
