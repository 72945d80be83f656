package symbolic

import (
	"fmt"
	"strings"
)

// ============================================================
// Core Interface
// ============================================================

// Expr is an unevaluated expression tree. Constructors never simplify, so
// a product stays a product until Expand is asked for its polynomial.
type Expr interface {
	String() string
	LaTeX() string
	Equal(other Expr) bool
	exprType() string
}

// ============================================================
// Sym: symbolic variable
// ============================================================

type Sym struct{ name string }

func S(name string) *Sym        { return &Sym{name: name} }
func (s *Sym) Name() string     { return s.name }
func (s *Sym) String() string   { return s.name }
func (s *Sym) LaTeX() string    { return s.name }
func (s *Sym) exprType() string { return "sym" }

func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}

// ============================================================
// Add: sum of terms
// ============================================================

type Add struct{ terms []Expr }

// Sum builds an unevaluated sum.
func Sum(terms ...Expr) *Add { return &Add{terms: append([]Expr(nil), terms...)} }

func (a *Add) Terms() []Expr    { return append([]Expr(nil), a.terms...) }
func (a *Add) exprType() string { return "add" }

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	return ok && equalAll(a.terms, o.terms)
}

func (a *Add) String() string { return a.join(Expr.String, "-") }
func (a *Add) LaTeX() string  { return a.join(Expr.LaTeX, "- ") }

// join prints terms with binary signs: a negative term after the first one
// is written as " - |t|" instead of " + -t".
func (a *Add) join(format func(Expr) string, lead string) string {
	if len(a.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range a.terms {
		if n, ok := t.(*Num); ok && i == 0 && n.IsInteger() {
			sb.WriteString(format(n))
			continue
		}
		if abs, ok := negated(t); ok {
			if i == 0 {
				sb.WriteString(lead)
			} else {
				sb.WriteString(" - ")
			}
			sb.WriteString(format(abs))
			continue
		}
		if i > 0 {
			sb.WriteString(" + ")
		}
		if _, nested := t.(*Add); nested {
			sb.WriteString("(" + format(t) + ")")
			continue
		}
		sb.WriteString(format(t))
	}
	return sb.String()
}

// ============================================================
// Mul: product of factors
// ============================================================

type Mul struct{ factors []Expr }

// Product builds an unevaluated product; a*(x-1)*(x+2) keeps its factors.
func Product(factors ...Expr) *Mul { return &Mul{factors: append([]Expr(nil), factors...)} }

func (m *Mul) Factors() []Expr  { return append([]Expr(nil), m.factors...) }
func (m *Mul) exprType() string { return "mul" }

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	return ok && equalAll(m.factors, o.factors)
}

func (m *Mul) String() string {
	neg, parts := m.parts(Expr.String, func(s string) string { return "(" + s + ")" })
	return signed(neg, "-", parts, "*")
}

func (m *Mul) LaTeX() string {
	neg, parts := m.parts(Expr.LaTeX, func(s string) string { return "\\left(" + s + "\\right)" })
	return signed(neg, "- ", parts, " ")
}

func signed(neg bool, minus string, parts []string, sep string) string {
	body := "1"
	if len(parts) > 0 {
		body = strings.Join(parts, sep)
	}
	if neg {
		return minus + body
	}
	return body
}

// parts renders each factor. A leading numeric coefficient of 1 disappears
// and a negative one is reported separately so the caller places the sign.
func (m *Mul) parts(format func(Expr) string, wrap func(string) string) (bool, []string) {
	neg := false
	parts := make([]string, 0, len(m.factors))
	for i, f := range m.factors {
		if n, ok := f.(*Num); ok && i == 0 {
			if n.IsNegative() {
				neg = true
				n = n.Neg()
			}
			if !n.IsOne() {
				parts = append(parts, format(n))
			}
			continue
		}
		switch v := f.(type) {
		case *Add, *Mul:
			parts = append(parts, wrap(format(f)))
		case *Poly:
			if len(v.Terms()) > 1 {
				parts = append(parts, wrap(format(f)))
			} else {
				parts = append(parts, format(f))
			}
		case *Num:
			if v.IsNegative() {
				parts = append(parts, wrap(format(f)))
			} else {
				parts = append(parts, format(f))
			}
		default:
			parts = append(parts, format(f))
		}
	}
	return neg, parts
}

// ============================================================
// Pow: base^n with a non-negative integer exponent
// ============================================================

type Pow struct {
	base Expr
	exp  int
}

// Power builds base^exp. Negative exponents are written with Ratio instead.
func Power(base Expr, exp int) *Pow {
	if exp < 0 {
		panic("symbolic: negative exponent")
	}
	return &Pow{base: base, exp: exp}
}

func (p *Pow) Base() Expr       { return p.base }
func (p *Pow) Exp() int         { return p.exp }
func (p *Pow) exprType() string { return "pow" }

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.exp == o.exp && p.base.Equal(o.base)
}

func (p *Pow) String() string {
	base := p.base.String()
	if needsGrouping(p.base) {
		base = "(" + base + ")"
	}
	return fmt.Sprintf("%s^%d", base, p.exp)
}

func (p *Pow) LaTeX() string {
	base := p.base.LaTeX()
	if needsGrouping(p.base) {
		base = "\\left(" + base + "\\right)"
	}
	return fmt.Sprintf("%s^{%d}", base, p.exp)
}

// ============================================================
// Quo: numerator/denominator, never cancelled
// ============================================================

type Quo struct{ num, den Expr }

// Ratio builds num/den without cancelling common factors.
func Ratio(num, den Expr) *Quo { return &Quo{num: num, den: den} }

func (q *Quo) Numerator() Expr   { return q.num }
func (q *Quo) Denominator() Expr { return q.den }
func (q *Quo) exprType() string  { return "quo" }

func (q *Quo) Equal(other Expr) bool {
	o, ok := other.(*Quo)
	return ok && q.num.Equal(o.num) && q.den.Equal(o.den)
}

func (q *Quo) String() string {
	num, den := q.num.String(), q.den.String()
	if compound(q.num) {
		num = "(" + num + ")"
	}
	if compound(q.den) || q.den.exprType() == "mul" {
		den = "(" + den + ")"
	}
	return num + "/" + den
}

func (q *Quo) LaTeX() string {
	return "\\frac{" + q.num.LaTeX() + "}{" + q.den.LaTeX() + "}"
}

// ============================================================
// Helpers
// ============================================================

func equalAll(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func needsGrouping(e Expr) bool {
	switch v := e.(type) {
	case *Add, *Mul, *Quo, *Pow:
		return true
	case *Num:
		return v.IsNegative() || !v.IsInteger()
	case *Poly:
		return v.Degree() > 0 || v.Lead().IsNegative() || !v.Lead().IsInteger()
	}
	return false
}

// compound reports whether e prints as more than one term.
func compound(e Expr) bool {
	switch v := e.(type) {
	case *Add, *Quo:
		return true
	case *Poly:
		return len(v.Terms()) > 1
	}
	return false
}

// negated returns -e when e carries a visible leading minus sign.
func negated(e Expr) (Expr, bool) {
	switch v := e.(type) {
	case *Num:
		if v.IsNegative() {
			return v.Neg(), true
		}
	case *Mul:
		if len(v.factors) == 0 {
			return nil, false
		}
		if c, ok := v.factors[0].(*Num); ok && c.IsNegative() {
			rest := append([]Expr{c.Neg()}, v.factors[1:]...)
			return Product(rest...), true
		}
	}
	return nil, false
}
