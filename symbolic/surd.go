package symbolic

import (
	"fmt"
	"math/big"
	"strings"
)

// ============================================================
// Surd: exact element a + b*sqrt(d) of a quadratic field
// ============================================================

// Surd is a + b*sqrt(d) with d a squarefree integer. A negative d stands
// for i*sqrt(|d|), so complex conjugate roots are exact too. Rational
// values are normalised to b = 0, d = 1, which makes structural equality
// value equality.
type Surd struct {
	a, b *Num
	d    *big.Int
}

var bigOne = big.NewInt(1)

// Rational lifts a rational number into a surd.
func Rational(r *Num) Surd { return Surd{a: r, b: N(0), d: big.NewInt(1)} }

func newSurd(a, b *Num, d *big.Int) Surd {
	if b.IsZero() || d.Sign() == 0 {
		return Rational(a)
	}
	return Surd{a: a, b: b, d: new(big.Int).Set(d)}
}

// Sqrt returns the principal square root of x exactly. For x >= 0 it is the
// real root; for x < 0 it is i*sqrt(-x).
func Sqrt(x *Num) Surd {
	if x.IsZero() {
		return Rational(N(0))
	}
	// sqrt(p/q) = sqrt(p*q)/q with p*q = s^2*m, m squarefree.
	n := new(big.Int).Mul(new(big.Int).Abs(x.Numer()), x.Denom())
	s, m := squarefree(n)
	coeff := NRat(new(big.Rat).SetFrac(s, x.Denom()))
	if x.IsNegative() {
		m.Neg(m)
	}
	if m.Cmp(bigOne) == 0 {
		return Rational(coeff)
	}
	return newSurd(N(0), coeff, m)
}

// squarefree splits n > 0 into s^2*m with m squarefree, by trial division.
func squarefree(n *big.Int) (s, m *big.Int) {
	s, m = big.NewInt(1), big.NewInt(1)
	rest := new(big.Int).Set(n)
	f := big.NewInt(2)
	sq := new(big.Int)
	q, r := new(big.Int), new(big.Int)
	for sq.Mul(f, f).Cmp(rest) <= 0 {
		exp := 0
		for {
			q.QuoRem(rest, f, r)
			if r.Sign() != 0 {
				break
			}
			rest.Set(q)
			exp++
		}
		for i := 0; i < exp/2; i++ {
			s.Mul(s, f)
		}
		if exp%2 == 1 {
			m.Mul(m, f)
		}
		f.Add(f, bigOne)
	}
	m.Mul(m, rest)
	return s, m
}

func (s Surd) RationalPart() *Num { return s.a }
func (s Surd) Coeff() *Num        { return s.b }
func (s Surd) Radicand() *big.Int { return new(big.Int).Set(s.d) }
func (s Surd) IsRational() bool   { return s.b.IsZero() }
func (s Surd) IsReal() bool       { return s.b.IsZero() || s.d.Sign() > 0 }
func (s Surd) IsZero() bool       { return s.a.IsZero() && s.b.IsZero() }
func (s Surd) Neg() Surd          { return newSurd(s.a.Neg(), s.b.Neg(), s.d) }
func (s Surd) Conj() Surd         { return newSurd(s.a, s.b.Neg(), s.d) }
func (s Surd) Shift(r *Num) Surd  { return newSurd(s.a.Add(r), s.b, s.d) }
func (s Surd) Scale(r *Num) Surd  { return newSurd(s.a.Mul(r), s.b.Mul(r), s.d) }

// Value returns the rational value when there is no irrational part.
func (s Surd) Value() (*Num, bool) {
	if !s.IsRational() {
		return nil, false
	}
	return s.a, true
}

// radicand picks the common field of s and o.
func (s Surd) radicand(o Surd) (*big.Int, error) {
	switch {
	case s.IsRational():
		return o.d, nil
	case o.IsRational(), s.d.Cmp(o.d) == 0:
		return s.d, nil
	}
	return nil, fmt.Errorf("%w: sqrt(%s) and sqrt(%s)", ErrMixedRadicand, s.d, o.d)
}

func (s Surd) Add(o Surd) (Surd, error) {
	d, err := s.radicand(o)
	if err != nil {
		return Surd{}, err
	}
	return newSurd(s.a.Add(o.a), s.b.Add(o.b), d), nil
}

func (s Surd) Sub(o Surd) (Surd, error) { return s.Add(o.Neg()) }

// Mul uses (a + b√d)(a' + b'√d) = aa' + bb'd + (ab' + a'b)√d.
func (s Surd) Mul(o Surd) (Surd, error) {
	d, err := s.radicand(o)
	if err != nil {
		return Surd{}, err
	}
	dn := NRat(new(big.Rat).SetInt(d))
	a := s.a.Mul(o.a).Add(s.b.Mul(o.b).Mul(dn))
	b := s.a.Mul(o.b).Add(o.a.Mul(s.b))
	return newSurd(a, b, d), nil
}

// Quo divides through the conjugate: s/o = s*conj(o) / (o*conj(o)).
func (s Surd) Quo(o Surd) (Surd, error) {
	if o.IsZero() {
		return Surd{}, ErrZeroDivisor
	}
	num, err := s.Mul(o.Conj())
	if err != nil {
		return Surd{}, err
	}
	norm, err := o.Mul(o.Conj())
	if err != nil {
		return Surd{}, err
	}
	return num.Scale(norm.a.Inv()), nil
}

// Equal compares canonical forms, which is value equality.
func (s Surd) Equal(o Surd) bool {
	return s.a.Cmp(o.a) == 0 && s.b.Cmp(o.b) == 0 && s.d.Cmp(o.d) == 0
}

// EqualNum reports whether s is exactly the rational r.
func (s Surd) EqualNum(r *Num) bool { return s.IsRational() && s.a.Cmp(r) == 0 }

func (s Surd) String() string {
	if s.IsRational() {
		return s.a.String()
	}
	var sb strings.Builder
	if !s.a.IsZero() {
		sb.WriteString(s.a.String())
		if s.b.IsNegative() {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
	} else if s.b.IsNegative() {
		sb.WriteString("-")
	}
	b := s.b.Abs()
	m := new(big.Int).Abs(s.d)
	var parts []string
	if !b.IsOne() {
		parts = append(parts, b.String())
	}
	if m.Cmp(bigOne) != 0 {
		parts = append(parts, "sqrt("+m.String()+")")
	}
	if s.d.Sign() < 0 {
		parts = append(parts, "i")
	}
	sb.WriteString(strings.Join(parts, "*"))
	return sb.String()
}

// LaTeX follows sympy: - \frac{1}{2} + \frac{\sqrt{5}}{2} and
// 1 - \frac{\sqrt{3} i}{2}.
func (s Surd) LaTeX() string {
	if s.IsRational() {
		return s.a.LaTeX()
	}
	var sb strings.Builder
	switch {
	case !s.a.IsZero():
		sb.WriteString(s.a.LaTeX())
		if s.b.IsNegative() {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
	case s.b.IsNegative():
		sb.WriteString("- ")
	}
	b := s.b.Abs()
	m := new(big.Int).Abs(s.d)
	var parts []string
	if num := b.Numer(); num.Cmp(bigOne) != 0 {
		parts = append(parts, num.String())
	}
	if m.Cmp(bigOne) != 0 {
		parts = append(parts, "\\sqrt{"+m.String()+"}")
	}
	if s.d.Sign() < 0 {
		parts = append(parts, "i")
	}
	body := strings.Join(parts, " ")
	if !b.IsInteger() {
		body = fmt.Sprintf("\\frac{%s}{%s}", body, b.Denom().String())
	}
	sb.WriteString(body)
	return sb.String()
}
