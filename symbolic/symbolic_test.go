package symbolic_test

import (
	"errors"
	"testing"

	"github.com/njchilds90/nadlogar/symbolic"
)

// ============================================================
// Num tests
// ============================================================

func TestNum_Integer(t *testing.T) {
	n := symbolic.N(42)
	if n.String() != "42" {
		t.Errorf("want 42, got %s", n.String())
	}
}

func TestNum_Rational(t *testing.T) {
	n := symbolic.F(2, 6)
	if n.String() != "1/3" {
		t.Errorf("want 1/3, got %s", n.String())
	}
}

func TestNum_LaTeX_Rational(t *testing.T) {
	if got := symbolic.F(2, 5).LaTeX(); got != `\frac{2}{5}` {
		t.Errorf("want \\frac{2}{5}, got %s", got)
	}
	if got := symbolic.F(-2, 5).LaTeX(); got != `- \frac{2}{5}` {
		t.Errorf("want - \\frac{2}{5}, got %s", got)
	}
	if got := symbolic.N(-7).LaTeX(); got != "-7" {
		t.Errorf("want -7, got %s", got)
	}
}

func TestNum_ZeroDenominatorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("F(1, 0) should panic")
		}
	}()
	symbolic.F(1, 0)
}

// ============================================================
// Expression tree tests
// ============================================================

func TestProduct_FactoredLaTeX(t *testing.T) {
	x := symbolic.S("x")
	e := symbolic.Product(symbolic.N(2), symbolic.Sum(x, symbolic.F(-3, 2)), symbolic.Sum(x, symbolic.N(2)))
	want := `2 \left(x - \frac{3}{2}\right) \left(x + 2\right)`
	if e.LaTeX() != want {
		t.Errorf("want %s, got %s", want, e.LaTeX())
	}
	if e.String() != "2*(x - 3/2)*(x + 2)" {
		t.Errorf("want 2*(x - 3/2)*(x + 2), got %s", e.String())
	}
}

func TestProduct_NegativeLead(t *testing.T) {
	x := symbolic.S("x")
	e := symbolic.Product(symbolic.F(-1, 3), symbolic.Sum(x, symbolic.N(1)), x)
	want := `- \frac{1}{3} \left(x + 1\right) x`
	if e.LaTeX() != want {
		t.Errorf("want %s, got %s", want, e.LaTeX())
	}
}

func TestPower_GroupsCompoundBase(t *testing.T) {
	x := symbolic.S("x")
	e := symbolic.Power(symbolic.Sum(x, symbolic.N(-2)), 2)
	if e.LaTeX() != `\left(x - 2\right)^{2}` {
		t.Errorf("got %s", e.LaTeX())
	}
	if e.String() != "(x - 2)^2" {
		t.Errorf("got %s", e.String())
	}
}

func TestRatio_LaTeX(t *testing.T) {
	num := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(0), symbolic.N(1), symbolic.N(0))
	den := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(1))
	e := symbolic.Ratio(num, den)
	if e.LaTeX() != `\frac{x^{3} + x}{x + 1}` {
		t.Errorf("got %s", e.LaTeX())
	}
	if e.String() != "(x^3 + x)/(x + 1)" {
		t.Errorf("got %s", e.String())
	}
}

func TestExpand_Distribution(t *testing.T) {
	// 3/2*(x - 1)*(x + 2) = 3/2*x^2 + 3/2*x - 3
	x := symbolic.S("x")
	e := symbolic.Product(symbolic.F(3, 2), symbolic.Sum(x, symbolic.N(-1)), symbolic.Sum(x, symbolic.N(2)))
	p, err := symbolic.Expand(e, "x")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := symbolic.NewPoly("x", symbolic.F(3, 2), symbolic.F(3, 2), symbolic.N(-3))
	if !p.EqualPoly(want) {
		t.Errorf("want %s, got %s", want, p)
	}
}

func TestExpand_ForeignSymbol(t *testing.T) {
	_, err := symbolic.Expand(symbolic.Sum(symbolic.S("x"), symbolic.S("y")), "x")
	if !errors.Is(err, symbolic.ErrNotPolynomial) {
		t.Errorf("want ErrNotPolynomial, got %v", err)
	}
}

func TestExpand_RatioByConstant(t *testing.T) {
	x := symbolic.S("x")
	p, err := symbolic.Expand(symbolic.Ratio(symbolic.Power(x, 2), symbolic.N(4)), "x")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if p.String() != "1/4*x^2" {
		t.Errorf("want 1/4*x^2, got %s", p)
	}
	_, err = symbolic.Expand(symbolic.Ratio(symbolic.N(1), x), "x")
	if !errors.Is(err, symbolic.ErrNotPolynomial) {
		t.Errorf("want ErrNotPolynomial, got %v", err)
	}
}

func TestEval_Ratio(t *testing.T) {
	x := symbolic.S("x")
	e := symbolic.Ratio(symbolic.Sum(symbolic.Power(x, 3), x), symbolic.Sum(x, symbolic.N(1)))
	v, err := symbolic.Eval(e, "x", symbolic.N(2))
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if v.String() != "10/3" {
		t.Errorf("want 10/3, got %s", v)
	}
	if _, err := symbolic.Eval(e, "x", symbolic.N(-1)); !errors.Is(err, symbolic.ErrZeroDivisor) {
		t.Errorf("want ErrZeroDivisor, got %v", err)
	}
}

// ============================================================
// Poly tests
// ============================================================

func TestPoly_String(t *testing.T) {
	p := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(-3), symbolic.N(2))
	if p.String() != "x^2 - 3*x + 2" {
		t.Errorf("got %s", p)
	}
}

func TestPoly_LaTeX(t *testing.T) {
	cases := []struct {
		p    *symbolic.Poly
		want string
	}{
		{symbolic.NewPoly("x", symbolic.F(-3, 2), symbolic.N(0), symbolic.N(1), symbolic.F(1, 3)), `- \frac{3 x^{3}}{2} + x + \frac{1}{3}`},
		{symbolic.NewPoly("x", symbolic.N(2), symbolic.N(-1), symbolic.N(-5)), `2 x^{2} - x - 5`},
		{symbolic.NewPoly("x", symbolic.F(1, 2), symbolic.N(0)), `\frac{x}{2}`},
		{symbolic.NewPoly("x", symbolic.N(-4)), `-4`},
		{symbolic.NewPoly("x", symbolic.F(-4, 3)), `- \frac{4}{3}`},
		{symbolic.Zero("x"), `0`},
	}
	for _, tc := range cases {
		if got := tc.p.LaTeX(); got != tc.want {
			t.Errorf("want %s, got %s", tc.want, got)
		}
	}
}

func TestPoly_CoeffsHighestFirst(t *testing.T) {
	p := symbolic.NewPoly("x", symbolic.N(0), symbolic.N(0), symbolic.N(3), symbolic.N(1))
	if p.Degree() != 1 {
		t.Fatalf("leading zeros must be trimmed, degree %d", p.Degree())
	}
	c := p.Coeffs()
	if len(c) != 2 || c[0].String() != "3" || c[1].String() != "1" {
		t.Errorf("got %v", c)
	}
}

func TestPoly_DivMod_Identity(t *testing.T) {
	// (x^3 + x) / (x + 1) = x^2 - x + 2, remainder -2
	num := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(0), symbolic.N(1), symbolic.N(0))
	den := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(1))
	q, r, err := num.DivMod(den)
	if err != nil {
		t.Fatalf("DivMod: %v", err)
	}
	if q.String() != "x^2 - x + 2" {
		t.Errorf("quotient: want x^2 - x + 2, got %s", q)
	}
	if r.String() != "-2" {
		t.Errorf("remainder: want -2, got %s", r)
	}
	if !q.Mul(den).Add(r).EqualPoly(num) {
		t.Errorf("q*d + r != num")
	}
}

func TestPoly_DivMod_ZeroDivisor(t *testing.T) {
	num := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(0))
	if _, _, err := num.DivMod(symbolic.Zero("x")); !errors.Is(err, symbolic.ErrZeroDivisor) {
		t.Errorf("want ErrZeroDivisor, got %v", err)
	}
}

func TestGCD(t *testing.T) {
	x1 := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(-1))
	a := x1.Mul(symbolic.NewPoly("x", symbolic.N(2), symbolic.N(4)))
	b := x1.Mul(symbolic.NewPoly("x", symbolic.N(3), symbolic.N(9)))
	if g := symbolic.GCD(a, b); !g.EqualPoly(x1) {
		t.Errorf("want x - 1, got %s", g)
	}
	coprime := symbolic.GCD(symbolic.NewPoly("x", symbolic.N(1), symbolic.N(0), symbolic.N(1)), x1)
	if coprime.Degree() != 0 {
		t.Errorf("want constant gcd, got %s", coprime)
	}
}

func TestPoly_PowAndEval(t *testing.T) {
	p := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(-2)).Pow(2)
	if p.String() != "x^2 - 4*x + 4" {
		t.Errorf("got %s", p)
	}
	if v := p.Eval(symbolic.F(5, 2)); v.String() != "1/4" {
		t.Errorf("want 1/4, got %s", v)
	}
}

// ============================================================
// Surd tests
// ============================================================

func TestSqrt(t *testing.T) {
	cases := []struct {
		in     *symbolic.Num
		str    string
		latex  string
		real   bool
		ration bool
	}{
		{symbolic.N(8), "2*sqrt(2)", `2 \sqrt{2}`, true, false},
		{symbolic.F(9, 4), "3/2", `\frac{3}{2}`, true, true},
		{symbolic.N(-4), "2*i", `2 i`, false, false},
		{symbolic.F(-3, 4), "1/2*sqrt(3)*i", `\frac{\sqrt{3} i}{2}`, false, false},
		{symbolic.F(5, 3), "1/3*sqrt(15)", `\frac{\sqrt{15}}{3}`, true, false},
		{symbolic.N(0), "0", `0`, true, true},
	}
	for _, tc := range cases {
		s := symbolic.Sqrt(tc.in)
		if s.String() != tc.str {
			t.Errorf("Sqrt(%s): want %s, got %s", tc.in, tc.str, s)
		}
		if s.LaTeX() != tc.latex {
			t.Errorf("Sqrt(%s): want %s, got %s", tc.in, tc.latex, s.LaTeX())
		}
		if s.IsReal() != tc.real || s.IsRational() != tc.ration {
			t.Errorf("Sqrt(%s): real=%v rational=%v", tc.in, s.IsReal(), s.IsRational())
		}
	}
}

func TestSqrt_SquaresBack(t *testing.T) {
	for _, x := range []*symbolic.Num{symbolic.N(12), symbolic.F(-7, 18), symbolic.F(50, 3)} {
		s := symbolic.Sqrt(x)
		sq, err := s.Mul(s)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		if !sq.EqualNum(x) {
			t.Errorf("sqrt(%s)^2 = %s", x, sq)
		}
	}
}

func TestSurd_Arithmetic(t *testing.T) {
	r2 := symbolic.Sqrt(symbolic.N(2))
	a := r2.Shift(symbolic.N(1))
	b := r2.Neg().Shift(symbolic.N(1))
	prod, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul: %v", err)
	}
	if !prod.EqualNum(symbolic.N(-1)) {
		t.Errorf("(1+√2)(1-√2): want -1, got %s", prod)
	}
	q, err := symbolic.Rational(symbolic.N(1)).Quo(a)
	if err != nil {
		t.Fatalf("Quo: %v", err)
	}
	if q.String() != "-1 + sqrt(2)" {
		t.Errorf("1/(1+√2): want -1 + sqrt(2), got %s", q)
	}
	if _, err := a.Add(symbolic.Sqrt(symbolic.N(3))); !errors.Is(err, symbolic.ErrMixedRadicand) {
		t.Errorf("want ErrMixedRadicand, got %v", err)
	}
	if _, err := a.Quo(symbolic.Rational(symbolic.N(0))); !errors.Is(err, symbolic.ErrZeroDivisor) {
		t.Errorf("want ErrZeroDivisor, got %v", err)
	}
}

func TestSurd_LaTeX_WithRationalPart(t *testing.T) {
	s := symbolic.Sqrt(symbolic.N(5)).Scale(symbolic.F(1, 2)).Shift(symbolic.F(-1, 2))
	if s.LaTeX() != `- \frac{1}{2} + \frac{\sqrt{5}}{2}` {
		t.Errorf("got %s", s.LaTeX())
	}
	c := symbolic.Sqrt(symbolic.N(-3)).Scale(symbolic.F(-1, 2)).Shift(symbolic.N(1))
	if c.LaTeX() != `1 - \frac{\sqrt{3} i}{2}` {
		t.Errorf("got %s", c.LaTeX())
	}
}

func TestPoly_EvalSurd(t *testing.T) {
	p := symbolic.NewPoly("x", symbolic.N(1), symbolic.N(0), symbolic.N(-2))
	v, err := p.EvalSurd(symbolic.Sqrt(symbolic.N(2)))
	if err != nil {
		t.Fatalf("EvalSurd: %v", err)
	}
	if !v.IsZero() {
		t.Errorf("x^2 - 2 at √2: want 0, got %s", v)
	}
}

// ============================================================
// Determinism
// ============================================================

func TestDeterminism(t *testing.T) {
	build := func() string {
		x := symbolic.S("x")
		e := symbolic.Product(symbolic.Power(symbolic.Sum(x, symbolic.N(-3)), 2), symbolic.Sum(symbolic.Power(x, 2), symbolic.F(1, 2)))
		p, err := symbolic.Expand(e, "x")
		if err != nil {
			t.Fatalf("Expand: %v", err)
		}
		return p.LaTeX()
	}
	first := build()
	for i := 0; i < 20; i++ {
		if got := build(); got != first {
			t.Fatalf("non-deterministic output: %s vs %s", first, got)
		}
	}
}
