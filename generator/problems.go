package generator

import (
	"fmt"
	"math/rand"

	"github.com/njchilds90/nadlogar/lattice"
	"github.com/njchilds90/nadlogar/models"
	"github.com/njchilds90/nadlogar/render"
	"github.com/njchilds90/nadlogar/solve"
	"github.com/njchilds90/nadlogar/symbolic"
)

// Problem is one kind of exercise. Attempt must be safe to call from
// several goroutines with distinct rngs.
type Problem interface {
	Kind() string
	Title() string
	Instruction() string
	Solution() string
	Attempt(r *rand.Rand) Outcome
}

// Params are the sampling domains shared by the built-in problems.
type Params struct {
	Coefficients lattice.Set
	Roots        lattice.Set
	Candidates   []*symbolic.Num
}

// DefaultCandidates are the forced double roots. 0 and 1 are left out as
// too easy to spot.
func DefaultCandidates() []*symbolic.Num {
	ks := []int64{-5, -4, -3, -2, -1, 2, 3, 4, 5}
	out := make([]*symbolic.Num, len(ks))
	for i, k := range ks {
		out[i] = symbolic.N(k)
	}
	return out
}

// DefaultParams uses the default lattices and candidates.
func DefaultParams() Params {
	return Params{
		Coefficients: lattice.Coefficients().MustBuild(),
		Roots:        lattice.Roots().MustBuild(),
		Candidates:   DefaultCandidates(),
	}
}

// NewParams builds Params from lattice specs and integer candidates.
func NewParams(coefficients, roots lattice.Spec, candidates []int64) (Params, error) {
	if len(candidates) == 0 {
		return Params{}, ErrNoCandidates
	}
	c, err := coefficients.Build()
	if err != nil {
		return Params{}, fmt.Errorf("coefficients: %w", err)
	}
	rs, err := roots.Build()
	if err != nil {
		return Params{}, fmt.Errorf("roots: %w", err)
	}
	p := Params{Coefficients: c, Roots: rs}
	for _, k := range candidates {
		p.Candidates = append(p.Candidates, symbolic.N(k))
	}
	return p, nil
}

// ============================================================
// Double root
// ============================================================

// DoubleRoot asks for the remaining roots of (x - r)^2 * q(x) given r.
type DoubleRoot struct {
	coefficients lattice.Set
	candidates   []*symbolic.Num
}

// NewDoubleRoot returns the double-root problem over p.
func NewDoubleRoot(p Params) *DoubleRoot {
	return &DoubleRoot{coefficients: p.Coefficients, candidates: p.Candidates}
}

func (*DoubleRoot) Kind() string  { return "double-root" }
func (*DoubleRoot) Title() string { return "Polynomials / roots given a double root" }

func (*DoubleRoot) Instruction() string {
	return `Show that $@double_root$ is a double root of the polynomial $p(x)=@polynomial$ and find the remaining roots.`
}

func (*DoubleRoot) Solution() string { return `$x_3=@third_root$, $x_4=@fourth_root$` }

// DoubleRootSample is an accepted double-root draw.
type DoubleRootSample struct {
	Double     *symbolic.Num
	Quadratic  models.Quadratic
	Roots      [2]symbolic.Surd
	Polynomial *symbolic.Poly
}

// CheckDoubleRoot rejects a quadratic whose roots include the forced double
// root, which would turn it into a triple root.
func CheckDoubleRoot(double *symbolic.Num, roots [2]symbolic.Surd) error {
	for _, r := range roots {
		if r.EqualNum(double) {
			return fmt.Errorf("%w: %s", ErrRootCollision, double)
		}
	}
	return nil
}

// Draw samples a quadratic, its roots and a double root, and expands
// (x - double)^2 * q(x).
func (p *DoubleRoot) Draw(r *rand.Rand) (DoubleRootSample, error) {
	q := models.NewQuadratic(r, p.coefficients)
	roots, err := solve.Roots(q)
	if err != nil {
		return DoubleRootSample{}, err
	}
	double := p.candidates[r.Intn(len(p.candidates))]
	if err := CheckDoubleRoot(double, roots); err != nil {
		return DoubleRootSample{}, err
	}
	x := symbolic.S(models.Var)
	prod := symbolic.Product(symbolic.Power(symbolic.Sum(x, double.Neg()), 2), q.Poly())
	poly, err := symbolic.Expand(prod, models.Var)
	if err != nil {
		return DoubleRootSample{}, err
	}
	return DoubleRootSample{Double: double, Quadratic: q, Roots: roots, Polynomial: poly}, nil
}

func (s DoubleRootSample) Fields() render.Fields {
	f := render.Fields{}
	f.Set("polynomial", s.Polynomial)
	f.Set("double_root", s.Double)
	f.Set("third_root", s.Roots[0])
	f.Set("fourth_root", s.Roots[1])
	return f
}

func (p *DoubleRoot) Attempt(r *rand.Rand) Outcome {
	s, err := p.Draw(r)
	if err != nil {
		return RejectErr(err)
	}
	return Accept(s.Fields())
}

// ============================================================
// Rational function
// ============================================================

// RationalFunction asks for zeros, poles and the oblique asymptote of
// (p3 x^3 + p2 x^2 + p1 x) / (q2 x^2 + q1 x + q0).
type RationalFunction struct {
	coefficients lattice.Set
}

func NewRationalFunction(p Params) *RationalFunction {
	return &RationalFunction{coefficients: p.Coefficients}
}

func (*RationalFunction) Kind() string  { return "rational-function" }
func (*RationalFunction) Title() string { return "Rational functions / zeros, poles and asymptote" }

func (*RationalFunction) Instruction() string {
	return `Find the zeros, the poles and the asymptote of the rational function $f(x)=@function$.`
}

func (*RationalFunction) Solution() string {
	return `zeros: $@zeros$, poles: $@poles$, asymptote: $@asymptote$`
}

// RationalSample is an accepted rational-function draw.
type RationalSample struct {
	Function  models.RationalFunction
	Zeros     [3]symbolic.Surd
	Poles     [2]symbolic.Surd
	Asymptote *symbolic.Poly
}

// Draw samples a rational function. Functions whose numerator and
// denominator share a factor are rejected: cancelling would remove a pole.
func (p *RationalFunction) Draw(r *rand.Rand) (RationalSample, error) {
	f := models.NewRationalFunction(r, p.coefficients)
	if solve.SharesFactor(f) {
		return RationalSample{}, fmt.Errorf("%w: %s", ErrCommonFactor, f.Expr())
	}
	zeros, err := solve.Zeros(f)
	if err != nil {
		return RationalSample{}, err
	}
	poles, err := solve.Poles(f)
	if err != nil {
		return RationalSample{}, err
	}
	asym, err := solve.Asymptote(f)
	if err != nil {
		return RationalSample{}, err
	}
	return RationalSample{Function: f, Zeros: zeros, Poles: poles, Asymptote: asym}, nil
}

func (s RationalSample) Fields() render.Fields {
	f := render.Fields{}
	f.Set("function", s.Function.Expr())
	f.Set("numerator", s.Function.Numerator)
	f.Set("denominator", s.Function.Denominator)
	f.SetList("zeros", s.Zeros[0], s.Zeros[1], s.Zeros[2])
	f.SetList("poles", s.Poles[0], s.Poles[1])
	f.SetText("asymptote", render.Equation("y", s.Asymptote))
	return f
}

func (p *RationalFunction) Attempt(r *rand.Rand) Outcome {
	s, err := p.Draw(r)
	if err != nil {
		return RejectErr(err)
	}
	return Accept(s.Fields())
}

// ============================================================
// Vertex
// ============================================================

// Vertex asks for the vertex of a parabola in general form.
type Vertex struct {
	coefficients lattice.Set
}

func NewVertex(p Params) *Vertex { return &Vertex{coefficients: p.Coefficients} }

func (*Vertex) Kind() string  { return "vertex" }
func (*Vertex) Title() string { return "Quadratic functions / vertex" }

func (*Vertex) Instruction() string {
	return `Find the vertex of the graph of $f(x)=@function$.`
}

func (*Vertex) Solution() string { return `$T(@vertex_x, @vertex_y)$, $D=@discriminant$` }

func (p *Vertex) Attempt(r *rand.Rand) Outcome {
	q := models.NewQuadratic(r, p.coefficients)
	x, y, err := solve.Vertex(q)
	if err != nil {
		return RejectErr(err)
	}
	f := render.Fields{}
	f.Set("function", q.Poly())
	f.Set("vertex_x", x)
	f.Set("vertex_y", y)
	f.Set("discriminant", solve.Discriminant(q.A, q.B, q.C))
	return Accept(f)
}

// ============================================================
// Factored form
// ============================================================

// Factored shows a(x - x1)(x - x2) and asks for its general form and zeros.
type Factored struct {
	lead  lattice.Set
	roots lattice.Set
}

func NewFactored(p Params) *Factored { return &Factored{lead: p.Coefficients, roots: p.Roots} }

func (*Factored) Kind() string  { return "factored" }
func (*Factored) Title() string { return "Quadratic functions / factored form" }

func (*Factored) Instruction() string {
	return `Write $f(x)=@factored$ in general form and state its zeros.`
}

func (*Factored) Solution() string { return `$f(x)=@expanded$, $x_1=@x1$, $x_2=@x2$` }

func (p *Factored) Attempt(r *rand.Rand) Outcome {
	m := models.NewFactored(r, p.lead, p.roots)
	f := render.Fields{}
	f.Set("factored", m.Expr())
	f.Set("expanded", m.Expand())
	f.Set("x1", m.X1)
	f.Set("x2", m.X2)
	f.Set("leading", m.A)
	return Accept(f)
}
