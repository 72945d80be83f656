// Package solve derives the exact quantities an exercise asks for:
// discriminant, roots and vertex of a quadratic, zeros and poles of a
// rational function, and its oblique asymptote by polynomial long division.
//
// Every root computation goes through QuadraticRoots, and every use of the
// discriminant goes through Discriminant.
package solve

import (
	"fmt"

	"github.com/njchilds90/nadlogar/models"
	"github.com/njchilds90/nadlogar/symbolic"
)

// Discriminant returns b^2 - 4ac.
func Discriminant(a, b, c *symbolic.Num) *symbolic.Num {
	return b.Mul(b).Sub(symbolic.N(4).Mul(a).Mul(c))
}

// QuadraticRoots returns (-b + √D)/2a and (-b - √D)/2a. √D is the real
// root for D >= 0 and i·√(-D) otherwise; the formula is the same either way.
func QuadraticRoots(a, b, c *symbolic.Num) ([2]symbolic.Surd, error) {
	if a.IsZero() {
		return [2]symbolic.Surd{}, fmt.Errorf("%w: a = 0", ErrZeroLeading)
	}
	root := symbolic.Sqrt(Discriminant(a, b, c))
	twoA := symbolic.N(2).Mul(a).Inv()
	return [2]symbolic.Surd{
		root.Shift(b.Neg()).Scale(twoA),
		root.Neg().Shift(b.Neg()).Scale(twoA),
	}, nil
}

// Roots is QuadraticRoots for a model.
func Roots(q models.Quadratic) ([2]symbolic.Surd, error) {
	return QuadraticRoots(q.A, q.B, q.C)
}

// Vertex returns (-b/2a, -D/4a).
func Vertex(q models.Quadratic) (x, y *symbolic.Num, err error) {
	if q.A.IsZero() {
		return nil, nil, fmt.Errorf("%w: a = 0", ErrZeroLeading)
	}
	x = q.B.Neg().Quo(symbolic.N(2).Mul(q.A))
	y = Discriminant(q.A, q.B, q.C).Neg().Quo(symbolic.N(4).Mul(q.A))
	return x, y, nil
}

// Zeros returns the two zeros of the numerator block p3*x^2 + p2*x + p1
// followed by the trivial zero x = 0.
func Zeros(f models.RationalFunction) ([3]symbolic.Surd, error) {
	if f.Numerator.Degree() != 3 || !f.Numerator.Coeff(0).IsZero() {
		return [3]symbolic.Surd{}, fmt.Errorf("%w: numerator %s", ErrShape, f.Numerator)
	}
	r, err := Roots(f.NumeratorBlock())
	if err != nil {
		return [3]symbolic.Surd{}, err
	}
	return [3]symbolic.Surd{r[0], r[1], symbolic.Rational(symbolic.N(0))}, nil
}

// Poles returns the roots of the quadratic denominator.
func Poles(f models.RationalFunction) ([2]symbolic.Surd, error) {
	if f.Denominator.Degree() != 2 {
		return [2]symbolic.Surd{}, fmt.Errorf("%w: denominator %s", ErrShape, f.Denominator)
	}
	return Roots(f.DenominatorQuadratic())
}

// DivMod is exact polynomial long division, numerator = q*denominator + r.
func DivMod(numerator, denominator *symbolic.Poly) (q, r *symbolic.Poly, err error) {
	q, r, err = numerator.DivMod(denominator)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}
	return q, r, nil
}

// Asymptote returns the quotient of numerator by denominator, the oblique
// asymptote y = q(x). It is only defined when the numerator degree exceeds
// the denominator degree by exactly one.
func Asymptote(f models.RationalFunction) (*symbolic.Poly, error) {
	if f.Denominator.IsZero() || f.Numerator.Degree() != f.Denominator.Degree()+1 {
		return nil, fmt.Errorf("%w: degrees %d/%d", ErrNotOblique, f.Numerator.Degree(), f.Denominator.Degree())
	}
	q, _, err := DivMod(f.Numerator, f.Denominator)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// SharesFactor reports whether numerator and denominator have a common
// nonconstant factor, i.e. a zero that is also a pole.
func SharesFactor(f models.RationalFunction) bool {
	return symbolic.GCD(f.Numerator, f.Denominator).Degree() > 0
}
