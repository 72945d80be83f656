package symbolic

import "fmt"

// Expand evaluates an expression tree into a polynomial in varName.
// Any other symbol, or a divisor that is not a nonzero constant, fails with
// ErrNotPolynomial.
func Expand(e Expr, varName string) (*Poly, error) {
	switch v := e.(type) {
	case *Num:
		return Constant(varName, v), nil
	case *Poly:
		if v.Degree() > 0 && v.v != varName {
			return nil, fmt.Errorf("%w: polynomial in %q", ErrNotPolynomial, v.v)
		}
		return v, nil
	case *Sym:
		if v.name != varName {
			return nil, fmt.Errorf("%w: foreign symbol %q", ErrNotPolynomial, v.name)
		}
		return Monomial(varName, N(1), 1), nil
	case *Add:
		acc := Zero(varName)
		for _, t := range v.terms {
			p, err := Expand(t, varName)
			if err != nil {
				return nil, err
			}
			acc = acc.Add(p)
		}
		return acc, nil
	case *Mul:
		acc := Constant(varName, N(1))
		for _, f := range v.factors {
			p, err := Expand(f, varName)
			if err != nil {
				return nil, err
			}
			acc = acc.Mul(p)
		}
		return acc, nil
	case *Pow:
		base, err := Expand(v.base, varName)
		if err != nil {
			return nil, err
		}
		return base.Pow(v.exp), nil
	case *Quo:
		num, err := Expand(v.num, varName)
		if err != nil {
			return nil, err
		}
		den, err := Expand(v.den, varName)
		if err != nil {
			return nil, err
		}
		if den.IsZero() {
			return nil, ErrZeroDivisor
		}
		if den.Degree() > 0 {
			return nil, fmt.Errorf("%w: divisor %s has degree %d", ErrNotPolynomial, den, den.Degree())
		}
		return num.Scale(den.Lead().Inv()), nil
	}
	return nil, fmt.Errorf("%w: unsupported node %T", ErrNotPolynomial, e)
}

// Eval substitutes at for varName and evaluates the tree exactly.
func Eval(e Expr, varName string, at *Num) (*Num, error) {
	switch v := e.(type) {
	case *Num:
		return v, nil
	case *Poly:
		if v.Degree() > 0 && v.v != varName {
			return nil, fmt.Errorf("%w: %q", ErrUnbound, v.v)
		}
		return v.Eval(at), nil
	case *Sym:
		if v.name != varName {
			return nil, fmt.Errorf("%w: %q", ErrUnbound, v.name)
		}
		return at, nil
	case *Add:
		acc := N(0)
		for _, t := range v.terms {
			x, err := Eval(t, varName, at)
			if err != nil {
				return nil, err
			}
			acc = acc.Add(x)
		}
		return acc, nil
	case *Mul:
		acc := N(1)
		for _, f := range v.factors {
			x, err := Eval(f, varName, at)
			if err != nil {
				return nil, err
			}
			acc = acc.Mul(x)
		}
		return acc, nil
	case *Pow:
		base, err := Eval(v.base, varName, at)
		if err != nil {
			return nil, err
		}
		acc := N(1)
		for i := 0; i < v.exp; i++ {
			acc = acc.Mul(base)
		}
		return acc, nil
	case *Quo:
		num, err := Eval(v.num, varName, at)
		if err != nil {
			return nil, err
		}
		den, err := Eval(v.den, varName, at)
		if err != nil {
			return nil, err
		}
		if den.IsZero() {
			return nil, ErrZeroDivisor
		}
		return num.Quo(den), nil
	}
	return nil, fmt.Errorf("%w: unsupported node %T", ErrUnbound, e)
}
