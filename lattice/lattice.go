// Package lattice enumerates finite sets of "nice" rational numbers that
// serve as the domain for random coefficients.
//
// A lattice with bounds [lo, hi] and denominator d holds every k/d with
// integer k in [d*lo, d*(hi+1)), except 0. Enumeration is deterministic;
// randomness enters only through Set.Pick, which draws from a caller-owned
// *rand.Rand.
package lattice

import (
	"fmt"
	"math/rand"

	"github.com/njchilds90/nadlogar/symbolic"
)

// Values returns the lattice k/d for k in [d*lo, d*(hi+1)), k != 0,
// in ascending order.
func Values(lo, hi int, d int64) ([]*symbolic.Num, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDenominator, d)
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, lo, hi)
	}
	from, to := d*int64(lo), d*int64(hi+1)
	out := make([]*symbolic.Num, 0, to-from)
	for k := from; k < to; k++ {
		if k == 0 {
			continue
		}
		out = append(out, symbolic.F(k, d))
	}
	return out, nil
}

// Set is a concatenation of lattices. Values shared by several lattices
// (the integers of halves and thirds) appear once per lattice, so they are
// proportionally more likely to be picked.
type Set []*symbolic.Num

// Pick draws one value uniformly.
func (s Set) Pick(r *rand.Rand) *symbolic.Num {
	return s[r.Intn(len(s))]
}

// Spec describes a Set: one lattice per denominator over the same bounds.
type Spec struct {
	Lo           int     `yaml:"lo" json:"lo"`
	Hi           int     `yaml:"hi" json:"hi"`
	Denominators []int64 `yaml:"denominators" json:"denominators"`
}

// Coefficients is the halves-and-thirds domain in [-4, 4] used for every
// drawn coefficient.
func Coefficients() Spec { return Spec{Lo: -4, Hi: 4, Denominators: []int64{2, 3}} }

// Roots is the halves-and-thirds domain in [-5, 5] used for factored roots.
func Roots() Spec { return Spec{Lo: -5, Hi: 5, Denominators: []int64{2, 3}} }

// Build enumerates the Set described by s.
func (s Spec) Build() (Set, error) {
	if len(s.Denominators) == 0 {
		return nil, ErrNoDenominators
	}
	var out Set
	for _, d := range s.Denominators {
		vals, err := Values(s.Lo, s.Hi, d)
		if err != nil {
			return nil, err
		}
		out = append(out, vals...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrEmptyRange, s.Lo, s.Hi)
	}
	return out, nil
}

// MustBuild is Build for specs known to be valid, such as the defaults.
func (s Spec) MustBuild() Set {
	set, err := s.Build()
	if err != nil {
		panic(err)
	}
	return set
}
