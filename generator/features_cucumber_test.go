//go:build cucumber

package generator_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/njchilds90/nadlogar/generator"
	"github.com/njchilds90/nadlogar/models"
	"github.com/njchilds90/nadlogar/solve"
	"github.com/njchilds90/nadlogar/symbolic"
)

// TestExerciseFeatures executes the exercise feature scenarios via godog.
func TestExerciseFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "exercises",
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeScenario wires step definitions for the exercise features.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &exerciseState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = exerciseState{}
		return ctx, nil
	})

	ctx.Step(`^the numerator "([^"]+)"$`, state.givenNumerator)
	ctx.Step(`^the denominator "([^"]+)"$`, state.givenDenominator)
	ctx.Step(`^I divide the numerator by the denominator$`, state.divide)
	ctx.Step(`^the quotient is "([^"]+)"$`, state.quotientIs)
	ctx.Step(`^the remainder is "([^"]+)"$`, state.remainderIs)

	ctx.Step(`^the forced double root (-?\d+)$`, state.givenDouble)
	ctx.Step(`^a quadratic with roots (-?\d+) and (-?\d+)$`, state.givenRoots)
	ctx.Step(`^the sample is validated$`, state.validate)
	ctx.Step(`^the sample is (accepted|rejected)$`, state.verdictIs)

	ctx.Step(`^a generator capped at (\d+) attempts$`, state.givenCap)
	ctx.Step(`^I generate (\d+) "([^"]+)" instances from seed (-?\d+)$`, state.generateBatch)
	ctx.Step(`^every instance used at most (\d+) attempts$`, state.attemptsAtMost)
	ctx.Step(`^every instance fills its templates$`, state.templatesFilled)
}

// exerciseState holds scenario state for the feature tests.
type exerciseState struct {
	numerator, denominator *symbolic.Poly
	quotient, remainder    *symbolic.Poly

	double   *symbolic.Num
	roots    [2]symbolic.Surd
	checkErr error

	gen       *generator.Generator
	instances []*generator.Instance
}

func parsePoly(s string) (*symbolic.Poly, error) {
	var coeffs []*symbolic.Num
	for _, f := range strings.Fields(s) {
		k, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		coeffs = append(coeffs, symbolic.N(k))
	}
	return symbolic.NewPoly(models.Var, coeffs...), nil
}

func (s *exerciseState) givenNumerator(coeffs string) (err error) {
	s.numerator, err = parsePoly(coeffs)
	return err
}

func (s *exerciseState) givenDenominator(coeffs string) (err error) {
	s.denominator, err = parsePoly(coeffs)
	return err
}

func (s *exerciseState) divide() (err error) {
	s.quotient, s.remainder, err = solve.DivMod(s.numerator, s.denominator)
	return err
}

func (s *exerciseState) quotientIs(want string) error {
	if got := s.quotient.String(); got != want {
		return fmt.Errorf("quotient %q, want %q", got, want)
	}
	return s.identityHolds()
}

func (s *exerciseState) remainderIs(want string) error {
	if got := s.remainder.String(); got != want {
		return fmt.Errorf("remainder %q, want %q", got, want)
	}
	return nil
}

func (s *exerciseState) identityHolds() error {
	if !s.quotient.Mul(s.denominator).Add(s.remainder).EqualPoly(s.numerator) {
		return fmt.Errorf("q*d + r != n")
	}
	return nil
}

func (s *exerciseState) givenDouble(k int64) error {
	s.double = symbolic.N(k)
	return nil
}

func (s *exerciseState) givenRoots(a, b int64) error {
	s.roots = [2]symbolic.Surd{symbolic.Rational(symbolic.N(a)), symbolic.Rational(symbolic.N(b))}
	return nil
}

func (s *exerciseState) validate() error {
	s.checkErr = generator.CheckDoubleRoot(s.double, s.roots)
	return nil
}

func (s *exerciseState) verdictIs(verdict string) error {
	switch {
	case verdict == "accepted" && s.checkErr != nil:
		return fmt.Errorf("expected acceptance, got %v", s.checkErr)
	case verdict == "rejected" && s.checkErr == nil:
		return fmt.Errorf("expected rejection")
	}
	return nil
}

func (s *exerciseState) givenCap(n int) error {
	s.gen = generator.New(generator.WithMaxAttempts(n))
	return nil
}

func (s *exerciseState) generateBatch(n int, kind string, seed int64) (err error) {
	s.instances, err = s.gen.Batch(context.Background(), kind, seed, n)
	return err
}

func (s *exerciseState) attemptsAtMost(n int) error {
	for _, inst := range s.instances {
		if inst.Attempts() > n {
			return fmt.Errorf("seed %d used %d attempts", inst.Seed(), inst.Attempts())
		}
	}
	return nil
}

func (s *exerciseState) templatesFilled() error {
	for _, inst := range s.instances {
		if missing := inst.Missing(); len(missing) > 0 {
			return fmt.Errorf("seed %d: missing %v", inst.Seed(), missing)
		}
	}
	return nil
}
