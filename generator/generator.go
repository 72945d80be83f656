// Package generator runs problems through a bounded rejection-sampling
// driver and packages accepted samples as immutable instances.
//
// A problem's Attempt draws a full sample from the rng it is given and either
// accepts it with rendered fields or rejects it. Rejected samples are thrown
// away whole; nothing from them is patched or reused. The driver retries up to
// a cap, so every run terminates.
//
// Runs are reproducible: Generate seeds a fresh *rand.Rand from the seed it
// is given, and Batch gives instance i the seed seed+i.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Template overrides the instruction and solution text of a kind.
type Template struct {
	Instruction string `yaml:"instruction" json:"instruction"`
	Solution    string `yaml:"solution" json:"solution"`
}

// Generator produces instances of registered problems.
type Generator struct {
	registry  *Registry
	driver    Driver
	logger    *zap.Logger
	workers   int
	templates map[string]Template
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger; rejected attempts are logged at debug level.
func WithLogger(l *zap.Logger) Option { return func(g *Generator) { g.logger = l } }

// WithMaxAttempts caps the attempts per instance.
func WithMaxAttempts(n int) Option { return func(g *Generator) { g.driver.MaxAttempts = n } }

// WithBudget bounds the wall-clock time per instance.
func WithBudget(d time.Duration) Option { return func(g *Generator) { g.driver.Budget = d } }

// WithWorkers bounds the goroutines Batch uses.
func WithWorkers(n int) Option { return func(g *Generator) { g.workers = n } }

// WithRegistry replaces the built-in problems.
func WithRegistry(r *Registry) Option { return func(g *Generator) { g.registry = r } }

// WithTemplate replaces the templates of kind. Empty strings keep the
// built-in text.
func WithTemplate(kind string, t Template) Option {
	return func(g *Generator) { g.templates[kind] = t }
}

// New returns a Generator over DefaultRegistry(DefaultParams()) unless
// WithRegistry says otherwise.
func New(opts ...Option) *Generator {
	g := &Generator{
		logger:    zap.NewNop(),
		workers:   runtime.GOMAXPROCS(0),
		templates: make(map[string]Template),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.registry == nil {
		g.registry = DefaultRegistry(DefaultParams())
	}
	if g.workers < 1 {
		g.workers = 1
	}
	return g
}

// Registry returns the problems g draws from.
func (g *Generator) Registry() *Registry { return g.registry }

// Generate returns one instance of kind drawn from seed.
func (g *Generator) Generate(ctx context.Context, kind string, seed int64) (*Instance, error) {
	p, err := g.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	return g.generate(ctx, p, seed)
}

// Batch returns n instances of kind drawn from seeds seed, seed+1, ...,
// generated concurrently. Instance i is identical to Generate(ctx, kind,
// seed+i). The first error cancels the rest.
func (g *Generator) Batch(ctx context.Context, kind string, seed int64, n int) ([]*Instance, error) {
	if n < 1 {
		return nil, ErrBadCount
	}
	p, err := g.registry.Lookup(kind)
	if err != nil {
		return nil, err
	}
	out := make([]*Instance, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			inst, err := g.generate(ctx, p, seed+int64(i))
			if err != nil {
				return err
			}
			out[i] = inst
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Generator) generate(ctx context.Context, p Problem, seed int64) (*Instance, error) {
	kind := p.Kind()
	log := g.logger.With(zap.String("kind", kind), zap.Int64("seed", seed))
	r := rand.New(rand.NewSource(seed))

	d := g.driver
	d.Logger = log
	fields, attempts, err := d.Run(ctx, r, p.Attempt)
	if err != nil {
		var ex *ExhaustedError
		if errors.As(err, &ex) {
			ex.Kind = kind
		}
		log.Warn("generation failed", zap.Error(err))
		return nil, err
	}

	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return nil, err
	}
	inst := &Instance{
		id:          id,
		kind:        kind,
		seed:        seed,
		attempts:    attempts,
		fields:      fields.Clone(),
		instruction: p.Instruction(),
		solution:    p.Solution(),
	}
	if t, ok := g.templates[kind]; ok {
		if t.Instruction != "" {
			inst.instruction = t.Instruction
		}
		if t.Solution != "" {
			inst.solution = t.Solution
		}
	}
	log.Debug("instance accepted", zap.Int("attempts", attempts), zap.Stringer("id", id))
	return inst, nil
}
