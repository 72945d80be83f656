package generator

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/njchilds90/nadlogar/render"
)

// DefaultMaxAttempts bounds a driver run when Driver.MaxAttempts is unset.
const DefaultMaxAttempts = 1000

// Outcome is the result of one attempt: accepted fields or a rejection
// reason. Rejections never leave the driver.
type Outcome struct {
	fields   render.Fields
	reason   string
	accepted bool
}

// Accept wraps the rendered fields of a valid sample.
func Accept(fields render.Fields) Outcome { return Outcome{fields: fields, accepted: true} }

// Reject discards the sample for the given reason.
func Reject(reason string) Outcome { return Outcome{reason: reason} }

// RejectErr discards the sample, using err as the reason.
func RejectErr(err error) Outcome { return Reject(err.Error()) }

func (o Outcome) Accepted() bool        { return o.accepted }
func (o Outcome) Reason() string        { return o.reason }
func (o Outcome) Fields() render.Fields { return o.fields }

// Attempt draws one complete sample from r. It must draw every value fresh;
// a rejected sample is thrown away whole.
type Attempt func(r *rand.Rand) Outcome

// Driver repeats an Attempt until one is accepted.
//
// The zero value is usable: it allows DefaultMaxAttempts attempts, has no
// wall-clock budget and logs nothing.
type Driver struct {
	MaxAttempts int
	Budget      time.Duration
	Logger      *zap.Logger
}

// Run samples until attempt accepts and returns the fields together with the
// number of attempts used. It returns an *ExhaustedError after MaxAttempts
// rejections, when ctx is done, or when Budget has elapsed.
func (d Driver) Run(ctx context.Context, r *rand.Rand, attempt Attempt) (render.Fields, int, error) {
	limit := d.MaxAttempts
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if d.Budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Budget)
		defer cancel()
	}

	var last string
	for n := 1; n <= limit; n++ {
		if err := ctx.Err(); err != nil {
			return nil, n - 1, &ExhaustedError{Attempts: n - 1, LastReason: last, Cause: err}
		}
		out := attempt(r)
		if out.Accepted() {
			return out.Fields(), n, nil
		}
		last = out.Reason()
		log.Debug("attempt rejected", zap.Int("attempt", n), zap.String("reason", last))
	}
	return nil, limit, &ExhaustedError{Attempts: limit, LastReason: last}
}
