package sweep

import (
	"context"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/tsunami/internal/metrics"
	"github.com/san-kum/tsunami/internal/wave"
)

// Outcome is the result of one job. Err is set instead of Field when the
// solver rejected the parameters.
type Outcome struct {
	Params   wave.Params
	Field    *wave.Field
	Metrics  map[string]float64
	Checksum uint64
	Elapsed  time.Duration
	Err      error
}

// Run solves every parameter set on at most workers goroutines (GOMAXPROCS
// when workers <= 0). Each job owns its field; outcomes keep input order.
// A rejected job records its error and the others continue. Cancelling ctx
// stops scheduling new jobs and returns ctx.Err().
func Run(ctx context.Context, params []wave.Params, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]Outcome, len(params))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range params {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = solve(p)
			entry := log.WithFields(log.Fields{
				"job":     i,
				"courant": p.Courant(),
				"decay":   p.Decay,
				"elapsed": outcomes[i].Elapsed,
			})
			if outcomes[i].Err != nil {
				entry.WithError(outcomes[i].Err).Warn("sweep job rejected")
			} else {
				entry.Debug("sweep job finished")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func solve(p wave.Params) Outcome {
	start := time.Now()
	f, err := wave.Run(p)
	out := Outcome{Params: p, Elapsed: time.Since(start), Err: err}
	if err != nil {
		return out
	}
	out.Field = f
	out.Checksum = f.Checksum()
	out.Metrics = metrics.Evaluate(f, metrics.DefaultMetrics()...)
	return out
}
