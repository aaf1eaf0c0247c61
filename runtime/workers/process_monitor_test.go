package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"tienda-live/observability"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type stubSampler struct {
	calls atomic.Int32
	err   error
}

func (s *stubSampler) Sample() (observability.ProcessStats, error) {
	s.calls.Add(1)
	return observability.ProcessStats{}, s.err
}

func TestProcessMonitor_Samples_On_Interval(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a sampler failing every time
	sampler := &stubSampler{err: errors.New("proc unavailable")}
	worker := NewProcessMonitor(log, sampler, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// When the monitor runs
	err := worker.Run(ctx)

	// Then errors are logged, sampling goes on and the stop is clean
	req.NoError(err)
	req.GreaterOrEqual(sampler.calls.Load(), int32(3))
}
