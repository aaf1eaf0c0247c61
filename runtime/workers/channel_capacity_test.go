package workers

import (
	"log/slog"
	"testing"
	"tienda-live/domain/event"
	"tienda-live/observability"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestChannelCapacityWorker_Sample(t *testing.T) {
	req := require.New(t)
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	ch := make(chan event.Notification, 4)
	ch <- event.Notification{}
	ch <- event.Notification{}
	ch <- event.Notification{}

	w := NewChannelCapacityWorker(logs.GetLoggerFromLevel(slog.LevelDebug), metrics, time.Second, 75,
		NamedChannel{Name: "fanout", Channel: ch})

	// When sampling
	w.Sample()

	// Then the gauge holds the buffered count
	req.Equal(float64(3), testutil.ToFloat64(metrics.ChannelLength.WithLabelValues("fanout")))
}
