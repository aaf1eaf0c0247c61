package observability

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Sample(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	metrics := NewMetrics(prometheus.NewRegistry())

	mm, err := NewMonitoringManager(log, metrics)
	req.NoError(err)

	// When sampling the current process
	stats, err := mm.Sample()

	// Then the latest sample is kept and exported
	req.NoError(err)
	req.Positive(stats.RSSBytes)
	req.Positive(stats.Goroutines)
	req.Equal(stats, mm.GetLatest())
	req.Equal(float64(stats.RSSBytes), testutil.ToFloat64(metrics.ProcessRSSBytes))
}

func TestMetrics_Nil_Receiver_Is_Safe(t *testing.T) {
	req := require.New(t)
	var metrics *Metrics

	req.NotPanics(func() {
		metrics.ConnectionOpened()
		metrics.ConnectionClosed()
		metrics.RoomJoined("general")
		metrics.NotificationEmitted("nueva-orden")
		metrics.Delivered("nueva-orden", 3)
		metrics.Dropped("nueva-orden")
		metrics.Relayed("in")
		metrics.Redemption("valid")
		metrics.Process(ProcessStats{})
	})
}

func TestMetrics_Counters(t *testing.T) {
	req := require.New(t)
	metrics := NewMetrics(prometheus.NewRegistry())

	metrics.ConnectionOpened()
	metrics.ConnectionOpened()
	metrics.ConnectionClosed()
	metrics.Delivered("pong", 2)
	metrics.Delivered("pong", 0)

	req.Equal(float64(1), testutil.ToFloat64(metrics.ConnectionsActive))
	req.Equal(float64(2), testutil.ToFloat64(metrics.DeliveriesTotal.WithLabelValues("pong")))
}
