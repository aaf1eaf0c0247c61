package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the real-time layer.
// Every method is safe on a nil receiver so that components can run without metrics.
type Metrics struct {
	ConnectionsActive      prometheus.Gauge
	RoomJoinsTotal         *prometheus.CounterVec
	NotificationsTotal     *prometheus.CounterVec
	DeliveriesTotal        *prometheus.CounterVec
	DroppedDeliveriesTotal *prometheus.CounterVec
	RelayedTotal           *prometheus.CounterVec
	RedemptionsTotal       *prometheus.CounterVec
	ProcessCPUPercent      prometheus.Gauge
	ProcessRSSBytes        prometheus.Gauge
	ChannelLength          *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ConnectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tienda_ws_connections_active",
			Help: "Live websocket connections",
		}),
		RoomJoinsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tienda_room_joins_total",
			Help: "Room joins by room kind",
		}, []string{"kind"}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tienda_notifications_total",
			Help: "Notifications emitted by event name",
		}, []string{"event"}),
		DeliveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tienda_notification_deliveries_total",
			Help: "Notifications handed to a connection buffer",
		}, []string{"event"}),
		DroppedDeliveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tienda_notification_dropped_total",
			Help: "Notifications dropped because a connection buffer was full",
		}, []string{"event"}),
		RelayedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tienda_notifications_relayed_total",
			Help: "Notifications exchanged with other instances",
		}, []string{"direction"}),
		RedemptionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tienda_discount_redemptions_total",
			Help: "Discount redemption attempts by outcome",
		}, []string{"outcome"}),
		ProcessCPUPercent: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tienda_process_cpu_percent",
			Help: "CPU usage of the server process",
		}),
		ProcessRSSBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "tienda_process_rss_bytes",
			Help: "Resident memory of the server process",
		}),
		ChannelLength: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tienda_channel_length",
			Help: "Buffered items waiting in an internal channel",
		}, []string{"channel"}),
	}
}

func (m *Metrics) ConnectionOpened() {
	if m == nil {
		return
	}
	m.ConnectionsActive.Inc()
}

func (m *Metrics) ConnectionClosed() {
	if m == nil {
		return
	}
	m.ConnectionsActive.Dec()
}

func (m *Metrics) RoomJoined(kind string) {
	if m == nil {
		return
	}
	m.RoomJoinsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) NotificationEmitted(eventName string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(eventName).Inc()
}

func (m *Metrics) Delivered(eventName string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.DeliveriesTotal.WithLabelValues(eventName).Add(float64(n))
}

func (m *Metrics) Dropped(eventName string) {
	if m == nil {
		return
	}
	m.DroppedDeliveriesTotal.WithLabelValues(eventName).Inc()
}

func (m *Metrics) Relayed(direction string) {
	if m == nil {
		return
	}
	m.RelayedTotal.WithLabelValues(direction).Inc()
}

func (m *Metrics) Redemption(outcome string) {
	if m == nil {
		return
	}
	m.RedemptionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Process(stats ProcessStats) {
	if m == nil {
		return
	}
	m.ProcessCPUPercent.Set(stats.CPUPercent)
	m.ProcessRSSBytes.Set(float64(stats.RSSBytes))
}

func (m *Metrics) ChannelFill(name string, length int) {
	if m == nil {
		return
	}
	m.ChannelLength.WithLabelValues(name).Set(float64(length))
}
