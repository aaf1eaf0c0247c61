// Package runtime holds the live side of the server: who is connected, which
// rooms they are in and how notifications reach them.
// It contains no business rules.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"tienda-live/contract"
	"tienda-live/domain/event"
	"tienda-live/observability"
	"tienda-live/runtime/workers"
	"tienda-live/sink"
	"time"
)

const channelWarnPercent = 80

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     *workers.Supervisor
	registry       *Registry
	rooms          *Rooms
	gateway        *Gateway
	notifications  chan event.Notification
	permanentSinks []contract.EventSink
	relay          contract.IRelay
	sampler        workers.ProcessSampler
	metricInterval time.Duration
	sinkTimeout    time.Duration
	metrics        *observability.Metrics
	cancel         context.CancelFunc
	done           chan struct{}
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor, metrics *observability.Metrics,
	bufferSize int, sinkTimeout time.Duration) *Orchestrator {
	registry := NewRegistry()
	rooms := NewRooms(log, registry, metrics)
	notifications := make(chan event.Notification, bufferSize)
	return &Orchestrator{
		log:           log,
		supervisor:    supervisor,
		registry:      registry,
		rooms:         rooms,
		gateway:       NewGateway(log, rooms, notifications, metrics),
		notifications: notifications,
		sinkTimeout:   sinkTimeout,
		metrics:       metrics,
	}
}

func (o *Orchestrator) Rooms() *Rooms { return o.rooms }

func (o *Orchestrator) Gateway() *Gateway { return o.gateway }

// Add registers sinks receiving every locally emitted notification.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// WithRelay shares notifications with the other instances of the server.
func (o *Orchestrator) WithRelay(relay contract.IRelay) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.relay = relay
	return o
}

func (o *Orchestrator) WithProcessMonitor(sampler workers.ProcessSampler, interval time.Duration) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sampler, o.metricInterval = sampler, interval
	return o
}

// Start registers the background workers and runs them under supervision.
// It returns immediately; Stop waits for the workers to end.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.relay != nil {
		o.permanentSinks = append(o.permanentSinks, sink.NewRelaySink(o.relay, o.metrics))
		o.supervisor.Add(workers.NewRelaySubscriber(o.log, o.relay, o.gateway, o.metrics))
	}
	o.supervisor.Add(workers.NewEventFanout(o.log, o.notifications, o.sinkTimeout, o.permanentSinks...))
	if o.sampler != nil {
		o.supervisor.Add(
			workers.NewProcessMonitor(o.log, o.sampler, o.metricInterval),
			workers.NewChannelCapacityWorker(o.log, o.metrics, o.metricInterval, channelWarnPercent,
				workers.NamedChannel{Name: "fanout", Channel: o.notifications}),
		)
	}
	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.done = make(chan struct{})
	done := o.done
	sinks := len(o.permanentSinks)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator", "permanent_sinks", sinks, "relay", o.relay != nil)
	go func() {
		defer close(done)
		o.supervisor.Run(runCtx)
	}()
	return nil
}

// Stop cancels the supervised workers and waits for them.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()

	o.mu.Lock()
	cancel, done := o.cancel, o.done
	o.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	o.log.Debug("Orchestrator stopped")
}
