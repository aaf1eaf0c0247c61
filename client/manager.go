package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/errors"
	"time"
)

type State string

const (
	Disconnected State = "disconnected"
	Connecting   State = "connecting"
	Connected    State = "connected"
	// Failed is terminal until Connect is called again.
	Failed State = "failed"
)

// Frame is one message on the socket, same envelope as the server's.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Conn is one established transport session. Send is never called concurrently.
type Conn interface {
	Send(f Frame) error
	Receive() (Frame, error)
	Close() error
}

// Dialer opens a session. It must give up when ctx is done.
type Dialer interface {
	Dial(ctx context.Context) (Conn, error)
}

// StatusRenderer shows the connection state to the user. err is set on failures.
type StatusRenderer func(state State, err error)

type Callback func(data json.RawMessage)

type Options struct {
	MaxReconnectAttempts int
	HandshakeTimeout     time.Duration
	MinReconnectDelay    time.Duration
	MaxReconnectDelay    time.Duration
	HeartbeatInterval    time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxReconnectAttempts: 5,
		HandshakeTimeout:     20 * time.Second,
		MinReconnectDelay:    time.Second,
		MaxReconnectDelay:    5 * time.Second,
		HeartbeatInterval:    30 * time.Second,
	}
}

// Manager keeps one logical connection to the server across transport drops.
//
// The server forgets room memberships when a socket goes away, so the store
// and the orders asked for are remembered here and joined again every time
// the manager reaches Connected.
type Manager struct {
	log    *slog.Logger
	dialer Dialer
	opts   Options
	render StatusRenderer

	mu        sync.Mutex
	state     State
	conn      Conn
	store     domain.StoreID
	admin     bool
	orders    map[string]struct{}
	callbacks map[string][]Callback
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewManager(log *slog.Logger, dialer Dialer, opts Options, render StatusRenderer) *Manager {
	if render == nil {
		render = func(State, error) {}
	}
	return &Manager{
		log:       log,
		dialer:    dialer,
		opts:      opts,
		render:    render,
		state:     Disconnected,
		orders:    make(map[string]struct{}),
		callbacks: make(map[string][]Callback),
	}
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connect starts the connection loop. It does nothing while a loop is already running.
func (m *Manager) Connect(ctx context.Context) {
	m.mu.Lock()
	if m.done != nil {
		select {
		case <-m.done:
		default:
			m.mu.Unlock()
			return
		}
	}
	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.cancel, m.done = cancel, done
	m.mu.Unlock()

	go m.run(loopCtx, done)
}

// Disconnect stops the loop and closes the session. No further attempt is made.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	cancel, done, conn := m.cancel, m.done, m.conn
	m.cancel = nil
	m.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	if conn != nil {
		_ = conn.Close()
	}
	<-done
	m.setState(Disconnected, nil)
}

// On registers a callback. Aliases and canonical names share the same callbacks.
func (m *Manager) On(name string, cb Callback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := canonical(name)
	m.callbacks[key] = append(m.callbacks[key], cb)
}

// Off drops every callback of the event.
func (m *Manager) Off(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.callbacks, canonical(name))
}

// JoinStore remembers the store and joins it now when connected.
func (m *Manager) JoinStore(storeID domain.StoreID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store, m.admin = storeID, false
	return m.sendIfConnected(event.JoinStore, string(storeID))
}

// JoinStoreAdmin is JoinStore plus the admin room, where orders and redemptions are announced.
func (m *Manager) JoinStoreAdmin(storeID domain.StoreID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store, m.admin = storeID, true
	if err := m.sendIfConnected(event.JoinStore, string(storeID)); err != nil {
		return err
	}
	return m.sendIfConnected(event.JoinStoreAdmin, string(storeID))
}

func (m *Manager) LeaveStore(storeID domain.StoreID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.store == storeID {
		m.store, m.admin = "", false
	}
	return m.sendIfConnected(event.LeaveStore, string(storeID))
}

func (m *Manager) JoinOrder(number string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[number] = struct{}{}
	return m.sendIfConnected(event.JoinOrder, number)
}

func (m *Manager) LeaveOrder(number string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.orders, number)
	return m.sendIfConnected(event.LeaveOrder, number)
}

// Emit sends a frame right away and fails when not connected.
func (m *Manager) Emit(name string, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Connected {
		return errors.ErrNotConnected
	}
	return m.send(name, data)
}

func (m *Manager) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	failures := 0
	for {
		m.setState(Connecting, nil)
		conn, err := m.dial(ctx)
		if ctx.Err() != nil {
			if conn != nil {
				_ = conn.Close()
			}
			return
		}
		if err != nil {
			failures++
			m.log.Warn("Connection attempt failed", "attempt", failures, "error", err)
			if failures >= m.opts.MaxReconnectAttempts {
				m.setState(Failed, fmt.Errorf("%w: %v", errors.ErrConnectionFailed, err))
				return
			}
			m.setState(Disconnected, err)
			if !sleep(ctx, m.backoff(failures)) {
				return
			}
			continue
		}

		failures = 0
		m.connected(conn)
		err = m.serve(ctx, conn)
		m.mu.Lock()
		m.conn = nil
		m.mu.Unlock()
		_ = conn.Close()
		if ctx.Err() != nil {
			return
		}
		m.setState(Disconnected, err)
		if !sleep(ctx, m.opts.MinReconnectDelay) {
			return
		}
	}
}

func (m *Manager) dial(ctx context.Context) (Conn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, m.opts.HandshakeTimeout)
	defer cancel()
	return m.dialer.Dial(dialCtx)
}

// connected replays the memberships under the lock so a concurrent JoinStore
// can not send the same join twice.
func (m *Manager) connected(conn Conn) {
	m.mu.Lock()
	m.conn = conn
	m.state = Connected
	if m.store != "" {
		if err := m.send(event.JoinStore, string(m.store)); err != nil {
			m.log.Warn("Store join not sent", "store", m.store, "error", err)
		}
		if m.admin {
			if err := m.send(event.JoinStoreAdmin, string(m.store)); err != nil {
				m.log.Warn("Admin join not sent", "store", m.store, "error", err)
			}
		}
	}
	for number := range m.orders {
		if err := m.send(event.JoinOrder, number); err != nil {
			m.log.Warn("Order join not sent", "order", number, "error", err)
		}
	}
	m.mu.Unlock()

	m.log.Info("Connected")
	m.render(Connected, nil)
}

// serve reads until the session breaks. The heartbeat only runs inside it.
func (m *Manager) serve(ctx context.Context, conn Conn) error {
	serveCtx, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		<-serveCtx.Done()
		if ctx.Err() != nil {
			_ = conn.Close()
		}
	}()
	go m.heartbeat(serveCtx)

	for {
		frame, err := conn.Receive()
		if err != nil {
			return err
		}
		m.dispatch(frame)
	}
}

func (m *Manager) heartbeat(ctx context.Context) {
	ticker := time.NewTicker(m.opts.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := m.Emit(event.Ping, nil); err != nil {
				m.log.Debug("Heartbeat not sent", "error", err)
			}
		}
	}
}

func (m *Manager) dispatch(frame Frame) {
	m.mu.Lock()
	callbacks := append([]Callback(nil), m.callbacks[canonical(frame.Event)]...)
	m.mu.Unlock()

	for i, cb := range callbacks {
		m.safeCall(frame.Event, i, cb, frame.Data)
	}
}

func (m *Manager) safeCall(name string, index int, cb Callback, data json.RawMessage) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("Callback panicked", "event", name, "callback", index, "panic", r)
		}
	}()
	cb(data)
}

// send expects m.mu to be held.
func (m *Manager) send(name string, data any) error {
	if m.conn == nil {
		return errors.ErrNotConnected
	}
	frame := Frame{Event: name}
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}
		frame.Data = raw
	}
	return m.conn.Send(frame)
}

func (m *Manager) sendIfConnected(name string, data any) error {
	if m.state != Connected {
		return nil
	}
	return m.send(name, data)
}

func (m *Manager) setState(state State, err error) {
	m.mu.Lock()
	changed := m.state != state
	m.state = state
	m.mu.Unlock()
	if changed || err != nil {
		m.render(state, err)
	}
}

// backoff doubles from MinReconnectDelay up to MaxReconnectDelay.
func (m *Manager) backoff(failures int) time.Duration {
	delay := m.opts.MinReconnectDelay
	for i := 1; i < failures && delay < m.opts.MaxReconnectDelay; i++ {
		delay *= 2
	}
	return min(delay, m.opts.MaxReconnectDelay)
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func canonical(name string) string {
	if c, ok := event.Aliases[name]; ok {
		return c
	}
	return name
}
