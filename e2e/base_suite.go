package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"tienda-live/client"
	"tienda-live/domain"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSuite struct {
	suite.Suite
	Config Config
	http   *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.HTTPAddr == "" {
		s.T().Skip("E2E_HTTP_ADDR not set")
	}
	s.http = &http.Client{Timeout: 10 * time.Second}
}

func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Call sends a JSON request and decodes the JSON answer into out when given.
func (s *BaseSuite) Call(method, path string, body any, out any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.Config.HTTPAddr+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.http.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.T().Logf("HTTP %s %s [%d] in %v", method, path, resp.StatusCode, time.Since(start))

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// Inbox collects the frames received by a live client.
type Inbox struct {
	mu     sync.Mutex
	frames map[string][]json.RawMessage
}

func (i *Inbox) record(name string) client.Callback {
	return func(data json.RawMessage) {
		i.mu.Lock()
		defer i.mu.Unlock()
		i.frames[name] = append(i.frames[name], data)
	}
}

func (i *Inbox) Count(name string) int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.frames[name])
}

// Listen connects a client.Manager joined to the configured store.
func (s *BaseSuite) Listen(events ...string) (*client.Manager, *Inbox) {
	inbox := &Inbox{frames: make(map[string][]json.RawMessage)}
	m := client.NewManager(logs.GetLoggerFromLevel(slog.LevelInfo),
		client.NewWebsocketDialer(s.Config.WSURL, nil, 5*time.Second),
		client.DefaultOptions(), nil)
	for _, name := range events {
		m.On(name, inbox.record(name))
	}
	s.Require().NoError(m.JoinStoreAdmin(domain.StoreID(s.Config.StoreID)))
	m.Connect(context.Background())
	s.T().Cleanup(m.Disconnect)
	s.Require().Eventually(func() bool { return m.State() == client.Connected }, 10*time.Second, 50*time.Millisecond)
	return m, inbox
}
