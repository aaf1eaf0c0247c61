package client

import (
	"context"
	"net/http"
	"time"

	"github.com/fasthttp/websocket"
)

// WebsocketDialer dials the server's /ws endpoint.
type WebsocketDialer struct {
	url          string
	header       http.Header
	writeTimeout time.Duration
}

func NewWebsocketDialer(url string, header http.Header, writeTimeout time.Duration) *WebsocketDialer {
	return &WebsocketDialer{url: url, header: header, writeTimeout: writeTimeout}
}

func (d *WebsocketDialer) Dial(ctx context.Context) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, d.url, d.header)
	if err != nil {
		return nil, err
	}
	return &wsConn{conn: conn, writeTimeout: d.writeTimeout}, nil
}

type wsConn struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
}

func (c *wsConn) Send(f Frame) error {
	if c.writeTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.conn.WriteJSON(f)
}

func (c *wsConn) Receive() (Frame, error) {
	var f Frame
	err := c.conn.ReadJSON(&f)
	return f, err
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}
