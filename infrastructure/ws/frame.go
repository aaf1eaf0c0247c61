package ws

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"tienda-live/errors"
)

// Frame is the JSON envelope carried by every websocket message, in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func decodeFrame(payload []byte) (Frame, error) {
	var frame Frame
	if err := json.Unmarshal(payload, &frame); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if frame.Event == "" {
		return Frame{}, fmt.Errorf("%w: missing event", errors.ErrInvalidRequest)
	}
	return frame, nil
}

// identifier reads a store id or an order number. Browsers send store ids as
// numbers or strings, so both are accepted. Null, empty and other shapes yield "".
func identifier(data json.RawMessage) string {
	if len(data) == 0 {
		return ""
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
