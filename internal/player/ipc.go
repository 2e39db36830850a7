package player

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"
)

// DefaultIPCTimeout bounds one IPC round trip when none is configured.
const DefaultIPCTimeout = 800 * time.Millisecond

type ipcRequest struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

type ipcReply struct {
	Event     string          `json:"event"`
	RequestID *int64          `json:"request_id"`
	Error     string          `json:"error"`
	Data      json.RawMessage `json:"data"`
}

// IPCClient performs single get_property round trips against mpv's JSON IPC
// socket. A new connection is opened for every request.
type IPCClient struct {
	// Timeout bounds the whole round trip, dial included.
	Timeout time.Duration

	nextID atomic.Int64
}

// NewIPCClient returns an IPCClient with the given round trip bound. A
// non-positive timeout selects [DefaultIPCTimeout].
func NewIPCClient(timeout time.Duration) *IPCClient {
	if timeout <= 0 {
		timeout = DefaultIPCTimeout
	}
	return &IPCClient{Timeout: timeout}
}

// RequestProperty asks the decoder listening on address for property name
// and returns the reply's data field, nil when the property is unavailable.
// Event lines and replies to other request ids are skipped.
func (c *IPCClient) RequestProperty(ctx context.Context, address, name string) (any, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultIPCTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", address)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: dial %s", ErrEndpointTimeout, address)
		}
		return nil, fmt.Errorf("%w: %w", ErrEndpointConnect, err)
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	_ = conn.SetDeadline(deadline)
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	id := c.nextID.Add(1)
	payload, err := json.Marshal(ipcRequest{Command: []any{"get_property", name}, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("encode ipc request: %w", err)
	}
	if _, err = conn.Write(append(payload, '\n')); err != nil {
		return nil, classifyIOError(ctx, err)
	}

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, classifyIOError(ctx, err)
		}

		var reply ipcReply
		if err = json.Unmarshal(line, &reply); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		if reply.Event != "" {
			continue
		}
		if reply.RequestID != nil && *reply.RequestID != id {
			continue
		}

		if len(reply.Data) == 0 {
			return nil, nil
		}
		var data any
		if err = json.Unmarshal(reply.Data, &data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return data, nil
	}
}

func classifyIOError(ctx context.Context, err error) error {
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrEndpointTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrEndpointConnect, err)
}
