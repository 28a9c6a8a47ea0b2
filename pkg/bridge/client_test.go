package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost is a minimal remote host: it accepts one connection, decodes
// concatenated JSON requests and lets the test script responses.
type fakeHost struct {
	t        *testing.T
	listener net.Listener

	mu       sync.Mutex
	conn     net.Conn
	requests chan map[string]any
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	h := &fakeHost{t: t, listener: ln, requests: make(chan map[string]any, 16)}
	go h.acceptLoop()
	t.Cleanup(h.close)
	return h
}

func (h *fakeHost) addr() string { return h.listener.Addr().String() }

func (h *fakeHost) acceptLoop() {
	for {
		conn, err := h.listener.Accept()
		if err != nil {
			return
		}
		h.mu.Lock()
		h.conn = conn
		h.mu.Unlock()
		go h.readLoop(conn)
	}
}

func (h *fakeHost) readLoop(conn net.Conn) {
	dec := json.NewDecoder(conn)
	for {
		var req map[string]any
		if err := dec.Decode(&req); err != nil {
			return
		}
		h.requests <- req
	}
}

func (h *fakeHost) awaitRequest(t *testing.T) map[string]any {
	t.Helper()
	select {
	case req := <-h.requests:
		return req
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for request")
		return nil
	}
}

func (h *fakeHost) respond(t *testing.T, raw string) {
	t.Helper()
	h.mu.Lock()
	conn := h.conn
	h.mu.Unlock()
	require.NotNil(t, conn)
	_, err := conn.Write([]byte(raw))
	require.NoError(t, err)
}

func (h *fakeHost) dropConnection() {
	h.mu.Lock()
	if h.conn != nil {
		_ = h.conn.Close()
		h.conn = nil
	}
	h.mu.Unlock()
}

func (h *fakeHost) close() {
	_ = h.listener.Close()
	h.dropConnection()
}

func newTestClient(t *testing.T, addr string, timeout time.Duration) *Client {
	t.Helper()
	c := NewClient(addr, Options{
		ReconnectBackoff: 50 * time.Millisecond,
		TimeoutFor:       func(string) time.Duration { return timeout },
	})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_SendReceivesResult(t *testing.T) {
	host := newFakeHost(t)
	c := newTestClient(t, host.addr(), 5*time.Second)

	done := make(chan struct{})
	var payload json.RawMessage
	var sendErr error
	go func() {
		defer close(done)
		payload, sendErr = c.Send(context.Background(), CmdGetSceneInfo, nil)
	}()

	req := host.awaitRequest(t)
	assert.Equal(t, CmdGetSceneInfo, req["type"])
	host.respond(t, `{"status":"success","result":{"object_count":3}}`)

	<-done
	require.NoError(t, sendErr)
	assert.JSONEq(t, `{"object_count":3}`, string(payload))
}

func TestClient_RemoteErrorSurfacesMessage(t *testing.T) {
	host := newFakeHost(t)
	c := newTestClient(t, host.addr(), 5*time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), CmdExecuteCode, map[string]any{"code": "boom()"})
		done <- err
	}()

	host.awaitRequest(t)
	host.respond(t, `{"status":"error","message":"NameError: boom is not defined"}`)

	err := <-done
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Contains(t, remoteErr.Message, "NameError")
	assert.Equal(t, CmdExecuteCode, remoteErr.Command)
}

// A request that times out must have its late response discarded, and the
// callers behind it must still receive their own payloads when the host
// answers everything in order.
func TestClient_TimeoutReconciliation(t *testing.T) {
	host := newFakeHost(t)
	c := NewClient(host.addr(), Options{
		ReconnectBackoff: 50 * time.Millisecond,
		TimeoutFor: func(cmd string) time.Duration {
			if cmd == CmdExecuteCode {
				return 150 * time.Millisecond
			}
			return 5 * time.Second
		},
	})
	t.Cleanup(func() { _ = c.Close() })

	type result struct {
		payload json.RawMessage
		err     error
	}
	results := make([]chan result, 3)
	commands := []string{CmdExecuteCode, CmdGetSceneInfo, CmdGetPolyhavenStatus}
	for i, cmd := range commands {
		results[i] = make(chan result, 1)
		go func(i int, cmd string) {
			p, err := c.Send(context.Background(), cmd, nil)
			results[i] <- result{p, err}
		}(i, cmd)
		host.awaitRequest(t) // force FIFO flush order
	}

	// First caller times out before any response is written.
	r0 := <-results[0]
	require.ErrorIs(t, r0.err, ErrTimeout)

	// Host now answers all three in order; the first frame is discarded.
	host.respond(t, `{"status":"success","result":"late-answer-1"}`)
	host.respond(t, `{"status":"success","result":{"scene":"two"}}`)
	host.respond(t, `{"status":"success","result":{"enabled":true}}`)

	r1 := <-results[1]
	require.NoError(t, r1.err)
	assert.JSONEq(t, `{"scene":"two"}`, string(r1.payload))

	r2 := <-results[2]
	require.NoError(t, r2.err)
	assert.JSONEq(t, `{"enabled":true}`, string(r2.payload))
}

func TestClient_ResponseWithoutResultReturnsWholeObject(t *testing.T) {
	host := newFakeHost(t)
	c := newTestClient(t, host.addr(), 5*time.Second)

	done := make(chan json.RawMessage, 1)
	go func() {
		p, err := c.Send(context.Background(), CmdGetPolyhavenStatus, nil)
		require.NoError(t, err)
		done <- p
	}()

	host.awaitRequest(t)
	host.respond(t, `{"status":"success","enabled":true,"message":"PolyHaven ready"}`)

	var m map[string]any
	require.NoError(t, json.Unmarshal(<-done, &m))
	assert.Equal(t, true, m["enabled"])
}

func TestClient_ConnectionResetFailsInFlight(t *testing.T) {
	host := newFakeHost(t)
	c := newTestClient(t, host.addr(), 5*time.Second)

	done := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), CmdGetSceneInfo, nil)
		done <- err
	}()

	host.awaitRequest(t)
	host.dropConnection()

	require.ErrorIs(t, <-done, ErrConnectionReset)
}

func TestClient_ReconnectsAfterDrop(t *testing.T) {
	host := newFakeHost(t)
	c := newTestClient(t, host.addr(), 5*time.Second)

	// Prime the connection, then kill it.
	done := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), CmdGetSceneInfo, nil)
		done <- err
	}()
	host.awaitRequest(t)
	host.dropConnection()
	require.Error(t, <-done)

	// A subsequent Send transparently redials.
	done2 := make(chan error, 1)
	go func() {
		_, err := c.Send(context.Background(), CmdGetSceneInfo, nil)
		done2 <- err
	}()
	host.awaitRequest(t)
	host.respond(t, `{"status":"success","result":{"object_count":0}}`)
	require.NoError(t, <-done2)
}

func TestClient_SendAfterCloseFails(t *testing.T) {
	host := newFakeHost(t)
	c := NewClient(host.addr(), Options{})
	require.NoError(t, c.Close())

	_, err := c.Send(context.Background(), CmdGetSceneInfo, nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClient_InterleavedFramesInOneSegment(t *testing.T) {
	host := newFakeHost(t)
	c := newTestClient(t, host.addr(), 5*time.Second)

	errs := make([]chan error, 2)
	payloads := make([]chan json.RawMessage, 2)
	for i := 0; i < 2; i++ {
		errs[i] = make(chan error, 1)
		payloads[i] = make(chan json.RawMessage, 1)
		go func(i int) {
			p, err := c.Send(context.Background(), CmdGetSceneInfo, nil)
			payloads[i] <- p
			errs[i] <- err
		}(i)
		host.awaitRequest(t)
	}

	// Both responses in a single TCP segment with trailing garbage.
	host.respond(t, `{"status":"success","result":1}{"status":"success","result":2}junk`)

	p0, p1 := <-payloads[0], <-payloads[1]
	require.NoError(t, <-errs[0])
	require.NoError(t, <-errs[1])
	assert.Equal(t, "1", string(p0))
	assert.Equal(t, "2", string(p1))
}

// A brace-balanced but unparseable frame must be dropped without shifting
// correlation: the valid frames behind it still reach their own callers.
func TestClient_CorruptFrameDoesNotMisrouteResponses(t *testing.T) {
	host := newFakeHost(t)
	c := newTestClient(t, host.addr(), 5*time.Second)

	errs := make([]chan error, 2)
	payloads := make([]chan json.RawMessage, 2)
	for i := 0; i < 2; i++ {
		errs[i] = make(chan error, 1)
		payloads[i] = make(chan json.RawMessage, 1)
		go func(i int) {
			p, err := c.Send(context.Background(), CmdGetSceneInfo, nil)
			payloads[i] <- p
			errs[i] <- err
		}(i)
		host.awaitRequest(t)
	}

	// The corrupt frame rides in the same segment as the first response.
	host.respond(t, `{bad}{"status":"success","result":1}`)
	host.respond(t, `{"status":"success","result":2}`)

	p0, p1 := <-payloads[0], <-payloads[1]
	require.NoError(t, <-errs[0])
	require.NoError(t, <-errs[1])
	assert.Equal(t, "1", string(p0))
	assert.Equal(t, "2", string(p1))
}

func TestClient_DialFailure(t *testing.T) {
	// Reserve a port and close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	c := NewClient(addr, Options{DialTimeout: 200 * time.Millisecond})
	t.Cleanup(func() { _ = c.Close() })

	err = c.Connect(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConnected))
}
