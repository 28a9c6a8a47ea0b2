package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"
)

const (
	// DefaultQueueSize bounds the send queue. Overflow yields ErrQueueFull
	// rather than blocking the caller.
	DefaultQueueSize = 1024

	// reconnectBackoff is the fixed delay between redial attempts after a
	// disconnect.
	reconnectBackoff = 3 * time.Second

	readBufferSize = 32 * 1024
)

// request is the wire shape sent to the remote host.
type request struct {
	Type   string         `json:"type"`
	Params map[string]any `json:"params"`
}

// response is the wire shape received from the remote host. The optional
// ID is honored when present (some host builds echo it back); otherwise
// correlation is strictly FIFO.
type response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	ID      *uint64         `json:"id"`
}

type outcome struct {
	payload json.RawMessage
	err     error
}

// pendingRequest tracks one flushed command awaiting its response.
type pendingRequest struct {
	id          uint64
	commandType string
	sentAt      time.Time
	deadline    time.Time
	resultCh    chan outcome
	timedOut    bool
}

// Client multiplexes request/response commands over a single persistent
// TCP connection to the remote 3D host. The remote host answers in the
// order it received requests; responses are therefore correlated FIFO,
// with an id-match fast path when a response happens to echo an id.
//
// Concurrency: Send may be called from any goroutine. Exactly one writer
// goroutine flushes requests and exactly one reader goroutine drains the
// connection.
type Client struct {
	addr        string
	dialTimeout time.Duration
	backoff     time.Duration
	timeoutFor  func(commandType string) time.Duration

	sendCh chan *sendItem
	closed chan struct{}

	mu      sync.Mutex
	conn    net.Conn
	nextID  uint64
	pending []*pendingRequest // insertion order == flush order
	started bool
	closeMu sync.Once
	wg      sync.WaitGroup
}

type sendItem struct {
	req     *pendingRequest
	payload []byte
}

// Options configures optional Client behavior.
type Options struct {
	// QueueSize bounds the send queue; DefaultQueueSize when zero.
	QueueSize int
	// DialTimeout bounds each dial attempt; 10s when zero.
	DialTimeout time.Duration
	// ReconnectBackoff is the delay between redial attempts; 3s when zero.
	ReconnectBackoff time.Duration
	// TimeoutFor overrides the per-command response deadline. Defaults to
	// CommandTimeout.
	TimeoutFor func(commandType string) time.Duration
}

// NewClient creates a multiplexer for the given host address
// (host:port). The connection is established lazily on first Send or
// explicitly via Connect.
func NewClient(addr string, opts Options) *Client {
	queueSize := opts.QueueSize
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	dialTimeout := opts.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = 10 * time.Second
	}
	backoff := opts.ReconnectBackoff
	if backoff <= 0 {
		backoff = reconnectBackoff
	}
	timeoutFor := opts.TimeoutFor
	if timeoutFor == nil {
		timeoutFor = CommandTimeout
	}
	return &Client{
		addr:        addr,
		dialTimeout: dialTimeout,
		backoff:     backoff,
		timeoutFor:  timeoutFor,
		sendCh:      make(chan *sendItem, queueSize),
		closed:      make(chan struct{}),
	}
}

// Connect dials the remote host and starts the writer/reader goroutines.
// Safe to call once; Send triggers it implicitly.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if !c.started {
		c.started = true
		c.wg.Add(1)
		go c.writeLoop()
	}
	if c.conn != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	c.adoptConn(conn)
	return nil
}

// Send issues one command and waits for its response, the per-command
// deadline, or ctx cancellation. The returned payload is the response's
// "result" field, or the whole response object when "result" is absent.
func (c *Client) Send(ctx context.Context, commandType string, params map[string]any) (json.RawMessage, error) {
	select {
	case <-c.closed:
		return nil, ErrClosed
	default:
	}

	c.ensureStarted()

	payload, err := json.Marshal(request{Type: commandType, Params: params})
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", commandType, err)
	}

	timeout := c.timeoutFor(commandType)
	req := &pendingRequest{
		commandType: commandType,
		resultCh:    make(chan outcome, 1),
	}

	select {
	case c.sendCh <- &sendItem{req: req, payload: payload}:
	default:
		return nil, ErrQueueFull
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-req.resultCh:
		return out.payload, out.err
	case <-timer.C:
		c.markTimedOut(req)
		// Late responses for this id are drained and discarded by the
		// reader; the FIFO position is preserved by keeping the entry.
		return nil, fmt.Errorf("%w: %s after %s", ErrTimeout, commandType, timeout)
	case <-ctx.Done():
		c.markTimedOut(req)
		return nil, ctx.Err()
	case <-c.closed:
		return nil, ErrClosed
	}
}

// Close shuts the client down, failing all pending requests.
func (c *Client) Close() error {
	c.closeMu.Do(func() {
		close(c.closed)
		c.mu.Lock()
		if c.conn != nil {
			_ = c.conn.Close()
			c.conn = nil
		}
		c.failAllLocked(ErrClosed)
		c.mu.Unlock()
	})
	c.wg.Wait()
	return nil
}

// Connected reports whether a live connection exists.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *Client) ensureStarted() {
	c.mu.Lock()
	if !c.started {
		c.started = true
		c.wg.Add(1)
		go c.writeLoop()
	}
	c.mu.Unlock()
}

func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	d := net.Dialer{Timeout: c.dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrNotConnected, c.addr, err)
	}
	slog.Info("Connected to remote host", "addr", c.addr)
	return conn, nil
}

func (c *Client) adoptConn(conn net.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
	c.wg.Add(1)
	go c.readLoop(conn)
}

// writeLoop is the single writer: it serializes all request flushes and
// re-dials with a fixed backoff when the connection is gone. Queued
// requests survive a disconnect; they are offered to the next connection.
func (c *Client) writeLoop() {
	defer c.wg.Done()
	for {
		select {
		case <-c.closed:
			return
		case item := <-c.sendCh:
			conn := c.connOrReconnect()
			if conn == nil {
				item.req.deliver(outcome{err: ErrNotConnected})
				return
			}

			timeout := c.timeoutFor(item.req.commandType)
			c.mu.Lock()
			item.req.id = c.nextID
			c.nextID++
			item.req.sentAt = time.Now()
			item.req.deadline = item.req.sentAt.Add(timeout)
			c.pending = append(c.pending, item.req)
			c.mu.Unlock()

			if _, err := conn.Write(item.payload); err != nil {
				slog.Warn("Write to remote host failed", "command", item.req.commandType, "error", err)
				c.dropConn(conn, ErrConnectionReset)
			}
		}
	}
}

// connOrReconnect returns the live connection, redialing with backoff
// until it succeeds or the client closes.
func (c *Client) connOrReconnect() net.Conn {
	for {
		c.mu.Lock()
		conn := c.conn
		c.mu.Unlock()
		if conn != nil {
			return conn
		}

		conn, err := c.dial(context.Background())
		if err == nil {
			c.adoptConn(conn)
			return conn
		}
		slog.Warn("Reconnect failed, backing off", "addr", c.addr, "backoff", c.backoff, "error", err)

		select {
		case <-c.closed:
			return nil
		case <-time.After(c.backoff):
		}
	}
}

// readLoop is the single reader for one connection. It feeds the frame
// scanner and correlates complete frames against the pending queue.
func (c *Client) readLoop(conn net.Conn) {
	defer c.wg.Done()

	scanner := &frameScanner{}
	buf := make([]byte, readBufferSize)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			scanner.Append(buf[:n])
			c.drainFrames(scanner)
		}
		if err != nil {
			select {
			case <-c.closed:
			default:
				slog.Warn("Remote connection lost", "addr", c.addr, "error", err)
			}
			c.dropConn(conn, ErrConnectionReset)
			return
		}
	}
}

func (c *Client) drainFrames(scanner *frameScanner) {
	for {
		frame, ok := scanner.Next()
		if !ok {
			return
		}
		var resp response
		if err := json.Unmarshal(frame, &resp); err != nil {
			// Next has already advanced past the bad frame; the buffer is
			// positioned at the following frame boundary, so dropping the
			// bytes here is the whole recovery.
			slog.Warn("Discarding unparseable frame", "bytes", len(frame), "error", err)
			continue
		}
		c.dispatch(frame, &resp)
	}
}

// dispatch routes one parsed frame to its pending request. When the frame
// echoes an id, the id wins; otherwise the head of the FIFO queue is the
// target. Entries already timed out consume their frame silently so later
// responses stay aligned.
func (c *Client) dispatch(frame json.RawMessage, resp *response) {
	c.mu.Lock()
	var req *pendingRequest
	if resp.ID != nil {
		for i, p := range c.pending {
			if p.id == *resp.ID {
				req = p
				c.pending = append(c.pending[:i], c.pending[i+1:]...)
				break
			}
		}
		if req == nil {
			c.mu.Unlock()
			slog.Debug("Discarding response for unknown id", "id", *resp.ID)
			return
		}
	} else {
		for len(c.pending) > 0 {
			head := c.pending[0]
			c.pending = c.pending[1:]
			if head.timedOut {
				// Timed-out-and-discarded: the caller already received
				// ErrTimeout; swallow the late frame to stay aligned.
				slog.Debug("Discarding late response for timed-out request",
					"id", head.id, "command", head.commandType)
				head = nil
				req = nil
				break
			}
			req = head
			break
		}
		if req == nil {
			c.mu.Unlock()
			return
		}
	}
	timedOut := req.timedOut
	c.mu.Unlock()

	if timedOut {
		return
	}
	req.deliver(c.outcomeFor(frame, resp, req.commandType))
}

func (c *Client) outcomeFor(frame json.RawMessage, resp *response, commandType string) outcome {
	if resp.Status == "error" {
		return outcome{err: &RemoteError{Command: commandType, Message: resp.Message}}
	}
	if len(resp.Result) > 0 {
		return outcome{payload: resp.Result}
	}
	return outcome{payload: frame}
}

// markTimedOut flags a pending request so its eventual response is
// discarded. The entry stays in the FIFO queue to keep later responses
// correlated with the right callers.
func (c *Client) markTimedOut(req *pendingRequest) {
	c.mu.Lock()
	req.timedOut = true
	c.mu.Unlock()
}

// dropConn tears down the given connection (if still current) and fails
// every in-flight request in a single pass. Queued-but-unsent requests
// stay in the send queue for the next connection.
func (c *Client) dropConn(conn net.Conn, cause error) {
	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	c.failAllLocked(cause)
	c.mu.Unlock()
	_ = conn.Close()
}

func (c *Client) failAllLocked(cause error) {
	for _, req := range c.pending {
		if !req.timedOut {
			req.deliver(outcome{err: cause})
		}
	}
	c.pending = nil
}

func (r *pendingRequest) deliver(out outcome) {
	select {
	case r.resultCh <- out:
	default:
	}
}
