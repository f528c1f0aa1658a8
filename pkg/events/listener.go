package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// notifyPollInterval bounds how long the feed goroutine waits for a
// notification before servicing queued LISTEN/UNLISTEN requests.
const notifyPollInterval = 100 * time.Millisecond

// redialMaxBackoff caps the delay between reconnect attempts.
const redialMaxBackoff = 30 * time.Second

// NotifyListener owns the dedicated LISTEN connection that feeds the
// ConnectionManager. The event publisher fires pg_notify on per-workflow
// channels ("workflow:{id}"), the global workflows feed and the trace
// firehose; every payload arriving here is handed to the manager, which
// routes it to the WebSocket connections subscribed to that channel.
//
// A pgx connection is not safe for concurrent use, so a single goroutine
// owns it for its whole life: it alternates between draining queued channel
// requests and polling briefly for a notification. Subscribe and
// Unsubscribe only enqueue; the feed goroutine executes the statements.
type NotifyListener struct {
	dsn     string
	manager *ConnectionManager

	// mu guards conn and active together so a redial restores exactly
	// the set of channels the previous connection held.
	mu     sync.Mutex
	conn   *pgx.Conn
	active map[string]struct{}

	requests chan channelRequest
	started  atomic.Bool

	stopFeed context.CancelFunc
	feedDone chan struct{}
}

// channelRequest asks the feed goroutine to LISTEN or UNLISTEN a channel.
type channelRequest struct {
	unlisten bool
	channel  string
	reply    chan error
}

// NewNotifyListener creates a listener over its own connection string; the
// LISTEN connection lives outside the application's pool.
func NewNotifyListener(dsn string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		dsn:      dsn,
		manager:  manager,
		active:   make(map[string]struct{}),
		requests: make(chan channelRequest, 16),
	}
}

// Start dials the LISTEN connection and launches the feed goroutine.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return fmt.Errorf("failed to open LISTEN connection: %w", err)
	}

	l.mu.Lock()
	l.conn = conn
	l.mu.Unlock()

	feedCtx, cancel := context.WithCancel(ctx)
	l.stopFeed = cancel
	l.feedDone = make(chan struct{})
	l.started.Store(true)
	go l.feed(feedCtx)

	slog.Info("Notification feed started")
	return nil
}

// Subscribe starts delivery for a channel. Safe to call for a channel that
// is already subscribed.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	if l.subscribed(channel) {
		return nil
	}
	if !l.started.Load() {
		return fmt.Errorf("notification feed is not running")
	}
	if err := l.request(ctx, channelRequest{channel: channel}); err != nil {
		return fmt.Errorf("LISTEN %s failed: %w", channel, err)
	}
	slog.Debug("Subscribed to notification channel", "channel", channel)
	return nil
}

// Unsubscribe stops delivery for a channel. A channel that was never
// subscribed is a no-op.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	if !l.subscribed(channel) || !l.started.Load() {
		return nil
	}
	if err := l.request(ctx, channelRequest{unlisten: true, channel: channel}); err != nil {
		return fmt.Errorf("UNLISTEN %s failed: %w", channel, err)
	}
	return nil
}

// Stop shuts the feed goroutine down, then closes the connection. Waiting
// for the goroutine first avoids racing WaitForNotification against Close.
func (l *NotifyListener) Stop(ctx context.Context) {
	if !l.started.CompareAndSwap(true, false) {
		return
	}

	l.stopFeed()
	<-l.feedDone

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

// request hands a channel change to the feed goroutine and waits for the
// statement to run.
func (l *NotifyListener) request(ctx context.Context, req channelRequest) error {
	req.reply = make(chan error, 1)

	select {
	case l.requests <- req:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// feed is the sole user of the pgx connection. Each iteration drains
// pending channel requests, then polls for one notification.
func (l *NotifyListener) feed(ctx context.Context) {
	defer close(l.feedDone)

	for ctx.Err() == nil {
		l.drainRequests(ctx)

		conn := l.current()
		if conn == nil {
			l.redial(ctx)
			continue
		}

		pollCtx, cancel := context.WithTimeout(ctx, notifyPollInterval)
		n, err := conn.WaitForNotification(pollCtx)
		cancel()

		switch {
		case err == nil:
			l.manager.Broadcast(n.Channel, []byte(n.Payload))
		case ctx.Err() != nil:
			return
		case pollCtx.Err() != nil:
			// Poll window expired with nothing pending.
		default:
			slog.Error("LISTEN connection lost", "error", err)
			l.dropConn(ctx)
		}
	}
}

// drainRequests executes every queued LISTEN/UNLISTEN without blocking.
func (l *NotifyListener) drainRequests(ctx context.Context) {
	for {
		select {
		case req := <-l.requests:
			req.reply <- l.apply(ctx, req)
		default:
			return
		}
	}
}

// apply runs one channel change on the connection and records it in the
// active set so a redial can restore it.
func (l *NotifyListener) apply(ctx context.Context, req channelRequest) error {
	conn := l.current()
	if conn == nil {
		return fmt.Errorf("LISTEN connection is down")
	}

	if _, err := conn.Exec(ctx, listenStatement(req.unlisten, req.channel)); err != nil {
		return err
	}

	l.mu.Lock()
	if req.unlisten {
		delete(l.active, req.channel)
	} else {
		l.active[req.channel] = struct{}{}
	}
	l.mu.Unlock()
	return nil
}

// redial re-establishes the connection with exponential backoff and
// restores every LISTEN the previous connection held.
func (l *NotifyListener) redial(ctx context.Context) {
	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.dsn)
		if err != nil {
			slog.Warn("LISTEN redial failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, redialMaxBackoff)
			continue
		}

		l.mu.Lock()
		l.conn = conn
		channels := make([]string, 0, len(l.active))
		for ch := range l.active {
			channels = append(channels, ch)
		}
		l.mu.Unlock()

		for _, ch := range channels {
			if _, err := conn.Exec(ctx, listenStatement(false, ch)); err != nil {
				slog.Error("Failed to restore LISTEN after redial", "channel", ch, "error", err)
			}
		}

		slog.Info("Notification feed reconnected", "channels", len(channels))
		return
	}
}

func (l *NotifyListener) current() *pgx.Conn {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.conn
}

func (l *NotifyListener) dropConn(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}

func (l *NotifyListener) subscribed(channel string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.active[channel]
	return ok
}

// listenStatement builds the LISTEN/UNLISTEN SQL. Channel names come from
// workflow IDs and so are always quoted.
func listenStatement(unlisten bool, channel string) string {
	verb := "LISTEN "
	if unlisten {
		verb = "UNLISTEN "
	}
	return verb + pgx.Identifier{channel}.Sanitize()
}
