package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/tgpolish/internal/common"
	"github.com/dmitrijs2005/tgpolish/internal/correction"
	"github.com/dmitrijs2005/tgpolish/internal/logging"
	"github.com/dmitrijs2005/tgpolish/internal/telegram"
)

// liveConn is the runtime handle for one user's authenticated connection.
// Exists only inside the registry; never persisted.
type liveConn struct {
	client telegram.Client
	cancel context.CancelFunc
	done   chan struct{} // closed when the pump goroutine exits
}

// Registry owns the set of live per-user connections and their start/stop
// lifecycle. Invariants:
//
//   - at most one liveConn per user at any instant; Start supersedes,
//     tearing the old connection down before the new one is established;
//   - every connection is fully torn down (pump exited, transport closed)
//     before its entry is removed — after Stop returns, no further message
//     event for that user is processed.
//
// Start/Stop for the same user serialize on a per-user lock; different
// users are fully independent.
type Registry struct {
	dialer telegram.Dialer
	gate   *correction.Gate
	logger logging.Logger

	locks *keyedLocks

	mu    sync.RWMutex
	conns map[int64]*liveConn
}

// NewRegistry wires the registry; the gate consumes every connection's
// outgoing-message stream.
func NewRegistry(dialer telegram.Dialer, gate *correction.Gate, logger logging.Logger) *Registry {
	return &Registry{
		dialer: dialer,
		gate:   gate,
		logger: logger.With("module", "registry"),
		locks:  newKeyedLocks(),
		conns:  make(map[int64]*liveConn),
	}
}

// Start opens a connection for the user from the given plaintext credential
// and attaches the correction pipeline to its event stream. An existing
// connection is stopped first; superseding is not an error. On failure no
// entry is left behind.
func (r *Registry) Start(ctx context.Context, userID int64, credential string) error {
	unlock := r.locks.lock(userID)
	defer unlock()

	r.teardown(ctx, userID)

	client, err := r.dialer.DialSession(ctx, credential)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrConnectFailed, err)
	}

	// the pump outlives the Start call; its context is cancelled by Stop
	pumpCtx, cancel := context.WithCancel(context.Background())
	conn := &liveConn{client: client, cancel: cancel, done: make(chan struct{})}

	go r.pump(pumpCtx, userID, conn)

	r.mu.Lock()
	r.conns[userID] = conn
	r.mu.Unlock()

	r.logger.Info(ctx, "userbot started", "user_id", userID)
	return nil
}

// Stop tears down the user's connection. Returns true if one existed;
// false is not an error.
func (r *Registry) Stop(ctx context.Context, userID int64) bool {
	unlock := r.locks.lock(userID)
	defer unlock()

	stopped := r.teardown(ctx, userID)
	if stopped {
		r.logger.Info(ctx, "userbot stopped", "user_id", userID)
	}
	return stopped
}

// IsActive reports whether the user has a live connection. Pure lookup.
func (r *Registry) IsActive(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[userID]
	return ok
}

// StopAll tears down every live connection; used on shutdown.
func (r *Registry) StopAll(ctx context.Context) {
	r.mu.RLock()
	ids := make([]int64, 0, len(r.conns))
	for id := range r.conns {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	for _, id := range ids {
		r.Stop(ctx, id)
	}
}

// teardown cancels the pump, closes the transport, waits for the pump to
// exit, and removes the entry. Caller holds the user lock.
func (r *Registry) teardown(ctx context.Context, userID int64) bool {
	r.mu.RLock()
	conn, ok := r.conns[userID]
	r.mu.RUnlock()

	if !ok {
		return false
	}

	// the transport is fully torn down before the entry disappears
	conn.cancel()
	if err := conn.client.Close(ctx); err != nil {
		r.logger.Warn(ctx, "error closing connection", "user_id", userID, "error", err.Error())
	}
	<-conn.done

	r.mu.Lock()
	delete(r.conns, userID)
	r.mu.Unlock()
	return true
}

// pump consumes the connection's outgoing-message stream in arrival order
// and hands each event to the gate. One goroutine per connection; exits when
// the stream closes or the connection is stopped.
func (r *Registry) pump(ctx context.Context, userID int64, conn *liveConn) {
	defer close(conn.done)

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-conn.client.Updates():
			if !ok {
				return
			}
			r.gate.Process(ctx, userID, conn.client, msg)
		}
	}
}
