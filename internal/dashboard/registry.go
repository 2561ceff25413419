package dashboard

import (
	"context"
	"github.com/rookgm/orderdash/internal/logger"
	"github.com/rookgm/orderdash/internal/models"
	"github.com/rookgm/orderdash/internal/worker"
	"go.uber.org/zap"
	"sync"
	"time"
)

const (
	// default idle time after which a session is dropped
	DefaultSessionTTL = 30 * time.Minute
	// DefaultMaxSessions is default limit of live sessions
	DefaultMaxSessions = 1000
)

type session struct {
	shell    *Shell
	lastSeen time.Time
}

// Registry keeps one Shell per browser session.
// Shells idle for longer than ttl are stopped by Sweep. When maxSessions shells
// are live, starting another one stops the least recently seen.
type Registry struct {
	ctx         context.Context
	newShell    func() *Shell
	ttl         time.Duration
	maxSessions int
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewRegistry creates new Registry. Shells are started with ctx.
func NewRegistry(ctx context.Context, ttl time.Duration, maxSessions int, newShell func() *Shell) *Registry {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Registry{
		ctx:         ctx,
		newShell:    newShell,
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
		sessions:    make(map[string]*session),
	}
}

// Shell returns shell of session, creating and starting it on first use
func (r *Registry) Shell(sessionID string) *Shell {
	r.mu.Lock()
	var evicted *Shell
	sess, ok := r.sessions[sessionID]
	if !ok {
		if len(r.sessions) >= r.maxSessions {
			evicted = r.evictOldest()
		}
		shell := r.newShell()
		shell.Start(r.ctx)
		sess = &session{shell: shell}
		r.sessions[sessionID] = sess
		logger.Log.Debug("session started", zap.String("session", sessionID))
	}
	sess.lastSeen = r.now()
	shell := sess.shell
	r.mu.Unlock()

	if evicted != nil {
		evicted.Stop()
	}
	return shell
}

// evictOldest drops the least recently seen session and returns its shell, r.mu must be held
func (r *Registry) evictOldest() *Shell {
	var (
		oldestID string
		oldest   *session
	)
	for id, sess := range r.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, sess
		}
	}
	if oldest == nil {
		return nil
	}
	delete(r.sessions, oldestID)
	logger.Log.Info("session evicted", zap.String("session", oldestID), zap.Int("limit", r.maxSessions))
	return oldest.shell
}

// Len returns number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep stops shells idle for longer than ttl and returns how many were stopped
func (r *Registry) Sweep() int {
	deadline := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Shell
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(deadline) {
			expired = append(expired, sess.shell)
			delete(r.sessions, id)
			logger.Log.Debug("session expired", zap.String("session", id))
		}
	}
	r.mu.Unlock()

	for _, shell := range expired {
		shell.Stop()
	}
	return len(expired)
}

// Run sweeps idle sessions every interval until ctx is done, then stops all shells
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	poller := worker.NewPoller("session-sweeper", interval, false, func(ctx context.Context) {
		if n := r.Sweep(); n > 0 {
			logger.Log.Info("idle sessions dropped", zap.Int("count", n))
		}
	})
	poller.Run(ctx)
	r.Close()
}

// Close stops all shells
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*session)
	r.mu.Unlock()

	for _, sess := range sessions {
		sess.shell.Stop()
	}
}

// Page returns dashboard page of session
func (r *Registry) Page(sessionID string) Page {
	return r.Shell(sessionID).Page()
}

// SelectTab switches the active tab of session
func (r *Registry) SelectTab(sessionID string, tab Tab) {
	r.Shell(sessionID).SelectTab(tab)
}

// OpenForm shows the order form of session
func (r *Registry) OpenForm(sessionID string) {
	r.Shell(sessionID).OpenForm()
}

// CloseForm hides the order form of session
func (r *Registry) CloseForm(sessionID string) {
	r.Shell(sessionID).CloseForm()
}

// SubmitOrder submits the order form of session
func (r *Registry) SubmitOrder(ctx context.Context, sessionID string, fields map[string]string) (*models.Order, error) {
	return r.Shell(sessionID).SubmitOrder(ctx, fields)
}

// Refresh remounts the active view of session
func (r *Registry) Refresh(sessionID string) {
	r.Shell(sessionID).Refresh()
}
