// Package notifier keeps the navbar unread-notification badge warm. Each
// authenticated session gets a polling goroutine that refreshes the count on
// a fixed interval; the goroutine is cancelled on logout or server shutdown,
// never left free-running.
package notifier

import (
	"context"
	"strconv"
	"sync"
	"time"

	"koshub/session"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const countKeyPrefix = "unreadCount:"

// DefaultInterval matches the 30s navbar refresh of the web client.
const DefaultInterval = 30 * time.Second

// UnreadCounter is the slice of the living-support client the poller needs.
type UnreadCounter interface {
	GetUnreadCount(ctx context.Context, token string) (int, error)
}

// Poller runs one unread-count loop per active session.
type Poller struct {
	counter  UnreadCounter
	cache    *redis.Client
	interval time.Duration
	log      *zap.Logger

	mu      sync.Mutex
	cancels map[string]context.CancelFunc
}

// New creates a poller. interval <= 0 falls back to DefaultInterval.
func New(counter UnreadCounter, cache *redis.Client, interval time.Duration, log *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		counter:  counter,
		cache:    cache,
		interval: interval,
		log:      log,
		cancels:  make(map[string]context.CancelFunc),
	}
}

// Start begins polling for the given session. The first fetch is immediate;
// starting an already-polled session restarts its loop.
func (p *Poller) Start(sess *session.Session) {
	p.mu.Lock()
	if cancel, ok := p.cancels[sess.ID]; ok {
		cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancels[sess.ID] = cancel
	p.mu.Unlock()

	go p.run(ctx, sess)
}

// Stop cancels the polling loop for one session. Safe to call for sessions
// that were never started.
func (p *Poller) Stop(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cancel, ok := p.cancels[sessionID]; ok {
		cancel()
		delete(p.cancels, sessionID)
	}
}

// StopAll cancels every loop. Called on server shutdown.
func (p *Poller) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, cancel := range p.cancels {
		cancel()
		delete(p.cancels, id)
	}
}

func (p *Poller) run(ctx context.Context, sess *session.Session) {
	p.refresh(ctx, sess)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.refresh(ctx, sess)
		}
	}
}

// refresh fetches the count and caches it. A failed fetch keeps the previous
// cached value; the badge goes stale rather than the page failing.
func (p *Poller) refresh(ctx context.Context, sess *session.Session) {
	count, err := p.counter.GetUnreadCount(ctx, sess.AccessToken)
	if err != nil {
		if ctx.Err() == nil {
			p.log.Warn("Failed to fetch unread notifications",
				zap.String("userID", sess.User.ID), zap.Error(err))
		}
		return
	}
	ttl := 2 * p.interval
	if err := p.cache.Set(ctx, countKeyPrefix+sess.User.ID, count, ttl).Err(); err != nil && ctx.Err() == nil {
		p.log.Warn("Failed to cache unread count", zap.Error(err))
	}
}

// UnreadCount returns the cached count for the session's user, falling back
// to a direct fetch on a cache miss. Errors resolve to zero so the navbar
// always renders.
func (p *Poller) UnreadCount(ctx context.Context, sess *session.Session) int {
	val, err := p.cache.Get(ctx, countKeyPrefix+sess.User.ID).Result()
	if err == nil {
		if count, convErr := strconv.Atoi(val); convErr == nil {
			return count
		}
	}
	count, err := p.counter.GetUnreadCount(ctx, sess.AccessToken)
	if err != nil {
		return 0
	}
	_ = p.cache.Set(ctx, countKeyPrefix+sess.User.ID, count, 2*p.interval).Err()
	return count
}
