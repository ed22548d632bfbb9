package notifier

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"koshub/models"
	"koshub/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCounter struct {
	count int32
	err   atomic.Value
	calls int32
}

func (f *fakeCounter) GetUnreadCount(ctx context.Context, token string) (int, error) {
	atomic.AddInt32(&f.calls, 1)
	if v := f.err.Load(); v != nil {
		if err, ok := v.(error); ok && err != nil {
			return 0, err
		}
	}
	return int(atomic.LoadInt32(&f.count)), nil
}

func testSession(userID string) *session.Session {
	return &session.Session{
		ID:          "sess-" + userID,
		AccessToken: "tok-" + userID,
		User:        models.User{ID: userID},
	}
}

func newTestPoller(t *testing.T, counter UnreadCounter, interval time.Duration) (*Poller, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(counter, cache, interval, zap.NewNop()), mr
}

func TestStartCachesCountImmediately(t *testing.T) {
	counter := &fakeCounter{count: 4}
	poller, mr := newTestPoller(t, counter, time.Minute)

	sess := testSession("u-1")
	poller.Start(sess)
	defer poller.StopAll()

	require.Eventually(t, func() bool {
		v, err := mr.Get("unreadCount:u-1")
		return err == nil && v == "4"
	}, time.Second, 10*time.Millisecond)
}

func TestStopCancelsLoop(t *testing.T) {
	counter := &fakeCounter{count: 1}
	poller, _ := newTestPoller(t, counter, 20*time.Millisecond)

	sess := testSession("u-2")
	poller.Start(sess)
	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&counter.calls) >= 2
	}, time.Second, 5*time.Millisecond)

	poller.Stop(sess.ID)
	settled := atomic.LoadInt32(&counter.calls)
	time.Sleep(100 * time.Millisecond)
	assert.LessOrEqual(t, atomic.LoadInt32(&counter.calls), settled+1)

	// Stopping an unknown or already-stopped session is a no-op.
	poller.Stop(sess.ID)
	poller.Stop("never-started")
}

func TestUnreadCountPrefersCache(t *testing.T) {
	counter := &fakeCounter{count: 9}
	poller, mr := newTestPoller(t, counter, time.Minute)

	require.NoError(t, mr.Set("unreadCount:u-3", "7"))
	count := poller.UnreadCount(context.Background(), testSession("u-3"))
	assert.Equal(t, 7, count)
	assert.Zero(t, atomic.LoadInt32(&counter.calls))
}

func TestUnreadCountFallsBackToFetchOnMiss(t *testing.T) {
	counter := &fakeCounter{count: 3}
	poller, mr := newTestPoller(t, counter, time.Minute)

	count := poller.UnreadCount(context.Background(), testSession("u-4"))
	assert.Equal(t, 3, count)

	// The fetched value is cached for the next caller.
	v, err := mr.Get("unreadCount:u-4")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestUnreadCountResolvesErrorsToZero(t *testing.T) {
	counter := &fakeCounter{}
	counter.err.Store(errors.New("upstream down"))
	poller, _ := newTestPoller(t, counter, time.Minute)

	count := poller.UnreadCount(context.Background(), testSession("u-5"))
	assert.Equal(t, 0, count)
}

func TestFailedRefreshKeepsPreviousValue(t *testing.T) {
	counter := &fakeCounter{count: 5}
	poller, mr := newTestPoller(t, counter, 20*time.Millisecond)

	sess := testSession("u-6")
	poller.Start(sess)
	defer poller.StopAll()

	require.Eventually(t, func() bool {
		v, err := mr.Get("unreadCount:u-6")
		return err == nil && v == "5"
	}, time.Second, 5*time.Millisecond)

	counter.err.Store(errors.New("upstream down"))
	time.Sleep(60 * time.Millisecond)

	v, err := mr.Get("unreadCount:u-6")
	require.NoError(t, err)
	assert.Equal(t, "5", v)
}
