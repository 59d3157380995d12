package payments

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestTokenCache_GetValidToken(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	calls := 0
	cache := NewTokenCache(func(context.Context) (string, time.Time, error) {
		calls++
		return "tok-" + strconv.Itoa(calls), clock.Now().Add(time.Hour), nil
	}, 30*time.Second)
	cache.now = clock.Now

	tok, err := cache.GetValidToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)

	// Reused right up to expiry minus margin.
	clock.Advance(time.Hour - 31*time.Second)
	tok, err = cache.GetValidToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)
	require.Equal(t, 1, calls)

	// Exactly one refresh once inside the margin.
	clock.Advance(time.Second)
	tok, err = cache.GetValidToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-2", tok)
	tok, err = cache.GetValidToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-2", tok)
	require.Equal(t, 2, calls)
}

func TestTokenCache_FailedRefreshKeepsToken(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	fail := false
	cache := NewTokenCache(func(context.Context) (string, time.Time, error) {
		if fail {
			return "", time.Time{}, errors.New("boom")
		}
		return "tok", clock.Now().Add(time.Hour), nil
	}, 0)
	cache.now = clock.Now

	_, err := cache.GetValidToken(context.Background())
	require.NoError(t, err)
	expiry := cache.ExpiresAt()

	fail = true
	_, err = cache.ForceRefresh(context.Background())
	require.Error(t, err)
	require.Equal(t, expiry, cache.ExpiresAt())

	tok, err := cache.GetValidToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok", tok)
}

func TestTokenCache_NeverReturnsExpiredToken(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewTokenCache(func(context.Context) (string, time.Time, error) {
		return "stale", clock.Now().Add(-time.Second), nil
	}, 0)
	cache.now = clock.Now

	_, err := cache.GetValidToken(context.Background())
	require.ErrorIs(t, err, ErrTokenAlreadyExpired)
	require.True(t, cache.ExpiresAt().IsZero())
}

func TestTokenCache_Invalidate(t *testing.T) {
	calls := 0
	cache := NewTokenCache(func(context.Context) (string, time.Time, error) {
		calls++
		return "tok", time.Now().Add(time.Hour), nil
	}, time.Second)

	_, _ = cache.GetValidToken(context.Background())
	cache.Invalidate()
	_, _ = cache.GetValidToken(context.Background())
	require.Equal(t, 2, calls)
}

func TestTokenCache_ConcurrentCallers(t *testing.T) {
	cache := NewTokenCache(func(context.Context) (string, time.Time, error) {
		return "tok", time.Now().Add(time.Hour), nil
	}, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := cache.GetValidToken(context.Background())
			if err != nil || tok != "tok" {
				t.Errorf("unexpected token %q err=%v", tok, err)
			}
		}()
	}
	wg.Wait()
}

func TestTokenCache_ShortLivedTokenIsReused(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	calls := 0
	// 20s lifetime against a 30s margin: the margin is capped at 10s.
	cache := NewTokenCache(func(context.Context) (string, time.Time, error) {
		calls++
		return "tok-" + strconv.Itoa(calls), clock.Now().Add(20 * time.Second), nil
	}, 30*time.Second)
	cache.now = clock.Now

	for i := 0; i < 3; i++ {
		tok, err := cache.GetValidToken(context.Background())
		require.NoError(t, err)
		require.Equal(t, "tok-1", tok)
	}

	clock.Advance(9 * time.Second)
	tok, err := cache.GetValidToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-1", tok)
	require.Equal(t, 1, calls)

	clock.Advance(time.Second)
	tok, err = cache.GetValidToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok-2", tok)
	require.Equal(t, 2, calls)
}
