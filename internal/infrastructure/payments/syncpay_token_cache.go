package payments

import (
	"context"
	"errors"
	"sync"
	"time"
)

// TokenFetcher obtains a fresh access token and its absolute expiry.
type TokenFetcher func(ctx context.Context) (token string, expiresAt time.Time, err error)

var ErrTokenAlreadyExpired = errors.New("auth endpoint returned an expired token")

type cachedToken struct {
	value     string
	fetchedAt time.Time
	expiresAt time.Time
}

// refreshAt is expiresAt minus the safety margin. The margin is capped at
// half the token lifetime so short-lived tokens are still reused.
func (t *cachedToken) refreshAt(margin time.Duration) time.Time {
	if half := t.expiresAt.Sub(t.fetchedAt) / 2; margin > half {
		margin = half
	}
	return t.expiresAt.Add(-margin)
}

// TokenCache holds a single bearer token. A token is served while
// now < expiresAt - margin, with margin capped at half the token lifetime. Refreshes run outside the lock, so concurrent
// callers may refresh at the same time; the last successful write wins.
type TokenCache struct {
	mu     sync.Mutex
	token  *cachedToken
	margin time.Duration
	fetch  TokenFetcher
	now    func() time.Time
}

func NewTokenCache(fetch TokenFetcher, margin time.Duration) *TokenCache {
	return &TokenCache{fetch: fetch, margin: margin, now: time.Now}
}

// GetValidToken returns the cached token or refreshes it when it is missing
// or inside the safety margin.
func (c *TokenCache) GetValidToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	tok := c.token
	c.mu.Unlock()

	if tok != nil && c.now().Before(tok.refreshAt(c.margin)) {
		return tok.value, nil
	}
	return c.ForceRefresh(ctx)
}

// ForceRefresh fetches a new token unconditionally. A failed refresh leaves
// the cached token untouched.
func (c *TokenCache) ForceRefresh(ctx context.Context) (string, error) {
	fetchedAt := c.now()
	value, expiresAt, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}
	if !c.now().Before(expiresAt) {
		return "", ErrTokenAlreadyExpired
	}

	c.mu.Lock()
	c.token = &cachedToken{value: value, fetchedAt: fetchedAt, expiresAt: expiresAt}
	c.mu.Unlock()
	return value, nil
}

func (c *TokenCache) Invalidate() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

// ExpiresAt reports the expiry of the cached token, zero when empty.
func (c *TokenCache) ExpiresAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil {
		return time.Time{}
	}
	return c.token.expiresAt
}
