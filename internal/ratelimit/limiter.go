package ratelimit

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Category groups related endpoints that share one request quota.
type Category string

const (
	// CategoryAccount covers account-mutating calls under my/ and users/.
	CategoryAccount Category = "account"
	// CategoryGame covers read-only game data lookups.
	CategoryGame Category = "game"
)

// CategoryFor maps an endpoint path to its rate limit category.
func CategoryFor(path string) Category {
	p := strings.TrimPrefix(path, "/")
	if strings.HasPrefix(p, "my/") || strings.HasPrefix(p, "users/") {
		return CategoryAccount
	}
	return CategoryGame
}

// Quota is the admitted-request budget for one category: at most Limit
// requests within any Period-length sliding window.
type Quota struct {
	Limit  int
	Period time.Duration
}

// DefaultQuota paces requests the way the reference client did: two per
// 1.2 seconds stays safely under the server's throttle threshold.
var DefaultQuota = Quota{Limit: 2, Period: 1200 * time.Millisecond}

// window holds admit timestamps for one category, oldest first.
type window struct {
	admits []time.Time
}

// Limiter shapes outbound traffic per category using sliding windows so the
// server never has to answer with a throttle response. Safe for concurrent
// use; all windows are coordinated through a single mutex.
type Limiter struct {
	mu      sync.Mutex
	quotas  map[Category]Quota
	windows map[Category]*window
}

// New creates a limiter with the given per-category quotas. Categories not
// present in quotas fall back to DefaultQuota.
func New(quotas map[Category]Quota) *Limiter {
	l := &Limiter{
		quotas:  make(map[Category]Quota, len(quotas)),
		windows: make(map[Category]*window),
	}
	for cat, q := range quotas {
		l.quotas[cat] = q
	}
	return l
}

func (l *Limiter) quota(cat Category) Quota {
	if q, ok := l.quotas[cat]; ok && q.Limit > 0 && q.Period > 0 {
		return q
	}
	return DefaultQuota
}

// Acquire blocks until a request for the category may be sent. The only
// error it returns is the context's, when cancelled mid-wait; otherwise the
// worst case is a long sleep.
func (l *Limiter) Acquire(ctx context.Context, cat Category) error {
	for {
		l.mu.Lock()
		q := l.quota(cat)
		w := l.windows[cat]
		if w == nil {
			w = &window{}
			l.windows[cat] = w
		}

		now := time.Now()
		cutoff := now.Add(-q.Period)
		i := 0
		for i < len(w.admits) && !w.admits[i].After(cutoff) {
			i++
		}
		w.admits = w.admits[i:]

		if len(w.admits) < q.Limit {
			w.admits = append(w.admits, now)
			l.mu.Unlock()
			return nil
		}

		// Full window: wait until the oldest admit slides out, then retry.
		wait := w.admits[0].Add(q.Period).Sub(now)
		l.mu.Unlock()

		if err := sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
