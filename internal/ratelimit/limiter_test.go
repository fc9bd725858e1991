package ratelimit

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		path string
		want Category
	}{
		{"my/ships", CategoryAccount},
		{"/my/loans", CategoryAccount},
		{"users/bob/claim", CategoryAccount},
		{"game/status", CategoryGame},
		{"systems/OE/locations", CategoryGame},
		{"locations/OE-PM/marketplace", CategoryGame},
		{"types/goods", CategoryGame},
	}
	for _, tt := range tests {
		if got := CategoryFor(tt.path); got != tt.want {
			t.Errorf("CategoryFor(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestAcquire_UnderLimitReturnsImmediately(t *testing.T) {
	l := New(map[Category]Quota{
		CategoryGame: {Limit: 3, Period: time.Second},
	})

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := l.Acquire(context.Background(), CategoryGame); err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("3 acquires under a limit of 3 took %v, want near-instant", elapsed)
	}
}

func TestAcquire_DelaysOverflowUntilWindowRollsOver(t *testing.T) {
	period := 300 * time.Millisecond
	l := New(map[Category]Quota{
		CategoryGame: {Limit: 2, Period: period},
	})

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := l.Acquire(context.Background(), CategoryGame); err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
	}

	// The 3rd acquire must wait until the 1st leaves the window.
	if elapsed := time.Since(start); elapsed < period {
		t.Errorf("3rd acquire returned after %v, want >= %v", elapsed, period)
	}
}

func TestAcquire_CategoriesAreIndependent(t *testing.T) {
	l := New(map[Category]Quota{
		CategoryAccount: {Limit: 1, Period: time.Second},
		CategoryGame:    {Limit: 1, Period: time.Second},
	})

	start := time.Now()
	if err := l.Acquire(context.Background(), CategoryAccount); err != nil {
		t.Fatalf("Acquire(account) error = %v", err)
	}
	if err := l.Acquire(context.Background(), CategoryGame); err != nil {
		t.Fatalf("Acquire(game) error = %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("acquires on distinct categories took %v, want near-instant", elapsed)
	}
}

func TestAcquire_ContextCancelled(t *testing.T) {
	l := New(map[Category]Quota{
		CategoryGame: {Limit: 1, Period: 10 * time.Second},
	})

	if err := l.Acquire(context.Background(), CategoryGame); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Acquire(ctx, CategoryGame)
	if err != context.DeadlineExceeded {
		t.Errorf("Acquire() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestAcquire_UnknownCategoryUsesDefaultQuota(t *testing.T) {
	l := New(nil)

	start := time.Now()
	for i := 0; i < DefaultQuota.Limit+1; i++ {
		if err := l.Acquire(context.Background(), CategoryGame); err != nil {
			t.Fatalf("Acquire() error = %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < DefaultQuota.Period {
		t.Errorf("overflow acquire returned after %v, want >= %v", elapsed, DefaultQuota.Period)
	}
}

func TestAcquire_ConcurrentNeverExceedsLimit(t *testing.T) {
	const (
		limit   = 3
		workers = 12
	)
	period := 200 * time.Millisecond

	l := New(map[Category]Quota{
		CategoryAccount: {Limit: limit, Period: period},
	})

	var (
		mu     sync.Mutex
		admits []time.Time
		wg     sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.Acquire(context.Background(), CategoryAccount); err != nil {
				t.Errorf("Acquire() error = %v", err)
				return
			}
			now := time.Now()
			mu.Lock()
			admits = append(admits, now)
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(admits) != workers {
		t.Fatalf("admitted %d requests, want %d", len(admits), workers)
	}

	sort.Slice(admits, func(i, j int) bool { return admits[i].Before(admits[j]) })

	// In any sliding window of one period there must be at most `limit`
	// admits: admit i+limit has to land a full period after admit i. A
	// small tolerance absorbs timestamping after the admit itself.
	tolerance := 20 * time.Millisecond
	for i := 0; i+limit < len(admits); i++ {
		gap := admits[i+limit].Sub(admits[i])
		if gap < period-tolerance {
			t.Errorf("admits %d and %d are %v apart, want >= %v", i, i+limit, gap, period)
		}
	}
}
