package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestFourthRequestInWindowIsDenied(t *testing.T) {
	l := New(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := l.CheckKey(ctx, "198.51.100.7")
		if err != nil {
			t.Fatalf("check %d: %v", i+1, err)
		}
		if d.Denied {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	d, err := l.CheckKey(ctx, "198.51.100.7")
	if err != nil {
		t.Fatalf("check 4: %v", err)
	}
	if !d.Denied {
		t.Fatalf("4th request in window should be denied")
	}
	if d.ResetInSeconds <= 0 {
		t.Fatalf("denied decision must carry a positive reset, got %d", d.ResetInSeconds)
	}
}

func TestKeysAreIsolated(t *testing.T) {
	l := New(time.Minute, 3)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		l.CheckKey(ctx, "203.0.113.1")
	}
	d, err := l.CheckKey(ctx, "203.0.113.2")
	if err != nil {
		t.Fatalf("check other key: %v", err)
	}
	if d.Denied {
		t.Fatalf("one client's budget must not affect another")
	}
}

func TestWindowElapsesAndBudgetReturns(t *testing.T) {
	l := New(200*time.Millisecond, 3)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		l.CheckKey(ctx, "192.0.2.9")
	}
	if d, _ := l.CheckKey(ctx, "192.0.2.9"); !d.Denied {
		t.Fatalf("budget should be exhausted")
	}

	time.Sleep(250 * time.Millisecond)

	d, err := l.CheckKey(ctx, "192.0.2.9")
	if err != nil {
		t.Fatalf("check after window: %v", err)
	}
	if d.Denied {
		t.Fatalf("request after the window elapsed should be allowed")
	}
}
