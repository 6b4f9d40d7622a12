package shutdown

import (
	"context"
	"testing"
	"time"
)

func TestTriggerTokenRelease(t *testing.T) {
	t.Parallel()
	m := New[int]()
	token := m.TriggerToken(1)
	token.Release()
	if reason, ok := m.Reason(); !ok || reason != 1 {
		t.Fatalf("reason = (%d, %v), want (1, true)", reason, ok)
	}
}

func TestTriggerTokenLosesToExplicitTrigger(t *testing.T) {
	t.Parallel()
	m := New[string]()
	token := m.TriggerToken("from token")
	if err := m.Trigger("explicit"); err != nil {
		t.Fatalf("trigger failed: %v", err)
	}
	token.Release()
	if reason, _ := m.Reason(); reason != "explicit" {
		t.Fatalf("token release overwrote the reason: %q", reason)
	}
}

func TestTriggerTokenReleaseIdempotent(t *testing.T) {
	t.Parallel()
	m := New[string]()
	token := m.TriggerToken("once")
	token.Release()
	token.Release()
	if reason, ok := m.Reason(); !ok || reason != "once" {
		t.Fatalf("reason = (%q, %v), want (once, true)", reason, ok)
	}
}

func TestTriggerTokenReleasedFromGoroutine(t *testing.T) {
	t.Parallel()
	m := New[string]()
	token := m.TriggerToken("vital work ended")
	go func() {
		time.Sleep(10 * time.Millisecond)
		token.Release()
	}()
	reason, err := m.WaitTriggered(context.Background())
	if err != nil || reason != "vital work ended" {
		t.Fatalf("WaitTriggered = (%q, %v)", reason, err)
	}
	if _, err := m.WaitCompleted(context.Background()); err != nil {
		t.Fatalf("WaitCompleted failed: %v", err)
	}
}

func TestDelayTokenReleasedFromGoroutine(t *testing.T) {
	t.Parallel()
	m := New[string]()
	token, err := m.DelayToken()
	if err != nil {
		t.Fatalf("DelayToken failed: %v", err)
	}
	if err := m.Trigger("boom"); err != nil {
		t.Fatalf("trigger failed: %v", err)
	}
	go func() {
		time.Sleep(10 * time.Millisecond)
		token.Release()
	}()
	reason, err := m.WaitCompleted(context.Background())
	if err != nil || reason != "boom" {
		t.Fatalf("WaitCompleted = (%q, %v), want (boom, nil)", reason, err)
	}
}
