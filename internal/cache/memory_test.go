package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	if _, ok, _ := m.Get(ctx, "missing"); ok {
		t.Error("missing key reported present")
	}
	if err := m.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, ok, err := m.Get(ctx, "k")
	if err != nil || !ok || val != "v" {
		t.Errorf("Get = (%q, %v, %v)", val, ok, err)
	}
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("deleted key reported present")
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatal("key expired immediately")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("key survived past its ttl")
	}
}

func TestMemorySetNX(t *testing.T) {
	m := NewMemory()
	defer m.Close()
	ctx := context.Background()

	set, err := m.SetNX(ctx, "k", "first", time.Minute)
	if err != nil || !set {
		t.Fatalf("first SetNX = (%v, %v)", set, err)
	}
	set, err = m.SetNX(ctx, "k", "second", time.Minute)
	if err != nil || set {
		t.Fatalf("second SetNX = (%v, %v), want not set", set, err)
	}
	val, _, _ := m.Get(ctx, "k")
	if val != "first" {
		t.Errorf("value = %q, want first", val)
	}

	// An expired key is free to take again.
	if _, err := m.SetNX(ctx, "gone", "v", time.Millisecond); err != nil {
		t.Fatalf("SetNX: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	set, err = m.SetNX(ctx, "gone", "v2", time.Minute)
	if err != nil || !set {
		t.Errorf("SetNX after expiry = (%v, %v), want set", set, err)
	}
}
