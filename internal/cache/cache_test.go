package cache

import (
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New[int](time.Hour)
	c.Set("a", 1)
	v, ok := c.Get("a")
	if !ok || v != 1 {
		t.Fatalf("got (%d, %v), want (1, true)", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := New[string](time.Hour)
	now := time.Now()
	c.now = func() time.Time { return now }
	c.Set("a", "x")

	// Still fresh just inside the TTL.
	now = now.Add(59 * time.Minute)
	if _, ok := c.Get("a"); !ok {
		t.Fatal("entry expired too early")
	}

	// Stale past the TTL: miss, and the entry is dropped.
	now = now.Add(2 * time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Fatal("expected expired entry to miss")
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entry to be removed, len=%d", c.Len())
	}
}

func TestCache_Purge(t *testing.T) {
	c := New[int](time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }

	c.Set("old", 1)
	now = now.Add(2 * time.Minute)
	c.Set("fresh", 2)

	if dropped := c.Purge(); dropped != 1 {
		t.Errorf("purged %d entries, want 1", dropped)
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Error("fresh entry should survive purge")
	}
}

func TestCache_Overwrite(t *testing.T) {
	c := New[int](time.Hour)
	c.Set("a", 1)
	c.Set("a", 2)
	if v, _ := c.Get("a"); v != 2 {
		t.Errorf("got %d, want 2", v)
	}
	if c.Len() != 1 {
		t.Errorf("len = %d, want 1", c.Len())
	}
}
