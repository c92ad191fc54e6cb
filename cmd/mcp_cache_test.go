package cmd

import (
	"testing"
	"time"

	"github.com/mj1618/window-walker/internal/platform"
)

func TestMCPWindowCache_Disabled(t *testing.T) {
	f := sampleDesktop()
	c := newMCPWindowCache(0)
	for i := 0; i < 3; i++ {
		if _, err := c.listWindows(f, platform.ListOptions{}); err != nil {
			t.Fatal(err)
		}
	}
	if f.listCalls != 3 {
		t.Errorf("ttl 0 should not cache, got %d calls", f.listCalls)
	}
}

func TestMCPWindowCache_KeyedByOptions(t *testing.T) {
	f := sampleDesktop()
	c := newMCPWindowCache(time.Minute)

	c.listWindows(f, platform.ListOptions{})
	c.listWindows(f, platform.ListOptions{Title: "微信"})
	c.listWindows(f, platform.ListOptions{})
	if f.listCalls != 2 {
		t.Errorf("expected one call per distinct options, got %d", f.listCalls)
	}

	c.invalidateAll()
	c.listWindows(f, platform.ListOptions{})
	if f.listCalls != 3 {
		t.Errorf("expected a fresh call after invalidation, got %d", f.listCalls)
	}
}

func TestMCPWindowCache_Expires(t *testing.T) {
	f := sampleDesktop()
	c := newMCPWindowCache(time.Millisecond)

	c.listWindows(f, platform.ListOptions{})
	time.Sleep(5 * time.Millisecond)
	c.listWindows(f, platform.ListOptions{})
	if f.listCalls != 2 {
		t.Errorf("expired entry should be refreshed, got %d calls", f.listCalls)
	}
}
