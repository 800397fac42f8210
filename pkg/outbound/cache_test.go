package outbound

import (
	"fmt"
	"net/http"
	"testing"
)

func TestAcquireReusesHandle(t *testing.T) {
	c := NewClientCache(nil)
	first := c.Acquire("backend.example", 443)
	second := c.Acquire("backend.example", 443)
	if first != second {
		t.Fatal("expected same client handle for repeated acquire")
	}
}

func TestAcquireDistinguishesEndpoints(t *testing.T) {
	c := NewClientCache(nil)
	a := c.Acquire("backend.example", 443)
	b := c.Acquire("backend.example", 8443)
	d := c.Acquire("other.example", 443)
	if a == b || a == d || b == d {
		t.Fatal("distinct endpoints must not share a client handle")
	}
}

func TestAcquireNoNormalization(t *testing.T) {
	c := NewClientCache(nil)
	lower := c.Acquire("backend.example", 443)
	upper := c.Acquire("Backend.Example", 443)
	if lower == upper {
		t.Fatal("host matching must be exact, not case folded")
	}
}

func fillCache(c *ClientCache) []*http.Client {
	handles := make([]*http.Client, CacheSize)
	for i := 0; i < CacheSize; i++ {
		handles[i] = c.Acquire(fmt.Sprintf("host-%d", i), 443)
	}
	return handles
}

func TestFIFOEviction(t *testing.T) {
	c := NewClientCache(nil)
	handles := fillCache(c)

	// Within capacity everything is still resident.
	for i := 0; i < CacheSize; i++ {
		if got := c.Acquire(fmt.Sprintf("host-%d", i), 443); got != handles[i] {
			t.Fatalf("host-%d evicted before capacity was exceeded", i)
		}
	}

	// The 11th endpoint lands on the oldest slot and everything younger
	// survives. Check the survivors first: re-acquiring host-0 is itself a
	// miss and would consume the next slot.
	c.Acquire("host-extra", 443)
	for i := 1; i < CacheSize; i++ {
		if got := c.Acquire(fmt.Sprintf("host-%d", i), 443); got != handles[i] {
			t.Fatalf("host-%d unexpectedly evicted", i)
		}
	}
	if got := c.Acquire("host-0", 443); got == handles[0] {
		t.Fatal("host-0 should have been evicted by the 11th insert")
	}
}

func TestCursorWraps(t *testing.T) {
	c := NewClientCache(nil)
	handles := fillCache(c)

	// Two inserts past capacity consume slots 0 and 1 in order.
	c.Acquire("wrap-a", 443)
	c.Acquire("wrap-b", 443)

	if got := c.Acquire("host-0", 443); got == handles[0] {
		t.Fatal("host-0 should have been overwritten")
	}
	// host-0's re-acquire itself consumed slot 2, so host-1 and host-2 are
	// gone as well; host-3 onward survive.
	for i := 3; i < CacheSize; i++ {
		if got := c.Acquire(fmt.Sprintf("host-%d", i), 443); got != handles[i] {
			t.Fatalf("host-%d unexpectedly evicted", i)
		}
	}
}
