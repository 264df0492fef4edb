package middleware

import "testing"

func TestKeyedRateLimiterBurst(t *testing.T) {
	r := NewKeyedRateLimiter(1, 3)
	for i := 0; i < 3; i++ {
		if !r.Allow("1.2.3.4") {
			t.Fatalf("request %d inside burst was limited", i)
		}
	}
	if r.Allow("1.2.3.4") {
		t.Error("request past burst was allowed")
	}
	// Other keys have their own bucket.
	if !r.Allow("5.6.7.8") {
		t.Error("fresh key was limited")
	}
}
