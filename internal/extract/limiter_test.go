package extract

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewLimiter(1, 2)

	if !limiter.Allow("openai") {
		t.Error("first call within burst should be allowed")
	}
	if !limiter.Allow("openai") {
		t.Error("second call within burst should be allowed")
	}
	if limiter.Allow("openai") {
		t.Error("third call should exceed the burst")
	}
}

func TestLimiter_ProvidersAreIndependent(t *testing.T) {
	limiter := NewLimiter(1, 1)

	if !limiter.Allow("openai") {
		t.Error("openai call should be allowed")
	}
	if !limiter.Allow("other") {
		t.Error("a different provider has its own budget")
	}
}

func TestLimiter_SetProviderRate(t *testing.T) {
	limiter := NewLimiter(1, 1)
	limiter.SetProviderRate("openai", 100, 10)

	allowed := 0
	for i := 0; i < 5; i++ {
		if limiter.Allow("openai") {
			allowed++
		}
	}
	if allowed != 5 {
		t.Errorf("expected 5 allowed with raised burst, got %d", allowed)
	}
}

func TestLimiter_WaitHonorsContext(t *testing.T) {
	limiter := NewLimiter(0.001, 1) // effectively exhausted after one call
	_ = limiter.Allow("openai")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "openai"); err == nil {
		t.Error("expected wait to fail on context timeout")
	}
}
