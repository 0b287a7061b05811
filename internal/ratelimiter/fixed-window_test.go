package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindowRateLimiter_BlocksAfterLimit(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)

	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok, "other clients keep their own window")
}

func TestFixedWindowRateLimiter_ResetsAfterWindow(t *testing.T) {
	rl := NewFixedWindowLimiter(1, 20*time.Millisecond)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)

	assert.Eventually(t, func() bool {
		ok, _ := rl.Allow("10.0.0.1")
		return ok
	}, time.Second, 10*time.Millisecond)
}
