package ipc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsExactlyLimit(t *testing.T) {
	rl := NewRateLimiter(3)
	base := time.Now()

	assert.True(t, rl.Allow(base))
	assert.True(t, rl.Allow(base))
	assert.True(t, rl.Allow(base))
	assert.False(t, rl.Allow(base))
	assert.False(t, rl.Allow(base))
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(3)
	base := time.Now()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(base))
	}
	assert.False(t, rl.Allow(base.Add(500*time.Millisecond)))
	assert.True(t, rl.Allow(base.Add(1100*time.Millisecond)))
}

func TestRateLimiterUnlimited(t *testing.T) {
	rl := NewRateLimiter(0)
	now := time.Now()
	for i := 0; i < 1000; i++ {
		assert.True(t, rl.Allow(now))
	}
}
