package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCallLimiter_CeilingWithinWindow(t *testing.T) {
	limiter := newCallLimiter(30, time.Minute)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	// 31 attempts spread over 10 seconds: exactly 30 admitted.
	admitted := 0
	denied := 0
	for i := 0; i < 31; i++ {
		now := start.Add(time.Duration(i) * 10 * time.Second / 31)
		if limiter.tryAdmit(now) {
			admitted++
		} else {
			denied++
		}
	}
	assert.Equal(t, 30, admitted)
	assert.Equal(t, 1, denied)
}

func TestCallLimiter_WindowSlides(t *testing.T) {
	limiter := newCallLimiter(30, time.Minute)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 30; i++ {
		assert.True(t, limiter.tryAdmit(start))
	}
	assert.False(t, limiter.tryAdmit(start.Add(10*time.Second)))

	// 61 seconds after the first admitted call the window has moved past
	// all recorded timestamps.
	assert.True(t, limiter.tryAdmit(start.Add(61*time.Second)))
}

func TestCallLimiter_DeniedAttemptNotRecorded(t *testing.T) {
	limiter := newCallLimiter(1, time.Minute)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, limiter.tryAdmit(start))
	// Repeated denials must not extend the window.
	for i := 1; i <= 5; i++ {
		assert.False(t, limiter.tryAdmit(start.Add(time.Duration(i)*time.Second)))
	}
	assert.True(t, limiter.tryAdmit(start.Add(61*time.Second)))
}

func TestCallLimiter_PrunesOldTimestamps(t *testing.T) {
	limiter := newCallLimiter(2, time.Minute)
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, limiter.tryAdmit(start))
	assert.True(t, limiter.tryAdmit(start.Add(30*time.Second)))
	assert.False(t, limiter.tryAdmit(start.Add(45*time.Second)))

	// The first call falls out of the window; one slot frees up.
	assert.True(t, limiter.tryAdmit(start.Add(65*time.Second)))
	assert.Len(t, limiter.calls, 2)
}
