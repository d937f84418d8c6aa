package services

import (
	"sync"
	"time"
)

// callLimiter is a sliding-window limiter over provider calls. It records
// the timestamps of admitted calls and denies a new call once the trailing
// window already holds the configured maximum. It is local to one process;
// multiple instances sharing one provider key can exceed the configured
// ceiling in aggregate.
type callLimiter struct {
	mu       sync.Mutex
	maxCalls int
	window   time.Duration
	calls    []time.Time
}

func newCallLimiter(maxCalls int, window time.Duration) *callLimiter {
	return &callLimiter{maxCalls: maxCalls, window: window}
}

// tryAdmit prunes timestamps older than now-window, then admits and records
// now iff the remaining count is below the ceiling. Timestamps are appended
// in monotonically increasing order, so pruning from the front is correct.
func (l *callLimiter) tryAdmit(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	kept := 0
	for kept < len(l.calls) && !l.calls[kept].After(cutoff) {
		kept++
	}
	l.calls = l.calls[kept:]

	if len(l.calls) >= l.maxCalls {
		return false
	}
	l.calls = append(l.calls, now)
	return true
}
