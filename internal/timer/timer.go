// Package timer takes wall-clock samples around a measured call.
package timer

import "time"

// Sample is a single clock reading. It carries the monotonic clock when taken with Now.
type Sample struct {
	at time.Time
}

func Now() Sample {
	return Sample{at: time.Now()}
}

// At wraps an existing time. Used by callers that inject a clock.
func At(t time.Time) Sample {
	return Sample{at: t}
}

// Millis returns the sample as whole milliseconds since the Unix epoch.
func (s Sample) Millis() int64 {
	return s.at.UnixMilli()
}

// ElapsedMillis returns the whole milliseconds between start and end, never negative.
func ElapsedMillis(start, end Sample) int64 {
	return max(end.at.Sub(start.at).Milliseconds(), 0)
}
