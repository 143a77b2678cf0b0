package eztest

import "time"

// interval is one contiguous span of running time. Once closed it is never
// modified again.
type interval struct {
	start   time.Time
	stop    time.Time
	running bool
}

func (iv interval) elapsed() time.Duration {
	if iv.running {
		return time.Since(iv.start)
	}
	return iv.stop.Sub(iv.start)
}

// Stopwatch measures elapsed running time across one or more start/stop
// intervals, excluding time spent paused. The zero value is reset and paused.
// Elapsed can be called at any time to check the current total.
//
// At most one interval is running at a time, and it is always the last one.
// Start and Stop panic on misuse (starting a running stopwatch, or stopping a
// stopped one): that is a bug in the framework, not a test outcome.
type Stopwatch struct {
	intervals []interval
}

// Start begins (or resumes) timing by opening a new interval.
func (s *Stopwatch) Start() {
	if n := len(s.intervals); n > 0 && s.intervals[n-1].running {
		panic("eztest: Stopwatch.Start called while stopwatch is running")
	}
	s.intervals = append(s.intervals, interval{start: time.Now(), running: true})
}

// Stop pauses timing by closing the current interval. The stopwatch can be
// resumed with Start or cleared with Reset.
func (s *Stopwatch) Stop() {
	n := len(s.intervals)
	if n == 0 || !s.intervals[n-1].running {
		panic("eztest: Stopwatch.Stop called while stopwatch is not running")
	}
	s.intervals[n-1].running = false
	s.intervals[n-1].stop = time.Now()
}

// Reset discards all recorded intervals, returning the stopwatch to its
// initial state. Valid in any state.
func (s *Stopwatch) Reset() {
	s.intervals = nil
}

// Elapsed returns the total duration the stopwatch has been running since the
// last reset. A still-open interval contributes time up to the moment of the
// call.
func (s *Stopwatch) Elapsed() time.Duration {
	var sum time.Duration
	for _, iv := range s.intervals {
		sum += iv.elapsed()
	}
	return sum
}
