package eztest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopwatchZeroValueHasNoElapsedTime(t *testing.T) {
	var s Stopwatch
	assert.Equal(t, time.Duration(0), s.Elapsed())
}

func TestStopwatchMeasuresASingleInterval(t *testing.T) {
	var s Stopwatch
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	elapsed := s.Elapsed()
	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	assert.Less(t, elapsed, 5*time.Second)
}

func TestStopwatchExcludesPausedTime(t *testing.T) {
	var s Stopwatch
	s.Start()
	s.Stop()
	atPause := s.Elapsed()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, atPause, s.Elapsed())
}

func TestStopwatchAccumulatesAcrossIntervals(t *testing.T) {
	var s Stopwatch
	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()
	first := s.Elapsed()
	s.Start()
	time.Sleep(20 * time.Millisecond)
	s.Stop()
	assert.GreaterOrEqual(t, s.Elapsed(), first+20*time.Millisecond)
}

func TestStopwatchElapsedIsNonDecreasingWhileRunning(t *testing.T) {
	var s Stopwatch
	s.Start()
	first := s.Elapsed()
	time.Sleep(20 * time.Millisecond)
	second := s.Elapsed()
	s.Stop()
	assert.GreaterOrEqual(t, second, first)
	assert.GreaterOrEqual(t, s.Elapsed(), second)
}

func TestStopwatchStartWhileRunningPanics(t *testing.T) {
	var s Stopwatch
	s.Start()
	require.PanicsWithValue(t, "eztest: Stopwatch.Start called while stopwatch is running", s.Start)
}

func TestStopwatchStopWhileNotRunningPanics(t *testing.T) {
	var s Stopwatch
	require.PanicsWithValue(t, "eztest: Stopwatch.Stop called while stopwatch is not running", s.Stop)
	s.Start()
	s.Stop()
	require.PanicsWithValue(t, "eztest: Stopwatch.Stop called while stopwatch is not running", s.Stop)
}

func TestStopwatchResetIsSafeInAnyState(t *testing.T) {
	var s Stopwatch
	s.Reset()
	s.Start()
	s.Reset()
	assert.Equal(t, time.Duration(0), s.Elapsed())
	s.Start() // legal again: Reset discarded the running interval
	s.Stop()
	s.Reset()
	assert.Equal(t, time.Duration(0), s.Elapsed())
}
