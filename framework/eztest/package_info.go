// Package eztest is a small assertion-counting test harness that is run as
// regular Go application code rather than Go tests. A TestContext runs named
// test functions, counts passing and failing equality assertions across the
// whole run, times each test with a pausable stopwatch, and writes a
// line-oriented report to its output sink.
package eztest
