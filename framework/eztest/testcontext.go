package eztest

import (
	"io"
	"os"
	"reflect"

	"github.com/fatih/color"

	"github.com/eztest/test-harness/framework/helpers"
)

// maxFailureDetails caps the number of failure detail lines printed per test,
// so a failing assertion inside a loop cannot flood the report.
const maxFailureDetails = 5

var testFailedColor = color.New(color.FgRed)   //nolint:gochecknoglobals
var testPassedColor = color.New(color.FgGreen) //nolint:gochecknoglobals

// TestFunction is the body of a single test. It returns nothing and reports
// outcomes only through the TestContext it receives. Any callable with this
// shape works: a named function, a closure, or a bound method.
type TestFunction func(*TestContext)

// TestContext runs named test functions, counts passing and failing assertions
// across the whole run, and writes a human-readable report to its output sink.
//
// A TestContext is for use by a single goroutine; tests run sequentially on
// the caller's goroutine and Test blocks until the test function returns. A
// panic in a test body is not recovered and aborts the run.
//
// Example:
//
//	cx := eztest.NewTestContext(nil)
//	cx.Test("this test should pass", func(cx *eztest.TestContext) {
//		cx.ExpectEqual(1, 1)
//	})
//	cx.PrintResults()
type TestContext struct {
	out io.Writer

	// assertionNum is incremented on every ExpectEqual call, passing or
	// failing, and is never reset for the lifetime of the run.
	assertionNum int

	successCt int
	failedCt  int

	// currentFailed counts failed assertions within the current Test call.
	currentFailed int

	// lineOpen is true while the "<name>..." progress line has not yet been
	// terminated by a newline.
	lineOpen bool

	watch Stopwatch
}

// NewTestContext creates a TestContext that writes its report to out. Passing
// nil for out means os.Stdout.
func NewTestContext(out io.Writer) *TestContext {
	if out == nil {
		out = os.Stdout
	}
	return &TestContext{out: out, assertionNum: 1}
}

// ExpectEqual compares two values with reflect.DeepEqual and records the
// outcome, returning whether they were equal. A mismatch never aborts the
// test; it increments the failure counters and, for the first
// maxFailureDetails failures within the current test, prints a detail line
// naming the expected and actual values.
//
// The shared stopwatch is paused for the duration of the call so that
// assertion bookkeeping and printing do not inflate the test's measured time.
// Calling ExpectEqual outside of a running test is framework misuse and
// panics.
func (c *TestContext) ExpectEqual(actual, theoretical interface{}) bool {
	c.watch.Stop()
	result := true
	if reflect.DeepEqual(actual, theoretical) {
		c.successCt++
	} else {
		result = false
		if c.currentFailed < maxFailureDetails {
			if c.lineOpen {
				helpers.MustFprintln(c.out)
				c.lineOpen = false
			}
			_, _ = testFailedColor.Fprintf(c.out, "  FAILED [%d]: expected %s, got %s\n",
				c.assertionNum, formatValue(theoretical), formatValue(actual))
		}
		c.failedCt++
		c.currentFailed++
	}
	c.assertionNum++
	c.watch.Start()
	return result
}

// Test runs one named test function under measurement and prints its status
// with the elapsed time in milliseconds. The test name is printed before fn
// runs, so progress is visible even if fn never returns. fn is called
// synchronously; if it panics, the panic propagates to the caller of Test.
func (c *TestContext) Test(name string, fn TestFunction) {
	c.currentFailed = 0
	helpers.MustFprintf(c.out, "%s...", name)
	c.lineOpen = true
	c.watch.Start()
	fn(c)
	c.watch.Stop()
	if c.currentFailed > maxFailureDetails {
		helpers.MustFprintf(c.out, "[%d other failures omitted]\n", c.currentFailed-maxFailureDetails)
	}
	elapsed := c.watch.Elapsed().Milliseconds()
	if c.currentFailed == 0 {
		_, _ = testPassedColor.Fprintf(c.out, " PASS (%d ms)\n", elapsed)
	} else {
		// failure detail lines separated the status from the original
		// progress line, so the name is printed again
		_, _ = testFailedColor.Fprintf(c.out, "%s... FAIL (%d ms)\n", name, elapsed)
	}
	c.lineOpen = false
	c.watch.Reset()
}

// PrintResults writes the summary block for the whole run: the number of
// failed assertions and the total number made. It does not modify any state.
func (c *TestContext) PrintResults() {
	helpers.MustFprintln(c.out, "===================================")
	helpers.MustFprintf(c.out, "ASSERTIONS FAILED:    %7d\n", c.failedCt)
	helpers.MustFprintf(c.out, "ASSERTIONS MADE:      %7d\n", c.failedCt+c.successCt)
	helpers.MustFprintln(c.out, "===================================")
}
