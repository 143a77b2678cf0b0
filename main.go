// Command test-harness demonstrates the eztest framework with three scenarios:
// a passing test, a failing test, and a slow test.
package main

import (
	"os"

	"github.com/eztest/test-harness/framework/eztest"
	"github.com/eztest/test-harness/framework/helpers"
)

func passTest(cx *eztest.TestContext) {
	cx.ExpectEqual(1, 1)
}

func failTest(cx *eztest.TestContext) {
	cx.ExpectEqual(0, 1)
}

func slowTest(cx *eztest.TestContext) {
	sum := 0
	for i := 0; i < 10000; i++ {
		for j := 0; j < 10000; j++ {
			sum += i - j
		}
	}
	cx.ExpectEqual(sum, 0)
}

func main() {
	cx := eztest.NewTestContext(os.Stdout)
	cx.Test("this test should pass", passTest)
	cx.Test("this test should fail", failTest)
	cx.Test("this test should take a while", slowTest)
	cx.PrintResults()
	os.Exit(helpers.IfElse(cx.Results().OK(), 0, 1))
}
