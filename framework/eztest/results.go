package eztest

// Results is the assertion accounting for a whole run.
type Results struct {
	AssertionsFailed int
	AssertionsMade   int
}

// OK returns true if no assertions failed.
func (r Results) OK() bool {
	return r.AssertionsFailed == 0
}

// Results returns a snapshot of the run's assertion counts so far.
func (c *TestContext) Results() Results {
	return Results{
		AssertionsFailed: c.failedCt,
		AssertionsMade:   c.failedCt + c.successCt,
	}
}
