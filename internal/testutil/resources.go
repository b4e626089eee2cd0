package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// VerifyNoLeaks fails the test if goroutines started during it are still running.
// Call it deferred from tests that fan work out to goroutines; do not combine it with
// t.Parallel since sibling tests' goroutines would be reported.
//
//	func TestProcessAll(t *testing.T) {
//	    defer testutil.VerifyNoLeaks(t)
//	    ...
//	}
func VerifyNoLeaks(t *testing.T, options ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, append(defaultOptions(), options...)...)
}

// defaultOptions ignores goroutines owned by the testing framework itself.
func defaultOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("testing.tRunner.func1"),
		goleak.IgnoreTopFunction("testing.runTests"),
		goleak.IgnoreTopFunction("testing.(*M).Run"),
		goleak.IgnoreTopFunction("go.uber.org/goleak.(*opts).retry"),
	}
}
