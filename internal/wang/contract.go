package wang

import "github.com/cockroachdb/errors"

// violatef panics with an assertion failure. It marks caller bugs such as an
// out-of-range color or compass position; these are never clamped.
func violatef(format string, args ...interface{}) {
	panic(errors.AssertionFailedf(format, args...))
}

// IsContractViolation reports whether a recovered panic value was raised by a
// broken precondition in this package.
func IsContractViolation(v interface{}) bool {
	err, ok := v.(error)

	return ok && errors.HasAssertionFailure(err)
}

// checkColorValue panics when c does not fit into one id field.
func checkColorValue(c int) {
	if c < 0 || c > MaxColorCount {
		violatef("wang: color %d out of range [0,%d]", c, MaxColorCount)
	}
}
