package engine_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Batch workers must all have exited by the time a test returns.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
