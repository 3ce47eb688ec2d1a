package testlog

import (
	"testing"

	"github.com/danmuck/tlvkit/internal/logging"
)

// Start configures the test logging profile and brackets the test's log
// output with its name.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logging.Infof("test=%s", t.Name())
	t.Cleanup(func() {
		logging.Debugf("test=%s done failed=%t", t.Name(), t.Failed())
	})
}
