package clzap

import (
	"io"

	"github.com/onsi/ginkgo/v2"
	"go.uber.org/fx"
)

// Test observes all logs for assertions. Every entry is also written to the GinkgoWriter so the complete
// output of a provisioning run is shown next to a failing spec.
func Test() fx.Option {
	return fx.Options(
		Fx(),
		fx.Provide(TestWriter),
		Observed(),
	)
}

// TestWriter is where test logs are mirrored to.
func TestWriter() io.Writer {
	return ginkgo.GinkgoWriter
}
