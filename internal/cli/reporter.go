package cli

import (
	"fmt"
	"os"

	"github.com/krux-signer/core/internal/worker"
)

// newCLIReporter wires a worker.Reporter to plain stderr status lines,
// the CLI's equivalent of the progress bar the touch UI would render.
func newCLIReporter(quiet bool) *reporter {
	r := &reporter{quiet: quiet}
	r.Reporter = worker.NewReporter(
		func(text string) {
			if !r.quiet {
				fmt.Fprintln(os.Stderr, text)
			}
		},
		func(fraction float32, info string) {
			if !r.quiet {
				fmt.Fprintf(os.Stderr, "\r%3.0f%% %s", fraction*100, info)
			}
		},
		nil,
		nil,
	)
	return r
}

type reporter struct {
	*worker.Reporter
	quiet bool
}

func (r *reporter) status(text string) {
	r.SetStatus(text)
}

func (r *reporter) errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
