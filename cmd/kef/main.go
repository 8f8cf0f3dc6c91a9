// krux-signer core CLI
// Exercises the KEF envelope codec and BBQr QR transport from the
// command line: the same primitives the signing firmware links
// against, without the touch UI or camera pipeline around them.
package main

import (
	"os"

	"github.com/krux-signer/core/internal/cli"
)

const version = "v0.1"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
