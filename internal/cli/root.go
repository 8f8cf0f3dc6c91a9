// Package cli implements the kef command's subcommand tree: encrypt,
// decrypt, versions, and the qr encode/decode/detect group.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/krux-signer/core/internal/log"
)

var debugLogging bool

var rootCmd = &cobra.Command{
	Use:   "kef",
	Short: "Key Encryption Format and BBQr transport toolkit",
	Long: `kef exercises the signer's cryptographic core from the command line:

  - encrypt/decrypt: the versioned KEF authenticated-encryption envelope
  - qr encode/decode: the BBQr multi-part QR transport
  - qr detect: classify a mnemonic-carrying QR payload
  - versions: list the registered KEF version table`,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "enable debug logging to stderr")
}

// Execute runs the CLI, returning any error from the invoked
// subcommand.
func Execute(version string) error {
	rootCmd.Version = version
	cobra.OnInitialize(func() {
		if debugLogging {
			log.EnableDebugLogging()
		}
	})
	return rootCmd.Execute()
}
