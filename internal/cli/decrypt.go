package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krux-signer/core/internal/kef"
	"github.com/krux-signer/core/internal/log"
	"github.com/krux-signer/core/internal/util"
	"github.com/krux-signer/core/internal/worker"
)

var (
	decIn        string
	decOut       string
	decPassword  string
	decStdinPass bool
	decQuiet     bool
)

func init() {
	decryptCmd.Flags().StringVarP(&decIn, "in", "i", "", "input envelope file (default stdin)")
	decryptCmd.Flags().StringVarP(&decOut, "out", "o", "", "output file (default stdout)")
	decryptCmd.Flags().StringVarP(&decPassword, "password", "p", "", "password (prefer interactive prompt or --password-stdin)")
	decryptCmd.Flags().BoolVarP(&decStdinPass, "password-stdin", "P", false, "read password from stdin, one line, before the envelope")
	decryptCmd.Flags().BoolVarP(&decQuiet, "quiet", "q", false, "suppress status output")
	rootCmd.AddCommand(decryptCmd)
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a KEF envelope from stdin/--in",
	RunE:  runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	password := decPassword
	if password == "" {
		var err error
		if decStdinPass {
			password, err = ReadPasswordFromStdin()
		} else {
			password, err = ReadPasswordInteractive(false)
		}
		if err != nil {
			return err
		}
	}

	env, err := readInput(decIn)
	if err != nil {
		return err
	}

	rep := newCLIReporter(decQuiet)
	if !kef.IsEnvelope(env) {
		err := fmt.Errorf("input is not a recognizable KEF envelope")
		log.Warn("rejected input", log.Err(err))
		rep.errorf("%v", err)
		return err
	}

	rep.status("Deriving key and decrypting...")
	plaintext, err := worker.Run(worker.NoopWatchdog, func() ([]byte, error) {
		return kef.Decrypt(env, []byte(password))
	})
	if err != nil {
		log.Error("decrypt failed", log.Err(err))
		rep.errorf("%v", err)
		return err
	}
	log.Info("decrypted envelope", log.Int("bytes", len(plaintext)))

	if err := writeOutput(decOut, plaintext); err != nil {
		return err
	}
	if !decQuiet {
		fmt.Fprintf(os.Stderr, "Recovered %s of plaintext\n", util.Sizeify(int64(len(plaintext))))
	}
	return nil
}
