package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/Picocrypt/zxcvbn-go"
	"github.com/spf13/cobra"

	"github.com/krux-signer/core/internal/kef"
	"github.com/krux-signer/core/internal/log"
	"github.com/krux-signer/core/internal/util"
	"github.com/krux-signer/core/internal/worker"
)

var (
	encID         string
	encVersion    uint8
	encIterations uint32
	encIn         string
	encOut        string
	encPassword   string
	encStdinPass  bool
	encQuiet      bool
)

func init() {
	encryptCmd.Flags().StringVar(&encID, "id", "", "envelope id / KDF salt (required)")
	encryptCmd.Flags().Uint8Var(&encVersion, "version", 21, "KEF version row to use")
	encryptCmd.Flags().Uint32Var(&encIterations, "iterations", 100000, "PBKDF2 iteration count")
	encryptCmd.Flags().StringVarP(&encIn, "in", "i", "", "input file (default stdin)")
	encryptCmd.Flags().StringVarP(&encOut, "out", "o", "", "output file (default stdout)")
	encryptCmd.Flags().StringVarP(&encPassword, "password", "p", "", "password (prefer interactive prompt or --password-stdin)")
	encryptCmd.Flags().BoolVarP(&encStdinPass, "password-stdin", "P", false, "read password from stdin, one line, before the plaintext")
	encryptCmd.Flags().BoolVarP(&encQuiet, "quiet", "q", false, "suppress status and password-strength output")
	_ = encryptCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(encryptCmd)
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt stdin/--in into a KEF envelope",
	RunE:  runEncrypt,
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	password := encPassword
	if password == "" {
		var err error
		if encStdinPass {
			password, err = ReadPasswordFromStdin()
		} else {
			password, err = ReadPasswordInteractive(true)
		}
		if err != nil {
			return err
		}
	}

	if !encQuiet && password != "" {
		strength := zxcvbn.PasswordStrength(password, nil)
		fmt.Fprintf(os.Stderr, "Password strength: %d/4 (advisory only, not part of the envelope)\n", strength.Score)
	}

	plaintext, err := readInput(encIn)
	if err != nil {
		return err
	}
	log.Debug("read plaintext", log.Int("bytes", len(plaintext)))

	rep := newCLIReporter(encQuiet)
	rep.status("Deriving key and encrypting...")

	env, err := worker.Run(worker.NoopWatchdog, func() ([]byte, error) {
		return kef.Encrypt([]byte(encID), encVersion, []byte(password), encIterations, plaintext, nil)
	})
	if err != nil {
		log.Error("encrypt failed", log.Err(err), log.Int("version", int(encVersion)))
		rep.errorf("%v", err)
		return err
	}
	log.Info("encrypted envelope", log.Int("version", int(encVersion)), log.Int("bytes", len(env)))

	if err := writeOutput(encOut, env); err != nil {
		return err
	}
	rep.status(fmt.Sprintf("Wrote %s envelope (version %d)", util.Sizeify(int64(len(env))), encVersion))
	return nil
}

// readInput slurps path (or stdin, if path is empty) through a pooled
// 1 MiB chunk buffer.
func readInput(path string) ([]byte, error) {
	var r io.Reader
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	chunk := util.GetMiBBuffer()
	defer util.PutMiBBuffer(chunk)

	var buf bytes.Buffer
	if _, err := io.CopyBuffer(&buf, r, chunk); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
