package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordEmpty    = errors.New("password cannot be empty")
)

func isTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// readPasswordSecure reads a password from stdin without echo,
// falling back to a plain buffered read when stdin isn't a terminal.
func readPasswordSecure(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !isTerminal() {
		reader := bufio.NewReader(os.Stdin)
		pw, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return strings.TrimRight(pw, "\r\n"), nil
	}

	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}

// ReadPasswordInteractive prompts for a password, and if confirm is
// true asks for it a second time and requires the two to match.
func ReadPasswordInteractive(confirm bool) (string, error) {
	password, err := readPasswordSecure("Password: ")
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrPasswordEmpty
	}
	if confirm {
		again, err := readPasswordSecure("Confirm password: ")
		if err != nil {
			return "", err
		}
		if again != password {
			return "", ErrPasswordMismatch
		}
	}
	return password, nil
}

// ReadPasswordFromStdin reads one line from stdin as the password, for
// scripted invocation with --password-stdin. It reads a byte at a time
// so nothing past the newline is consumed: the data that follows on
// stdin is left for the command to read.
func ReadPasswordFromStdin() (string, error) {
	var pw []byte
	var b [1]byte
	for {
		n, err := os.Stdin.Read(b[:])
		if n == 1 {
			if b[0] == '\n' {
				break
			}
			pw = append(pw, b[0])
			continue
		}
		if err != nil {
			return "", fmt.Errorf("reading password from stdin: %w", err)
		}
	}
	return strings.TrimRight(string(pw), "\r"), nil
}
