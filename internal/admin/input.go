package admin

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// promptSecret reads a secret from the terminal without echo. A newline is
// printed after the read to keep the output tidy.
func (a *App) promptSecret(prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(a.out, prompt); err != nil {
		return nil, err
	}
	secret, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return nil, err
	}
	return secret, nil
}
