package admin

import (
	"bytes"
	"errors"
	"testing"
)

func TestPromptSecret(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("s3cret"), nil
	}

	var out bytes.Buffer
	app := &App{out: &out}

	secret, err := app.promptSecret("Enter password: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(secret) != "s3cret" {
		t.Errorf("secret = %q", secret)
	}
	if out.String() != "Enter password: \n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestPromptSecret_ReadError(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("no tty")
	}

	var out bytes.Buffer
	app := &App{out: &out}

	if _, err := app.promptSecret("Enter password: "); err == nil {
		t.Fatal("expected an error")
	}
}
