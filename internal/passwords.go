package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sensiblebit/pfxkit"
	"golang.org/x/term"
)

// LoadPasswordsFromFile loads passwords from a file, one password per line
func LoadPasswordsFromFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var passwords []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if pwd := strings.TrimSpace(scanner.Text()); pwd != "" {
			passwords = append(passwords, pwd)
		}
	}
	return passwords, scanner.Err()
}

// ProcessPasswords builds the candidate list for scan: defaults, then the
// command line list, then the file, deduplicated in order.
func ProcessPasswords(passwordList []string, passwordFile string) ([]string, error) {
	extra := append([]string(nil), passwordList...)
	if passwordFile != "" {
		filePasswords, err := LoadPasswordsFromFile(passwordFile)
		if err != nil {
			return nil, fmt.Errorf("loading passwords from file: %w", err)
		}
		extra = append(extra, filePasswords...)
	}
	return pfxkit.DeduplicatePasswords(extra), nil
}

// PasswordSource describes where a single archive password comes from.
type PasswordSource struct {
	// Flag is the --password value; FlagSet distinguishes "" from unset.
	Flag    string
	FlagSet bool
	// File is --password-file; its first line is the password.
	File string
	// Prompt is shown on stderr when stdin is a terminal.
	Prompt string
	// Confirm asks twice, for passwords that protect new archives.
	Confirm bool
}

// ErrPasswordMismatch is returned when a confirmed prompt differs.
var ErrPasswordMismatch = errors.New("passwords do not match")

// ResolvePassword returns the password from the flag, the password file, or
// an interactive prompt, in that order. Without any source and without a
// terminal the password is empty.
func ResolvePassword(src PasswordSource) (string, error) {
	if src.FlagSet {
		return src.Flag, nil
	}
	if src.File != "" {
		return readFirstLine(src.File)
	}
	if !IsTerminal(os.Stdin) {
		return "", nil
	}
	pw, err := promptPassword(os.Stderr, src.Prompt)
	if err != nil {
		return "", err
	}
	if src.Confirm {
		again, err := promptPassword(os.Stderr, "Confirm "+strings.ToLower(src.Prompt))
		if err != nil {
			return "", err
		}
		if again != pw {
			return "", ErrPasswordMismatch
		}
	}
	return pw, nil
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("reading password file: %w", err)
	}
	defer f.Close()
	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password file: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func promptPassword(w io.Writer, prompt string) (string, error) {
	if prompt == "" {
		prompt = "Password"
	}
	fmt.Fprintf(w, "%s: ", prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}
