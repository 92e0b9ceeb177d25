package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sensiblebit/pfxkit/internal"
)

var errBinaryToTerminal = errors.New("refusing to write a binary archive to a terminal; use -o or --base64")

// writeOutput writes data to path, or to stdout when path is empty. Files
// holding secrets are created 0600.
func writeOutput(path string, data []byte, secret, binary bool) error {
	if path == "" {
		if binary && internal.IsTerminal(os.Stdout) {
			return errBinaryToTerminal
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
		return nil
	}
	perm := os.FileMode(0644)
	if secret {
		perm = 0600
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
