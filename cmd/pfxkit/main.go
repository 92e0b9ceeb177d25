package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sensiblebit/pfxkit"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.Version = version
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorDetail(err))
		stop()
		os.Exit(1)
	}
}

// errorDetail appends the cause of a pfxkit error, whose message alone is
// kept short for library callers.
func errorDetail(err error) string {
	var perr *pfxkit.Error
	if errors.As(err, &perr) && perr.Err != nil {
		return fmt.Sprintf("%s (%v)", err, perr.Err)
	}
	return err.Error()
}
