package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"

	"github.com/sensiblebit/pfxkit/internal"
	"github.com/spf13/cobra"
)

var (
	dbPath         string
	scanPasswords  []string
	scanDuplicates bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Scan and catalog PKCS#12 archives",
	Long: `Walk a directory for .p12 and .pfx files, record their protection and
contents in SQLite, and print a summary. Each archive is tried against the
default passwords, --passwords, and every line of --password-file.
Passwords are never stored.`,
	Example: `  pfxkit scan /etc/ssl
  pfxkit scan ./certs --passwords s3cret,hunter2 --db catalog.db`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&dbPath, "db", "d", "", "SQLite catalog path (default: in-memory)")
	scanCmd.Flags().StringSliceVar(&scanPasswords, "passwords", nil, "Comma-separated candidate passwords")
	scanCmd.Flags().BoolVar(&scanDuplicates, "duplicates", false, "List archives with identical content")

	registerCompletion(scanCmd, completionInput{"db", fileCompletion})
	scanCmd.ValidArgsFunction = directoryCompletion
}

func runScan(cmd *cobra.Command, args []string) error {
	cat, err := internal.NewCatalog()
	if err != nil {
		return fmt.Errorf("failed to initialize catalog: %w", err)
	}
	defer cat.Close()

	if dbPath != "" {
		if _, err := os.Stat(dbPath); err == nil {
			if err := cat.LoadFromDisk(dbPath); err != nil {
				return err
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", dbPath, err)
		}
	}

	passwords, err := internal.ProcessPasswords(scanPasswords, passwordFile)
	if err != nil {
		return fmt.Errorf("loading passwords: %w", err)
	}
	if cmd.Flags().Changed("password") {
		passwords = append([]string{password}, passwords...)
	}

	summary, err := internal.ScanDirectory(cmd.Context(), cat, internal.ScanOptions{
		Root:      args[0],
		Passwords: passwords,
	})
	if err != nil {
		return err
	}

	catSummary, err := cat.Summary()
	if err != nil {
		slog.Warn("summarizing catalog", "error", err)
		catSummary = nil
	}
	fmt.Print(internal.FormatScanSummary(summary, catSummary))

	if scanDuplicates {
		dups, err := cat.FindDuplicates()
		if err != nil {
			return err
		}
		hashes := make([]string, 0, len(dups))
		for h := range dups {
			hashes = append(hashes, h)
		}
		sort.Strings(hashes)
		for _, h := range hashes {
			fmt.Printf("\nDuplicate %s:\n", h[:16])
			for _, p := range dups[h] {
				fmt.Printf("  %s\n", p)
			}
		}
	}

	if dbPath != "" {
		if err := os.Remove(dbPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("replacing %s: %w", dbPath, err)
		}
		if err := cat.SaveToDisk(dbPath); err != nil {
			return err
		}
	}
	return nil
}
