package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sensiblebit/pfxkit"
	"github.com/sensiblebit/pfxkit/internal"
	"github.com/spf13/cobra"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect <archive>",
	Short: "Display the structure and contents of an archive",
	Long: `Show the MAC and encryption parameters of a PKCS#12 archive. With
--password or --password-file the decrypted bags are listed too.`,
	Example: `  pfxkit inspect server.p12
  pfxkit inspect server.p12 --password changeit
  pfxkit inspect server.p12 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "Output format: text or json")
	registerCompletion(inspectCmd, completionInput{"format", fixedCompletion("text", "json")})
}

func runInspect(cmd *cobra.Command, args []string) error {
	der, err := internal.ReadArchive(args[0])
	if err != nil {
		return err
	}

	withPassword := cmd.Flags().Changed("password") || passwordFile != ""
	var pw string
	if withPassword {
		if pw, err = archivePassword(cmd, false); err != nil {
			return err
		}
	}

	ins, err := internal.InspectArchive(der, pw, withPassword)
	if ins == nil {
		return err
	}
	if err != nil {
		if !errors.Is(err, pfxkit.ErrAuth) {
			return err
		}
		slog.Warn("password did not open the archive; showing structure only")
	}

	output, err := internal.FormatInspection(ins, inspectFormat)
	if err != nil {
		return err
	}
	fmt.Print(output)
	return nil
}
