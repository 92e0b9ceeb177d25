package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sensiblebit/pfxkit"
	"github.com/sensiblebit/pfxkit/internal"
	"github.com/spf13/cobra"
)

var (
	convertOutFile    string
	convertEncryption encryptionFlags
)

// jksMagic starts every JKS keystore.
var jksMagic = []byte{0xfe, 0xed, 0xfe, 0xed}

var convertCmd = &cobra.Command{
	Use:   "convert <keystore>",
	Short: "Convert between Java keystores and PKCS#12",
	Long: `Convert a JKS keystore to a PKCS#12 archive, or a PKCS#12 archive to JKS.
The direction follows the input. The same password protects both files.`,
	Example: `  pfxkit convert server.jks -o server.p12 --profile modern
  pfxkit convert server.p12 -o server.jks`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutFile, "out", "o", "", "Output file (default: stdout)")
	addEncryptionFlags(convertCmd, &convertEncryption)
}

func runConvert(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	pw, err := archivePassword(cmd, false)
	if err != nil {
		return err
	}

	if bytes.HasPrefix(data, jksMagic) {
		cfg, err := convertEncryption.resolve(cmd.Flags())
		if err != nil {
			return err
		}
		a, err := pfxkit.DecodeJKS(data, pw)
		if err != nil {
			return err
		}
		der, err := pfxkit.EncodeArchive(a, pw, cfg)
		if err != nil {
			return err
		}
		return writeOutput(convertOutFile, der, true, true)
	}

	der, err := internal.ArchiveBytes(data)
	if err != nil {
		return err
	}
	a, err := pfxkit.DecodeArchive(der, pw)
	if err != nil {
		return err
	}
	ks, err := pfxkit.EncodeJKS(a, pw)
	if err != nil {
		return err
	}
	return writeOutput(convertOutFile, ks, true, true)
}
