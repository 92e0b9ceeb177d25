package main

import (
	"fmt"

	"github.com/sensiblebit/pfxkit"
	"github.com/sensiblebit/pfxkit/internal"
	"github.com/spf13/cobra"
)

var (
	extractObject  = pfxkit.ObjectCertificate
	extractFormat  string
	extractOutFile string
)

var extractCmd = &cobra.Command{
	Use:   "extract <archive>",
	Short: "Extract the certificate, private key, or CA chain",
	Long: `Open a PKCS#12 archive (DER or base64) and write one of its objects.

Formats: pem (any object), p7b (certificate or ca-chain), jks (the whole
archive as a Java keystore under the same password).`,
	Example: `  pfxkit extract server.p12 --object private-key -o key.pem
  pfxkit extract server.p12 --object ca-chain --format p7b -o chain.p7b
  pfxkit extract server.p12 --format jks -o server.jks`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Var(&extractObject, "object", "Object to extract: certificate, private-key, ca-chain")
	extractCmd.Flags().StringVar(&extractFormat, "format", "pem", "Output format: pem, p7b, jks")
	extractCmd.Flags().StringVarP(&extractOutFile, "out", "o", "", "Output file (default: stdout)")

	registerCompletion(extractCmd, completionInput{"object", stringerCompletion(pfxkit.Objects())})
	registerCompletion(extractCmd, completionInput{"format", fixedCompletion("pem", "p7b", "jks")})
}

func runExtract(cmd *cobra.Command, args []string) error {
	der, err := internal.ReadArchive(args[0])
	if err != nil {
		return err
	}
	pw, err := archivePassword(cmd, false)
	if err != nil {
		return err
	}

	switch extractFormat {
	case "pem":
		out, err := pfxkit.ExtractPFX(der, pw, extractObject)
		if err != nil {
			return err
		}
		return writeOutput(extractOutFile, []byte(out), extractObject == pfxkit.ObjectPrivateKey, false)
	case "p7b":
		a, err := pfxkit.DecodeArchive(der, pw)
		if err != nil {
			return err
		}
		var certs []*pfxkit.Certificate
		switch extractObject {
		case pfxkit.ObjectCertificate:
			if a.Certificate != nil {
				certs = []*pfxkit.Certificate{a.Certificate}
			}
		case pfxkit.ObjectCAChain:
			certs = a.CAChain
		case pfxkit.ObjectPrivateKey:
			return fmt.Errorf("format p7b cannot hold a private key")
		}
		if len(certs) == 0 {
			return fmt.Errorf("archive has no %s", extractObject)
		}
		p7, err := pfxkit.EncodePKCS7(certs)
		if err != nil {
			return err
		}
		return writeOutput(extractOutFile, p7, false, true)
	case "jks":
		a, err := pfxkit.DecodeArchive(der, pw)
		if err != nil {
			return err
		}
		ks, err := pfxkit.EncodeJKS(a, pw)
		if err != nil {
			return err
		}
		return writeOutput(extractOutFile, ks, true, true)
	default:
		return fmt.Errorf("unsupported output format %q (use pem, p7b, or jks)", extractFormat)
	}
}
