package main

import (
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/sensiblebit/pfxkit"
	"github.com/sensiblebit/pfxkit/internal"
	"github.com/spf13/cobra"
)

var (
	buildCertPath      string
	buildKeyPath       string
	buildChainPaths    []string
	buildAlias         string
	buildKeyPassphrase string
	buildOutFile       string
	buildBase64        bool
	buildEncryption    encryptionFlags
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a PKCS#12 archive",
	Long: `Build a PKCS#12 archive from a certificate, its private key, and an
optional CA chain.

Certificates may be PEM, DER, or PKCS#7. Certificates following the leaf in
--cert are added to the chain ahead of any --chain files. The key may be
PKCS#1, SEC 1, PKCS#8, or OpenSSH.`,
	Example: `  pfxkit build --cert cert.pem --key key.pem --chain ca.pem -o server.p12
  pfxkit build --cert fullchain.pem --key key.pem --profile modern -o server.pfx
  pfxkit build --cert cert.pem --key key.pem --base64 --password changeit`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildCertPath, "cert", "", "Certificate file (leaf first)")
	buildCmd.Flags().StringVar(&buildKeyPath, "key", "", "Private key file")
	buildCmd.Flags().StringSliceVar(&buildChainPaths, "chain", nil, "CA certificate files, in trust-path order")
	buildCmd.Flags().StringVar(&buildAlias, "alias", "", "Friendly name for the leaf and key")
	buildCmd.Flags().StringVar(&buildKeyPassphrase, "key-passphrase", "", "Passphrase for an encrypted OpenSSH key")
	buildCmd.Flags().StringVarP(&buildOutFile, "out", "o", "", "Output file (default: stdout)")
	buildCmd.Flags().BoolVar(&buildBase64, "base64", false, "Write the archive as base64 text")
	addEncryptionFlags(buildCmd, &buildEncryption)

	_ = buildCmd.MarkFlagRequired("cert")
	_ = buildCmd.MarkFlagRequired("key")
	registerCompletion(buildCmd, completionInput{"cert", fileCompletion})
	registerCompletion(buildCmd, completionInput{"key", fileCompletion})
	registerCompletion(buildCmd, completionInput{"chain", fileCompletion})
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := buildEncryption.resolve(cmd.Flags())
	if err != nil {
		return err
	}

	pems, err := internal.LoadBuildFiles(internal.BuildFiles{
		Certificate:   buildCertPath,
		Key:           buildKeyPath,
		Chain:         buildChainPaths,
		KeyPassphrase: buildKeyPassphrase,
	})
	if err != nil {
		return err
	}

	pw, err := archivePassword(cmd, true)
	if err != nil {
		return err
	}

	der, err := pfxkit.BuildPFX(pfxkit.BuildInput{
		CertificatePEM: pems.CertificatePEM,
		PrivateKeyPEM:  pems.PrivateKeyPEM,
		CAChainPEM:     pems.CAChainPEM,
		Password:       pw,
		Alias:          buildAlias,
		EncryptConfig:  &cfg,
	})
	if err != nil {
		return err
	}
	slog.Debug("archive built", "bytes", len(der), "chain", len(pems.CAChainPEM))

	if buildBase64 {
		return writeOutput(buildOutFile, []byte(base64.StdEncoding.EncodeToString(der)+"\n"), true, false)
	}
	if err := writeOutput(buildOutFile, der, true, true); err != nil {
		return err
	}
	if buildOutFile != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", buildOutFile)
	}
	return nil
}
