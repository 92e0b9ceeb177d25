package internal

import (
	"bytes"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sensiblebit/pfxkit"
)

// BuildFiles names the files the build command reads.
type BuildFiles struct {
	Certificate string
	Key         string
	Chain       []string
	// KeyPassphrase unlocks encrypted OpenSSH keys.
	KeyPassphrase string
}

// BuildPEMs is the PEM material read from BuildFiles.
type BuildPEMs struct {
	CertificatePEM string
	PrivateKeyPEM  string
	CAChainPEM     []string
}

// LoadBuildFiles reads the certificate, key, and chain files. Each may be PEM,
// DER, or (for certificates) PKCS#7. Extra certificates following the leaf
// in the certificate file are placed before the --chain certificates, so a
// fullchain.pem works on its own.
func LoadBuildFiles(f BuildFiles) (*BuildPEMs, error) {
	var out BuildPEMs

	leafCerts, err := readCertificates(f.Certificate)
	if err != nil {
		return nil, err
	}
	out.CertificatePEM = leafCerts[0].PEM()
	for _, c := range leafCerts[1:] {
		out.CAChainPEM = append(out.CAChainPEM, c.PEM())
	}

	if out.PrivateKeyPEM, err = readPrivateKey(f.Key, f.KeyPassphrase); err != nil {
		return nil, err
	}

	for _, path := range f.Chain {
		certs, err := readCertificates(path)
		if err != nil {
			return nil, err
		}
		for _, c := range certs {
			out.CAChainPEM = append(out.CAChainPEM, c.PEM())
		}
	}
	return &out, nil
}

func readCertificates(path string) ([]*pfxkit.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	certs, err := pfxkit.ParseCertificatesAny(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return certs, nil
}

// readPrivateKey returns the key in path as PKCS#8 PEM. PEM keys of any
// supported type, encrypted OpenSSH keys, and DER keys are accepted.
func readPrivateKey(path, passphrase string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !bytes.Contains(data, []byte("-----BEGIN")) {
		key, err := pfxkit.ParsePrivateKey(data)
		if err != nil {
			return "", fmt.Errorf("parsing %s: %w", path, err)
		}
		return key.PEM(), nil
	}

	var lastErr error
	for rest := data; len(rest) > 0; {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if !strings.HasSuffix(block.Type, "PRIVATE KEY") {
			continue
		}
		key, err := parseKeyBlock(block, passphrase)
		if err != nil {
			slog.Debug("skipping private key block", "path", path, "type", block.Type, "error", err)
			lastErr = err
			continue
		}
		return key.PEM(), nil
	}
	if lastErr != nil {
		return "", fmt.Errorf("parsing %s: %w", path, lastErr)
	}
	return "", fmt.Errorf("no private key in %s", path)
}

func parseKeyBlock(block *pem.Block, passphrase string) (*pfxkit.PrivateKey, error) {
	if block.Type == pfxkit.LabelPrivateKey {
		return pfxkit.ParsePrivateKey(block.Bytes)
	}
	raw, err := pfxkit.ParsePEMPrivateKeyWithPassphrase(pem.EncodeToMemory(block), passphrase)
	if err != nil {
		return nil, err
	}
	return pfxkit.NewPrivateKey(raw)
}

// ReadArchive reads a PFX from path. Raw DER and base64 text are both
// accepted.
func ReadArchive(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ArchiveBytes(data)
}

// ArchiveBytes returns data as DER, decoding it first when it is base64.
func ArchiveBytes(data []byte) ([]byte, error) {
	if len(data) > 0 && data[0] == 0x30 {
		return data, nil
	}
	der, err := pfxkit.DecodeBase64(string(data))
	if err != nil {
		return nil, fmt.Errorf("input is neither DER nor base64: %w", err)
	}
	return der, nil
}
