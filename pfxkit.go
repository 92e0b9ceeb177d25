// Package pfxkit builds and opens PKCS#12 (PFX) archives: password-protected
// containers bundling an end-entity certificate, its private key, and a CA
// chain. Archives interoperate with OpenSSL, Java keystores, and Windows.
//
// Build and Extract are the PEM/base64 boundary. EncodeArchive and
// DecodeArchive work on parsed values and DER.
package pfxkit

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sensiblebit/pfxkit/internal/pkcs12"
)

// Archive is the logical content of a PFX.
type Archive struct {
	Certificate *Certificate
	PrivateKey  *PrivateKey
	// CAChain is in trust-path order and round-trips unchanged.
	CAChain []*Certificate
	// FriendlyName is the alias stored on the leaf and key bags.
	FriendlyName string
	// LocalKeyID links the leaf to its key. Empty means SHA-1 of the leaf.
	LocalKeyID []byte
}

// BuildInput is the PEM-level input to Build.
type BuildInput struct {
	CertificatePEM string
	PrivateKeyPEM  string
	CAChainPEM     []string
	Password       string
	Alias          string
	// EncryptConfig nil or zero selects LegacyEncryptConfig.
	EncryptConfig *EncryptionConfig
}

// BuildResult holds a built archive.
type BuildResult struct {
	Base64 string `json:"base64"`
}

// ExtractInput selects one object from a base64 archive.
type ExtractInput struct {
	Base64   string
	Password string
	Object   Object
}

// ExtractResult is the PEM rendering of the selected object.
type ExtractResult struct {
	Object Object `json:"-"`
	PEM    string `json:"pem"`
}

// Build parses the PEM inputs, assembles a PFX, and returns it base64
// encoded. Inputs are checked in order: certificate, private key, chain
// entries by index, then the key/certificate match.
func Build(in BuildInput) (*BuildResult, error) {
	der, err := BuildPFX(in)
	if err != nil {
		return nil, err
	}
	return &BuildResult{Base64: base64.StdEncoding.EncodeToString(der)}, nil
}

// BuildPFX is Build without the base64 step.
func BuildPFX(in BuildInput) ([]byte, error) {
	var cfg EncryptionConfig
	if in.EncryptConfig != nil {
		cfg = *in.EncryptConfig
	}
	cfg = cfg.orDefault()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	archive, err := parseBuildInput(in)
	if err != nil {
		return nil, err
	}
	return EncodeArchive(archive, in.Password, cfg)
}

func parseBuildInput(in BuildInput) (*Archive, error) {
	certDER, err := DecodePEM(in.CertificatePEM, LabelCertificate)
	if err != nil {
		return nil, newError(InvalidArg, msgParseCertificate, err)
	}
	cert, err := ParseCertificate(certDER)
	if err != nil {
		return nil, err
	}

	key, err := PrivateKeyFromPEM([]byte(in.PrivateKeyPEM))
	if err != nil {
		return nil, err
	}

	chainDER := make([][]byte, 0, len(in.CAChainPEM))
	for i, p := range in.CAChainPEM {
		der, err := DecodePEM(p, LabelCertificate)
		if err != nil {
			return nil, chainError(i, err)
		}
		chainDER = append(chainDER, der)
	}
	chain, err := ParseChain(chainDER)
	if err != nil {
		return nil, err
	}

	return &Archive{
		Certificate:  cert,
		PrivateKey:   key,
		CAChain:      chain,
		FriendlyName: in.Alias,
	}, nil
}

// EncodeArchive assembles a PFX from parsed values. Every call draws fresh
// salts and IVs, so identical input yields different bytes.
func EncodeArchive(a *Archive, password string, cfg EncryptionConfig) ([]byte, error) {
	cfg = cfg.orDefault()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if a.Certificate == nil {
		return nil, newError(InvalidArg, msgParseCertificate, fmt.Errorf("no certificate"))
	}
	if a.PrivateKey == nil {
		return nil, newError(InvalidArg, msgParsePrivateKey, fmt.Errorf("no private key"))
	}
	match, err := keyMatchesCertificate(a.PrivateKey, a.Certificate.X509)
	if err != nil {
		return nil, newError(InvalidArg, msgKeyMismatch, err)
	}
	if !match {
		return nil, newError(InvalidArg, msgKeyMismatch, nil)
	}

	contents := &pkcs12.Contents{
		Certificate:  a.Certificate.DER(),
		PrivateKey:   a.PrivateKey.PKCS8(),
		FriendlyName: a.FriendlyName,
		LocalKeyID:   a.LocalKeyID,
	}
	for _, ca := range a.CAChain {
		contents.CAChain = append(contents.CAChain, ca.DER())
	}

	slog.Debug("building pfx",
		"subject", a.Certificate.X509.Subject.String(),
		"chain", len(a.CAChain),
		"cert_alg", cfg.CertificateAlgorithm.String(),
		"key_alg", cfg.PrivateKeyAlgorithm.String(),
		"mac", cfg.MACDigest.String())

	der, err := pkcs12.Encode(contents, password, cfg.encodeOptions())
	if err != nil {
		return nil, newError(GenericFailure, msgBuildPFX, err)
	}
	return der, nil
}

// DecodeArchive verifies and decrypts a DER archive. A missing certificate
// or key leaves the field nil.
func DecodeArchive(der []byte, password string) (*Archive, error) {
	c, err := pkcs12.Decode(der, password)
	if err != nil {
		return nil, classifyEngineError(err)
	}

	a := &Archive{FriendlyName: c.FriendlyName, LocalKeyID: c.LocalKeyID}
	if c.Certificate != nil {
		if a.Certificate, err = ParseCertificate(c.Certificate); err != nil {
			return nil, newError(ParseError, msgParsePFX, err)
		}
	}
	if c.PrivateKey != nil {
		if a.PrivateKey, err = ParsePrivateKey(c.PrivateKey); err != nil {
			return nil, newError(ParseError, msgParsePFX, err)
		}
	}
	if a.CAChain, err = ParseChain(c.CAChain); err != nil {
		return nil, newError(ParseError, msgParsePFX, err)
	}

	slog.Debug("decoded pfx", "has_certificate", a.Certificate != nil, "has_key", a.PrivateKey != nil, "chain", len(a.CAChain))
	return a, nil
}

// Extract decodes a base64 archive and returns the selected object as PEM:
// the leaf certificate, the PKCS#8 private key, or the concatenated chain.
// An empty chain yields an empty string.
func Extract(in ExtractInput) (*ExtractResult, error) {
	if !in.Object.Valid() {
		return nil, newError(InvalidArg, msgInvalidObject, fmt.Errorf("object %v", in.Object))
	}
	der, err := DecodeBase64(in.Base64)
	if err != nil {
		return nil, err
	}
	pemText, err := ExtractPFX(der, in.Password, in.Object)
	if err != nil {
		return nil, err
	}
	return &ExtractResult{Object: in.Object, PEM: pemText}, nil
}

// ExtractPFX is Extract over DER input.
func ExtractPFX(der []byte, password string, obj Object) (string, error) {
	if !obj.Valid() {
		return "", newError(InvalidArg, msgInvalidObject, fmt.Errorf("object %v", obj))
	}
	a, err := DecodeArchive(der, password)
	if err != nil {
		return "", err
	}
	return a.Render(obj)
}

// Render returns the PEM of one object of the archive.
func (a *Archive) Render(obj Object) (string, error) {
	switch obj {
	case ObjectCertificate:
		if a.Certificate == nil {
			return "", newError(ParseError, msgNoCertificate, nil)
		}
		return a.Certificate.PEM(), nil
	case ObjectPrivateKey:
		if a.PrivateKey == nil {
			return "", newError(ParseError, msgNoPrivateKey, nil)
		}
		return a.PrivateKey.PEM(), nil
	case ObjectCAChain:
		var sb strings.Builder
		for _, ca := range a.CAChain {
			sb.WriteString(ca.PEM())
		}
		return sb.String(), nil
	default:
		return "", newError(InvalidArg, msgInvalidObject, fmt.Errorf("object %v", obj))
	}
}

// DecodeBase64 decodes standard base64, ignoring embedded whitespace and
// line breaks.
func DecodeBase64(s string) ([]byte, error) {
	der, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, newError(InvalidArg, msgInvalidBase64, err)
	}
	if len(der) == 0 {
		return nil, newError(InvalidArg, msgInvalidBase64, fmt.Errorf("empty input"))
	}
	return der, nil
}
