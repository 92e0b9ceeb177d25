package pfxkit

import (
	"fmt"
	"strings"

	"github.com/sensiblebit/pfxkit/internal/pkcs12"
)

// Algorithm is a bag encryption algorithm. Each one implies its key
// derivation and cipher.
type Algorithm = pkcs12.Algorithm

// Digest is the hash used for the integrity MAC.
type Digest = pkcs12.Digest

// Bag encryption algorithms.
const (
	PBEWithSHA1And3KeyTripleDESCBC = pkcs12.PBEWithSHA1And3KeyTripleDESCBC
	PBEWithSHA1And2KeyTripleDESCBC = pkcs12.PBEWithSHA1And2KeyTripleDESCBC
	PBEWithSHA1And128BitRC2CBC     = pkcs12.PBEWithSHA1And128BitRC2CBC
	PBEWithSHA1And40BitRC2CBC      = pkcs12.PBEWithSHA1And40BitRC2CBC
	AES256CBC                      = pkcs12.AES256CBC
)

// MAC digests.
const (
	SHA1   = pkcs12.SHA1
	SHA256 = pkcs12.SHA256
	SHA384 = pkcs12.SHA384
	SHA512 = pkcs12.SHA512
)

// EncryptionConfig selects how an archive is protected. The zero value
// means LegacyEncryptConfig.
type EncryptionConfig struct {
	CertificateAlgorithm Algorithm
	PrivateKeyAlgorithm  Algorithm
	MACDigest            Digest
	Iterations           int
	MACIterations        int
	SaltLength           int
	// EncryptCertificates wraps the certificate bags in EncryptedData under
	// CertificateAlgorithm. False stores them in plain Data.
	EncryptCertificates bool
}

// LegacyEncryptConfig ("v1") is readable by every PKCS#12 consumer,
// including Java 8 and Windows Server 2016.
var LegacyEncryptConfig = EncryptionConfig{
	CertificateAlgorithm: PBEWithSHA1And40BitRC2CBC,
	PrivateKeyAlgorithm:  PBEWithSHA1And3KeyTripleDESCBC,
	MACDigest:            SHA1,
	Iterations:           2048,
	MACIterations:        2048,
	SaltLength:           8,
	EncryptCertificates:  true,
}

// ModernEncryptConfig ("v3") matches the OpenSSL 3 defaults: PBES2 with
// AES-256-CBC and an HMAC-SHA256 MAC.
var ModernEncryptConfig = EncryptionConfig{
	CertificateAlgorithm: AES256CBC,
	PrivateKeyAlgorithm:  AES256CBC,
	MACDigest:            SHA256,
	Iterations:           2048,
	MACIterations:        2048,
	SaltLength:           16,
	EncryptCertificates:  true,
}

var profileNames = map[string]*EncryptionConfig{
	"v1":     &LegacyEncryptConfig,
	"legacy": &LegacyEncryptConfig,
	"v3":     &ModernEncryptConfig,
	"modern": &ModernEncryptConfig,
}

// ProfileNames lists the built-in profile names.
func ProfileNames() []string {
	return []string{"legacy", "modern", "v1", "v3"}
}

// ProfileByName returns a copy of a built-in profile. Names are
// case-insensitive.
func ProfileByName(name string) (EncryptionConfig, error) {
	cfg, ok := profileNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return EncryptionConfig{}, newError(InvalidArg, fmt.Sprintf(msgUnknownProfileFmt, name), nil)
	}
	return *cfg, nil
}

// IsZero reports whether c is the zero value.
func (c EncryptionConfig) IsZero() bool {
	return c == EncryptionConfig{}
}

// orDefault resolves the zero value to the legacy profile.
func (c EncryptionConfig) orDefault() EncryptionConfig {
	if c.IsZero() {
		return LegacyEncryptConfig
	}
	return c
}

// Validate rejects zero iteration counts, a zero salt length, and unknown
// algorithms or digests.
func (c EncryptionConfig) Validate() error {
	if err := c.encodeOptions().Validate(); err != nil {
		return newError(InvalidArg, msgInvalidConfig, err)
	}
	return nil
}

func (c EncryptionConfig) encodeOptions() pkcs12.EncodeOptions {
	return pkcs12.EncodeOptions{
		CertAlgorithm:       c.CertificateAlgorithm,
		KeyAlgorithm:        c.PrivateKeyAlgorithm,
		EncryptCertificates: c.EncryptCertificates,
		MACDigest:           c.MACDigest,
		Iterations:          c.Iterations,
		MACIterations:       c.MACIterations,
		SaltLength:          c.SaltLength,
	}
}

// ParseAlgorithm resolves an algorithm name or alias such as "rc2-40".
func ParseAlgorithm(s string) (Algorithm, error) {
	a, err := pkcs12.ParseAlgorithm(s)
	if err != nil {
		return 0, newError(InvalidArg, msgInvalidConfig, err)
	}
	return a, nil
}

// ParseDigest resolves a MAC digest name such as "sha256".
func ParseDigest(s string) (Digest, error) {
	d, err := pkcs12.ParseDigest(s)
	if err != nil {
		return 0, newError(InvalidArg, msgInvalidConfig, err)
	}
	return d, nil
}

// Algorithms lists the supported bag encryption algorithms.
func Algorithms() []Algorithm { return pkcs12.Algorithms() }

// Digests lists the supported MAC digests, weakest first.
func Digests() []Digest { return pkcs12.Digests() }
