package pfxkit

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/ssh"
)

// Certificate is a parsed X.509 certificate. X509.Raw holds the exact DER
// it was parsed from.
type Certificate struct {
	X509 *x509.Certificate
}

// DER returns the certificate encoding.
func (c *Certificate) DER() []byte { return c.X509.Raw }

// PEM returns the certificate as a CERTIFICATE PEM block.
func (c *Certificate) PEM() string { return CertToPEM(c.X509) }

// PrivateKey is a private key together with its PKCS#8 encoding. Key is nil
// for algorithms Go cannot load, such as DSA or RSA-PSS; those keys are
// carried as their PKCS#8 bytes only. It never renders its material through
// fmt or slog.
type PrivateKey struct {
	Key   crypto.PrivateKey
	pkcs8 []byte
}

// PKCS8 returns the PKCS#8 DER encoding of the key.
func (k *PrivateKey) PKCS8() []byte { return k.pkcs8 }

// PEM returns the key as a PKCS#8 "PRIVATE KEY" block.
func (k *PrivateKey) PEM() string { return EncodePEM(k.pkcs8, LabelPrivateKey) }

// Opaque reports whether the key is carried without a parsed Key.
func (k *PrivateKey) Opaque() bool { return k.Key == nil }

// Algorithm names the key algorithm. Opaque keys are named from their PKCS#8
// AlgorithmIdentifier.
func (k *PrivateKey) Algorithm() string {
	if k.Key != nil {
		return KeyAlgorithmName(k.Key)
	}
	info, err := parsePKCS8Info(k.pkcs8)
	if err != nil {
		return "unknown"
	}
	if name, ok := keyAlgorithmNames[info.Algorithm.Algorithm.String()]; ok {
		return name
	}
	return info.Algorithm.Algorithm.String()
}

func (k *PrivateKey) String() string {
	return "PrivateKey(" + k.Algorithm() + ")"
}

// LogValue implements slog.LogValuer.
func (k *PrivateKey) LogValue() slog.Value {
	return slog.StringValue(k.String())
}

// ParseCertificate parses a DER certificate.
func ParseCertificate(der []byte) (*Certificate, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, newError(InvalidArg, msgParseCertificate, err)
	}
	return &Certificate{X509: cert}, nil
}

// ParseChain parses DER certificates in order. The first failure at index i
// is reported as caChainPem[i].
func ParseChain(ders [][]byte) ([]*Certificate, error) {
	chain := make([]*Certificate, 0, len(ders))
	for i, der := range ders {
		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, chainError(i, err)
		}
		chain = append(chain, &Certificate{X509: cert})
	}
	return chain, nil
}

// ParsePrivateKey parses a PKCS#8, PKCS#1, or SEC 1 EC DER private key.
// PKCS#8 input is kept byte for byte. A well-formed PKCS#8 key whose
// algorithm Go cannot load is returned opaque.
func ParsePrivateKey(der []byte) (*PrivateKey, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return &PrivateKey{Key: normalizeKey(key), pkcs8: bytes.Clone(der)}, nil
	}
	if info, err := parsePKCS8Info(der); err == nil && !goLoadableKeyAlgorithm(info.Algorithm.Algorithm) {
		slog.Debug("carrying private key opaquely", "algorithm", info.Algorithm.Algorithm.String())
		return &PrivateKey{pkcs8: bytes.Clone(der)}, nil
	}
	key, err := parsePrivateKeyDER(der)
	if err != nil {
		return nil, newError(InvalidArg, msgParsePrivateKey, err)
	}
	return NewPrivateKey(key)
}

// PrivateKeyFromPEM parses the first PEM private key in pemData. PKCS#8
// blocks go through ParsePrivateKey, so unloadable algorithms stay opaque.
func PrivateKeyFromPEM(pemData []byte) (*PrivateKey, error) {
	if block, _ := pem.Decode(pemData); block != nil && block.Type == LabelPrivateKey {
		return ParsePrivateKey(block.Bytes)
	}
	raw, err := ParsePEMPrivateKey(pemData)
	if err != nil {
		return nil, newError(InvalidArg, msgParsePrivateKey, err)
	}
	return NewPrivateKey(raw)
}

// pkcs8Info is the outer PrivateKeyInfo. Trailing attributes and the
// OneAsymmetricKey public key are ignored.
type pkcs8Info struct {
	Version    int
	Algorithm  pkix.AlgorithmIdentifier
	PrivateKey []byte
}

func parsePKCS8Info(der []byte) (*pkcs8Info, error) {
	var info pkcs8Info
	rest, err := asn1.Unmarshal(der, &info)
	if err != nil {
		return nil, fmt.Errorf("parsing PrivateKeyInfo: %w", err)
	}
	if len(rest) > 0 {
		return nil, errors.New("trailing data after PrivateKeyInfo")
	}
	if info.Version != 0 && info.Version != 1 {
		return nil, fmt.Errorf("unsupported PrivateKeyInfo version %d", info.Version)
	}
	if len(info.PrivateKey) == 0 {
		return nil, errors.New("empty PrivateKeyInfo privateKey")
	}
	return &info, nil
}

var (
	oidKeyRSA     = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 1}
	oidKeyRSAPSS  = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}
	oidKeyECDSA   = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	oidKeyEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
	oidKeyX25519  = asn1.ObjectIdentifier{1, 3, 101, 110}
)

var keyAlgorithmNames = map[string]string{
	oidKeyRSA.String():     "RSA",
	oidKeyRSAPSS.String():  "RSA-PSS",
	oidKeyECDSA.String():   "ECDSA",
	oidKeyEd25519.String(): "Ed25519",
	oidKeyX25519.String():  "X25519",
	"1.3.101.111":          "X448",
	"1.3.101.113":          "Ed448",
	"1.2.840.10040.4.1":    "DSA",
	"1.2.840.10046.2.1":    "DH",
	"1.2.643.7.1.1.1.1":    "GOST R 34.10-2012",
	"1.2.156.10197.1.301":  "SM2",
}

// goLoadableKeyAlgorithm reports whether x509.ParsePKCS8PrivateKey handles
// oid. Failures for these are corrupt keys, not opaque ones.
func goLoadableKeyAlgorithm(oid asn1.ObjectIdentifier) bool {
	return oid.Equal(oidKeyRSA) || oid.Equal(oidKeyECDSA) || oid.Equal(oidKeyEd25519) || oid.Equal(oidKeyX25519)
}

// keyFamily maps RSA-PSS onto RSA, since an RSA-PSS key may sit under an
// rsaEncryption certificate.
func keyFamily(oid asn1.ObjectIdentifier) string {
	if oid.Equal(oidKeyRSAPSS) {
		return oidKeyRSA.String()
	}
	return oid.String()
}

// keyMatchesCertificate is KeyMatchesCert for PrivateKey. Opaque keys are
// compared by algorithm family against the certificate SubjectPublicKeyInfo.
func keyMatchesCertificate(k *PrivateKey, cert *x509.Certificate) (bool, error) {
	if k.Key != nil {
		return KeyMatchesCert(k.Key, cert)
	}
	info, err := parsePKCS8Info(k.pkcs8)
	if err != nil {
		return false, err
	}
	var spki struct {
		Algorithm pkix.AlgorithmIdentifier
		PublicKey asn1.BitString
	}
	if _, err := asn1.Unmarshal(cert.RawSubjectPublicKeyInfo, &spki); err != nil {
		return false, fmt.Errorf("parsing certificate public key info: %w", err)
	}
	slog.Debug("opaque private key checked by algorithm only", "algorithm", k.Algorithm())
	return keyFamily(info.Algorithm.Algorithm) == keyFamily(spki.Algorithm.Algorithm), nil
}

// NewPrivateKey wraps an already parsed key.
func NewPrivateKey(key crypto.PrivateKey) (*PrivateKey, error) {
	key = normalizeKey(key)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, newError(InvalidArg, msgParsePrivateKey, fmt.Errorf("marshaling private key to PKCS#8: %w", err))
	}
	return &PrivateKey{Key: key, pkcs8: der}, nil
}

func parsePrivateKeyDER(der []byte) (crypto.PrivateKey, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	return nil, errors.New("not PKCS#8, PKCS#1, or SEC 1 DER")
}

// normalizeKey dereferences *ed25519.PrivateKey, which ssh.ParseRawPrivateKey
// returns, so type switches only need the value form.
func normalizeKey(key crypto.PrivateKey) crypto.PrivateKey {
	if ptr, ok := key.(*ed25519.PrivateKey); ok {
		return *ptr
	}
	return key
}

// ParsePEMCertificates parses every CERTIFICATE block in pemData, skipping
// other block types.
func ParsePEMCertificates(pemData []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate
	rest := pemData
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != LabelCertificate {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parsing certificate: %w", err)
		}
		certs = append(certs, cert)
	}
	if len(certs) == 0 {
		return nil, errors.New("no certificates found in PEM data")
	}
	return certs, nil
}

// ParsePEMCertificate parses the first certificate in PEM data.
func ParsePEMCertificate(pemData []byte) (*x509.Certificate, error) {
	certs, err := ParsePEMCertificates(pemData)
	if err != nil {
		return nil, err
	}
	return certs[0], nil
}

// ParsePEMPrivateKey parses a PEM private key: PKCS#1 ("RSA PRIVATE KEY"),
// SEC 1 ("EC PRIVATE KEY"), PKCS#8 ("PRIVATE KEY"), or unencrypted OpenSSH.
// PKCS#8 blocks that actually hold PKCS#1 or SEC 1 are tolerated.
func ParsePEMPrivateKey(pemData []byte) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("no PEM block found in private key data")
	}

	switch block.Type {
	case "RSA PRIVATE KEY":
		return x509.ParsePKCS1PrivateKey(block.Bytes)
	case "EC PRIVATE KEY":
		return x509.ParseECPrivateKey(block.Bytes)
	case LabelPrivateKey:
		key, err := parsePrivateKeyDER(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parsing PRIVATE KEY block: %w", err)
		}
		return key, nil
	case "OPENSSH PRIVATE KEY":
		key, err := ssh.ParseRawPrivateKey(pemData)
		if err != nil {
			return nil, fmt.Errorf("parsing OpenSSH private key: %w", err)
		}
		return normalizeKey(key), nil
	default:
		return nil, fmt.Errorf("unsupported PEM block type %q", block.Type)
	}
}

// ParsePEMPrivateKeyWithPassphrase parses an OpenSSH private key protected by
// a passphrase. Unencrypted keys of any supported type are also accepted.
func ParsePEMPrivateKeyWithPassphrase(pemData []byte, passphrase string) (crypto.PrivateKey, error) {
	key, err := ParsePEMPrivateKey(pemData)
	if err == nil {
		return key, nil
	}
	var missing *ssh.PassphraseMissingError
	if !errors.As(err, &missing) {
		return nil, err
	}
	key, err = ssh.ParseRawPrivateKeyWithPassphrase(pemData, []byte(passphrase))
	if err != nil {
		return nil, fmt.Errorf("parsing OpenSSH private key with passphrase: %w", err)
	}
	return normalizeKey(key), nil
}

// CertToPEM encodes a certificate as PEM.
func CertToPEM(cert *x509.Certificate) string {
	return EncodePEM(cert.Raw, LabelCertificate)
}

// MarshalPrivateKeyToPEM marshals an RSA, ECDSA, or Ed25519 key to PKCS#8 PEM.
func MarshalPrivateKeyToPEM(key crypto.PrivateKey) (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(normalizeKey(key))
	if err != nil {
		return "", fmt.Errorf("marshaling private key to PKCS#8: %w", err)
	}
	return EncodePEM(der, LabelPrivateKey), nil
}

// KeyMatchesCert reports whether a private key corresponds to the public key
// in a certificate. Cross-type pairs report false.
func KeyMatchesCert(priv crypto.PrivateKey, cert *x509.Certificate) (bool, error) {
	signer, ok := normalizeKey(priv).(crypto.Signer)
	if !ok {
		return false, fmt.Errorf("unsupported private key type: %T", priv)
	}
	eq, ok := signer.Public().(interface{ Equal(crypto.PublicKey) bool })
	if !ok {
		return false, fmt.Errorf("unsupported public key type: %T", signer.Public())
	}
	return eq.Equal(cert.PublicKey), nil
}

// KeyAlgorithmName returns a human-readable name for a private key's algorithm.
func KeyAlgorithmName(key crypto.PrivateKey) string {
	switch key.(type) {
	case *ecdsa.PrivateKey:
		return "ECDSA"
	case *rsa.PrivateKey:
		return "RSA"
	case ed25519.PrivateKey, *ed25519.PrivateKey:
		return "Ed25519"
	default:
		return "unknown"
	}
}

// CertificateRole reports whether a certificate is a root, an intermediate,
// or a leaf, judged from basic constraints and self-issuance alone.
func CertificateRole(cert *x509.Certificate) string {
	if cert.IsCA {
		if bytes.Equal(cert.RawIssuer, cert.RawSubject) {
			return "root"
		}
		return "intermediate"
	}
	return "leaf"
}

// CertFingerprint returns the SHA-256 fingerprint of a certificate as a lowercase hex string.
func CertFingerprint(cert *x509.Certificate) string {
	hash := sha256.Sum256(cert.Raw)
	return hex.EncodeToString(hash[:])
}

// ColonHex formats a byte slice as colon-separated lowercase hex.
func ColonHex(b []byte) string {
	h := hex.EncodeToString(b)
	parts := make([]string, 0, len(h)/2)
	for i := 0; i < len(h); i += 2 {
		end := min(i+2, len(h))
		parts = append(parts, h[i:end])
	}
	return strings.Join(parts, ":")
}
