package pkcs12

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"fmt"
	"io"
)

// Contents is the logical payload of an archive: one end-entity certificate,
// its PKCS#8 private key, and an ordered CA chain. All values are DER.
type Contents struct {
	Certificate []byte
	PrivateKey  []byte
	CAChain     [][]byte
	// FriendlyName is attached to the leaf certificate and key bags. Empty
	// omits the attribute.
	FriendlyName string
	// LocalKeyID links the leaf certificate bag to the key bag. Encode
	// uses the SHA-1 of Certificate when empty.
	LocalKeyID []byte
}

// EncodeOptions selects the algorithms and parameters of an archive.
type EncodeOptions struct {
	CertAlgorithm Algorithm
	KeyAlgorithm  Algorithm
	// EncryptCertificates wraps the certificate SafeContents in EncryptedData
	// under CertAlgorithm. When false the certificates are stored in a plain
	// Data ContentInfo and CertAlgorithm is ignored.
	EncryptCertificates bool
	MACDigest           Digest
	Iterations          int
	MACIterations       int
	SaltLength          int
	// Rand supplies salts and IVs. Nil means crypto/rand.Reader.
	Rand io.Reader
}

// Validate checks that every option is usable.
func (o EncodeOptions) Validate() error {
	var errs []error
	if o.EncryptCertificates && !o.CertAlgorithm.Valid() {
		errs = append(errs, fmt.Errorf("certificate algorithm %v", o.CertAlgorithm))
	}
	if !o.KeyAlgorithm.Valid() {
		errs = append(errs, fmt.Errorf("key algorithm %v", o.KeyAlgorithm))
	}
	if !o.MACDigest.Valid() {
		errs = append(errs, fmt.Errorf("MAC digest %v", o.MACDigest))
	}
	if o.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iteration count %d", o.Iterations))
	}
	if o.MACIterations < 1 {
		errs = append(errs, fmt.Errorf("MAC iteration count %d", o.MACIterations))
	}
	if o.SaltLength < 1 {
		errs = append(errs, fmt.Errorf("salt length %d", o.SaltLength))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrUnsupportedAlgorithm, errors.Join(errs...))
	}
	return nil
}

// Encode builds a DER PFX from c. The AuthenticatedSafe holds the
// certificate SafeContents (leaf first, then the chain in order) followed by
// a Data ContentInfo with the shrouded key, and the MAC covers it under
// opts.MACDigest. Every call draws fresh salts, so two encodings of the same
// input differ byte for byte.
func Encode(c *Contents, password string, opts EncodeOptions) ([]byte, error) {
	if c == nil || len(c.Certificate) == 0 {
		return nil, errors.New("pkcs12: no certificate to encode")
	}
	if len(c.PrivateKey) == 0 {
		return nil, errors.New("pkcs12: no private key to encode")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Rand == nil {
		opts.Rand = rand.Reader
	}
	pw, err := newSecret(password)
	if err != nil {
		return nil, err
	}

	localKeyID := c.LocalKeyID
	if len(localKeyID) == 0 {
		sum := sha1.Sum(c.Certificate)
		localKeyID = sum[:]
	}
	leafAttrs, err := bagAttributes(c.FriendlyName, localKeyID)
	if err != nil {
		return nil, err
	}

	certsCI, err := encodeCertificates(c, leafAttrs, pw, opts)
	if err != nil {
		return nil, err
	}
	keyCI, err := encodeKey(c.PrivateKey, leafAttrs, pw, opts)
	if err != nil {
		return nil, err
	}

	authSafe, err := asn1.Marshal([]wireContentInfo{certsCI, keyCI})
	if err != nil {
		return nil, fmt.Errorf("marshaling AuthenticatedSafe: %w", err)
	}
	authSafeCI, err := dataContentInfo(authSafe)
	if err != nil {
		return nil, err
	}

	macSalt := make([]byte, opts.SaltLength)
	if _, err := io.ReadFull(opts.Rand, macSalt); err != nil {
		return nil, fmt.Errorf("generating MAC salt: %w", err)
	}
	mac, err := computeMAC(opts.MACDigest, pw, macSalt, opts.MACIterations, authSafe)
	if err != nil {
		return nil, err
	}

	pfx, err := asn1.Marshal(wirePFX{
		Version:  3,
		AuthSafe: authSafeCI,
		MacData: wireMacData{
			Mac: wireDigestInfo{
				Algorithm: pkix.AlgorithmIdentifier{Algorithm: digests[opts.MACDigest].oid, Parameters: asn1.NullRawValue},
				Digest:    mac,
			},
			MacSalt:    macSalt,
			Iterations: opts.MACIterations,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling PFX: %w", err)
	}
	return pfx, nil
}

func encodeCertificates(c *Contents, leafAttrs []wireAttribute, pw secret, opts EncodeOptions) (wireContentInfo, error) {
	bags := make([]wireSafeBag, 0, 1+len(c.CAChain))
	leaf, err := certSafeBag(c.Certificate, leafAttrs)
	if err != nil {
		return wireContentInfo{}, err
	}
	bags = append(bags, leaf)
	for i, der := range c.CAChain {
		bag, err := certSafeBag(der, nil)
		if err != nil {
			return wireContentInfo{}, fmt.Errorf("chain certificate %d: %w", i, err)
		}
		bags = append(bags, bag)
	}

	safeContents, err := asn1.Marshal(bags)
	if err != nil {
		return wireContentInfo{}, fmt.Errorf("marshaling certificate SafeContents: %w", err)
	}
	if !opts.EncryptCertificates {
		return dataContentInfo(safeContents)
	}

	algID, ciphertext, err := encrypt(encryptParams{
		algorithm:  opts.CertAlgorithm,
		iterations: opts.Iterations,
		saltLen:    opts.SaltLength,
		rand:       opts.Rand,
	}, pw, safeContents)
	if err != nil {
		return wireContentInfo{}, fmt.Errorf("encrypting certificates: %w", err)
	}
	return encryptedContentInfo(algID, ciphertext)
}

func encodeKey(pkcs8 []byte, attrs []wireAttribute, pw secret, opts EncodeOptions) (wireContentInfo, error) {
	algID, ciphertext, err := encrypt(encryptParams{
		algorithm:  opts.KeyAlgorithm,
		iterations: opts.Iterations,
		saltLen:    opts.SaltLength,
		rand:       opts.Rand,
	}, pw, pkcs8)
	if err != nil {
		return wireContentInfo{}, fmt.Errorf("shrouding private key: %w", err)
	}
	bag, err := shroudedKeySafeBag(algID, ciphertext, attrs)
	if err != nil {
		return wireContentInfo{}, err
	}
	safeContents, err := asn1.Marshal([]wireSafeBag{bag})
	if err != nil {
		return wireContentInfo{}, fmt.Errorf("marshaling key SafeContents: %w", err)
	}
	return dataContentInfo(safeContents)
}
