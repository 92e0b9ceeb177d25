package pkcs12

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/asn1"
	"fmt"
	"hash"
	"strings"

	"github.com/dgryski/go-rc2"
)

// Algorithm identifies a password-based encryption scheme for bag contents.
type Algorithm int

// Supported bag encryption algorithms. The four legacy schemes derive key
// and IV with the PKCS#12 KDF over SHA-1; AES256CBC uses PBES2 with
// PBKDF2-HMAC-SHA256.
const (
	PBEWithSHA1And3KeyTripleDESCBC Algorithm = iota + 1
	PBEWithSHA1And2KeyTripleDESCBC
	PBEWithSHA1And128BitRC2CBC
	PBEWithSHA1And40BitRC2CBC
	AES256CBC
)

// KeyDerivation names the function that turns a password into key material.
type KeyDerivation int

const (
	// KDFPKCS12 is the RFC 7292 appendix B derivation with SHA-1.
	KDFPKCS12 KeyDerivation = iota + 1
	// KDFPBKDF2 is PBKDF2 (RFC 8018) with HMAC-SHA256.
	KDFPBKDF2
)

func (k KeyDerivation) String() string {
	switch k {
	case KDFPKCS12:
		return "PKCS12-KDF-SHA1"
	case KDFPBKDF2:
		return "PBKDF2-HMAC-SHA256"
	default:
		return fmt.Sprintf("KeyDerivation(%d)", int(k))
	}
}

// blockCipher describes how an Algorithm keys its block cipher.
type blockCipher struct {
	name      string
	keyLen    int
	blockSize int
	newBlock  func(key []byte) (cipher.Block, error)
}

type algorithmInfo struct {
	name   string
	oid    asn1.ObjectIdentifier
	kdf    KeyDerivation
	cipher blockCipher
}

var algorithms = map[Algorithm]algorithmInfo{
	PBEWithSHA1And3KeyTripleDESCBC: {
		name:   "PBEWithSHA1And3KeyTripleDesCBC",
		oid:    oidPBEWithSHAAnd3KeyTripleDESCBC,
		kdf:    KDFPKCS12,
		cipher: blockCipher{name: "DES-EDE3-CBC", keyLen: 24, blockSize: des.BlockSize, newBlock: des.NewTripleDESCipher},
	},
	PBEWithSHA1And2KeyTripleDESCBC: {
		name:   "PBEWithSHA1And2KeyTripleDesCBC",
		oid:    oidPBEWithSHAAnd2KeyTripleDESCBC,
		kdf:    KDFPKCS12,
		cipher: blockCipher{name: "DES-EDE-CBC", keyLen: 16, blockSize: des.BlockSize, newBlock: newTwoKeyTripleDES},
	},
	PBEWithSHA1And128BitRC2CBC: {
		name:   "PBEWithSHA1And128BitRC2CBC",
		oid:    oidPBEWithSHAAnd128BitRC2CBC,
		kdf:    KDFPKCS12,
		cipher: blockCipher{name: "RC2-128-CBC", keyLen: 16, blockSize: 8, newBlock: newRC2},
	},
	PBEWithSHA1And40BitRC2CBC: {
		name:   "PBEWithSHA1And40BitRC2CBC",
		oid:    oidPBEWithSHAAnd40BitRC2CBC,
		kdf:    KDFPKCS12,
		cipher: blockCipher{name: "RC2-40-CBC", keyLen: 5, blockSize: 8, newBlock: newRC2},
	},
	AES256CBC: {
		name:   "AES256CBC",
		oid:    oidAES256CBC,
		kdf:    KDFPBKDF2,
		cipher: blockCipher{name: "AES-256-CBC", keyLen: 32, blockSize: aes.BlockSize, newBlock: aes.NewCipher},
	},
}

// newTwoKeyTripleDES expands a 16-byte K1||K2 key to K1||K2||K1.
func newTwoKeyTripleDES(key []byte) (cipher.Block, error) {
	k := make([]byte, 0, 24)
	k = append(k, key[:16]...)
	k = append(k, key[:8]...)
	return des.NewTripleDESCipher(k)
}

// newRC2 keys RC2 with an effective key length equal to the key size.
func newRC2(key []byte) (cipher.Block, error) {
	return rc2.New(key, len(key)*8)
}

// String returns the algorithm name used in configuration files and flags.
func (a Algorithm) String() string {
	if info, ok := algorithms[a]; ok {
		return info.name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := algorithms[a]
	return ok
}

// KeyDerivation returns the key-derivation scheme a implies.
func (a Algorithm) KeyDerivation() KeyDerivation {
	return algorithms[a].kdf
}

// Cipher returns the name of the block cipher a encrypts with.
func (a Algorithm) Cipher() string {
	return algorithms[a].cipher.name
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{
		PBEWithSHA1And3KeyTripleDESCBC,
		PBEWithSHA1And2KeyTripleDESCBC,
		PBEWithSHA1And128BitRC2CBC,
		PBEWithSHA1And40BitRC2CBC,
		AES256CBC,
	}
}

var algorithmAliases = map[string]Algorithm{
	"3des":    PBEWithSHA1And3KeyTripleDESCBC,
	"2des":    PBEWithSHA1And2KeyTripleDESCBC,
	"rc2-128": PBEWithSHA1And128BitRC2CBC,
	"rc2-40":  PBEWithSHA1And40BitRC2CBC,
	"aes256":  AES256CBC,
	"aes-256": AES256CBC,
}

// ParseAlgorithm resolves a name (case-insensitive) or short alias such as
// "rc2-40", "3des", or "aes256".
func ParseAlgorithm(s string) (Algorithm, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	if a, ok := algorithmAliases[lower]; ok {
		return a, nil
	}
	for _, a := range Algorithms() {
		if strings.ToLower(a.String()) == lower {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown encryption algorithm %q", ErrUnsupportedAlgorithm, s)
}

// legacyAlgorithmForOID maps a legacy PBE OID back to its Algorithm. PBES2 is
// resolved separately because its cipher lives in the parameters.
func legacyAlgorithmForOID(oid asn1.ObjectIdentifier) (Algorithm, bool) {
	for a, info := range algorithms {
		if info.kdf == KDFPKCS12 && info.oid.Equal(oid) {
			return a, true
		}
	}
	return 0, false
}

// Digest identifies the hash used for the integrity MAC.
type Digest int

// Supported MAC digests.
const (
	SHA1 Digest = iota + 1
	SHA256
	SHA384
	SHA512
)

type digestInfo struct {
	name string
	oid  asn1.ObjectIdentifier
	hash func() hash.Hash
}

var digests = map[Digest]digestInfo{
	SHA1:   {name: "SHA1", oid: oidSHA1, hash: sha1.New},
	SHA256: {name: "SHA256", oid: oidSHA256, hash: sha256.New},
	SHA384: {name: "SHA384", oid: oidSHA384, hash: sha512.New384},
	SHA512: {name: "SHA512", oid: oidSHA512, hash: sha512.New},
}

func (d Digest) String() string {
	if info, ok := digests[d]; ok {
		return info.name
	}
	return fmt.Sprintf("Digest(%d)", int(d))
}

// Valid reports whether d is one of the supported digests.
func (d Digest) Valid() bool {
	_, ok := digests[d]
	return ok
}

// Digests returns every supported digest, weakest first.
func Digests() []Digest {
	return []Digest{SHA1, SHA256, SHA384, SHA512}
}

// ParseDigest resolves a digest name such as "sha256" or "SHA-256".
func ParseDigest(s string) (Digest, error) {
	norm := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "")
	for _, d := range Digests() {
		if d.String() == norm {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown MAC digest %q", ErrUnsupportedAlgorithm, s)
}

func digestForOID(oid asn1.ObjectIdentifier) (Digest, bool) {
	for d, info := range digests {
		if info.oid.Equal(oid) {
			return d, true
		}
	}
	return 0, false
}
