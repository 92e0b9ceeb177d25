package pkcs12

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/crypto/pbkdf2"
)

// pbeParams is the parameter block of the legacy PKCS#12 PBE schemes.
type pbeParams struct {
	Salt       []byte
	Iterations int
}

type pbes2Params struct {
	KeyDerivationFunc pkix.AlgorithmIdentifier
	EncryptionScheme  pkix.AlgorithmIdentifier
}

type pbkdf2Params struct {
	Salt       []byte
	Iterations int
	KeyLength  int                      `asn1:"optional"`
	PRF        pkix.AlgorithmIdentifier `asn1:"optional"`
}

// encryptParams carries the per-call inputs of a bag encryption.
type encryptParams struct {
	algorithm  Algorithm
	iterations int
	saltLen    int
	rand       io.Reader
}

// encrypt pads and encrypts plaintext under p.algorithm with a fresh salt
// (and, for PBES2, a fresh IV). The returned AlgorithmIdentifier is all a
// decoder needs besides the password.
func encrypt(p encryptParams, pw secret, plaintext []byte) (pkix.AlgorithmIdentifier, []byte, error) {
	info, ok := algorithms[p.algorithm]
	if !ok {
		return pkix.AlgorithmIdentifier{}, nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, p.algorithm)
	}
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(p.rand, salt); err != nil {
		return pkix.AlgorithmIdentifier{}, nil, fmt.Errorf("generating salt: %w", err)
	}

	var (
		algID pkix.AlgorithmIdentifier
		key   []byte
		iv    []byte
	)
	switch info.kdf {
	case KDFPKCS12:
		key = deriveKey(sha1.New, kdfIDKey, pw.bmp, salt, p.iterations, info.cipher.keyLen)
		iv = deriveKey(sha1.New, kdfIDIV, pw.bmp, salt, p.iterations, info.cipher.blockSize)
		params, err := asn1.Marshal(pbeParams{Salt: salt, Iterations: p.iterations})
		if err != nil {
			return pkix.AlgorithmIdentifier{}, nil, fmt.Errorf("marshaling PBE parameters: %w", err)
		}
		algID = pkix.AlgorithmIdentifier{Algorithm: info.oid, Parameters: asn1.RawValue{FullBytes: params}}
	case KDFPBKDF2:
		iv = make([]byte, info.cipher.blockSize)
		if _, err := io.ReadFull(p.rand, iv); err != nil {
			return pkix.AlgorithmIdentifier{}, nil, fmt.Errorf("generating IV: %w", err)
		}
		key = pbkdf2.Key(pw.raw, salt, p.iterations, info.cipher.keyLen, sha256.New)
		var err error
		algID, err = marshalPBES2(info.oid, salt, iv, p.iterations)
		if err != nil {
			return pkix.AlgorithmIdentifier{}, nil, err
		}
	default:
		return pkix.AlgorithmIdentifier{}, nil, fmt.Errorf("%w: key derivation %v", ErrUnsupportedAlgorithm, info.kdf)
	}

	block, err := info.cipher.newBlock(key)
	if err != nil {
		return pkix.AlgorithmIdentifier{}, nil, fmt.Errorf("creating %s cipher: %w", info.cipher.name, err)
	}
	ciphertext := pad(plaintext, block.BlockSize())
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, ciphertext)
	return algID, ciphertext, nil
}

func marshalPBES2(cipherOID asn1.ObjectIdentifier, salt, iv []byte, iterations int) (pkix.AlgorithmIdentifier, error) {
	kdfParams, err := asn1.Marshal(pbkdf2Params{
		Salt:       salt,
		Iterations: iterations,
		PRF:        pkix.AlgorithmIdentifier{Algorithm: oidHMACWithSHA256, Parameters: asn1.NullRawValue},
	})
	if err != nil {
		return pkix.AlgorithmIdentifier{}, fmt.Errorf("marshaling PBKDF2 parameters: %w", err)
	}
	ivBytes, err := asn1.Marshal(iv)
	if err != nil {
		return pkix.AlgorithmIdentifier{}, fmt.Errorf("marshaling IV: %w", err)
	}
	params, err := asn1.Marshal(pbes2Params{
		KeyDerivationFunc: pkix.AlgorithmIdentifier{Algorithm: oidPBKDF2, Parameters: asn1.RawValue{FullBytes: kdfParams}},
		EncryptionScheme:  pkix.AlgorithmIdentifier{Algorithm: cipherOID, Parameters: asn1.RawValue{FullBytes: ivBytes}},
	})
	if err != nil {
		return pkix.AlgorithmIdentifier{}, fmt.Errorf("marshaling PBES2 parameters: %w", err)
	}
	return pkix.AlgorithmIdentifier{Algorithm: oidPBES2, Parameters: asn1.RawValue{FullBytes: params}}, nil
}

// decrypt reverses encrypt. The scheme is chosen from algID alone.
func decrypt(algID pkix.AlgorithmIdentifier, pw secret, ciphertext []byte) ([]byte, error) {
	block, iv, err := blockFor(algID, pw)
	if err != nil {
		return nil, err
	}
	bs := block.BlockSize()
	if len(ciphertext) == 0 || len(ciphertext)%bs != 0 {
		return nil, ErrDecryption
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return unpad(plaintext, bs)
}

// blockFor derives the keyed block cipher and IV described by algID.
func blockFor(algID pkix.AlgorithmIdentifier, pw secret) (cipher.Block, []byte, error) {
	if algID.Algorithm.Equal(oidPBES2) {
		return pbes2BlockFor(algID.Parameters.FullBytes, pw)
	}

	alg, ok := legacyAlgorithmForOID(algID.Algorithm)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algID.Algorithm)
	}
	info := algorithms[alg]
	params, err := parsePBEParams(algID.Parameters.FullBytes)
	if err != nil {
		return nil, nil, err
	}
	key := deriveKey(sha1.New, kdfIDKey, pw.bmp, params.Salt, params.Iterations, info.cipher.keyLen)
	iv := deriveKey(sha1.New, kdfIDIV, pw.bmp, params.Salt, params.Iterations, info.cipher.blockSize)
	block, err := info.cipher.newBlock(key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: creating %s cipher: %v", ErrDecryption, info.cipher.name, err)
	}
	return block, iv, nil
}

func parsePBEParams(der []byte) (*pbeParams, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	var p pbeParams
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) ||
		!seq.ReadASN1Bytes(&p.Salt, cryptobyte_asn1.OCTET_STRING) ||
		!seq.ReadASN1Integer(&p.Iterations) {
		return nil, fmt.Errorf("%w: malformed PBE parameters", ErrParse)
	}
	if p.Iterations < 1 {
		return nil, fmt.Errorf("%w: PBE iteration count %d", ErrParse, p.Iterations)
	}
	return &p, nil
}

// pbes2Scheme is the decoded form of PBES2 parameters.
type pbes2Scheme struct {
	salt       []byte
	iterations int
	keyLen     int
	prf        func() hash.Hash
	cipherOID  asn1.ObjectIdentifier
	iv         []byte
}

func parsePBES2Params(der []byte) (*pbes2Scheme, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: malformed PBES2 parameters", ErrParse)
	}

	var kdf pkix.AlgorithmIdentifier
	if err := parseAlgorithmIdentifier(&seq, &kdf); err != nil {
		return nil, err
	}
	if !kdf.Algorithm.Equal(oidPBKDF2) {
		return nil, fmt.Errorf("%w: PBES2 key derivation %v", ErrUnsupportedAlgorithm, kdf.Algorithm)
	}

	scheme := &pbes2Scheme{prf: sha1.New}
	kdfInput := cryptobyte.String(kdf.Parameters.FullBytes)
	var kdfSeq cryptobyte.String
	if !kdfInput.ReadASN1(&kdfSeq, cryptobyte_asn1.SEQUENCE) ||
		!kdfSeq.ReadASN1Bytes(&scheme.salt, cryptobyte_asn1.OCTET_STRING) ||
		!kdfSeq.ReadASN1Integer(&scheme.iterations) {
		return nil, fmt.Errorf("%w: malformed PBKDF2 parameters", ErrParse)
	}
	if scheme.iterations < 1 {
		return nil, fmt.Errorf("%w: PBKDF2 iteration count %d", ErrParse, scheme.iterations)
	}
	if kdfSeq.PeekASN1Tag(cryptobyte_asn1.INTEGER) && !kdfSeq.ReadASN1Integer(&scheme.keyLen) {
		return nil, fmt.Errorf("%w: malformed PBKDF2 key length", ErrParse)
	}
	if !kdfSeq.Empty() {
		var prf pkix.AlgorithmIdentifier
		if err := parseAlgorithmIdentifier(&kdfSeq, &prf); err != nil {
			return nil, err
		}
		h, ok := prfHash(prf.Algorithm)
		if !ok {
			return nil, fmt.Errorf("%w: PBKDF2 PRF %v", ErrUnsupportedAlgorithm, prf.Algorithm)
		}
		scheme.prf = h
	}

	var enc pkix.AlgorithmIdentifier
	if err := parseAlgorithmIdentifier(&seq, &enc); err != nil {
		return nil, err
	}
	scheme.cipherOID = enc.Algorithm
	ivInput := cryptobyte.String(enc.Parameters.FullBytes)
	if !ivInput.ReadASN1Bytes(&scheme.iv, cryptobyte_asn1.OCTET_STRING) {
		return nil, fmt.Errorf("%w: malformed cipher IV", ErrParse)
	}
	return scheme, nil
}

func pbes2BlockFor(params []byte, pw secret) (cipher.Block, []byte, error) {
	scheme, err := parsePBES2Params(params)
	if err != nil {
		return nil, nil, err
	}

	var keyLen int
	switch {
	case scheme.cipherOID.Equal(oidAES128CBC):
		keyLen = 16
	case scheme.cipherOID.Equal(oidAES192CBC):
		keyLen = 24
	case scheme.cipherOID.Equal(oidAES256CBC):
		keyLen = 32
	default:
		return nil, nil, fmt.Errorf("%w: PBES2 cipher %v", ErrUnsupportedAlgorithm, scheme.cipherOID)
	}
	if scheme.keyLen != 0 && scheme.keyLen != keyLen {
		return nil, nil, fmt.Errorf("%w: PBKDF2 key length %d does not fit cipher", ErrParse, scheme.keyLen)
	}
	if len(scheme.iv) != aes.BlockSize {
		return nil, nil, fmt.Errorf("%w: IV length %d", ErrParse, len(scheme.iv))
	}

	key := pbkdf2.Key(pw.raw, scheme.salt, scheme.iterations, keyLen, scheme.prf)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: creating AES cipher: %v", ErrDecryption, err)
	}
	return block, scheme.iv, nil
}

func prfHash(oid asn1.ObjectIdentifier) (func() hash.Hash, bool) {
	switch {
	case oid.Equal(oidHMACWithSHA1):
		return sha1.New, true
	case oid.Equal(oidHMACWithSHA224):
		return sha256.New224, true
	case oid.Equal(oidHMACWithSHA256):
		return sha256.New, true
	case oid.Equal(oidHMACWithSHA384):
		return sha512.New384, true
	case oid.Equal(oidHMACWithSHA512):
		return sha512.New, true
	default:
		return nil, false
	}
}

// pad applies PKCS#7 padding and returns a fresh slice.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrDecryption
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrDecryption
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrDecryption
		}
	}
	return data[:len(data)-n], nil
}
