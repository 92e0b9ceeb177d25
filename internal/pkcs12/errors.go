package pkcs12

import "errors"

var (
	// ErrInvalidPFX reports that the outer PFX structure is malformed.
	ErrInvalidPFX = errors.New("pkcs12: invalid PFX structure")

	// ErrParse reports a malformed structure below the PFX level.
	ErrParse = errors.New("pkcs12: parse error")

	// ErrUnsupportedAlgorithm reports an encryption, KDF, or MAC algorithm
	// this package does not implement.
	ErrUnsupportedAlgorithm = errors.New("pkcs12: unsupported algorithm")

	// ErrIncorrectPassword reports a MAC mismatch: either the password is
	// wrong or the authenticated contents were altered.
	ErrIncorrectPassword = errors.New("pkcs12: MAC verification failed")

	// ErrDecryption reports a cipher-level failure. Bad padding and a bad
	// ciphertext length both map here.
	ErrDecryption = errors.New("pkcs12: decryption failed")
)
