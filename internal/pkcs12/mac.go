package pkcs12

import (
	"crypto/hmac"
	"fmt"
)

// computeMAC returns the HMAC over authSafe keyed with material from the
// PKCS#12 KDF (ID 3). The KDF and HMAC both use d, as OpenSSL does for every
// digest including the SHA-2 family.
func computeMAC(d Digest, pw secret, salt []byte, iterations int, authSafe []byte) ([]byte, error) {
	info, ok := digests[d]
	if !ok {
		return nil, fmt.Errorf("%w: MAC digest %v", ErrUnsupportedAlgorithm, d)
	}
	key := deriveKey(info.hash, kdfIDMAC, pw.bmp, salt, iterations, info.hash().Size())
	mac := hmac.New(info.hash, key)
	mac.Write(authSafe)
	return mac.Sum(nil), nil
}

// verifyMAC recomputes the MAC and compares it in constant time.
func verifyMAC(m *MacData, pw secret, authSafe []byte) error {
	if !m.Digest.Valid() {
		return fmt.Errorf("%w: MAC digest %v", ErrUnsupportedAlgorithm, m.DigestOID)
	}
	expected, err := computeMAC(m.Digest, pw, m.Salt, m.Iterations, authSafe)
	if err != nil {
		return err
	}
	if !hmac.Equal(expected, m.Value) {
		return ErrIncorrectPassword
	}
	return nil
}
