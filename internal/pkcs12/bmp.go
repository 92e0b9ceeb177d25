package pkcs12

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var bmpEncoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// bmpString encodes s as big-endian UTF-16, the form PKCS#12 uses for
// BMPString attributes. Characters outside the BMP become surrogate pairs,
// matching OpenSSL.
func bmpString(s string) ([]byte, error) {
	b, err := bmpEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding BMPString: %w", err)
	}
	return b, nil
}

// bmpPassword encodes a password for the PKCS#12 KDF: BMPString followed by
// a two-byte NUL terminator. The empty password encodes to just the
// terminator.
func bmpPassword(password string) ([]byte, error) {
	b, err := bmpString(password)
	if err != nil {
		return nil, err
	}
	return append(b, 0, 0), nil
}

func decodeBMPString(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("%w: odd-length BMPString", ErrParse)
	}
	s, err := bmpEncoding.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: decoding BMPString: %v", ErrParse, err)
	}
	return string(s), nil
}

// secret is a password in the two encodings the schemes consume.
type secret struct {
	// raw is the UTF-8 password used by PBKDF2.
	raw []byte
	// bmp is the NUL-terminated BMPString used by the PKCS#12 KDF.
	bmp []byte
}

func newSecret(password string) (secret, error) {
	bmp, err := bmpPassword(password)
	if err != nil {
		return secret{}, err
	}
	return secret{raw: []byte(password), bmp: bmp}, nil
}

// nullSecret is the absent password some Windows exporters use: the
// PKCS#12 KDF then sees zero password bytes instead of a lone terminator.
var nullSecret = secret{}
