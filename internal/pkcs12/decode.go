package pkcs12

import (
	"bytes"
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"
)

// maxSafeContentsDepth bounds SafeContentsBag nesting.
const maxSafeContentsDepth = 8

// Walk verifies the MAC of a DER archive, decrypts every ContentInfo, and
// returns all bags in stored order with nested SafeContents flattened.
//
// Archives without MacData are accepted; their bags are only as trustworthy
// as the transport that delivered them. With an empty password, a MAC that
// fails to verify is retried as the null password before giving up.
func Walk(der []byte, password string) ([]SafeBag, error) {
	pfx, err := ParsePFX(der)
	if err != nil {
		return nil, err
	}
	pw, err := newSecret(password)
	if err != nil {
		return nil, err
	}
	if pfx.MacData != nil {
		err := verifyMAC(pfx.MacData, pw, pfx.RawAuthSafe)
		if errors.Is(err, ErrIncorrectPassword) && password == "" {
			if verifyMAC(pfx.MacData, nullSecret, pfx.RawAuthSafe) == nil {
				pw, err = nullSecret, nil
			}
		}
		if err != nil {
			return nil, err
		}
	}

	infos, err := parseAuthenticatedSafe(pfx.RawAuthSafe)
	if err != nil {
		return nil, err
	}

	var out []SafeBag
	for i, ci := range infos {
		var (
			safeContents []byte
			algorithm    string
		)
		switch {
		case ci.contentType.Equal(oidDataContentType):
			if safeContents, err = octetString(ci.content); err != nil {
				return nil, fmt.Errorf("content %d: %w", i, err)
			}
		case ci.contentType.Equal(oidEncryptedDataContentType):
			ed, err := parseEncryptedData(ci.content)
			if err != nil {
				return nil, fmt.Errorf("content %d: %w", i, err)
			}
			if safeContents, err = decrypt(ed.algorithm, pw, ed.ciphertext); err != nil {
				return nil, fmt.Errorf("content %d: %w", i, err)
			}
			algorithm = describeAlgorithm(ed.algorithm).Name
		default:
			return nil, fmt.Errorf("%w: content %d has type %v", ErrUnsupportedAlgorithm, i, ci.contentType)
		}

		bags, err := walkSafeContents(safeContents, pw, algorithm, 0)
		if err != nil {
			return nil, fmt.Errorf("content %d: %w", i, err)
		}
		out = append(out, bags...)
	}
	return out, nil
}

func walkSafeContents(der []byte, pw secret, algorithm string, depth int) ([]SafeBag, error) {
	if depth > maxSafeContentsDepth {
		return nil, fmt.Errorf("%w: SafeContents nested deeper than %d", ErrParse, maxSafeContentsDepth)
	}
	raw, err := parseSafeContents(der)
	if err != nil {
		return nil, err
	}

	var out []SafeBag
	for _, rb := range raw {
		kind, ok := bagKindForOID(rb.id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown bag type %v", ErrParse, rb.id)
		}
		name, keyID, err := rb.attributeValues()
		if err != nil {
			return nil, err
		}
		bag := SafeBag{Kind: kind, FriendlyName: name, LocalKeyID: keyID, Algorithm: algorithm}

		switch kind {
		case CertBag:
			if bag.Value, err = parseCertBag(rb.value); err != nil {
				return nil, err
			}
		case KeyBag:
			bag.Value = rb.value
		case ShroudedKeyBag:
			algID, ciphertext, err := parseEncryptedPrivateKeyInfo(rb.value)
			if err != nil {
				return nil, err
			}
			if bag.Value, err = decrypt(algID, pw, ciphertext); err != nil {
				return nil, fmt.Errorf("private key: %w", err)
			}
			bag.Algorithm = describeAlgorithm(algID).Name
		case CRLBag, SecretBag:
			bag.Value = rb.value
		case SafeContentsBag:
			nested, err := walkSafeContents(rb.value, pw, algorithm, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
			continue
		}
		out = append(out, bag)
	}
	return out, nil
}

// Decode opens a DER archive and classifies its bags. The leaf is the
// certificate whose localKeyId matches the key's; failing that, the one
// whose public key matches; failing that, the first certificate. Every other
// certificate forms CAChain in stored order.
//
// A missing certificate or key is not an error: the corresponding field is
// left empty for the caller to judge.
func Decode(der []byte, password string) (*Contents, error) {
	bags, err := Walk(der, password)
	if err != nil {
		return nil, err
	}

	var (
		certs []SafeBag
		key   *SafeBag
	)
	for i := range bags {
		switch bags[i].Kind {
		case CertBag:
			certs = append(certs, bags[i])
		case KeyBag, ShroudedKeyBag:
			if key == nil {
				key = &bags[i]
			}
		case CRLBag, SecretBag, SafeContentsBag:
			// not part of Contents
		}
	}

	c := &Contents{}
	if key != nil {
		c.PrivateKey = key.Value
		c.LocalKeyID = key.LocalKeyID
		c.FriendlyName = key.FriendlyName
	}
	if len(certs) == 0 {
		return c, nil
	}

	leaf := leafIndex(certs, key)
	c.Certificate = certs[leaf].Value
	if c.FriendlyName == "" {
		c.FriendlyName = certs[leaf].FriendlyName
	}
	for i, cb := range certs {
		if i != leaf {
			c.CAChain = append(c.CAChain, cb.Value)
		}
	}
	return c, nil
}

func leafIndex(certs []SafeBag, key *SafeBag) int {
	if key == nil {
		return 0
	}
	if len(key.LocalKeyID) > 0 {
		for i, cb := range certs {
			if bytes.Equal(cb.LocalKeyID, key.LocalKeyID) {
				return i
			}
		}
	}
	priv, err := x509.ParsePKCS8PrivateKey(key.Value)
	if err != nil {
		return 0
	}
	signer, ok := priv.(crypto.Signer)
	if !ok {
		return 0
	}
	for i, cb := range certs {
		cert, err := x509.ParseCertificate(cb.Value)
		if err != nil {
			continue
		}
		if pub, ok := cert.PublicKey.(interface{ Equal(crypto.PublicKey) bool }); ok && pub.Equal(signer.Public()) {
			return i
		}
	}
	return 0
}
