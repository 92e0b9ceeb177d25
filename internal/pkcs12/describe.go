package pkcs12

import (
	"crypto/x509/pkix"
	"fmt"
)

// Info is a password-free structural summary of an archive.
type Info struct {
	Version  int              `json:"version"`
	MAC      *MACInfo         `json:"mac,omitempty"`
	Contents []ContentSummary `json:"contents"`
}

// MACInfo describes the integrity MAC parameters.
type MACInfo struct {
	Digest     string `json:"digest"`
	Iterations int    `json:"iterations"`
	SaltLength int    `json:"salt_length"`
}

// ContentSummary describes one ContentInfo of the AuthenticatedSafe. Bags is
// only populated for plaintext contents.
type ContentSummary struct {
	Encrypted  bool           `json:"encrypted"`
	Encryption *AlgorithmInfo `json:"encryption,omitempty"`
	Bags       []BagSummary   `json:"bags,omitempty"`
}

// BagSummary describes a bag visible without the password.
type BagSummary struct {
	Kind         string         `json:"kind"`
	FriendlyName string         `json:"friendly_name,omitempty"`
	LocalKeyID   []byte         `json:"local_key_id,omitempty"`
	Encryption   *AlgorithmInfo `json:"encryption,omitempty"`
}

// AlgorithmInfo names a bag encryption scheme and its parameters.
type AlgorithmInfo struct {
	Name          string `json:"name"`
	OID           string `json:"oid"`
	KeyDerivation string `json:"key_derivation,omitempty"`
	Cipher        string `json:"cipher,omitempty"`
	Iterations    int    `json:"iterations,omitempty"`
	SaltLength    int    `json:"salt_length,omitempty"`
}

// Describe summarizes the structure of a DER archive without decrypting it:
// the MAC parameters, the encryption of each ContentInfo, and the bags of
// every plaintext ContentInfo.
func Describe(der []byte) (*Info, error) {
	pfx, err := ParsePFX(der)
	if err != nil {
		return nil, err
	}
	info := &Info{Version: pfx.Version}
	if m := pfx.MacData; m != nil {
		digest := m.DigestOID.String()
		if m.Digest.Valid() {
			digest = m.Digest.String()
		}
		info.MAC = &MACInfo{Digest: digest, Iterations: m.Iterations, SaltLength: len(m.Salt)}
	}

	infos, err := parseAuthenticatedSafe(pfx.RawAuthSafe)
	if err != nil {
		return nil, err
	}
	for i, ci := range infos {
		switch {
		case ci.contentType.Equal(oidDataContentType):
			safeContents, err := octetString(ci.content)
			if err != nil {
				return nil, fmt.Errorf("content %d: %w", i, err)
			}
			bags, err := describeBags(safeContents, 0)
			if err != nil {
				return nil, fmt.Errorf("content %d: %w", i, err)
			}
			info.Contents = append(info.Contents, ContentSummary{Bags: bags})
		case ci.contentType.Equal(oidEncryptedDataContentType):
			ed, err := parseEncryptedData(ci.content)
			if err != nil {
				return nil, fmt.Errorf("content %d: %w", i, err)
			}
			alg := describeAlgorithm(ed.algorithm)
			info.Contents = append(info.Contents, ContentSummary{Encrypted: true, Encryption: &alg})
		default:
			return nil, fmt.Errorf("%w: content %d has type %v", ErrUnsupportedAlgorithm, i, ci.contentType)
		}
	}
	return info, nil
}

func describeBags(der []byte, depth int) ([]BagSummary, error) {
	if depth > maxSafeContentsDepth {
		return nil, fmt.Errorf("%w: SafeContents nested deeper than %d", ErrParse, maxSafeContentsDepth)
	}
	raw, err := parseSafeContents(der)
	if err != nil {
		return nil, err
	}
	var out []BagSummary
	for _, rb := range raw {
		kind, ok := bagKindForOID(rb.id)
		if !ok {
			return nil, fmt.Errorf("%w: unknown bag type %v", ErrParse, rb.id)
		}
		name, keyID, err := rb.attributeValues()
		if err != nil {
			return nil, err
		}
		summary := BagSummary{Kind: kind.String(), FriendlyName: name, LocalKeyID: keyID}
		switch kind {
		case ShroudedKeyBag:
			algID, _, err := parseEncryptedPrivateKeyInfo(rb.value)
			if err != nil {
				return nil, err
			}
			alg := describeAlgorithm(algID)
			summary.Encryption = &alg
		case SafeContentsBag:
			nested, err := describeBags(rb.value, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
			continue
		case KeyBag, CertBag, CRLBag, SecretBag:
		}
		out = append(out, summary)
	}
	return out, nil
}

// describeAlgorithm names algID. Unrecognized schemes are reported by OID
// rather than rejected.
func describeAlgorithm(algID pkix.AlgorithmIdentifier) AlgorithmInfo {
	info := AlgorithmInfo{Name: algID.Algorithm.String(), OID: algID.Algorithm.String()}

	if algID.Algorithm.Equal(oidPBES2) {
		info.Name = "PBES2"
		info.KeyDerivation = "PBKDF2"
		scheme, err := parsePBES2Params(algID.Parameters.FullBytes)
		if err != nil {
			return info
		}
		info.Iterations = scheme.iterations
		info.SaltLength = len(scheme.salt)
		switch {
		case scheme.cipherOID.Equal(oidAES128CBC):
			info.Name, info.Cipher = "AES128CBC", "AES-128-CBC"
		case scheme.cipherOID.Equal(oidAES192CBC):
			info.Name, info.Cipher = "AES192CBC", "AES-192-CBC"
		case scheme.cipherOID.Equal(oidAES256CBC):
			info.Name, info.Cipher = AES256CBC.String(), AES256CBC.Cipher()
		default:
			info.Cipher = scheme.cipherOID.String()
		}
		return info
	}

	alg, ok := legacyAlgorithmForOID(algID.Algorithm)
	if !ok {
		return info
	}
	info.Name = alg.String()
	info.KeyDerivation = alg.KeyDerivation().String()
	info.Cipher = alg.Cipher()
	if params, err := parsePBEParams(algID.Parameters.FullBytes); err == nil {
		info.Iterations = params.Iterations
		info.SaltLength = len(params.Salt)
	}
	return info
}
