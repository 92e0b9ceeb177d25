package pkcs12

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// PFX is the outer structure of an archive (RFC 7292 section 4).
type PFX struct {
	Version int
	MacData *MacData
	// RawAuthSafe is the content octets of the authSafe Data ContentInfo:
	// the DER AuthenticatedSafe that the MAC covers.
	RawAuthSafe []byte
}

// MacData holds the integrity MAC parameters of a PFX.
type MacData struct {
	// DigestOID is the digest algorithm as encoded. Digest is zero when the
	// OID is not one of the supported digests.
	DigestOID  asn1.ObjectIdentifier
	Digest     Digest
	Value      []byte
	Salt       []byte
	Iterations int
}

// contentInfo is a PKCS#7 ContentInfo with its [0] EXPLICIT wrapper removed.
type contentInfo struct {
	contentType asn1.ObjectIdentifier
	content     []byte
}

// encryptedData is the EncryptedContentInfo of an EncryptedData ContentInfo.
type encryptedData struct {
	algorithm  pkix.AlgorithmIdentifier
	ciphertext []byte
}

// rawSafeBag is a SafeBag before its value is interpreted.
type rawSafeBag struct {
	id         asn1.ObjectIdentifier
	value      []byte
	attributes []rawAttribute
}

type rawAttribute struct {
	id     asn1.ObjectIdentifier
	values [][]byte
}

// ParsePFX parses the outer PFX of a DER archive without a password. It
// rejects BER indefinite lengths, trailing data, versions other than 3, and
// an authSafe that is not a Data ContentInfo.
func ParsePFX(der []byte) (*PFX, error) {
	if len(der) < 2 {
		return nil, fmt.Errorf("%w: input too short (%d bytes)", ErrInvalidPFX, len(der))
	}
	if der[0] != 0x30 {
		return nil, fmt.Errorf("%w: expected SEQUENCE, got tag 0x%02x", ErrInvalidPFX, der[0])
	}
	if der[1] == 0x80 {
		return nil, fmt.Errorf("%w: BER indefinite-length encoding is not supported", ErrInvalidPFX)
	}

	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: malformed PFX SEQUENCE", ErrInvalidPFX)
	}
	if !input.Empty() {
		return nil, fmt.Errorf("%w: %d bytes of trailing data", ErrInvalidPFX, len(input))
	}

	var pfx PFX
	if !seq.ReadASN1Integer(&pfx.Version) {
		return nil, fmt.Errorf("%w: malformed version", ErrInvalidPFX)
	}
	if pfx.Version != 3 {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidPFX, pfx.Version)
	}

	authSafe, err := parseContentInfo(&seq)
	if err != nil {
		return nil, fmt.Errorf("%w: authSafe: %v", ErrInvalidPFX, err)
	}
	if !authSafe.contentType.Equal(oidDataContentType) {
		return nil, fmt.Errorf("%w: authSafe content type %v (public-key integrity mode)", ErrInvalidPFX, authSafe.contentType)
	}
	if pfx.RawAuthSafe, err = octetString(authSafe.content); err != nil {
		return nil, fmt.Errorf("%w: authSafe content: %v", ErrInvalidPFX, err)
	}

	if !seq.Empty() {
		if pfx.MacData, err = parseMacData(&seq); err != nil {
			return nil, fmt.Errorf("%w: macData: %v", ErrInvalidPFX, err)
		}
	}
	if !seq.Empty() {
		return nil, fmt.Errorf("%w: unexpected data after macData", ErrInvalidPFX)
	}
	return &pfx, nil
}

func parseContentInfo(s *cryptobyte.String) (contentInfo, error) {
	var ci contentInfo
	var seq, content cryptobyte.String
	if !s.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return ci, fmt.Errorf("%w: malformed ContentInfo", ErrParse)
	}
	if !seq.ReadASN1ObjectIdentifier(&ci.contentType) {
		return ci, fmt.Errorf("%w: malformed contentType", ErrParse)
	}
	if !seq.ReadASN1(&content, cryptobyte_asn1.Tag(0).ContextSpecific().Constructed()) {
		return ci, fmt.Errorf("%w: missing [0] content", ErrParse)
	}
	ci.content = content
	return ci, nil
}

func parseMacData(s *cryptobyte.String) (*MacData, error) {
	var seq, digestSeq cryptobyte.String
	if !s.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) ||
		!seq.ReadASN1(&digestSeq, cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: malformed MacData", ErrParse)
	}

	var md MacData
	var alg pkix.AlgorithmIdentifier
	if err := parseAlgorithmIdentifier(&digestSeq, &alg); err != nil {
		return nil, err
	}
	md.DigestOID = alg.Algorithm
	md.Digest, _ = digestForOID(alg.Algorithm)
	if !digestSeq.ReadASN1Bytes(&md.Value, cryptobyte_asn1.OCTET_STRING) {
		return nil, fmt.Errorf("%w: malformed MAC digest", ErrParse)
	}
	if !seq.ReadASN1Bytes(&md.Salt, cryptobyte_asn1.OCTET_STRING) {
		return nil, fmt.Errorf("%w: malformed macSalt", ErrParse)
	}
	// iterations INTEGER DEFAULT 1
	md.Iterations = 1
	if !seq.Empty() && !seq.ReadASN1Integer(&md.Iterations) {
		return nil, fmt.Errorf("%w: malformed MAC iterations", ErrParse)
	}
	if md.Iterations < 1 {
		return nil, fmt.Errorf("%w: MAC iteration count %d", ErrParse, md.Iterations)
	}
	return &md, nil
}

// parseAuthenticatedSafe splits the MAC-covered octets into ContentInfos.
func parseAuthenticatedSafe(der []byte) ([]contentInfo, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: malformed AuthenticatedSafe", ErrParse)
	}
	var out []contentInfo
	for !seq.Empty() {
		ci, err := parseContentInfo(&seq)
		if err != nil {
			return nil, err
		}
		out = append(out, ci)
	}
	return out, nil
}

// parseEncryptedData reads EncryptedData ::= SEQUENCE { version,
// EncryptedContentInfo }. The [0] IMPLICIT encryptedContent is accepted in
// primitive form and in the constructed form some encoders emit.
func parseEncryptedData(der []byte) (*encryptedData, error) {
	input := cryptobyte.String(der)
	var seq, eci cryptobyte.String
	var version int
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) ||
		!seq.ReadASN1Integer(&version) ||
		!seq.ReadASN1(&eci, cryptobyte_asn1.SEQUENCE) {
		return nil, fmt.Errorf("%w: malformed EncryptedData", ErrParse)
	}
	if version != 0 {
		return nil, fmt.Errorf("%w: EncryptedData version %d", ErrParse, version)
	}

	var contentType asn1.ObjectIdentifier
	if !eci.ReadASN1ObjectIdentifier(&contentType) {
		return nil, fmt.Errorf("%w: malformed EncryptedContentInfo", ErrParse)
	}
	if !contentType.Equal(oidDataContentType) {
		return nil, fmt.Errorf("%w: encrypted content type %v", ErrParse, contentType)
	}

	var ed encryptedData
	if err := parseAlgorithmIdentifier(&eci, &ed.algorithm); err != nil {
		return nil, err
	}

	primitive := cryptobyte_asn1.Tag(0).ContextSpecific()
	constructed := primitive.Constructed()
	var content cryptobyte.String
	switch {
	case eci.PeekASN1Tag(primitive):
		if !eci.ReadASN1(&content, primitive) {
			return nil, fmt.Errorf("%w: malformed encryptedContent", ErrParse)
		}
		ed.ciphertext = content
	case eci.PeekASN1Tag(constructed):
		if !eci.ReadASN1(&content, constructed) {
			return nil, fmt.Errorf("%w: malformed encryptedContent", ErrParse)
		}
		for !content.Empty() {
			var chunk []byte
			if !content.ReadASN1Bytes(&chunk, cryptobyte_asn1.OCTET_STRING) {
				return nil, fmt.Errorf("%w: malformed encryptedContent segment", ErrParse)
			}
			ed.ciphertext = append(ed.ciphertext, chunk...)
		}
	default:
		return nil, fmt.Errorf("%w: EncryptedData without content", ErrParse)
	}
	return &ed, nil
}

// parseSafeContents reads SafeContents ::= SEQUENCE OF SafeBag.
func parseSafeContents(der []byte) ([]rawSafeBag, error) {
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: malformed SafeContents", ErrParse)
	}
	var bags []rawSafeBag
	for !seq.Empty() {
		bag, err := parseSafeBag(&seq)
		if err != nil {
			return nil, err
		}
		bags = append(bags, bag)
	}
	return bags, nil
}

func parseSafeBag(s *cryptobyte.String) (rawSafeBag, error) {
	var bag rawSafeBag
	var seq, value cryptobyte.String
	if !s.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return bag, fmt.Errorf("%w: malformed SafeBag", ErrParse)
	}
	if !seq.ReadASN1ObjectIdentifier(&bag.id) {
		return bag, fmt.Errorf("%w: malformed bagId", ErrParse)
	}
	if !seq.ReadASN1(&value, cryptobyte_asn1.Tag(0).ContextSpecific().Constructed()) {
		return bag, fmt.Errorf("%w: malformed bagValue", ErrParse)
	}
	bag.value = value

	if seq.Empty() {
		return bag, nil
	}
	var attrs cryptobyte.String
	if !seq.ReadASN1(&attrs, cryptobyte_asn1.SET) {
		return bag, fmt.Errorf("%w: malformed bagAttributes", ErrParse)
	}
	for !attrs.Empty() {
		attr, err := parseAttribute(&attrs)
		if err != nil {
			return bag, err
		}
		bag.attributes = append(bag.attributes, attr)
	}
	return bag, nil
}

func parseAttribute(s *cryptobyte.String) (rawAttribute, error) {
	var attr rawAttribute
	var seq, values cryptobyte.String
	if !s.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) ||
		!seq.ReadASN1ObjectIdentifier(&attr.id) ||
		!seq.ReadASN1(&values, cryptobyte_asn1.SET) {
		return attr, fmt.Errorf("%w: malformed bag attribute", ErrParse)
	}
	for !values.Empty() {
		var v cryptobyte.String
		var tag cryptobyte_asn1.Tag
		if !values.ReadAnyASN1Element(&v, &tag) {
			return attr, fmt.Errorf("%w: malformed attribute value", ErrParse)
		}
		attr.values = append(attr.values, v)
	}
	return attr, nil
}

// parseCertBag returns the DER certificate inside an x509 CertBag value.
func parseCertBag(der []byte) ([]byte, error) {
	input := cryptobyte.String(der)
	var seq, wrapped cryptobyte.String
	var certType asn1.ObjectIdentifier
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) ||
		!seq.ReadASN1ObjectIdentifier(&certType) {
		return nil, fmt.Errorf("%w: malformed CertBag", ErrParse)
	}
	if !certType.Equal(oidCertTypeX509Certificate) {
		return nil, fmt.Errorf("%w: certificate type %v", ErrUnsupportedAlgorithm, certType)
	}
	var cert []byte
	if !seq.ReadASN1(&wrapped, cryptobyte_asn1.Tag(0).ContextSpecific().Constructed()) ||
		!wrapped.ReadASN1Bytes(&cert, cryptobyte_asn1.OCTET_STRING) {
		return nil, fmt.Errorf("%w: malformed certValue", ErrParse)
	}
	return cert, nil
}

// parseEncryptedPrivateKeyInfo splits a shrouded key bag value into its
// algorithm and ciphertext.
func parseEncryptedPrivateKeyInfo(der []byte) (pkix.AlgorithmIdentifier, []byte, error) {
	var alg pkix.AlgorithmIdentifier
	input := cryptobyte.String(der)
	var seq cryptobyte.String
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return alg, nil, fmt.Errorf("%w: malformed EncryptedPrivateKeyInfo", ErrParse)
	}
	if err := parseAlgorithmIdentifier(&seq, &alg); err != nil {
		return alg, nil, err
	}
	var data []byte
	if !seq.ReadASN1Bytes(&data, cryptobyte_asn1.OCTET_STRING) {
		return alg, nil, fmt.Errorf("%w: malformed encryptedData", ErrParse)
	}
	return alg, data, nil
}

func parseAlgorithmIdentifier(s *cryptobyte.String, alg *pkix.AlgorithmIdentifier) error {
	var seq cryptobyte.String
	if !s.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) {
		return fmt.Errorf("%w: malformed AlgorithmIdentifier", ErrParse)
	}
	if !seq.ReadASN1ObjectIdentifier(&alg.Algorithm) {
		return fmt.Errorf("%w: malformed algorithm OID", ErrParse)
	}
	if !seq.Empty() {
		alg.Parameters = asn1.RawValue{FullBytes: []byte(seq)}
	}
	return nil
}

func octetString(der []byte) ([]byte, error) {
	input := cryptobyte.String(der)
	var out []byte
	if !input.ReadASN1Bytes(&out, cryptobyte_asn1.OCTET_STRING) || !input.Empty() {
		return nil, fmt.Errorf("%w: malformed OCTET STRING", ErrParse)
	}
	return out, nil
}

// attributeValues decodes the friendlyName and localKeyId attributes. Other
// attributes are ignored.
func (b rawSafeBag) attributeValues() (friendlyName string, localKeyID []byte, err error) {
	for _, attr := range b.attributes {
		if len(attr.values) == 0 {
			continue
		}
		switch {
		case attr.id.Equal(oidFriendlyName):
			input := cryptobyte.String(attr.values[0])
			var raw []byte
			if !input.ReadASN1Bytes(&raw, cryptobyte_asn1.Tag(30)) {
				return "", nil, fmt.Errorf("%w: friendlyName is not a BMPString", ErrParse)
			}
			if friendlyName, err = decodeBMPString(raw); err != nil {
				return "", nil, err
			}
		case attr.id.Equal(oidLocalKeyID):
			input := cryptobyte.String(attr.values[0])
			if !input.ReadASN1Bytes(&localKeyID, cryptobyte_asn1.OCTET_STRING) {
				return "", nil, fmt.Errorf("%w: localKeyId is not an OCTET STRING", ErrParse)
			}
		}
	}
	return friendlyName, localKeyID, nil
}
