package pkcs12

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"
)

// DER serialization structures. Decoding goes through the cryptobyte parser
// in parse.go; these types exist only for asn1.Marshal.

type wirePFX struct {
	Version  int
	AuthSafe wireContentInfo
	MacData  wireMacData `asn1:"optional"`
}

type wireContentInfo struct {
	ContentType asn1.ObjectIdentifier
	Content     asn1.RawValue `asn1:"tag:0,explicit,optional"`
}

type wireEncryptedData struct {
	Version              int
	EncryptedContentInfo wireEncryptedContentInfo
}

type wireEncryptedContentInfo struct {
	ContentType                asn1.ObjectIdentifier
	ContentEncryptionAlgorithm pkix.AlgorithmIdentifier
	EncryptedContent           []byte `asn1:"tag:0,optional"`
}

type wireSafeBag struct {
	ID         asn1.ObjectIdentifier
	Value      asn1.RawValue   `asn1:"tag:0,explicit"`
	Attributes []wireAttribute `asn1:"set,optional"`
}

type wireAttribute struct {
	ID    asn1.ObjectIdentifier
	Value asn1.RawValue `asn1:"set"`
}

type wireCertBag struct {
	ID   asn1.ObjectIdentifier
	Data []byte `asn1:"tag:0,explicit"`
}

type wireEncryptedPrivateKeyInfo struct {
	Algorithm     pkix.AlgorithmIdentifier
	EncryptedData []byte
}

type wireMacData struct {
	Mac        wireDigestInfo
	MacSalt    []byte
	Iterations int `asn1:"optional,default:1"`
}

type wireDigestInfo struct {
	Algorithm pkix.AlgorithmIdentifier
	Digest    []byte
}

// explicit wraps DER in a [0] EXPLICIT context tag.
func explicit(der []byte) asn1.RawValue {
	return asn1.RawValue{Class: asn1.ClassContextSpecific, Tag: 0, IsCompound: true, Bytes: der}
}

// dataContentInfo wraps content in a Data ContentInfo.
func dataContentInfo(content []byte) (wireContentInfo, error) {
	octets, err := asn1.Marshal(content)
	if err != nil {
		return wireContentInfo{}, fmt.Errorf("marshaling Data content: %w", err)
	}
	return wireContentInfo{ContentType: oidDataContentType, Content: explicit(octets)}, nil
}

// encryptedContentInfo wraps ciphertext in an EncryptedData ContentInfo.
func encryptedContentInfo(algID pkix.AlgorithmIdentifier, ciphertext []byte) (wireContentInfo, error) {
	der, err := asn1.Marshal(wireEncryptedData{
		Version: 0,
		EncryptedContentInfo: wireEncryptedContentInfo{
			ContentType:                oidDataContentType,
			ContentEncryptionAlgorithm: algID,
			EncryptedContent:           ciphertext,
		},
	})
	if err != nil {
		return wireContentInfo{}, fmt.Errorf("marshaling EncryptedData: %w", err)
	}
	return wireContentInfo{ContentType: oidEncryptedDataContentType, Content: explicit(der)}, nil
}

// bagAttributes builds the friendlyName and localKeyId attributes. Empty
// inputs are omitted.
func bagAttributes(friendlyName string, localKeyID []byte) ([]wireAttribute, error) {
	var attrs []wireAttribute
	if friendlyName != "" {
		bmp, err := bmpString(friendlyName)
		if err != nil {
			return nil, err
		}
		value, err := asn1.Marshal(asn1.RawValue{Class: asn1.ClassUniversal, Tag: asn1.TagBMPString, Bytes: bmp})
		if err != nil {
			return nil, fmt.Errorf("marshaling friendlyName: %w", err)
		}
		attrs = append(attrs, wireAttribute{ID: oidFriendlyName, Value: setOf(value)})
	}
	if len(localKeyID) > 0 {
		value, err := asn1.Marshal(localKeyID)
		if err != nil {
			return nil, fmt.Errorf("marshaling localKeyId: %w", err)
		}
		attrs = append(attrs, wireAttribute{ID: oidLocalKeyID, Value: setOf(value)})
	}
	return attrs, nil
}

func setOf(der []byte) asn1.RawValue {
	return asn1.RawValue{Class: asn1.ClassUniversal, Tag: asn1.TagSet, IsCompound: true, Bytes: der}
}

// certSafeBag builds a CertBag SafeBag around a DER certificate.
func certSafeBag(cert []byte, attrs []wireAttribute) (wireSafeBag, error) {
	der, err := asn1.Marshal(wireCertBag{ID: oidCertTypeX509Certificate, Data: cert})
	if err != nil {
		return wireSafeBag{}, fmt.Errorf("marshaling CertBag: %w", err)
	}
	return wireSafeBag{ID: oidCertBag, Value: explicit(der), Attributes: attrs}, nil
}

// shroudedKeySafeBag builds a PKCS8ShroudedKeyBag SafeBag.
func shroudedKeySafeBag(algID pkix.AlgorithmIdentifier, ciphertext []byte, attrs []wireAttribute) (wireSafeBag, error) {
	der, err := asn1.Marshal(wireEncryptedPrivateKeyInfo{Algorithm: algID, EncryptedData: ciphertext})
	if err != nil {
		return wireSafeBag{}, fmt.Errorf("marshaling EncryptedPrivateKeyInfo: %w", err)
	}
	return wireSafeBag{ID: oidPKCS8ShroudedKeyBag, Value: explicit(der), Attributes: attrs}, nil
}
