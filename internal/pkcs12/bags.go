package pkcs12

import (
	"encoding/asn1"
	"fmt"
)

// BagKind identifies the type of a SafeBag.
type BagKind int

// SafeBag types defined by RFC 7292 section 4.2.
const (
	KeyBag BagKind = iota + 1
	ShroudedKeyBag
	CertBag
	CRLBag
	SecretBag
	SafeContentsBag
)

func (k BagKind) String() string {
	switch k {
	case KeyBag:
		return "keyBag"
	case ShroudedKeyBag:
		return "pkcs8ShroudedKeyBag"
	case CertBag:
		return "certBag"
	case CRLBag:
		return "crlBag"
	case SecretBag:
		return "secretBag"
	case SafeContentsBag:
		return "safeContentsBag"
	default:
		return fmt.Sprintf("BagKind(%d)", int(k))
	}
}

func (k BagKind) oid() asn1.ObjectIdentifier {
	switch k {
	case KeyBag:
		return oidKeyBag
	case ShroudedKeyBag:
		return oidPKCS8ShroudedKeyBag
	case CertBag:
		return oidCertBag
	case CRLBag:
		return oidCRLBag
	case SecretBag:
		return oidSecretBag
	case SafeContentsBag:
		return oidSafeContentsBag
	default:
		return nil
	}
}

func bagKindForOID(oid asn1.ObjectIdentifier) (BagKind, bool) {
	for _, k := range []BagKind{KeyBag, ShroudedKeyBag, CertBag, CRLBag, SecretBag, SafeContentsBag} {
		if k.oid().Equal(oid) {
			return k, true
		}
	}
	return 0, false
}

// SafeBag is a decoded bag as found in an archive.
//
// For CertBag, Value is the DER certificate. For KeyBag and ShroudedKeyBag it
// is the PKCS#8 PrivateKeyInfo, already decrypted in the shrouded case. CRL
// and secret bags carry their raw bag value. SafeContentsBag entries are
// flattened by Walk and never appear in its output.
type SafeBag struct {
	Kind         BagKind
	Value        []byte
	FriendlyName string
	LocalKeyID   []byte
	// Algorithm is the scheme that protected this bag: the shrouding
	// algorithm for a ShroudedKeyBag, otherwise the EncryptedData algorithm
	// of the enclosing ContentInfo. It is empty for unencrypted bags.
	Algorithm string
}
