package pfxkit

import (
	"crypto/x509"
	"encoding/hex"

	"github.com/sensiblebit/pfxkit/internal/pkcs12"
)

// Structure is the password-free summary of an archive: MAC parameters and
// the protection of each ContentInfo.
type Structure = pkcs12.Info

// Inspection describes an archive. Bags is filled only when the password
// opened it.
type Inspection struct {
	Structure *Structure `json:"structure"`
	Bags      []BagDetail `json:"bags,omitempty"`
}

// BagDetail describes one decrypted SafeBag.
type BagDetail struct {
	Kind         string `json:"kind"`
	FriendlyName string `json:"friendly_name,omitempty"`
	LocalKeyID   string `json:"local_key_id,omitempty"`
	Encryption   string `json:"encryption,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Issuer       string `json:"issuer,omitempty"`
	Role         string `json:"role,omitempty"`
	Fingerprint  string `json:"sha256_fingerprint,omitempty"`
	KeyAlgorithm string `json:"key_algorithm,omitempty"`
}

// Inspect summarizes an archive without a password.
func Inspect(der []byte) (*Inspection, error) {
	info, err := pkcs12.Describe(der)
	if err != nil {
		return nil, classifyEngineError(err)
	}
	return &Inspection{Structure: info}, nil
}

// InspectWithPassword summarizes an archive and lists its decrypted bags
// in stored order.
func InspectWithPassword(der []byte, password string) (*Inspection, error) {
	ins, err := Inspect(der)
	if err != nil {
		return nil, err
	}
	bags, err := pkcs12.Walk(der, password)
	if err != nil {
		return nil, classifyEngineError(err)
	}
	for _, b := range bags {
		ins.Bags = append(ins.Bags, describeBag(b))
	}
	return ins, nil
}

func describeBag(b pkcs12.SafeBag) BagDetail {
	d := BagDetail{
		Kind:         b.Kind.String(),
		FriendlyName: b.FriendlyName,
		Encryption:   b.Algorithm,
	}
	if len(b.LocalKeyID) > 0 {
		d.LocalKeyID = hex.EncodeToString(b.LocalKeyID)
	}
	switch b.Kind {
	case pkcs12.CertBag:
		if cert, err := x509.ParseCertificate(b.Value); err == nil {
			d.Subject = cert.Subject.String()
			d.Issuer = cert.Issuer.String()
			d.Role = CertificateRole(cert)
			d.Fingerprint = CertFingerprint(cert)
		}
	case pkcs12.KeyBag, pkcs12.ShroudedKeyBag:
		if key, err := ParsePrivateKey(b.Value); err == nil {
			d.KeyAlgorithm = key.Algorithm()
		}
	case pkcs12.CRLBag, pkcs12.SecretBag, pkcs12.SafeContentsBag:
	}
	return d
}
