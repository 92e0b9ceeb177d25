package pfxkit

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/pavlo-v-chernykh/keystore-go/v4"
)

// DefaultJKSAlias is the entry alias used when an archive has no friendlyName.
const DefaultJKSAlias = "server"

// EncodeJKS writes the archive as a Java KeyStore holding one private key
// entry. The entry chain is the leaf followed by CAChain. The alias is the
// archive friendlyName, or DefaultJKSAlias. The same password protects the
// store and the entry (standard Java convention).
func EncodeJKS(a *Archive, password string) ([]byte, error) {
	if a.Certificate == nil || a.PrivateKey == nil {
		return nil, newError(InvalidArg, msgEncodeKeystore, errors.New("keystore entry needs a certificate and a private key"))
	}

	chain := []keystore.Certificate{
		{Type: "X.509", Content: a.Certificate.DER()},
	}
	for _, ca := range a.CAChain {
		chain = append(chain, keystore.Certificate{Type: "X.509", Content: ca.DER()})
	}

	alias := a.FriendlyName
	if alias == "" {
		alias = DefaultJKSAlias
	}

	ks := keystore.New()
	if err := ks.SetPrivateKeyEntry(alias, keystore.PrivateKeyEntry{
		CreationTime:     time.Now(),
		PrivateKey:       a.PrivateKey.PKCS8(),
		CertificateChain: chain,
	}, []byte(password)); err != nil {
		return nil, newError(GenericFailure, msgEncodeKeystore, fmt.Errorf("setting JKS private key entry: %w", err))
	}

	var buf bytes.Buffer
	if err := ks.Store(&buf, []byte(password)); err != nil {
		return nil, newError(GenericFailure, msgEncodeKeystore, fmt.Errorf("storing JKS: %w", err))
	}
	return buf.Bytes(), nil
}

// DecodeJKS loads a Java KeyStore and returns its first private key entry
// (aliases sorted) as an Archive: the first chain certificate is the leaf,
// the rest form CAChain, and the alias becomes FriendlyName.
func DecodeJKS(data []byte, password string) (*Archive, error) {
	ks := keystore.New()
	if err := ks.Load(bytes.NewReader(data), []byte(password)); err != nil {
		return nil, newError(AuthError, msgDecodeKeystore, fmt.Errorf("loading JKS: %w", err))
	}

	for _, alias := range ks.Aliases() {
		if !ks.IsPrivateKeyEntry(alias) {
			continue
		}
		entry, err := ks.GetPrivateKeyEntry(alias, []byte(password))
		if err != nil {
			return nil, newError(AuthError, msgDecodeKeystore, fmt.Errorf("reading entry %q: %w", alias, err))
		}
		if len(entry.CertificateChain) == 0 {
			continue
		}

		key, err := ParsePrivateKey(entry.PrivateKey)
		if err != nil {
			return nil, newError(ParseError, msgDecodeKeystore, err)
		}
		ders := make([][]byte, 0, len(entry.CertificateChain))
		for _, c := range entry.CertificateChain {
			ders = append(ders, c.Content)
		}
		certs, err := ParseChain(ders)
		if err != nil {
			return nil, newError(ParseError, msgDecodeKeystore, err)
		}
		return &Archive{
			Certificate:  certs[0],
			PrivateKey:   key,
			CAChain:      certs[1:],
			FriendlyName: alias,
		}, nil
	}
	return nil, newError(ParseError, msgKeystoreNoKeyEntry, nil)
}
