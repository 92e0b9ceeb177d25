package pfxkit

import (
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/smallstep/pkcs7"
)

// EncodePKCS7 creates a certs-only PKCS#7 (P7B) bundle, preserving order.
func EncodePKCS7(certs []*Certificate) ([]byte, error) {
	if len(certs) == 0 {
		return nil, errors.New("no certificates to encode")
	}
	var derBytes []byte
	for _, cert := range certs {
		derBytes = append(derBytes, cert.DER()...)
	}
	return pkcs7.DegenerateCertificate(derBytes)
}

// DecodePKCS7 returns the certificates of a DER PKCS#7 bundle.
func DecodePKCS7(derData []byte) ([]*Certificate, error) {
	p7, err := pkcs7.Parse(derData)
	if err != nil {
		return nil, fmt.Errorf("parsing PKCS#7: %w", err)
	}
	if len(p7.Certificates) == 0 {
		return nil, errors.New("PKCS#7 bundle contains no certificates")
	}
	certs := make([]*Certificate, 0, len(p7.Certificates))
	for _, c := range p7.Certificates {
		certs = append(certs, &Certificate{X509: c})
	}
	return certs, nil
}

// ParseCertificatesAny parses DER, then PEM (possibly several blocks), then
// PKCS#7. Chain inputs on the command line arrive in any of these forms.
func ParseCertificatesAny(data []byte) ([]*Certificate, error) {
	cert, derErr := x509.ParseCertificate(data)
	if derErr == nil {
		return []*Certificate{{X509: cert}}, nil
	}
	pemCerts, pemErr := ParsePEMCertificates(data)
	if pemErr == nil {
		certs := make([]*Certificate, 0, len(pemCerts))
		for _, c := range pemCerts {
			certs = append(certs, &Certificate{X509: c})
		}
		return certs, nil
	}
	certs, p7Err := DecodePKCS7(data)
	if p7Err == nil {
		return certs, nil
	}
	return nil, fmt.Errorf("not DER (%v) or PEM (%v) or PKCS#7 (%v)", derErr, pemErr, p7Err)
}
