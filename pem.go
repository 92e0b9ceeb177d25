package pfxkit

import (
	"encoding/pem"
	"fmt"
	"strings"
)

// PEM block labels.
const (
	LabelCertificate = "CERTIFICATE"
	LabelPrivateKey  = "PRIVATE KEY"
)

// DecodePEM strips the armor from the first PEM block in text and returns
// its DER body. A non-empty label must match the block type.
func DecodePEM(text string, label string) ([]byte, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, newError(ParseError, msgDecodePEM, fmt.Errorf("no PEM block found"))
	}
	if label != "" && block.Type != label {
		return nil, newError(ParseError, msgDecodePEM, fmt.Errorf("expected %s PEM block, got %q", label, block.Type))
	}
	return block.Bytes, nil
}

// EncodePEM armors der with 64-column base64 lines and LF line endings.
func EncodePEM(der []byte, label string) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: label, Bytes: der}))
}

// NormalizePEM converts CRLF and CR line endings to LF and guarantees a
// trailing newline on non-empty text.
func NormalizePEM(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}
