package pfxkit

import (
	"errors"
	"fmt"

	"github.com/sensiblebit/pfxkit/internal/pkcs12"
)

// Code classifies every error returned by Build and Extract.
type Code int

const (
	// GenericFailure covers internal assembly or serialization failures.
	GenericFailure Code = iota
	// InvalidArg reports unusable caller input: PEM, base64, selector, or config.
	InvalidArg
	// AuthError reports an integrity MAC mismatch, usually a wrong password.
	AuthError
	// DecryptError reports a cipher or padding failure.
	DecryptError
	// ParseError reports a malformed archive or an unsupported algorithm in it.
	ParseError
)

func (c Code) String() string {
	switch c {
	case InvalidArg:
		return "InvalidArg"
	case AuthError:
		return "AuthError"
	case DecryptError:
		return "DecryptError"
	case ParseError:
		return "ParseError"
	default:
		return "GenericFailure"
	}
}

// Stable error messages. Callers may match on these.
const (
	msgParseCertificate   = "Failed to parse certificate"
	msgParsePrivateKey    = "Failed to parse private key"
	msgParseChainFormat   = "Failed to parse caChainPem[%d]"
	msgKeyMismatch        = "Private key does not match certificate"
	msgIncorrectPassword  = "Invalid password or corrupted archive"
	msgDecrypt            = "Failed to decrypt archive contents"
	msgParsePFX           = "Failed to parse pfx"
	msgUnsupportedAlg     = "Unsupported encryption algorithm"
	msgInvalidBase64      = "Invalid base64 input"
	msgBuildPFX           = "Failed to build pfx"
	msgInvalidConfig      = "Invalid encryption config"
	msgInvalidObject      = "Invalid object selector"
	msgDecodePEM          = "Failed to decode PEM"
	msgNoCertificate      = "Archive contains no certificate"
	msgNoPrivateKey       = "Archive contains no private key"
	msgUnknownProfileFmt  = "Unknown encryption profile %q"
	msgEncodeKeystore     = "Failed to encode keystore"
	msgDecodeKeystore     = "Failed to decode keystore"
	msgKeystoreNoKeyEntry = "Keystore contains no private key entry"
)

// Error is the typed error returned across the package boundary. Error()
// yields Message unchanged; the engine cause, if any, is reachable through
// errors.Unwrap.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same Code, so errors.Is(err, ErrAuth)
// holds for every authentication failure regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// Sentinels for errors.Is matching by code.
var (
	ErrInvalidArg = &Error{Code: InvalidArg}
	ErrAuth       = &Error{Code: AuthError}
	ErrDecrypt    = &Error{Code: DecryptError}
	ErrParse      = &Error{Code: ParseError}
	ErrGeneric    = &Error{Code: GenericFailure}
)

func newError(code Code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

func chainError(i int, err error) *Error {
	return newError(InvalidArg, fmt.Sprintf(msgParseChainFormat, i), err)
}

// classifyEngineError maps an engine sentinel to its public code and
// message. Unrecognized errors are structural.
func classifyEngineError(err error) *Error {
	switch {
	case errors.Is(err, pkcs12.ErrIncorrectPassword):
		return newError(AuthError, msgIncorrectPassword, err)
	case errors.Is(err, pkcs12.ErrDecryption):
		return newError(DecryptError, msgDecrypt, err)
	case errors.Is(err, pkcs12.ErrUnsupportedAlgorithm):
		return newError(ParseError, msgUnsupportedAlg, err)
	default:
		return newError(ParseError, msgParsePFX, err)
	}
}
