package pfxkit

import (
	"fmt"
	"strings"
)

// Object selects what Extract returns from an archive.
type Object int

const (
	ObjectCertificate Object = iota + 1
	ObjectPrivateKey
	ObjectCAChain
)

var objectNames = map[Object]string{
	ObjectCertificate: "certificate",
	ObjectPrivateKey:  "private-key",
	ObjectCAChain:     "ca-chain",
}

var objectAliases = map[string]Object{
	"cert":       ObjectCertificate,
	"privatekey": ObjectPrivateKey,
	"key":        ObjectPrivateKey,
	"cachain":    ObjectCAChain,
	"chain":      ObjectCAChain,
}

func (o Object) String() string {
	if name, ok := objectNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Object(%d)", int(o))
}

// Valid reports whether o names an extractable object.
func (o Object) Valid() bool {
	_, ok := objectNames[o]
	return ok
}

// Objects returns every extractable object.
func Objects() []Object {
	return []Object{ObjectCertificate, ObjectPrivateKey, ObjectCAChain}
}

// ParseObject resolves an object name such as "certificate", "private-key",
// or "ca-chain". Short forms like "key" and "chain" are accepted.
func ParseObject(s string) (Object, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for o, name := range objectNames {
		if name == lower {
			return o, nil
		}
	}
	if o, ok := objectAliases[lower]; ok {
		return o, nil
	}
	return 0, newError(InvalidArg, msgInvalidObject, fmt.Errorf("unknown object %q", s))
}

// Set implements pflag.Value.
func (o *Object) Set(s string) error {
	v, err := ParseObject(s)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Type implements pflag.Value.
func (o *Object) Type() string { return "object" }
