package main

import (
	"github.com/sensiblebit/pfxkit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// algorithmValue adapts a pfxkit.Algorithm to pflag.Value.
type algorithmValue struct{ a *pfxkit.Algorithm }

func (v algorithmValue) String() string {
	if v.a == nil || *v.a == 0 {
		return ""
	}
	return v.a.String()
}

func (v algorithmValue) Set(s string) error {
	a, err := pfxkit.ParseAlgorithm(s)
	if err != nil {
		return err
	}
	*v.a = a
	return nil
}

func (algorithmValue) Type() string { return "algorithm" }

// digestValue adapts a pfxkit.Digest to pflag.Value.
type digestValue struct{ d *pfxkit.Digest }

func (v digestValue) String() string {
	if v.d == nil || *v.d == 0 {
		return ""
	}
	return v.d.String()
}

func (v digestValue) Set(s string) error {
	d, err := pfxkit.ParseDigest(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (digestValue) Type() string { return "digest" }

// encryptionFlags are the profile selection and per-field overrides shared
// by commands that write archives.
type encryptionFlags struct {
	profile       string
	certAlgorithm pfxkit.Algorithm
	keyAlgorithm  pfxkit.Algorithm
	macDigest     pfxkit.Digest
	iterations    int
	macIterations int
	saltLength    int
	plainCerts    bool
}

func addEncryptionFlags(cmd *cobra.Command, ef *encryptionFlags) {
	fs := cmd.Flags()
	fs.StringVar(&ef.profile, "profile", "legacy", "Encryption profile: legacy (v1), modern (v3), or a name from --config")
	fs.Var(algorithmValue{&ef.certAlgorithm}, "cert-alg", "Certificate bag encryption algorithm (overrides the profile)")
	fs.Var(algorithmValue{&ef.keyAlgorithm}, "key-alg", "Private key encryption algorithm (overrides the profile)")
	fs.Var(digestValue{&ef.macDigest}, "mac", "MAC digest: sha1, sha256, sha384, sha512 (overrides the profile)")
	fs.IntVar(&ef.iterations, "iter", 0, "Key derivation iterations (overrides the profile)")
	fs.IntVar(&ef.macIterations, "mac-iter", 0, "MAC iterations (overrides the profile)")
	fs.IntVar(&ef.saltLength, "salt-len", 0, "Salt length in bytes (overrides the profile)")
	fs.BoolVar(&ef.plainCerts, "plain-certs", false, "Store certificates unencrypted")

	registerCompletion(cmd, completionInput{"profile", fixedCompletion(pfxkit.ProfileNames()...)})
	registerCompletion(cmd, completionInput{"cert-alg", stringerCompletion(pfxkit.Algorithms())})
	registerCompletion(cmd, completionInput{"key-alg", stringerCompletion(pfxkit.Algorithms())})
	registerCompletion(cmd, completionInput{"mac", stringerCompletion(pfxkit.Digests())})
}

// resolve starts from the named profile and applies every flag the user set.
func (ef *encryptionFlags) resolve(fs *pflag.FlagSet) (pfxkit.EncryptionConfig, error) {
	profiles, err := loadProfiles()
	if err != nil {
		return pfxkit.EncryptionConfig{}, err
	}
	cfg, err := profiles.Lookup(ef.profile)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("cert-alg") {
		cfg.CertificateAlgorithm = ef.certAlgorithm
	}
	if fs.Changed("key-alg") {
		cfg.PrivateKeyAlgorithm = ef.keyAlgorithm
	}
	if fs.Changed("mac") {
		cfg.MACDigest = ef.macDigest
	}
	if fs.Changed("iter") {
		cfg.Iterations = ef.iterations
	}
	if fs.Changed("mac-iter") {
		cfg.MACIterations = ef.macIterations
	}
	if fs.Changed("salt-len") {
		cfg.SaltLength = ef.saltLength
	}
	if fs.Changed("plain-certs") {
		cfg.EncryptCertificates = !ef.plainCerts
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
