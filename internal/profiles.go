package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/sensiblebit/pfxkit"
	"gopkg.in/yaml.v3"
)

// ProfileConfig is one named encryption profile in the YAML file. Unset
// fields inherit from Base, a built-in profile name.
type ProfileConfig struct {
	Name                 string `yaml:"name"`
	Base                 string `yaml:"base,omitempty"`
	CertificateAlgorithm string `yaml:"certificateAlgorithm,omitempty"`
	PrivateKeyAlgorithm  string `yaml:"privateKeyAlgorithm,omitempty"`
	MACDigest            string `yaml:"macDigest,omitempty"`
	Iterations           int    `yaml:"iterations,omitempty"`
	MACIterations        int    `yaml:"macIterations,omitempty"`
	SaltLength           int    `yaml:"saltLength,omitempty"`
	EncryptCertificates  *bool  `yaml:"encryptCertificates,omitempty"`
}

// ProfilesYAML is the full file: an optional defaultBase applied to
// profiles without their own base, and the profile list.
type ProfilesYAML struct {
	DefaultBase string          `yaml:"defaultBase,omitempty"`
	Profiles    []ProfileConfig `yaml:"profiles"`
}

// Profiles maps profile names to resolved configurations.
type Profiles map[string]pfxkit.EncryptionConfig

// LoadProfiles reads a profile file. Both the documented layout and a bare
// list of profiles are accepted.
func LoadProfiles(path string) (Profiles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc ProfilesYAML
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Profiles) == 0 {
		var list []ProfileConfig
		if listErr := yaml.Unmarshal(data, &list); listErr != nil {
			if err != nil {
				return nil, fmt.Errorf("parsing profiles: %w", err)
			}
			return nil, fmt.Errorf("parsing profiles: %w", listErr)
		}
		doc = ProfilesYAML{Profiles: list}
	}

	profiles := make(Profiles, len(doc.Profiles))
	for i, pc := range doc.Profiles {
		if pc.Name == "" {
			return nil, fmt.Errorf("profile %d has no name", i)
		}
		if _, dup := profiles[pc.Name]; dup {
			return nil, fmt.Errorf("profile %q defined twice", pc.Name)
		}
		if pc.Base == "" {
			pc.Base = doc.DefaultBase
		}
		cfg, err := pc.Resolve()
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", pc.Name, err)
		}
		profiles[pc.Name] = cfg
	}
	return profiles, nil
}

// Resolve layers the profile over its base and validates the result.
func (pc ProfileConfig) Resolve() (pfxkit.EncryptionConfig, error) {
	base := pc.Base
	if base == "" {
		base = "legacy"
	}
	cfg, err := pfxkit.ProfileByName(base)
	if err != nil {
		return cfg, err
	}
	if pc.CertificateAlgorithm != "" {
		if cfg.CertificateAlgorithm, err = pfxkit.ParseAlgorithm(pc.CertificateAlgorithm); err != nil {
			return cfg, errors.Unwrap(err)
		}
	}
	if pc.PrivateKeyAlgorithm != "" {
		if cfg.PrivateKeyAlgorithm, err = pfxkit.ParseAlgorithm(pc.PrivateKeyAlgorithm); err != nil {
			return cfg, errors.Unwrap(err)
		}
	}
	if pc.MACDigest != "" {
		if cfg.MACDigest, err = pfxkit.ParseDigest(pc.MACDigest); err != nil {
			return cfg, errors.Unwrap(err)
		}
	}
	if pc.Iterations != 0 {
		cfg.Iterations = pc.Iterations
	}
	if pc.MACIterations != 0 {
		cfg.MACIterations = pc.MACIterations
	}
	if pc.SaltLength != 0 {
		cfg.SaltLength = pc.SaltLength
	}
	if pc.EncryptCertificates != nil {
		cfg.EncryptCertificates = *pc.EncryptCertificates
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Unwrap(err)
	}
	return cfg, nil
}

// Lookup resolves a profile name: built-in names first, then p.
func (p Profiles) Lookup(name string) (pfxkit.EncryptionConfig, error) {
	if cfg, err := pfxkit.ProfileByName(name); err == nil {
		return cfg, nil
	}
	if cfg, ok := p[name]; ok {
		return cfg, nil
	}
	return pfxkit.EncryptionConfig{}, fmt.Errorf("unknown profile %q", name)
}
