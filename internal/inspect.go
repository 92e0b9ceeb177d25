package internal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sensiblebit/pfxkit"
	"github.com/sensiblebit/pfxkit/internal/pkcs12"
)

// InspectArchive describes der. With a password the bags are listed too;
// an archive the password does not open still yields its structure, and
// the returned error explains why the bags are missing.
func InspectArchive(der []byte, password string, withPassword bool) (*pfxkit.Inspection, error) {
	if !withPassword {
		return pfxkit.Inspect(der)
	}
	ins, err := pfxkit.InspectWithPassword(der, password)
	if err == nil {
		return ins, nil
	}
	structure, serr := pfxkit.Inspect(der)
	if serr != nil {
		return nil, serr
	}
	return structure, err
}

// FormatInspection renders an inspection as text or JSON.
func FormatInspection(ins *pfxkit.Inspection, format string) (string, error) {
	switch format {
	case "text":
		return formatInspectionText(ins), nil
	case "json":
		data, err := json.MarshalIndent(ins, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshaling JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use text or json)", format)
	}
}

// AlgorithmSummary renders an algorithm like "AES256CBC (PBKDF2, 2048 iterations)".
func AlgorithmSummary(a *pkcs12.AlgorithmInfo) string {
	if a == nil {
		return "none"
	}
	var params []string
	if a.KeyDerivation != "" {
		params = append(params, a.KeyDerivation)
	}
	if a.Iterations > 0 {
		params = append(params, fmt.Sprintf("%d iterations", a.Iterations))
	}
	if len(params) == 0 {
		return a.Name
	}
	return a.Name + " (" + strings.Join(params, ", ") + ")"
}

// MACSummary renders the MAC parameters, or "none".
func MACSummary(m *pkcs12.MACInfo) string {
	if m == nil {
		return "none"
	}
	return fmt.Sprintf("%s (%d iterations, %d-byte salt)", m.Digest, m.Iterations, m.SaltLength)
}

func formatInspectionText(ins *pfxkit.Inspection) string {
	var sb strings.Builder
	s := ins.Structure
	fmt.Fprintf(&sb, "PFX:\n")
	fmt.Fprintf(&sb, "  Version:     %d\n", s.Version)
	fmt.Fprintf(&sb, "  MAC:         %s\n", MACSummary(s.MAC))
	for i, c := range s.Contents {
		if c.Encrypted {
			fmt.Fprintf(&sb, "  Content %d:   encrypted, %s\n", i+1, AlgorithmSummary(c.Encryption))
			continue
		}
		fmt.Fprintf(&sb, "  Content %d:   plain, %d bag(s)\n", i+1, len(c.Bags))
		for _, b := range c.Bags {
			line := "    " + b.Kind
			if b.Encryption != nil {
				line += ", " + AlgorithmSummary(b.Encryption)
			}
			sb.WriteString(line + "\n")
		}
	}

	for i, b := range ins.Bags {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Bag %d: %s\n", i+1, b.Kind)
		if b.FriendlyName != "" {
			fmt.Fprintf(&sb, "  Friendly Name: %s\n", b.FriendlyName)
		}
		if b.LocalKeyID != "" {
			fmt.Fprintf(&sb, "  Local Key ID:  %s\n", b.LocalKeyID)
		}
		if b.Encryption != "" {
			fmt.Fprintf(&sb, "  Encryption:    %s\n", b.Encryption)
		}
		if b.Subject != "" {
			fmt.Fprintf(&sb, "  Subject:       %s\n", b.Subject)
			fmt.Fprintf(&sb, "  Issuer:        %s\n", b.Issuer)
			fmt.Fprintf(&sb, "  Type:          %s\n", b.Role)
			fmt.Fprintf(&sb, "  SHA-256:       %s\n", b.Fingerprint)
		}
		if b.KeyAlgorithm != "" {
			fmt.Fprintf(&sb, "  Key:           %s\n", b.KeyAlgorithm)
		}
	}
	return sb.String()
}
