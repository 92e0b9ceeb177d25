package pfxkit

// DefaultPasswords returns the passwords tried by default when opening an
// archive of unknown protection: empty, then the usual keystore defaults.
// Returns a fresh copy each call.
func DefaultPasswords() []string {
	return []string{"", "password", "changeit", "keypassword"}
}

// DeduplicatePasswords merges extra passwords after the defaults and removes
// duplicates while preserving order.
func DeduplicatePasswords(extra []string) []string {
	all := append(DefaultPasswords(), extra...)
	seen := make(map[string]bool, len(all))
	result := make([]string, 0, len(all))
	for _, p := range all {
		if !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	return result
}
