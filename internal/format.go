package internal

import (
	"fmt"
	"strings"
)

// ScanAnnotation returns a parenthetical annotation like " (2 locked, 1 invalid)"
// for non-zero counts, or an empty string if both are zero.
func ScanAnnotation(locked, invalid int) string {
	var parts []string
	if locked > 0 {
		parts = append(parts, fmt.Sprintf("%d locked", locked))
	}
	if invalid > 0 {
		parts = append(parts, fmt.Sprintf("%d invalid", invalid))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// FormatScanSummary renders the scan totals and the catalog breakdown.
func FormatScanSummary(s *ScanSummary, c *CatalogSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Archives:      %d%s\n", s.Files, ScanAnnotation(s.Locked, s.Invalid))
	fmt.Fprintf(&sb, "  Opened:      %d\n", s.Opened)
	if c != nil {
		fmt.Fprintf(&sb, "  Legacy:      %d\n", c.Legacy)
		fmt.Fprintf(&sb, "  Modern:      %d\n", c.Modern)
		fmt.Fprintf(&sb, "  Custom:      %d\n", c.Custom)
	}
	return sb.String()
}
