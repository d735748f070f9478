package siteindex

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ContentHash computes a hash of extracted page content using xxhash.
// The indexer uses it to spot pages with byte-identical content.
func ContentHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// FormatBytes formats a byte count in human-readable form.
func FormatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
