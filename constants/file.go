package constants

import "strings"

// AllowedExtensions holds the allowed file extensions for report ingestion.
var AllowedExtensions = map[string]struct{}{
	"docx": {},
}

// LockFilePrefix marks Office owner/lock files left beside open documents.
const LockFilePrefix = "~$"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsAllowedExt reports whether a (possibly dotted, mixed-case) extension
// is in the allowed set.
func IsAllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
