package constants

import "strings"

// AllowedExtensions holds the file extensions the ingestion surfaces accept.
// OCR of scanned images is out of scope, so only text-layer PDFs qualify.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
