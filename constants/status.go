package constants

// DocStatus is the canonical status for rows in documents.
type DocStatus string

// Stable values (store these exact strings in DB).
const (
	DocStatusQueued    DocStatus = "QUEUED"    // discovered, not yet processed
	DocStatusExtracted DocStatus = "EXTRACTED" // record assembled (possibly with warnings)
	DocStatusNoText    DocStatus = "NO_TEXT"   // document yielded no usable text
	DocStatusFailed    DocStatus = "FAILED"    // terminal failure while reading the file
)
