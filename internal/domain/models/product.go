package models

// LookupStatus tags the outcome of a product catalog lookup.
type LookupStatus int

const (
	LookupFound LookupStatus = iota
	LookupNotFound
	LookupError
)

// ResolvedProduct carries the display fields derived from a catalog lookup.
// Name always holds user-facing text, including the fallback messages for the
// not-found and error outcomes. On LookupError, Brand holds the error text.
type ResolvedProduct struct {
	Status LookupStatus
	Name   string
	Brand  string
}
