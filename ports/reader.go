package ports

import domain "infstat/domain/inference"

// SampleSource provides read-only access to the numeric columns of a
// tabular file
type SampleSource interface {
	// Columns lists the header row
	Columns() ([]string, error)
	// ReadColumn returns the numeric cells of one column. A column without
	// numeric cells yields an empty Values slice. Implementations must be
	// safe for concurrent use.
	ReadColumn(name string) (*domain.Sample, error)
}
