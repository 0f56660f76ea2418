package excel

// RawRowData represents a row of raw cell text keyed by column header
type RawRowData map[string]string

// SheetData represents a complete tabular file
type SheetData struct {
	Headers []string     // Column headers
	Rows    []RawRowData // Data rows
}
