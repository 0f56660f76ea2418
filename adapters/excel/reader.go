package excel

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	domain "infstat/domain/inference"
	"infstat/internal"
	"infstat/internal/errors"
	"infstat/ports"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	config   ReaderConfig
	logger   *internal.Logger

	once sync.Once
	data *SheetData
	err  error
}

var _ ports.SampleSource = (*DataReader)(nil)

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string, config ReaderConfig) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	if config.Sheet == "" {
		config.Sheet = DefaultReaderConfig().Sheet
	}
	return &DataReader{
		filePath: filePath,
		fileType: fileType,
		config:   config,
		logger:   internal.NewDefaultLogger().Named("DataReader"),
	}
}

// ReadData reads data from Excel or CSV files into structured format.
// The file is read once; later calls return the same result.
func (r *DataReader) ReadData() (*SheetData, error) {
	r.once.Do(func() {
		r.data, r.err = r.readFile()
	})
	return r.data, r.err
}

func (r *DataReader) readFile() (*SheetData, error) {
	r.logger.Info("Starting to read %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(strings.ToUpper(r.fileType) + " file " + r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVData()
	default:
		return r.readExcelData()
	}
}

// Columns returns the header row of the file
func (r *DataReader) Columns() ([]string, error) {
	data, err := r.ReadData()
	if err != nil {
		return nil, err
	}
	return data.Headers, nil
}

// ReadColumn extracts the numeric values of one column. Empty and
// non-numeric cells are skipped and counted.
func (r *DataReader) ReadColumn(name string) (*domain.Sample, error) {
	data, err := r.ReadData()
	if err != nil {
		return nil, err
	}
	col, err := data.Column(name)
	if err != nil {
		return nil, err
	}
	if col.Skipped > 0 {
		r.logger.Warn("Column %s: skipped %d non-numeric cells", name, col.Skipped)
	}
	return col, nil
}

// Column extracts the numeric values of one column from already loaded data
func (d *SheetData) Column(name string) (*domain.Sample, error) {
	found := false
	for _, header := range d.Headers {
		if header == name {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.NotFound("column " + name)
	}

	col := &domain.Sample{Name: name, Values: make([]float64, 0, len(d.Rows))}
	for _, row := range d.Rows {
		value, ok := parseNumber(row[name])
		if !ok {
			col.Skipped++
			continue
		}
		col.Values = append(col.Values, value)
	}
	return col, nil
}

// readExcelData reads the configured worksheet into structured format
func (r *DataReader) readExcelData() (*SheetData, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()
	r.logger.Info("Excel file opened in %.2fms", float64(time.Since(startTime).Nanoseconds())/1e6)

	readStart := time.Now()
	rows, err := f.GetRows(r.config.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", r.config.Sheet)
	}
	r.logger.Info("%s read in %.2fms (%d rows)", r.config.Sheet, float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.InvalidInput("Excel file must have at least a header row and one data row")
	}
	return r.processRows(rows), nil
}

// readCSVData reads CSV data into structured format
func (r *DataReader) readCSVData() (*SheetData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	r.logger.Info("CSV file read in %.2fms (%d rows)", float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, errors.InvalidInput("CSV file must have at least a header row and one data row")
	}
	return r.processRows(rows), nil
}

// processRows converts raw string rows into SheetData format
func (r *DataReader) processRows(rows [][]string) *SheetData {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := make([]RawRowData, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rowData := make(RawRowData, len(headers))
		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	r.logger.Info("%s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataRows))

	return &SheetData{Headers: headers, Rows: dataRows}
}

// parseNumber accepts finite decimal numbers. A lone comma is read as the
// decimal separator unless exactly three digits follow it, since "1,000"
// may just as well be a thousands separator; such cells are not numeric.
func parseNumber(cell string) (float64, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, false
	}
	if strings.Count(cell, ",") == 1 && !strings.Contains(cell, ".") {
		i := strings.IndexByte(cell, ',')
		if isDigits(cell[i+1:]) && len(cell)-i-1 == 3 {
			return 0, false
		}
		cell = cell[:i] + "." + cell[i+1:]
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
