package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"infstat/internal/errors"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeXLSX(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadColumnCSV(t *testing.T) {
	path := writeCSV(t, "id,weight,label\n1,70.5,a\n2,,b\n3,n/a,c\n4,68,d\n5,\"72,5\",e\n")
	reader := NewDataReader(path, DefaultReaderConfig())

	col, err := reader.ReadColumn("weight")
	require.NoError(t, err)
	assert.Equal(t, "weight", col.Name)
	assert.Equal(t, []float64{70.5, 68, 72.5}, col.Values)
	assert.Equal(t, 2, col.Skipped)
}

func TestColumnsCSV(t *testing.T) {
	path := writeCSV(t, " a , b \n1,2\n")
	headers, err := NewDataReader(path, ReaderConfig{}).Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, headers)
}

func TestReadColumnXLSX(t *testing.T) {
	path := writeXLSX(t, "Datos", [][]interface{}{
		{"edad", "nombre"},
		{21, "ana"},
		{34.5, "luis"},
		{"", "eva"},
		{40, "juan"},
	})
	reader := NewDataReader(path, ReaderConfig{Sheet: "Datos"})

	col, err := reader.ReadColumn("edad")
	require.NoError(t, err)
	assert.Equal(t, []float64{21, 34.5, 40}, col.Values)
}

func TestReadColumnErrors(t *testing.T) {
	path := writeCSV(t, "x,y\n1,a\n2,b\n")
	reader := NewDataReader(path, DefaultReaderConfig())

	_, err := reader.ReadColumn("z")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	// A column without numbers is still read; callers decide what it means.
	col, err := reader.ReadColumn("y")
	require.NoError(t, err)
	assert.Empty(t, col.Values)
	assert.Equal(t, 2, col.Skipped)

	_, err = NewDataReader(filepath.Join(t.TempDir(), "missing.csv"), DefaultReaderConfig()).ReadColumn("x")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))

	headerOnly := writeCSV(t, "x,y\n")
	_, err = NewDataReader(headerOnly, DefaultReaderConfig()).ReadData()
	assert.True(t, errors.IsInvalidInput(err))
}

func TestReadColumnSkipsThousandsSeparators(t *testing.T) {
	path := writeCSV(t, "amount\n\"1,000\"\n\"2,500\"\n\"3,5\"\n7\n")
	col, err := NewDataReader(path, DefaultReaderConfig()).ReadColumn("amount")
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, 7}, col.Values)
	assert.Equal(t, 2, col.Skipped)
}

func TestReadDataMissingSheet(t *testing.T) {
	path := writeXLSX(t, "Sheet1", [][]interface{}{{"x"}, {1}})
	_, err := NewDataReader(path, ReaderConfig{Sheet: "Nope"}).ReadData()
	assert.Error(t, err)
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"3.25", 3.25, true},
		{" -1e3 ", -1000, true},
		{"2,5", 2.5, true},
		{"-0,25", -0.25, true},
		{"1,5000", 1.5, true},
		{"1,000", 0, false},
		{"2,500", 0, false},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1,000.5", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseNumber(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, tc.in)
		}
	}
}
