// Package rawdata reads the tabular export files produced by the Quanterix
// Simoa instrument and projects them down to the columns the processing
// pipeline consumes. The native export format is legacy .xls; re-exports as
// delimited text (.csv/.tsv/.txt) are also handled.
package rawdata

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/devoassay/simoa"
)

// DefaultHeaderRows is the number of banner rows the instrument writes
// before the column-header row.
const DefaultHeaderRows = 5

// ErrMissingColumn indicates a source whose header row lacks one of the
// required columns. Unlike a missing or unsupported file, this is an error:
// the pipeline downstream assumes the projection is complete.
var ErrMissingColumn = errors.New("required column missing")

// RequiredColumns are the export columns the pipeline needs; every other
// column in the source is dropped.
var RequiredColumns = []string{
	"Sample Barcode",
	"Location",
	"Sample Type",
	"Batch Name",
	"AEB",
	"Concentration",
	"Flags",
}

// Read loads an export file and returns its rows projected to the required
// columns. A missing file or an unsupported extension is a valid non-fatal
// outcome and yields nil records with a nil error, so callers must treat
// "no data" as a normal result.
func Read(filename string, headerRows int) ([]simoa.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		return readXLS(filename, headerRows)
	case ".csv", ".tsv", ".txt":
		return readDelimited(filename, headerRows)
	}

	return nil, nil
}

// checkHeader maps the required column names to their positions in the
// header row, erroring when any is absent.
func checkHeader(header []string) (map[string]int, error) {
	index := make(map[string]int)
	for pos, name := range header {
		index[strings.TrimSpace(name)] = pos
	}

	for _, name := range RequiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	return index, nil
}

func recordFromFields(fields []string, index map[string]int) simoa.RawRecord {
	at := func(name string) string {
		pos := index[name]
		if pos >= len(fields) {
			return ""
		}
		return fields[pos]
	}

	return simoa.RawRecord{
		SampleBarcode: at("Sample Barcode"),
		Location:      at("Location"),
		SampleType:    at("Sample Type"),
		BatchName:     at("Batch Name"),
		AEB:           at("AEB"),
		Concentration: at("Concentration"),
		Flags:         at("Flags"),
	}
}

func isEmptyRecord(rec simoa.RawRecord) bool {
	return rec.SampleBarcode == "" &&
		rec.Location == "" &&
		rec.SampleType == "" &&
		rec.BatchName == "" &&
		rec.AEB == "" &&
		rec.Concentration == "" &&
		rec.Flags == ""
}
