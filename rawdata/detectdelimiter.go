package rawdata

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// sniffDelimiter guesses the field separator of a delimited-text export.
// The same table shows up comma-separated or tab-separated depending on
// which tool re-exported it, so the separator is detected from the content.
// Comma is the fallback when detection is inconclusive.
func sniffDelimiter(r io.Reader) rune {
	candidates := detector.New().DetectDelimiter(r, '"')
	if len(candidates) == 0 {
		return ','
	}

	return rune(candidates[0][0])
}
