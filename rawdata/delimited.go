package rawdata

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/devoassay/simoa"
)

// readDelimited reads a delimited-text re-export of the instrument data.
// The delimiter is sniffed from the header row, so both comma and tab
// exports work. A missing file, or one too short to contain the header,
// yields no records rather than an error.
func readDelimited(filename string, headerRows int) ([]simoa.RawRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	br := bufio.NewReader(f)
	for i := 0; i < headerRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, nil
		}
	}

	headerLine, err := br.ReadString('\n')
	if err != nil && headerLine == "" {
		return nil, nil
	}

	delimiter := sniffDelimiter(strings.NewReader(headerLine))

	headerReader := csv.NewReader(strings.NewReader(headerLine))
	headerReader.Comma = delimiter
	header, err := headerReader.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if _, err := checkHeader(header); err != nil {
		return nil, err
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delimiter
		r.LazyQuotes = true
		return r
	})

	var parsed []*simoa.RawRecord
	if err := gocsv.Unmarshal(io.MultiReader(strings.NewReader(headerLine), br), &parsed); err != nil {
		return nil, pfx.Err(err)
	}

	records := make([]simoa.RawRecord, 0, len(parsed))
	for _, rec := range parsed {
		if isEmptyRecord(*rec) {
			continue
		}
		records = append(records, *rec)
	}

	return records, nil
}
