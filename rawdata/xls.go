package rawdata

import (
	"os"

	"github.com/extrame/xls"

	"github.com/devoassay/simoa"
)

// biff8MaxRows is the row capacity of a BIFF8 sheet, used as the read bound.
const biff8MaxRows = 65536

// readXLS reads a legacy Excel export. The instrument writes headerRows
// banner rows, then the column-header row, then one row per sample well,
// all on a single sheet. A file that cannot be opened as .xls (missing, or
// not actually BIFF data) yields no records rather than an error.
//
// Cells are pulled through ReadAllCells rather than per-row lookups: the
// banner area can be sparse, and the row accessor in the xls package does
// not tolerate absent rows.
func readXLS(filename string, headerRows int) ([]simoa.RawRecord, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	spreadsheet, err := xls.OpenReader(f, "utf-8")
	if err != nil || spreadsheet == nil {
		return nil, nil
	}

	cells := spreadsheet.ReadAllCells(biff8MaxRows)
	if len(cells) <= headerRows {
		return nil, nil
	}

	index, err := checkHeader(cells[headerRows])
	if err != nil {
		return nil, err
	}

	var records []simoa.RawRecord
	for _, fields := range cells[headerRows+1:] {
		rec := recordFromFields(fields, index)
		if isEmptyRecord(rec) {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
