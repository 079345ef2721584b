package simoa

import (
	"fmt"
	"log"
)

// NormalizeRecord converts one raw record into a typed sample row: the
// location string is split into plate/row/column, the barcode is normalized,
// and the measurement fields are coerced to nullable floats with the fg/ml
// concentration derived from the pg/ml value.
func NormalizeRecord(rec RawRecord) (SampleRow, error) {
	loc, err := ParseLocation(rec.Location)
	if err != nil {
		return SampleRow{}, err
	}

	pg := CoerceNumeric(rec.Concentration)

	return SampleRow{
		Barcode:           NormalizeBarcode(rec.SampleBarcode),
		Location:          rec.Location,
		Plate:             loc.Plate,
		Row:               loc.Row,
		Column:            loc.Column,
		SampleType:        rec.SampleType,
		BatchName:         rec.BatchName,
		AEB:               CoerceNumeric(rec.AEB),
		ConcentrationPgML: pg,
		ConcentrationFgML: PgToFg(pg),
		Flags:             rec.Flags,
	}, nil
}

// NormalizeTable normalizes every record in the table. A malformed location
// aborts with the offending record's index, since it indicates a corrupt
// export; the measurement fields never abort (non-numeric text becomes
// absent).
func NormalizeTable(records []RawRecord) ([]SampleRow, error) {
	rows := make([]SampleRow, 0, len(records))
	for i, rec := range records {
		row, err := NormalizeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// NormalizeTableLenient is NormalizeTable for callers that prefer to salvage
// what they can from a damaged export: records with malformed locations are
// logged and skipped instead of aborting the table.
func NormalizeTableLenient(records []RawRecord) ([]SampleRow, []error) {
	rows := make([]SampleRow, 0, len(records))
	var skipped []error

	for i, rec := range records {
		row, err := NormalizeRecord(rec)
		if err != nil {
			log.Println("Skipping record", i, "-", err)
			skipped = append(skipped, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		rows = append(rows, row)
	}

	return rows, skipped
}
