package simoa

import "gopkg.in/guregu/null.v3"

// RawRecord is one row of the export table after the ingestion boundary has
// projected it down to the seven columns the pipeline needs. All values are
// still the instrument's raw strings. The csv tags carry the instrument's
// column headers.
type RawRecord struct {
	SampleBarcode string `csv:"Sample Barcode"`
	Location      string `csv:"Location"`
	SampleType    string `csv:"Sample Type"`
	BatchName     string `csv:"Batch Name"`
	AEB           string `csv:"AEB"`
	Concentration string `csv:"Concentration"`
	Flags         string `csv:"Flags"`
}

// SampleRow is one normalized sample measurement. Rows are immutable once
// normalized, except for the three template-assigned fields, which start
// empty and are populated when a plate template is applied.
type SampleRow struct {
	Barcode    Barcode
	Location   string // raw instrument location string, kept for reporting
	Plate      int
	Row        byte
	Column     int
	SampleType string
	BatchName  string

	AEB               null.Float
	ConcentrationPgML null.Float
	// ConcentrationFgML is 1000x ConcentrationPgML, or absent in lockstep
	// with it.
	ConcentrationFgML null.Float

	Flags string

	// Experimental-design annotations, set by Plate.ApplyTemplates.
	Dilution  string
	Feeder    string
	Replicate string
}
