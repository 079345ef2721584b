package main

import (
	"strconv"

	"gopkg.in/guregu/null.v3"

	"github.com/devoassay/simoa"
)

type flatRow struct {
	SampleBarcode     string `csv:"Sample Barcode"`
	BatchName         string `csv:"Batch Name"`
	Plate             int    `csv:"Plate"`
	Row               string `csv:"Row"`
	Column            int    `csv:"Column"`
	SampleType        string `csv:"Sample Type"`
	AEB               string `csv:"AEB"`
	ConcentrationPgML string `csv:"Concentration (pg/ml)"`
	ConcentrationFgML string `csv:"Concentration (fg/ml)"`
	Flags             string `csv:"Flags"`
}

func flatten(row simoa.SampleRow) flatRow {
	return flatRow{
		SampleBarcode:     row.Barcode.String(),
		BatchName:         row.BatchName,
		Plate:             row.Plate,
		Row:               string(row.Row),
		Column:            row.Column,
		SampleType:        row.SampleType,
		AEB:               NullFloatFormatter(row.AEB),
		ConcentrationPgML: NullFloatFormatter(row.ConcentrationPgML),
		ConcentrationFgML: NullFloatFormatter(row.ConcentrationFgML),
		Flags:             row.Flags,
	}
}

func NullFloatFormatter(n null.Float) string {
	if !n.Valid {
		return ""
	}

	return strconv.FormatFloat(n.Float64, 'g', -1, 64)
}
