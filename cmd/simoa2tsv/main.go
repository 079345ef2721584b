// simoa2tsv reads a Simoa export file, normalizes it, and emits the flat
// normalized table as tab-delimited text on stdout.
package main

import (
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/devoassay/simoa"
	"github.com/devoassay/simoa/rawdata"
)

func main() {
	var filename string
	var headerRows int
	var lenient bool

	flag.StringVar(&filename, "file", "", "Path to the Simoa export file (.xls, .csv, or .tsv)")
	flag.IntVar(&headerRows, "headerrows", rawdata.DefaultHeaderRows, "Number of banner rows preceding the column-header row")
	flag.BoolVar(&lenient, "lenient", false, "Skip records with malformed locations instead of aborting")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	records, err := rawdata.Read(filename, headerRows)
	if err != nil {
		log.Fatalln(err)
	}
	if records == nil {
		log.Println("No data produced from", filename)
		return
	}
	log.Println("Read", len(records), "records from", filename)

	var rows []simoa.SampleRow
	if lenient {
		var skipped []error
		rows, skipped = simoa.NormalizeTableLenient(records)
		if len(skipped) > 0 {
			log.Println("Skipped", len(skipped), "malformed records")
		}
	} else {
		rows, err = simoa.NormalizeTable(records)
		if err != nil {
			log.Fatalln(err)
		}
	}

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = '\t'
		return gocsv.NewSafeCSVWriter(w)
	})

	flat := make([]flatRow, 0, len(rows))
	for _, row := range rows {
		flat = append(flat, flatten(row))
	}

	if err := gocsv.Marshal(&flat, os.Stdout); err != nil {
		log.Fatalln(err)
	}
}
