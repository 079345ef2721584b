package simoa

import (
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Barcode is a normalized Sample Barcode value. Plain sample barcodes are
// numeric; calibrators and QC samples carry text barcodes (such as "QC1"),
// which are uppercased so that later lookups are case-insensitive.
type Barcode struct {
	Numeric null.Int
	Label   string
}

// NormalizeBarcode converts a raw Sample Barcode field. A string is treated
// as numeric only when every character is a digit; a digit-prefixed label
// like "123abc" stays a label rather than being forced through a failing
// integer conversion.
func NormalizeBarcode(raw string) Barcode {
	if isAllDigits(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return Barcode{Numeric: null.IntFrom(n)}
		}
	}

	return Barcode{Label: strings.ToUpper(raw)}
}

// IsNumeric reports whether the barcode is a plain numeric sample barcode.
func (b Barcode) IsNumeric() bool {
	return b.Numeric.Valid
}

func (b Barcode) String() string {
	if b.Numeric.Valid {
		return strconv.FormatInt(b.Numeric.Int64, 10)
	}

	return b.Label
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
