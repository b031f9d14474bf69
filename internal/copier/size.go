package copier

import "github.com/shopspring/decimal"

// sizeScale is 1/100000. It is not a byte to megabyte ratio, but existing
// records were written with it.
var sizeScale = decimal.New(1, -5)

const sizePrecision = 6

// ConvertSize scales a raw byte count into the size_mb value stored in records.
func ConvertSize(rawBytes int64) float64 {
	return decimal.NewFromInt(rawBytes).Mul(sizeScale).Round(sizePrecision).InexactFloat64()
}
