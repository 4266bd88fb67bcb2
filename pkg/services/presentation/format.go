package presentation

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// exactDigits is enough fractional digits to tell any float64 from a
// two-decimal tie.
const exactDigits = 30

// Fixed rounds x to two decimals and groups the integer part by thousands.
// Rounding applies to the exact binary value of x, ties away from zero, so
// 1.005 (stored as 1.00499...) becomes "1.00".
//
//	Fixed(1234.5) == "1,234.50"
func Fixed(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	d, err := decimal.NewFromString(strconv.FormatFloat(x, 'f', exactDigits, 64))
	if err != nil {
		d = decimal.NewFromFloat(x)
	}
	return group(d.StringFixed(2))
}

// Humanize groups the integer part of x by thousands. Fractional digits are
// kept as they are, never rounded.
//
//	Humanize(1234567) == "1,234,567"
func Humanize(x float64) string {
	return group(strconv.FormatFloat(x, 'f', -1, 64))
}

// group inserts thousands separators into the integer part of a plain
// decimal string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return sign + s
	}

	out := sign + humanize.BigComma(n)
	if hasFrac {
		out += "." + frac
	}
	return out
}
