package valuation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	eurPrinter = message.NewPrinter(language.MustParse("en-IE"))
	inrPrinter = message.NewPrinter(language.MustParse("en-IN"))
)

// FormatEUR renders an amount as a euro currency string with two fraction
// digits and Irish-English grouping, e.g. "€4,398.15".
func FormatEUR(n float64) string {
	return eurPrinter.Sprintf("€%v", number.Decimal(n,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatINR renders an amount as an Indian rupee string with no fraction
// digits and Indian grouping, e.g. "₹54,76,225".
func FormatINR(n float64) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(n,
		number.MaxFractionDigits(0),
	))
}

// Sig renders a plain number with at most the given fraction digits, for
// table cells that are not currency amounts.
func Sig(n float64, digits int) string {
	return eurPrinter.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(digits)))
}
