// Package format holds the presentation helpers shared by the CLI output
// and the spreadsheet exporter.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount as a whole-dollar, thousands-grouped string,
// e.g. 1234567.89 → "$1,234,568".
func Currency(amount float64) string {
	return printer.Sprintf("$%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// Percentage renders a value with one decimal place and a percent sign,
// e.g. 42.376 → "42.4%".
func Percentage(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
