package output

import (
	"errors"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrNoGrid is returned by formatters that need a laid-out grid.
var ErrNoGrid = errors.New("no grid to render: birth date missing")

// Fixed copy shared by the text and HTML renderings.
const (
	Tagline      = "Visualize your life in days. Each square represents one day."
	RowCaption   = "Each row represents one year (52 weeks)"
	Quote        = "\"The meaning of life is that it stops.\" - Franz Kafka"
	Reminder     = "Remember: each day is a gift. Make it count."
	ValueLine    = "Time is the most valuable resource we have."
	NotReadyLine = "Enter your birth date to see your life in days."
)

// Counts are grouped the same way regardless of the host locale.
var countPrinter = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators, e.g. 27,375.
func FormatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// FormatPercentage formats a decimal as a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

// SummaryLine is the closing "you have lived" sentence.
func SummaryLine(pct decimal.Decimal) string {
	return "You have lived " + pct.StringFixed(2) + "% of your expected life."
}
