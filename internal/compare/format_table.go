package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/lifegrid/internal/output"
	"github.com/shopspring/decimal"
)

const tableWidth = 84

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing life expectancies
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("LIFE EXPECTANCY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")
	sb.WriteString(fmt.Sprintf("Base: %s\n", compSet.BaseName))
	sb.WriteString(fmt.Sprintf("Birth Date: %s    As Of: %s\n",
		compSet.BirthDate.Format("2006-01-02"), compSet.AsOf.Format("2006-01-02")))
	sb.WriteString("\n")

	nameWidth := 36
	numWidth := 11

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Life Expectancy",
		numWidth, "Total Days",
		numWidth, "Remaining",
		numWidth, "Life Lived",
		numWidth, "Final Day"))
	sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", tableWidth) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("%-*s %s%s days, %s%s points\n",
				nameWidth, alt.Name+":",
				tf.deltaSymbol(decimal.NewFromInt(int64(alt.DaysRemainingDiff))),
				output.FormatCount(alt.DaysRemainingDiff),
				tf.deltaSymbol(alt.PercentDiffFromBase),
				alt.PercentDiffFromBase.StringFixed(1)))
		}
	}

	if len(compSet.Notes) > 0 {
		sb.WriteString("\nNOTES\n")
		sb.WriteString(strings.Repeat("-", tableWidth) + "\n")
		for _, note := range compSet.Notes {
			sb.WriteString(fmt.Sprintf("• %s\n", note))
		}
	}

	return sb.String()
}

// formatRow formats a single life expectancy row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	if result == nil {
		return ""
	}
	name := result.Name
	if result.Description != "" {
		name += " " + result.Description
	}
	if isBase {
		name += " (base)"
	}

	finalDay := "-"
	if !result.FinalDay.IsZero() {
		finalDay = result.FinalDay.Format("2006-01-02")
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, output.FormatCount(result.TotalDays),
		numWidth, output.FormatCount(result.DaysRemaining),
		numWidth, output.FormatPercentage(result.PercentageLived),
		numWidth, finalDay)
}

// deltaSymbol returns "+" for positive deltas; negative values carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return ""
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.DaysRemainingDiff > 0 {
			change = fmt.Sprintf("+%dd", alt.DaysRemainingDiff)
		} else if alt.DaysRemainingDiff < 0 {
			change = fmt.Sprintf("%dd", alt.DaysRemainingDiff)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.Name, change))
	}

	return sb.String()
}
