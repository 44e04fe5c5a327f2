package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Life Expectancy",
		"Type",
		"Description",
		"Total Days",
		"Days Passed",
		"Days Remaining",
		"Life Lived %",
		"Final Day",
		"Days Remaining Diff",
		"Life Lived % Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	finalDay := ""
	if !result.FinalDay.IsZero() {
		finalDay = result.FinalDay.Format("2006-01-02")
	}
	return []string{
		strconv.Itoa(result.LifeExpectancy),
		rowType,
		result.Description,
		strconv.Itoa(result.TotalDays),
		strconv.Itoa(result.DaysPassed),
		strconv.Itoa(result.DaysRemaining),
		result.PercentageLived.StringFixed(2),
		finalDay,
		strconv.Itoa(result.DaysRemainingDiff),
		result.PercentDiffFromBase.StringFixed(2),
	}
}
