package compare

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/config"
	"github.com/rgehrsitz/lifegrid/internal/domain"
)

var (
	birth = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	tenth = time.Date(2000, 1, 11, 0, 0, 0, 0, time.UTC)
)

func newTestEngine(now time.Time) *CompareEngine {
	return NewCompareEngine(calculation.NewEngineWithClock(calculation.FixedClock{T: now}))
}

func compareDefaults(t *testing.T) *ComparisonSet {
	t.Helper()
	set, err := newTestEngine(tenth).Compare(context.Background(),
		domain.NewProfile().WithBirthDate(birth), CompareOptions{})
	require.NoError(t, err)
	return set
}

func TestCompare_DefaultPresets(t *testing.T) {
	set := compareDefaults(t)

	require.NotNil(t, set.BaseResult)
	assert.Equal(t, "75 years", set.BaseName)
	assert.Equal(t, "Global average", set.BaseResult.Description)
	assert.Equal(t, 27375, set.BaseResult.TotalDays)
	assert.Equal(t, 27365, set.BaseResult.DaysRemaining)
	assert.Equal(t, birth.AddDate(0, 0, 27374), set.BaseResult.FinalDay)
	assert.Equal(t, tenth, set.AsOf)

	require.Len(t, set.AlternativeResults, 5)
	first := set.AlternativeResults[0]
	assert.Equal(t, 70, first.LifeExpectancy)
	assert.Equal(t, 25540, first.DaysRemaining)
	assert.Equal(t, -1825, first.DaysRemainingDiff)
	assert.True(t, first.PercentDiffFromBase.IsPositive(), "shorter lifespan means a larger share lived")

	last := set.AlternativeResults[4]
	assert.Equal(t, 95, last.LifeExpectancy)
	assert.Equal(t, 7300, last.DaysRemainingDiff)

	assert.Equal(t, []string{
		"Most time: 95 years leaves 7300 more days than 75 years",
		"Least time: 70 years leaves 1825 fewer days than 75 years",
	}, set.Notes)
}

func TestCompare_ExplicitYears(t *testing.T) {
	p := domain.NewProfile().WithBirthDate(birth)
	p.LifeExpectancy = 80

	set, err := newTestEngine(tenth).Compare(context.Background(), p, CompareOptions{Years: []int{120, 80, 50, 120}})
	require.NoError(t, err)

	require.Len(t, set.AlternativeResults, 2)
	assert.Equal(t, 50, set.AlternativeResults[0].LifeExpectancy)
	assert.Equal(t, 120, set.AlternativeResults[1].LifeExpectancy)
	assert.Empty(t, set.AlternativeResults[1].Description)
}

func TestCompare_Errors(t *testing.T) {
	ce := newTestEngine(tenth)

	_, err := ce.Compare(context.Background(), domain.NewProfile(), CompareOptions{})
	assert.ErrorIs(t, err, config.ErrNoBirthDate)

	_, err = ce.Compare(context.Background(), domain.NewProfile().WithBirthDate(birth), CompareOptions{Years: []int{40}})
	assert.ErrorContains(t, err, "outside 50-120")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ce.Compare(ctx, domain.NewProfile().WithBirthDate(birth), CompareOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompare_PastExpectancy(t *testing.T) {
	p := domain.NewProfile().WithBirthDate(time.Date(1930, 1, 1, 0, 0, 0, 0, time.UTC))
	p.LifeExpectancy = 110

	set, err := newTestEngine(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).
		Compare(context.Background(), p, CompareOptions{Years: []int{70}})
	require.NoError(t, err)

	require.Len(t, set.AlternativeResults, 1)
	assert.Equal(t, 0, set.AlternativeResults[0].DaysRemaining)
	assert.Contains(t, set.Notes, "Already past the 70 years expectancy")
}

func TestGenerateNotes_Empty(t *testing.T) {
	assert.Empty(t, GenerateNotes(&ComparisonSet{}))
}

func TestTableFormatter_Format(t *testing.T) {
	out := (&TableFormatter{}).Format(compareDefaults(t))

	assert.Contains(t, out, "LIFE EXPECTANCY COMPARISON")
	assert.Contains(t, out, "Birth Date: 2000-01-01    As Of: 2000-01-11")
	assert.Contains(t, out, "75 years Global average (base)")
	assert.Contains(t, out, "27,365")
	assert.Contains(t, out, "COMPARISON TO BASE")
	assert.Contains(t, out, "+7,300 days")
	assert.Contains(t, out, "-1,825 days")
	assert.Contains(t, out, "• Most time: 95 years")
}

func TestTableFormatter_FormatCompact(t *testing.T) {
	out := (&TableFormatter{}).FormatCompact(compareDefaults(t))

	assert.True(t, strings.HasPrefix(out, "Base: 75 years | 70 years: -1825d"))
	assert.Contains(t, out, "95 years: +7300d")
}

func TestTableFormatter_Truncate(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "short", tf.truncate("short", 10))
	assert.Equal(t, "abcdefg...", tf.truncate("abcdefghijklmnop", 10))
}

func TestCSVFormatter_Format(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(compareDefaults(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "Life Expectancy,Type,Description"))
	assert.True(t, strings.HasPrefix(lines[1], "75,base,Global average,27375,10,27365,"))
	assert.True(t, strings.HasPrefix(lines[2], "70,alternative,Lower estimate,25550,10,25540,"))
}

func TestJSONFormatter_Format(t *testing.T) {
	set := compareDefaults(t)

	for _, pretty := range []bool{true, false} {
		out, err := (&JSONFormatter{Pretty: pretty}).Format(set)
		require.NoError(t, err)

		var decoded struct {
			BaseName           string             `json:"baseName"`
			AlternativeResults []ComparisonResult `json:"alternativeResults"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		assert.Equal(t, "75 years", decoded.BaseName)
		assert.Len(t, decoded.AlternativeResults, 5)
		assert.Equal(t, pretty, strings.HasSuffix(out, "\n"))
	}
}
