package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// HTMLFormatter produces a standalone page with stat cards and the SVG grid.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"count": FormatCount,
}).Parse(htmlTemplateSource))

type htmlCard struct {
	Label string
	Value string
	Color string
}

var cardColors = []string{"#111827", "#2563eb", "#16a34a", "#9333ea", "#ea580c", "#dc2626"}

func (h HTMLFormatter) Format(snap *domain.Snapshot) ([]byte, error) {
	lines := StatLines(snap.Statistics)
	cards := make([]htmlCard, len(lines))
	for i, l := range lines {
		cards[i] = htmlCard{Label: l.Label, Value: l.Value, Color: cardColors[i%len(cardColors)]}
	}

	data := struct {
		Snap      *domain.Snapshot
		Ready     bool
		Cards     []htmlCard
		Percent   string
		BarWidth  string
		Grid      template.HTML
		Tagline   string
		Caption   string
		Quote     string
		Reminder  string
		ValueLine string
		Summary   string
		NotReady  string
	}{
		Snap:      snap,
		Ready:     snap.Ready(),
		Cards:     cards,
		Percent:   snap.Statistics.PercentDisplay(),
		BarWidth:  snap.Statistics.PercentageLived.StringFixed(1),
		Tagline:   Tagline,
		Caption:   RowCaption,
		Quote:     Quote,
		Reminder:  Reminder,
		ValueLine: ValueLine,
		Summary:   SummaryLine(snap.Statistics.PercentageLived),
		NotReady:  NotReadyLine,
	}
	if snap.Statistics.ProgressFraction() >= 1 {
		data.BarWidth = "100"
	}
	if snap.Grid != nil {
		// Generated from integers and fixed strings only.
		data.Grid = template.HTML(RenderGridSVG(snap.Grid))
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
