package output

import (
	"bytes"
	"fmt"

	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// Square geometry of the rendered grid, in pixels.
const (
	SquareSize    = 8
	SquareSpacing = 10
)

const svgStyle = `<style>
rect{stroke-width:.5}
.p{fill:#6b7280;stroke:#4b5563}
.f{fill:#fff;stroke:#d1d5db}
.t{fill:#3b82f6;stroke:#2563eb;animation:pulse 1.5s cubic-bezier(.4,0,.6,1) infinite;transform-box:fill-box;transform-origin:center}
@keyframes pulse{0%,100%{transform:scale(1);opacity:1}50%{transform:scale(1.1);opacity:.8}}
</style>`

// SVGFormatter emits only the grid as a standalone SVG document.
type SVGFormatter struct{}

func (s SVGFormatter) Name() string { return "svg" }

func (s SVGFormatter) Format(snap *domain.Snapshot) ([]byte, error) {
	if snap.Grid == nil {
		return nil, ErrNoGrid
	}
	return RenderGridSVG(snap.Grid), nil
}

// RenderGridSVG draws one square per cell on a 10px pitch with a faint
// line at every 365-day boundary.
func RenderGridSVG(g *domain.DayGrid) []byte {
	var buf bytes.Buffer
	width := g.Columns * SquareSpacing
	height := g.Rows * SquareSpacing

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" style="max-width:100%%;height:auto">`,
		width, height, width, height)
	buf.WriteString(svgStyle)

	for year := 1; year < g.LifeExpectancy; year++ {
		y := float64(year*domain.DaysPerYear) / float64(g.Columns) * SquareSpacing
		fmt.Fprintf(&buf, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#f3f4f6" stroke-width="0.5" opacity="0.5"/>`,
			y, width, y)
	}

	today, hasToday := g.TodayIndex()
	for _, c := range g.Cells {
		class := "f"
		switch {
		case hasToday && c.Index == today:
			class = "t"
		case c.IsPast:
			class = "p"
		}
		fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="%d" height="%d" rx="1.5" class="%s"/>`,
			c.Column*SquareSpacing, c.Row*SquareSpacing, SquareSize, SquareSize, class)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
