package report

import (
	"fmt"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Font sizes in points, scaled by the style's DPI at draw time.
const (
	titleFontSize      = 16.0
	axisLabelFontSize  = 10.0
	legendFontSize     = 10.0
	gridLabelFontSize  = 8.0
	tableFontSize      = 8.0
	tableHeaderSize    = 9.0
	captionFontSize    = 8.0
	annotationFontSize = 7.0
)

var (
	colorBlack = drawing.Color{A: 255}
	colorGrid  = drawing.Color{R: 128, G: 128, B: 128, A: 128}
	colorLabel = drawing.Color{R: 64, G: 64, B: 64, A: 255}
	colorEven  = drawing.Color{R: 0xf0, G: 0xf0, B: 0xf0, A: 204}
	colorOdd   = drawing.Color{R: 0xe0, G: 0xe0, B: 0xe0, A: 204}
)

// painter draws one report onto a go-chart raster renderer. It is built
// per render call and discarded with the canvas.
type painter struct {
	r    chart.Renderer
	st   Style
	grad gradient
	bg   drawing.Color

	cx, cy int
	radius float64

	// axisMax is the failure-rate value mapped to the outer radius:
	// the largest rate plus headroom.
	axisMax float64

	minTok, maxTok float64
}

func newPainter(r chart.Renderer, st Style, rows []reportRow) (*painter, error) {
	grad, err := newGradient(st.Palette)
	if err != nil {
		return nil, err
	}
	bg, err := parseHexColor(st.Background)
	if err != nil {
		return nil, err
	}

	// Rows arrive sorted descending, so the first carries the maximum.
	axisMax := rows[0].FailureRate * (1 + st.Headroom)
	if axisMax <= 0 {
		// An all-zero dataset still needs a finite radial axis.
		axisMax = 1
	}

	minTok, maxTok := rows[0].Tokens, rows[0].Tokens
	for _, row := range rows[1:] {
		minTok = math.Min(minTok, row.Tokens)
		maxTok = math.Max(maxTok, row.Tokens)
	}

	w, h := float64(st.Width), float64(st.Height)
	return &painter{
		r:       r,
		st:      st,
		grad:    grad,
		bg:      bg,
		cx:      int(0.40 * w),
		cy:      int(0.47 * h),
		radius:  0.33 * math.Min(w, h),
		axisMax: axisMax,
		minTok:  minTok,
		maxTok:  maxTok,
	}, nil
}

func (p *painter) paint(rows []reportRow) {
	p.drawBackground()
	p.drawGrid()
	p.drawSpokes(len(rows))
	p.drawBars(rows)
	p.drawAxisLabels(rows)
	p.drawAnnotations(rows)
	p.drawColorbar()
	p.drawSideTable(rows)
	p.drawTitle()
	p.drawCaption()
}

// angleOf returns bar i's compass angle: 0 at 12 o'clock, proceeding
// clockwise, n bars evenly spaced around the full circle.
func angleOf(i, n int) float64 {
	return 2 * math.Pi * float64(i) / float64(n)
}

// screenRad converts a compass angle to the renderer's convention:
// 0 at 3 o'clock, positive sweeping clockwise on screen.
func screenRad(compass float64) float64 {
	return compass - math.Pi/2
}

// point returns the canvas coordinates at the given compass angle and
// radius from the plot center.
func (p *painter) point(compass, radius float64) (int, int) {
	a := screenRad(compass)
	return p.cx + int(radius*math.Cos(a)), p.cy + int(radius*math.Sin(a))
}

// radiusOf maps a failure-rate value onto the radial axis.
func (p *painter) radiusOf(v float64) float64 {
	return v / p.axisMax * p.radius
}

func (p *painter) drawBackground() {
	p.r.SetFillColor(p.bg)
	p.fillRect(0, 0, p.st.Width, p.st.Height)
}

// drawGrid draws dashed circular gridlines every GridStep failure-rate
// units below the maximum, each labeled with a percent value at the
// 12 o'clock position.
func (p *painter) drawGrid() {
	p.r.SetStrokeColor(colorGrid)
	p.r.SetStrokeWidth(1.0)
	p.r.SetStrokeDashArray([]float64{2.0, 4.0})
	maxRate := p.axisMax / (1 + p.st.Headroom)
	for v := p.st.GridStep; v < maxRate; v += p.st.GridStep {
		p.r.Circle(p.radiusOf(v), p.cx, p.cy)
		p.r.Stroke()
	}
	p.r.SetStrokeDashArray(nil)

	p.r.SetFontSize(gridLabelFontSize)
	p.r.SetFontColor(colorLabel)
	for v := 0.0; v < maxRate; v += p.st.GridStep {
		label := strconv.Itoa(int(v)) + "%"
		p.r.Text(label, p.cx+6, p.cy-int(p.radiusOf(v))-6)
	}
}

// drawSpokes draws a dashed radial line at each bar angle, from the
// center out to the full axis radius.
func (p *painter) drawSpokes(n int) {
	p.r.SetStrokeColor(colorGrid)
	p.r.SetStrokeWidth(1.0)
	p.r.SetStrokeDashArray([]float64{2.0, 4.0})
	for i := 0; i < n; i++ {
		x, y := p.point(angleOf(i, n), p.radius)
		p.r.MoveTo(p.cx, p.cy)
		p.r.LineTo(x, y)
		p.r.Stroke()
	}
	p.r.SetStrokeDashArray(nil)
}

// drawBars fills one wedge per row: angular position by index, radius by
// failure rate, color by normalized token count, semi-transparent.
func (p *painter) drawBars(rows []reportRow) {
	n := len(rows)
	alpha := uint8(math.Round(p.st.BarAlpha * 255))
	for i, row := range rows {
		t := normalize(row.Tokens, p.minTok, p.maxTok)
		p.r.SetFillColor(p.grad.at(t).WithAlpha(alpha))

		barRadius := p.radiusOf(row.FailureRate)
		start := screenRad(angleOf(i, n) - p.st.BarWidth/2)
		p.r.MoveTo(p.cx, p.cy)
		p.r.ArcTo(p.cx, p.cy, barRadius, barRadius, start, p.st.BarWidth)
		p.r.LineTo(p.cx, p.cy)
		p.r.Close()
		p.r.Fill()
	}
}

// drawAxisLabels places each row's identifier just outside the outer
// radius at its bar angle.
func (p *painter) drawAxisLabels(rows []reportRow) {
	p.r.SetFontSize(axisLabelFontSize)
	p.r.SetFontColor(colorBlack)
	n := len(rows)
	for i, row := range rows {
		x, y := p.point(angleOf(i, n), p.radius*1.08)
		box := p.r.MeasureText(row.ID)
		p.r.Text(row.ID, x-box.Width()/2, y+box.Height()/2)
	}
}

// drawAnnotations writes "<id>: <rate>%" at each bar tip, rotated to run
// outward along the bar (the bar's angle counter-rotated a quarter turn,
// so the text reads along the radius).
func (p *painter) drawAnnotations(rows []reportRow) {
	p.r.SetFontSize(annotationFontSize)
	p.r.SetFontColor(colorBlack)
	n := len(rows)
	for i, row := range rows {
		compass := angleOf(i, n)
		x, y := p.point(compass, p.radiusOf(row.FailureRate)+4)
		label := fmt.Sprintf("%s: %.1f%%", row.ID, row.FailureRate)
		p.r.SetTextRotation(screenRad(compass))
		p.r.Text(label, x, y)
		p.r.ClearTextRotation()
	}
}

// drawColorbar draws the horizontal gradient legend mapping color back
// to the token-count range, with min/max ticks and a caption.
func (p *painter) drawColorbar() {
	x0 := int(0.12 * float64(p.st.Width))
	x1 := int(0.68 * float64(p.st.Width))
	y := int(0.88 * float64(p.st.Height))
	h := int(0.025 * float64(p.st.Height))

	const steps = 200
	span := float64(x1 - x0)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		p.r.SetFillColor(p.grad.at(t))
		segX := x0 + int(float64(i)/steps*span)
		segW := int(span/steps) + 1
		p.fillRect(segX, y, segW, h)
	}

	p.r.SetFontSize(gridLabelFontSize)
	p.r.SetFontColor(colorLabel)
	minLabel := strconv.FormatFloat(p.minTok, 'g', -1, 64)
	maxLabel := strconv.FormatFloat(p.maxTok, 'g', -1, 64)
	tickY := y + h + p.r.MeasureText(minLabel).Height() + 4
	p.r.Text(minLabel, x0, tickY)
	maxBox := p.r.MeasureText(maxLabel)
	p.r.Text(maxLabel, x1-maxBox.Width(), tickY)

	p.r.SetFontSize(legendFontSize)
	p.r.SetFontColor(colorBlack)
	box := p.r.MeasureText(p.st.LegendLabel)
	p.r.Text(p.st.LegendLabel, (x0+x1)/2-box.Width()/2, tickY+box.Height()+8)
}

// drawSideTable renders the legend table on the right: a header cell,
// then one row per dataset entry with alternating background shading.
func (p *painter) drawSideTable(rows []reportRow) {
	x0 := int(0.74 * float64(p.st.Width))
	width := int(0.24 * float64(p.st.Width))
	top := int(0.15 * float64(p.st.Height))
	pad := 8

	p.r.SetFontSize(tableFontSize)
	rowH := int(float64(p.r.MeasureText("Ag").Height()) * 1.7)

	cells := make([]string, 0, len(rows)+1)
	cells = append(cells, p.st.TableHeader)
	for _, row := range rows {
		cells = append(cells, fmt.Sprintf("%s: %s (%.1f%%)", row.ID, row.Module, row.FailureRate))
	}

	for i, cell := range cells {
		if i%2 == 0 {
			p.r.SetFillColor(colorEven)
		} else {
			p.r.SetFillColor(colorOdd)
		}
		y := top + i*rowH
		p.fillRect(x0, y, width, rowH)

		if i == 0 {
			// The bundled face has no bold variant; a size bump
			// stands in for the bold header.
			p.r.SetFontSize(tableHeaderSize)
		} else {
			p.r.SetFontSize(tableFontSize)
		}
		p.r.SetFontColor(colorBlack)
		p.r.Text(cell, x0+pad, y+int(float64(rowH)*0.7))
	}
}

func (p *painter) drawTitle() {
	p.r.SetFontSize(titleFontSize)
	p.r.SetFontColor(colorBlack)
	box := p.r.MeasureText(p.st.Title)
	p.r.Text(p.st.Title, p.st.Width/2-box.Width()/2, int(0.05*float64(p.st.Height))+box.Height())
}

func (p *painter) drawCaption() {
	p.r.SetFontSize(captionFontSize)
	p.r.SetFontColor(colorBlack.WithAlpha(178))
	box := p.r.MeasureText(p.st.Caption)
	p.r.Text(p.st.Caption, p.st.Width/2-box.Width()/2, int(0.975*float64(p.st.Height)))
}

func (p *painter) fillRect(x, y, w, h int) {
	p.r.MoveTo(x, y)
	p.r.LineTo(x+w, y)
	p.r.LineTo(x+w, y+h)
	p.r.LineTo(x, y+h)
	p.r.Close()
	p.r.Fill()
}
