package panel

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// Each chart panel owns at most one linechart widget. The widget is
// replaced only when the input state changes; the previous instance is
// released before the new one is built, and a same-state re-render reuses
// the existing widget unchanged.

var (
	rsiLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	volumeLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// PriceChart renders the close-price line for the loaded symbol. It is
// unaffected by the indicator selection.
type PriceChart struct {
	width  int
	height int

	chart     *linechart.Model
	lastStock *view.StockView
	lastW     int
	lastH     int
}

// NewPriceChart creates the price chart renderer with a default size
func NewPriceChart() *PriceChart {
	return &PriceChart{width: 64, height: 12}
}

// SetSize resizes the chart area
func (p *PriceChart) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Render implements Renderer
func (p *PriceChart) Render(snap *view.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("价格走势"))
	b.WriteString("\n")

	st := snap.State(view.PanelCharts)
	if st.Phase == view.PhaseLoading && p.chart != nil {
		// keep showing the last chart while a reload is in flight
		b.WriteString(p.chart.View())
		return b.String()
	}

	v := snap.Stock
	if st.Phase != view.PhaseSuccess || v == nil || len(v.Points) == 0 {
		p.chart = nil
		b.WriteString(dimStyle.Render("暂无图表数据"))
		return b.String()
	}

	if p.chart == nil || p.lastStock != v || p.lastW != p.width || p.lastH != p.height {
		p.chart = nil // release the stale widget before building its replacement
		values := make([]float64, len(v.Points))
		labels := make([]string, len(v.Points))
		for i, pt := range v.Points {
			values[i] = pt.Close
			labels[i] = pt.Time
		}
		p.chart = buildLineChart(values, labels, changeStyle(v.Summary.Change), p.width, p.height)
		p.lastStock = v
		p.lastW = p.width
		p.lastH = p.height
	}

	b.WriteString(p.chart.View())
	return b.String()
}

// IndicatorChart renders the selected secondary series plus the tab bar
type IndicatorChart struct {
	width  int
	height int

	chart     *linechart.Model
	lastStock *view.StockView
	lastKind  view.IndicatorKind
	lastW     int
	lastH     int
}

// NewIndicatorChart creates the indicator chart renderer with a default size
func NewIndicatorChart() *IndicatorChart {
	return &IndicatorChart{width: 64, height: 10}
}

// SetSize resizes the chart area
func (c *IndicatorChart) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Render implements Renderer
func (c *IndicatorChart) Render(snap *view.Snapshot) string {
	var b strings.Builder
	b.WriteString(renderTabs(snap.Indicator))
	b.WriteString("\n")

	st := snap.State(view.PanelCharts)
	if st.Phase == view.PhaseLoading && c.chart != nil {
		b.WriteString(c.chart.View())
		return b.String()
	}
	if st.Phase != view.PhaseSuccess || snap.Stock == nil {
		c.chart = nil
		b.WriteString(dimStyle.Render("暂无图表数据"))
		return b.String()
	}

	series, ok := view.SeriesFor(snap.Stock, snap.Indicator)
	if !ok {
		// The backend did not supply this indicator. Say so instead of
		// plotting made-up values.
		c.chart = nil
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s 数据不可用", snap.Indicator.Label())))
		return b.String()
	}

	if c.chart == nil || c.lastStock != snap.Stock || c.lastKind != snap.Indicator ||
		c.lastW != c.width || c.lastH != c.height {
		c.chart = nil
		values := make([]float64, len(series))
		labels := make([]string, len(series))
		for i, pt := range series {
			values[i] = pt.Value
			labels[i] = pt.Time
		}
		c.chart = buildLineChart(values, labels, lineStyleFor(snap.Indicator), c.width, c.height)
		c.lastStock = snap.Stock
		c.lastKind = snap.Indicator
		c.lastW = c.width
		c.lastH = c.height
	}

	b.WriteString(c.chart.View())
	return b.String()
}

func lineStyleFor(kind view.IndicatorKind) lipgloss.Style {
	if kind == view.IndicatorVolume {
		return volumeLineStyle
	}
	return rsiLineStyle
}

func renderTabs(active view.IndicatorKind) string {
	tabs := make([]string, 0, len(view.IndicatorOrder))
	for _, kind := range view.IndicatorOrder {
		style := tabInactiveStyle
		if kind == active {
			style = tabActiveStyle
		}
		tabs = append(tabs, style.Render(kind.Label()))
	}
	return strings.Join(tabs, " ")
}

// buildLineChart draws values as a braille line over an index X axis,
// labeling only the range edges with their timestamps
func buildLineChart(values []float64, labels []string, lineStyle lipgloss.Style, width, height int) *linechart.Model {
	minV, maxV, margin := valueMargin(values)

	maxX := float64(len(values) - 1)
	if maxX < 1 {
		maxX = 1
	}

	xFmt := func(index int, v float64) string {
		idx := int(math.Round(v))
		if idx <= 0 {
			return shortTime(labels[0])
		}
		if idx >= len(labels)-1 {
			return shortTime(labels[len(labels)-1])
		}
		return ""
	}
	yFmt := func(index int, v float64) string {
		switch {
		case math.Abs(v) >= 1e9:
			return fmt.Sprintf("%.1fB", v/1e9)
		case math.Abs(v) >= 1e6:
			return fmt.Sprintf("%.1fM", v/1e6)
		case math.Abs(v) >= 100:
			return fmt.Sprintf("%.1f", v)
		default:
			return fmt.Sprintf("%.2f", v)
		}
	}

	lc := linechart.New(width, height,
		0, maxX,
		minV-margin, maxV+margin,
		linechart.WithXYSteps(4, 4),
		linechart.WithXLabelFormatter(xFmt),
		linechart.WithYLabelFormatter(yFmt),
		linechart.WithStyles(lipgloss.Style{}, lipgloss.Style{}, lineStyle),
	)

	for i := 0; i < len(values)-1; i++ {
		p1 := canvas.Float64Point{X: float64(i), Y: values[i]}
		p2 := canvas.Float64Point{X: float64(i + 1), Y: values[i+1]}
		lc.DrawBrailleLineWithStyle(p1, p2, lineStyle)
	}
	lc.DrawXYAxisAndLabel()

	return &lc
}

// valueMargin returns the value range plus a visual margin so the line
// never hugs the frame; flat series still get a nonzero band
func valueMargin(values []float64) (minV, maxV, margin float64) {
	minV = values[0]
	maxV = values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	span := maxV - minV
	if span < 1e-9 {
		margin = math.Abs(minV) * 0.005
		if margin < 1e-6 {
			margin = 1
		}
		return minV, maxV, margin
	}
	return minV, maxV, span * 0.1
}

// shortTime trims an ISO timestamp down to what fits under an axis
func shortTime(t string) string {
	if len(t) > 10 {
		return t[:10]
	}
	return t
}
