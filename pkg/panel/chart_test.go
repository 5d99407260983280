package panel

import (
	"strings"
	"testing"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

func chartView() *view.StockView {
	points := []view.PricePoint{
		{Time: "2026-08-01", Close: 100},
		{Time: "2026-08-02", Close: 101},
		{Time: "2026-08-03", Close: 99},
	}
	return &view.StockView{
		Symbol:  "AAPL",
		Points:  points,
		Summary: view.Summarize(points),
		Series: map[view.IndicatorKind][]view.SeriesPoint{
			view.IndicatorRSI:    {{Time: "2026-08-01", Value: 50}, {Time: "2026-08-02", Value: 55}, {Time: "2026-08-03", Value: 45}},
			view.IndicatorVolume: {{Time: "2026-08-01", Value: 1000}, {Time: "2026-08-02", Value: 1200}, {Time: "2026-08-03", Value: 800}},
		},
	}
}

func TestPriceChartIdempotentRender(t *testing.T) {
	st := view.NewStore()
	st.SetStock(chartView())
	snap := st.Snapshot()

	p := NewPriceChart()
	first := p.Render(snap)
	widget := p.chart

	second := p.Render(snap)

	if first != second {
		t.Error("re-rendering the same snapshot must produce identical output")
	}
	if p.chart != widget {
		t.Error("re-rendering the same snapshot must reuse the widget, not rebuild it")
	}
	if widget == nil {
		t.Fatal("expected a live chart widget")
	}
}

func TestPriceChartReplacesWidgetOnNewView(t *testing.T) {
	st := view.NewStore()
	st.SetStock(chartView())

	p := NewPriceChart()
	p.Render(st.Snapshot())
	old := p.chart

	st.SetStock(chartView()) // a new view replaces the old wholesale
	p.Render(st.Snapshot())

	if p.chart == old {
		t.Error("a new view must replace the chart widget")
	}
}

func TestIndicatorSwitchRebuildsOnlyIndicatorChart(t *testing.T) {
	st := view.NewStore()
	st.SetStock(chartView())

	price := NewPriceChart()
	indicator := NewIndicatorChart()

	snap := st.Snapshot()
	priceOut := price.Render(snap)
	indicator.Render(snap)

	priceWidget := price.chart
	indicatorWidget := indicator.chart

	st.SelectIndicator(view.IndicatorVolume)
	snap = st.Snapshot()

	if got := price.Render(snap); got != priceOut {
		t.Error("price chart output must not change on indicator selection")
	}
	if price.chart != priceWidget {
		t.Error("price chart widget must be untouched by indicator selection")
	}

	indicator.Render(snap)
	if indicator.chart == indicatorWidget {
		t.Error("indicator chart must rebuild for the new series")
	}
	if indicator.lastKind != view.IndicatorVolume {
		t.Errorf("expected volume active, got %s", indicator.lastKind)
	}
}

func TestIndicatorChartMACDUnavailable(t *testing.T) {
	st := view.NewStore()
	st.SetStock(chartView())
	st.SelectIndicator(view.IndicatorMACD)

	c := NewIndicatorChart()
	out := c.Render(st.Snapshot())

	if !strings.Contains(out, "MACD 数据不可用") {
		t.Errorf("missing macd must render as unavailable, got %q", out)
	}
	if c.chart != nil {
		t.Error("no widget may exist for an unavailable series")
	}
}

func TestChartsEmptyView(t *testing.T) {
	st := view.NewStore()
	snap := st.Snapshot()

	p := NewPriceChart()
	if out := p.Render(snap); !strings.Contains(out, "暂无图表数据") {
		t.Errorf("expected placeholder, got %q", out)
	}
	if p.chart != nil {
		t.Error("no widget may exist without data")
	}
}

func TestValueMarginFlatSeries(t *testing.T) {
	minV, maxV, margin := valueMargin([]float64{50, 50, 50})
	if minV != 50 || maxV != 50 {
		t.Errorf("wrong extremes: %v %v", minV, maxV)
	}
	if margin <= 0 {
		t.Error("flat series still needs a visual band")
	}
}
