package view

// IndicatorKind identifies the selectable secondary chart series
type IndicatorKind string

const (
	IndicatorRSI    IndicatorKind = "rsi"
	IndicatorMACD   IndicatorKind = "macd"
	IndicatorVolume IndicatorKind = "volume"
)

// IndicatorOrder is the tab display order
var IndicatorOrder = []IndicatorKind{IndicatorRSI, IndicatorMACD, IndicatorVolume}

// Label returns the tab label shown in the UI
func (k IndicatorKind) Label() string {
	switch k {
	case IndicatorRSI:
		return "RSI"
	case IndicatorMACD:
		return "MACD"
	case IndicatorVolume:
		return "成交量"
	default:
		return string(k)
	}
}

// Valid reports whether k names a known indicator
func (k IndicatorKind) Valid() bool {
	switch k {
	case IndicatorRSI, IndicatorMACD, IndicatorVolume:
		return true
	}
	return false
}

// Next returns the tab after k in display order, wrapping around
func (k IndicatorKind) Next() IndicatorKind {
	for i, kind := range IndicatorOrder {
		if kind == k {
			return IndicatorOrder[(i+1)%len(IndicatorOrder)]
		}
	}
	return IndicatorRSI
}

// Prev returns the tab before k in display order, wrapping around
func (k IndicatorKind) Prev() IndicatorKind {
	for i, kind := range IndicatorOrder {
		if kind == k {
			return IndicatorOrder[(i+len(IndicatorOrder)-1)%len(IndicatorOrder)]
		}
	}
	return IndicatorRSI
}

// SeriesFor returns the series the selected indicator implies. The second
// return is false when the backend did not supply that indicator; callers
// must surface this as "unavailable" rather than substitute placeholder
// values.
func SeriesFor(v *StockView, kind IndicatorKind) ([]SeriesPoint, bool) {
	if v == nil {
		return nil, false
	}
	series, ok := v.Series[kind]
	if !ok || len(series) == 0 {
		return nil, false
	}
	return series, true
}
