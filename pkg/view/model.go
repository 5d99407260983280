// Package view holds the normalized view models and the dashboard state store
package view

// PricePoint is one entry on the price chart's time axis
type PricePoint struct {
	Time  string  `json:"time"`
	Close float64 `json:"close"`
}

// SeriesPoint is one entry of an indicator series, index-aligned with Points
type SeriesPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// Summary describes the queried range as a whole
type Summary struct {
	FirstTime  string  `json:"first_time"`
	LastTime   string  `json:"last_time"`
	FirstClose float64 `json:"first_close"`
	LastClose  float64 `json:"last_close"`
	Change     float64 `json:"change"`
	ChangePct  float64 `json:"change_pct"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
}

// StockInfo holds company fundamentals. Optional: the backend may omit it.
type StockInfo struct {
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Industry      string  `json:"industry"`
	MarketCap     float64 `json:"market_cap"`
	PERatio       float64 `json:"pe_ratio"`
	DividendYield float64 `json:"dividend_yield"`
	Beta          float64 `json:"beta"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Exchange      string  `json:"exchange"`
}

// SignalTone is the backend's overall read of the technical signals
type SignalTone string

const (
	ToneBullish SignalTone = "bullish"
	ToneBearish SignalTone = "bearish"
	ToneNeutral SignalTone = "neutral"
)

// Signals holds the backend-computed trading signals
type Signals struct {
	Overall  SignalTone `json:"overall_signal"`
	Strength float64    `json:"signal_strength"`
	Messages []string   `json:"signals"`
}

// Technical holds the backend-computed technical analysis block. Optional.
type Technical struct {
	Summary string  `json:"summary"`
	Signals Signals `json:"signals"`
}

// StockView is the normalized in-memory representation of one symbol's
// queried data. It is created whole by the normalizer and never mutated;
// a new query replaces it wholesale.
type StockView struct {
	Symbol    string
	Points    []PricePoint
	Summary   Summary
	Info      *StockInfo
	Technical *Technical

	// Series maps indicator kind to its values. A missing key means the
	// backend did not supply that indicator; renderers treat absence as
	// "unavailable", never as an error.
	Series map[IndicatorKind][]SeriesPoint

	Analysis string
}

// IndexQuote is one market index card in the overview grid
type IndexQuote struct {
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	Change       float64 `json:"change"`
	ChangePct    float64 `json:"change_pct"`
}

// MarketOverview lists index quotes in the order the backend sent them
type MarketOverview []IndexQuote

// Summarize derives the range summary from an ordered point sequence.
// The enhanced stock endpoint does not carry a summary block, so the view
// layer computes one; high/low come from closes since that is all the
// chart payload carries.
func Summarize(points []PricePoint) Summary {
	if len(points) == 0 {
		return Summary{}
	}

	first := points[0]
	last := points[len(points)-1]

	s := Summary{
		FirstTime:  first.Time,
		LastTime:   last.Time,
		FirstClose: first.Close,
		LastClose:  last.Close,
		Change:     last.Close - first.Close,
		High:       first.Close,
		Low:        first.Close,
	}
	if first.Close != 0 {
		s.ChangePct = s.Change / first.Close * 100
	}

	for _, p := range points {
		if p.Close > s.High {
			s.High = p.Close
		}
		if p.Close < s.Low {
			s.Low = p.Close
		}
	}
	return s
}
