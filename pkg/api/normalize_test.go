package api

import (
	"errors"
	"testing"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

func TestCheckEnvelopeErrorFieldWins(t *testing.T) {
	// an explicit error field is authoritative even on HTTP 200
	_, err := NormalizeStock(200, []byte(`{"error": "symbol not found"}`))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "symbol not found" {
		t.Errorf("expected body error message, got %q", apiErr.Message)
	}
}

func TestCheckEnvelopeHTTPStatus(t *testing.T) {
	_, err := NormalizeStock(500, []byte(`{}`))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "HTTP error: 500" {
		t.Errorf("expected synthesized message, got %q", apiErr.Message)
	}
}

func TestNormalizeStock(t *testing.T) {
	body := []byte(`{
		"points": [{"time": "2026-08-01T09:30:00", "close": 100.5}, {"time": "2026-08-01T09:35:00", "close": 101.0}],
		"summary": {"symbol": "AAPL", "first_time": "2026-08-01T09:30:00", "last_time": "2026-08-01T09:35:00",
			"first_close": 100.5, "last_close": 101.0, "change": 0.5, "change_pct": 0.497,
			"high": 101.2, "low": 100.1},
		"llm_analysis": "steady climb",
		"error": null
	}`)

	v, err := NormalizeStock(200, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", v.Symbol)
	}
	if len(v.Points) != 2 {
		t.Errorf("expected 2 points, got %d", len(v.Points))
	}
	if v.Summary.Change != 0.5 || v.Summary.High != 101.2 {
		t.Errorf("summary not carried over: %+v", v.Summary)
	}
	if v.Analysis != "steady climb" {
		t.Errorf("expected analysis text, got %q", v.Analysis)
	}
	if v.Info != nil || v.Technical != nil {
		t.Error("simple endpoint carries no info/technical blocks")
	}
}

func stockDataBody() []byte {
	return []byte(`{
		"symbol": "AAPL",
		"period": "1mo",
		"data": [
			{"date": "2026-08-01", "close": 100, "volume": 1000},
			{"date": "2026-08-02", "close": 102, "volume": 1100},
			{"date": "2026-08-03", "close": 98.77, "volume": 900}
		],
		"rsi": [{"value": 50}, {"value": 60}, {"value": 40}],
		"stock_info": {"name": "Apple Inc.", "sector": "Technology", "industry": "Consumer Electronics",
			"market_cap": 3000000000000, "pe_ratio": 28.5, "dividend_yield": 0.0055,
			"beta": 1.2, "price": 98.77, "currency": "USD", "exchange": "NMS"},
		"technical_indicators": {"summary": "RSI: 40.00 (neutral)",
			"signals": {"overall_signal": "bearish", "signal_strength": 0.4,
				"signals": ["MACD死叉，趋势转弱"]}},
		"analysis": "short term weakness"
	}`)
}

func TestNormalizeStockData(t *testing.T) {
	v, err := NormalizeStockData("AAPL", 200, stockDataBody())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(v.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(v.Points))
	}
	// summary is derived from the point sequence
	if v.Summary.Change != 98.77-100 {
		t.Errorf("expected derived change, got %v", v.Summary.Change)
	}
	if v.Summary.High != 102 || v.Summary.Low != 98.77 {
		t.Errorf("wrong derived high/low: %+v", v.Summary)
	}

	rsi, ok := view.SeriesFor(v, view.IndicatorRSI)
	if !ok || len(rsi) != 3 {
		t.Fatalf("rsi series missing or wrong length")
	}
	if rsi[1].Time != "2026-08-02" {
		t.Errorf("rsi times should align with data dates, got %s", rsi[1].Time)
	}
	if vol, ok := view.SeriesFor(v, view.IndicatorVolume); !ok || vol[2].Value != 900 {
		t.Error("volume series should come from data rows")
	}
	if _, ok := view.SeriesFor(v, view.IndicatorMACD); ok {
		t.Error("macd must stay absent when the backend does not supply it")
	}

	if v.Info == nil || v.Info.Name != "Apple Inc." {
		t.Fatalf("stock info not normalized: %+v", v.Info)
	}
	if v.Technical == nil || v.Technical.Signals.Overall != view.ToneBearish {
		t.Fatalf("technical block not normalized: %+v", v.Technical)
	}
	if len(v.Technical.Signals.Messages) != 1 {
		t.Errorf("expected 1 signal message, got %d", len(v.Technical.Signals.Messages))
	}
}

func TestNormalizeStockDataMisalignedRSI(t *testing.T) {
	body := []byte(`{
		"data": [{"date": "a", "close": 1, "volume": 1}, {"date": "b", "close": 2, "volume": 2}],
		"rsi": [{"value": 50}]
	}`)

	_, err := NormalizeStockData("X", 200, body)

	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("misaligned rsi must be rejected, got %v", err)
	}
}

func TestNormalizeStockDataOptionalAbsent(t *testing.T) {
	body := []byte(`{"data": [{"date": "a", "close": 1, "volume": 10}]}`)

	v, err := NormalizeStockData("TSLA", 200, body)
	if err != nil {
		t.Fatalf("absent optional blocks must not error: %v", err)
	}
	if v.Symbol != "TSLA" {
		t.Errorf("expected queried symbol fallback, got %s", v.Symbol)
	}
	if v.Info != nil || v.Technical != nil || v.Analysis != "" {
		t.Error("absent blocks should map to absence")
	}
}

func TestNormalizeStockDataToneAndStrength(t *testing.T) {
	body := []byte(`{
		"data": [{"date": "a", "close": 1, "volume": 1}],
		"technical_indicators": {"summary": "", "signals": {"overall_signal": "sideways", "signal_strength": -0.4, "signals": []}}
	}`)

	v, err := NormalizeStockData("X", 200, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Technical.Signals.Overall != view.ToneNeutral {
		t.Errorf("unknown tone should normalize to neutral, got %s", v.Technical.Signals.Overall)
	}
	if v.Technical.Signals.Strength != 0 {
		t.Errorf("strength should clamp into [0,1], got %v", v.Technical.Signals.Strength)
	}
}

func TestNormalizeOverviewPreservesOrder(t *testing.T) {
	body := []byte(`{"market_overview": {
		"S&P 500": {"current_price": 5000, "change": 10, "change_pct": 0.2},
		"Dow Jones": {"current_price": 40000, "change": -50, "change_pct": -0.12},
		"NASDAQ": {"current_price": 17000, "change": 80, "change_pct": 0.47}
	}}`)

	o, err := NormalizeOverview(200, body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(o) != 3 {
		t.Fatalf("expected 3 indices, got %d", len(o))
	}
	want := []string{"S&P 500", "Dow Jones", "NASDAQ"}
	for i, name := range want {
		if o[i].Name != name {
			t.Errorf("entry %d: expected %s, got %s", i, name, o[i].Name)
		}
	}
	if o[1].Change != -50 {
		t.Errorf("expected Dow change -50, got %v", o[1].Change)
	}
}

func TestNormalizeOverviewEmpty(t *testing.T) {
	o, err := NormalizeOverview(200, []byte(`{"market_overview": {}}`))
	if err != nil {
		t.Fatalf("an empty overview is not an error: %v", err)
	}
	if len(o) != 0 {
		t.Errorf("expected zero entries, got %d", len(o))
	}
}

func TestNormalizeOverviewNull(t *testing.T) {
	o, err := NormalizeOverview(200, []byte(`{"market_overview": null}`))
	if err != nil {
		t.Fatalf("null overview should degrade to empty: %v", err)
	}
	if len(o) != 0 {
		t.Errorf("expected zero entries, got %d", len(o))
	}
}
