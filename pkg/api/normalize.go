package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// checkEnvelope applies the shared failure contract: a body-level error
// field wins, then a non-2xx status; only then is the payload trusted.
func checkEnvelope(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		return &APIError{Message: env.Error}
	}
	if status < 200 || status > 299 {
		return &APIError{Message: fmt.Sprintf("HTTP error: %d", status)}
	}
	return nil
}

// NormalizeStock reshapes a /api/stock response into a StockView
func NormalizeStock(status int, body []byte) (*view.StockView, error) {
	if err := checkEnvelope(status, body); err != nil {
		return nil, err
	}

	var resp stockResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("malformed stock response: %v", err)}
	}

	points := make([]view.PricePoint, 0, len(resp.Points))
	for _, p := range resp.Points {
		points = append(points, view.PricePoint{Time: p.Time, Close: p.Close})
	}

	return &view.StockView{
		Symbol: resp.Summary.Symbol,
		Points: points,
		Summary: view.Summary{
			FirstTime:  resp.Summary.FirstTime,
			LastTime:   resp.Summary.LastTime,
			FirstClose: resp.Summary.FirstClose,
			LastClose:  resp.Summary.LastClose,
			Change:     resp.Summary.Change,
			ChangePct:  resp.Summary.ChangePct,
			High:       resp.Summary.High,
			Low:        resp.Summary.Low,
		},
		Series:   map[view.IndicatorKind][]view.SeriesPoint{},
		Analysis: resp.LLMAnalysis,
	}, nil
}

// NormalizeStockData reshapes a /api/stock_data response into a StockView.
// The symbol argument is the queried symbol, used when the body omits one.
// Optional blocks (stock_info, technical_indicators, rsi) map to absence,
// never to an error; a supplied rsi series that is not index-aligned with
// the data sequence is rejected.
func NormalizeStockData(symbol string, status int, body []byte) (*view.StockView, error) {
	if err := checkEnvelope(status, body); err != nil {
		return nil, err
	}

	var resp stockDataResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("malformed stock data response: %v", err)}
	}

	if resp.Symbol != "" {
		symbol = resp.Symbol
	}

	points := make([]view.PricePoint, 0, len(resp.Data))
	volume := make([]view.SeriesPoint, 0, len(resp.Data))
	for _, d := range resp.Data {
		points = append(points, view.PricePoint{Time: d.Date, Close: d.Close})
		volume = append(volume, view.SeriesPoint{Time: d.Date, Value: d.Volume})
	}

	series := map[view.IndicatorKind][]view.SeriesPoint{}
	if len(volume) > 0 {
		series[view.IndicatorVolume] = volume
	}

	if len(resp.RSI) > 0 {
		if len(resp.RSI) != len(resp.Data) {
			return nil, &ValidationError{Message: fmt.Sprintf(
				"rsi series misaligned: %d values for %d points", len(resp.RSI), len(resp.Data))}
		}
		rsi := make([]view.SeriesPoint, len(resp.RSI))
		for i, r := range resp.RSI {
			rsi[i] = view.SeriesPoint{Time: resp.Data[i].Date, Value: r.Value}
		}
		series[view.IndicatorRSI] = rsi
	}
	// The backend supplies no macd series today; the key stays absent and
	// the indicator chart shows it as unavailable.

	v := &view.StockView{
		Symbol:   symbol,
		Points:   points,
		Summary:  view.Summarize(points),
		Series:   series,
		Analysis: resp.Analysis,
	}

	if info := resp.StockInfo; info != nil && info.Error == "" && info.Name != "" {
		v.Info = &view.StockInfo{
			Name:          info.Name,
			Sector:        info.Sector,
			Industry:      info.Industry,
			MarketCap:     info.MarketCap,
			PERatio:       info.PERatio,
			DividendYield: info.DividendYield,
			Beta:          info.Beta,
			Price:         info.Price,
			Currency:      info.Currency,
			Exchange:      info.Exchange,
		}
	}

	if ti := resp.TechnicalIndicators; ti != nil {
		v.Technical = &view.Technical{
			Summary: ti.Summary,
			Signals: view.Signals{
				Overall:  normalizeTone(ti.Signals.OverallSignal),
				Strength: clamp01(ti.Signals.SignalStrength),
				Messages: ti.Signals.Signals,
			},
		}
	}

	return v, nil
}

// NormalizeOverview reshapes a /api/market_overview response, preserving
// the entry order as received. Go maps drop ordering, so the overview
// object is walked token by token.
func NormalizeOverview(status int, body []byte) (view.MarketOverview, error) {
	if err := checkEnvelope(status, body); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	tok, err := dec.Token()
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("malformed overview response: %v", err)}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &ValidationError{Message: "malformed overview response: object expected"}
	}

	overview := view.MarketOverview{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("malformed overview response: %v", err)}
		}
		key, _ := keyTok.(string)

		if key != "market_overview" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, &ValidationError{Message: fmt.Sprintf("malformed overview response: %v", err)}
			}
			continue
		}

		inner, err := dec.Token()
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("malformed overview response: %v", err)}
		}
		if d, ok := inner.(json.Delim); !ok || d != '{' {
			// null or unexpected shape: treat as an empty overview
			continue
		}
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, &ValidationError{Message: fmt.Sprintf("malformed overview response: %v", err)}
			}
			name, _ := nameTok.(string)

			var q indexQuote
			if err := dec.Decode(&q); err != nil {
				return nil, &ValidationError{Message: fmt.Sprintf("malformed overview entry %q: %v", name, err)}
			}
			overview = append(overview, view.IndexQuote{
				Name:         name,
				CurrentPrice: q.CurrentPrice,
				Change:       q.Change,
				ChangePct:    q.ChangePct,
			})
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, &ValidationError{Message: fmt.Sprintf("malformed overview response: %v", err)}
		}
	}

	return overview, nil
}

func normalizeTone(s string) view.SignalTone {
	switch view.SignalTone(s) {
	case view.ToneBullish, view.ToneBearish, view.ToneNeutral:
		return view.SignalTone(s)
	default:
		return view.ToneNeutral
	}
}

// clamp01 pins the backend's signal ratio into the documented [0,1] range
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
