package api

// Raw response shapes for the three backend endpoints. Numeric fields
// arrive as numbers; nothing here parses strings.

type stockResponse struct {
	Points []struct {
		Time  string  `json:"time"`
		Close float64 `json:"close"`
	} `json:"points"`
	Summary struct {
		Symbol     string  `json:"symbol"`
		FirstTime  string  `json:"first_time"`
		LastTime   string  `json:"last_time"`
		FirstClose float64 `json:"first_close"`
		LastClose  float64 `json:"last_close"`
		Change     float64 `json:"change"`
		ChangePct  float64 `json:"change_pct"`
		High       float64 `json:"high"`
		Low        float64 `json:"low"`
	} `json:"summary"`
	LLMAnalysis string `json:"llm_analysis"`
	Error       string `json:"error"`
}

type stockDataResponse struct {
	Symbol string `json:"symbol"`
	Period string `json:"period"`
	Data   []struct {
		Date   string  `json:"date"`
		Close  float64 `json:"close"`
		Volume float64 `json:"volume"`
	} `json:"data"`
	RSI []struct {
		Value float64 `json:"value"`
	} `json:"rsi"`
	StockInfo *struct {
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
		Error         string  `json:"error"`
	} `json:"stock_info"`
	TechnicalIndicators *struct {
		Summary string `json:"summary"`
		Signals struct {
			OverallSignal  string   `json:"overall_signal"`
			SignalStrength float64  `json:"signal_strength"`
			Signals        []string `json:"signals"`
		} `json:"signals"`
	} `json:"technical_indicators"`
	Analysis string `json:"analysis"`
	Error    string `json:"error"`
}

type indexQuote struct {
	CurrentPrice float64 `json:"current_price"`
	Change       float64 `json:"change"`
	ChangePct    float64 `json:"change_pct"`
}

// errorEnvelope pulls just the error field out of any response body
type errorEnvelope struct {
	Error string `json:"error"`
}
