package view

// LoadPhase is the lifecycle phase of one panel group
type LoadPhase int

const (
	PhaseIdle LoadPhase = iota
	PhaseLoading
	PhaseSuccess
	PhaseNoData
	PhaseError
)

// LoadState is a phase plus, for errors, a user-facing message
type LoadState struct {
	Phase   LoadPhase
	Message string
}

// Loading returns a loading state
func Loading() LoadState { return LoadState{Phase: PhaseLoading} }

// Succeeded returns a success state
func Succeeded() LoadState { return LoadState{Phase: PhaseSuccess} }

// NoData marks a panel whose optional backend field was absent
func NoData() LoadState { return LoadState{Phase: PhaseNoData} }

// Failed returns an error state carrying the message to display
func Failed(msg string) LoadState { return LoadState{Phase: PhaseError, Message: msg} }

// Panel identifies one panel group with an independent LoadState
type Panel int

const (
	PanelStatus Panel = iota
	PanelInfo
	PanelSummary
	PanelSignals
	PanelAnalysis
	PanelCharts
	PanelOverview

	panelCount
)

// Store is the single place dashboard state lives. It is mutated only from
// the event loop, so operations take no lock; each mutation is complete
// before any renderer runs (renderers read an immutable Snapshot).
type Store struct {
	stock       *StockView
	overview    MarketOverview
	hasOverview bool
	indicator   IndicatorKind
	states      [panelCount]LoadState
}

// NewStore returns a store with every panel idle and rsi selected
func NewStore() *Store {
	return &Store{indicator: IndicatorRSI}
}

// Snapshot is an immutable copy of the store handed to renderers
type Snapshot struct {
	Stock       *StockView
	Overview    MarketOverview
	HasOverview bool
	Indicator   IndicatorKind
	states      [panelCount]LoadState
}

// State returns the LoadState of the given panel group
func (s *Snapshot) State(p Panel) LoadState {
	if p < 0 || p >= panelCount {
		return LoadState{}
	}
	return s.states[p]
}

// Snapshot copies the current state. StockView values are never mutated
// after construction, so sharing the pointer is safe.
func (st *Store) Snapshot() *Snapshot {
	return &Snapshot{
		Stock:       st.stock,
		Overview:    st.overview,
		HasOverview: st.hasOverview,
		Indicator:   st.indicator,
		states:      st.states,
	}
}

// BeginQuery transitions every stock panel to loading. Called before the
// request is issued so the user sees feedback ahead of network completion.
func (st *Store) BeginQuery() {
	for _, p := range []Panel{PanelStatus, PanelInfo, PanelSummary, PanelSignals, PanelAnalysis, PanelCharts} {
		st.states[p] = Loading()
	}
}

// SetStock installs a freshly normalized view, replacing any prior one
// wholesale. Panels whose optional data is present become success; the
// rest become the explicit no-data state.
func (st *Store) SetStock(v *StockView) {
	st.stock = v

	st.states[PanelStatus] = Succeeded()
	st.states[PanelSummary] = presence(len(v.Points) > 0)
	st.states[PanelCharts] = presence(len(v.Points) > 0)
	st.states[PanelInfo] = presence(v.Info != nil)
	st.states[PanelSignals] = presence(v.Technical != nil)
	st.states[PanelAnalysis] = presence(v.Analysis != "")
}

// SetStockError records a failed query. The prior view is retained so the
// last-known-good chart stays on screen; text panels that were reloading
// drop to no-data, and the chart panel returns to its pre-query state.
func (st *Store) SetStockError(msg string) {
	st.states[PanelStatus] = Failed(msg)
	st.states[PanelInfo] = NoData()
	st.states[PanelSummary] = NoData()
	st.states[PanelSignals] = NoData()
	st.states[PanelAnalysis] = NoData()
	st.states[PanelCharts] = presence(st.stock != nil && len(st.stock.Points) > 0)
}

// SetOverview installs the market overview. An empty list is still a
// success: the grid simply renders zero cards.
func (st *Store) SetOverview(o MarketOverview) {
	st.overview = o
	st.hasOverview = true
	st.states[PanelOverview] = Succeeded()
}

// SetOverviewError records a failed overview fetch
func (st *Store) SetOverviewError(msg string) {
	st.states[PanelOverview] = Failed(msg)
}

// BeginOverview transitions the overview panel to loading
func (st *Store) BeginOverview() {
	st.states[PanelOverview] = Loading()
}

// SelectIndicator switches the active indicator tab. Unknown kinds are
// ignored so exactly one valid kind is active at all times.
func (st *Store) SelectIndicator(kind IndicatorKind) {
	if !kind.Valid() {
		return
	}
	st.indicator = kind
}

// Indicator returns the active indicator kind
func (st *Store) Indicator() IndicatorKind { return st.indicator }

// Stock returns the currently loaded view, or nil
func (st *Store) Stock() *StockView { return st.stock }

func presence(ok bool) LoadState {
	if ok {
		return Succeeded()
	}
	return NoData()
}
