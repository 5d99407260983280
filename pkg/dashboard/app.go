// Package dashboard wires the fetch orchestrator, state store and panel
// renderers into a terminal event loop
package dashboard

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xinguang/stock-dashboard/pkg/config"
	"github.com/xinguang/stock-dashboard/pkg/history"
	"github.com/xinguang/stock-dashboard/pkg/panel"
	"github.com/xinguang/stock-dashboard/pkg/view"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Fetcher is the slice of the API client the dashboard needs
type Fetcher interface {
	FetchStockData(ctx context.Context, symbol, period, interval, analysisType string) (*view.StockView, error)
	FetchMarketOverview(ctx context.Context) (view.MarketOverview, error)
}

// Messages
type (
	// stockResultMsg carries one query completion. seq identifies the
	// request it answers; completions of superseded requests are dropped.
	stockResultMsg struct {
		seq  int
		view *view.StockView
		err  error
	}

	// overviewResultMsg carries the startup market overview completion
	overviewResultMsg struct {
		overview view.MarketOverview
		err      error
	}
)

// Model is the dashboard TUI state
type Model struct {
	cfg    *config.Config
	client Fetcher
	store  *view.Store
	hist   *history.History

	input  textinput.Model
	width  int
	height int
	ready  bool

	// seq is the monotonically increasing id of the latest issued stock
	// query; only its completion may mutate the store
	seq int

	status         *panel.StatusPanel
	overview       *panel.OverviewPanel
	info           *panel.InfoPanel
	summary        *panel.SummaryPanel
	signals        *panel.SignalsPanel
	analysis       *panel.AnalysisPanel
	priceChart     *panel.PriceChart
	indicatorChart *panel.IndicatorChart
}

// New creates the dashboard model
func New(cfg *config.Config, client Fetcher) *Model {
	ti := textinput.New()
	ti.Placeholder = "股票代码，如 AAPL"
	ti.Prompt = "> "
	ti.CharLimit = 12
	ti.Focus()
	ti.SetValue(cfg.DefaultSymbol)

	return &Model{
		cfg:            cfg,
		client:         client,
		store:          view.NewStore(),
		hist:           history.New(cfg.HistorySize),
		input:          ti,
		status:         panel.NewStatusPanel(),
		overview:       panel.NewOverviewPanel(),
		info:           panel.NewInfoPanel(),
		summary:        panel.NewSummaryPanel(),
		signals:        panel.NewSignalsPanel(),
		analysis:       panel.NewAnalysisPanel(),
		priceChart:     panel.NewPriceChart(),
		indicatorChart: panel.NewIndicatorChart(),
	}
}

// Init implements tea.Model. The market overview is fetched exactly once
// here; there is no refresh and no retry.
func (m *Model) Init() tea.Cmd {
	m.store.BeginOverview()
	return tea.Batch(textinput.Blink, m.fetchOverviewCmd())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m, m.runQuery()

		case tea.KeyTab:
			m.store.SelectIndicator(m.store.Indicator().Next())
			return m, nil

		case tea.KeyShiftTab:
			m.store.SelectIndicator(m.store.Indicator().Prev())
			return m, nil

		case tea.KeyUp:
			if symbol, ok := m.hist.Prev(); ok {
				m.input.SetValue(symbol)
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			symbol, ok := m.hist.Next()
			if !ok {
				symbol = ""
			}
			m.input.SetValue(symbol)
			m.input.CursorEnd()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeCharts()
		return m, nil

	case stockResultMsg:
		if msg.seq != m.seq {
			// a newer query superseded this one; drop it on arrival
			return m, nil
		}
		if msg.err != nil {
			m.store.SetStockError(msg.err.Error())
		} else {
			m.store.SetStock(msg.view)
			m.hist.Add(msg.view.Symbol, len(msg.view.Points))
		}
		return m, nil

	case overviewResultMsg:
		if msg.err != nil {
			m.store.SetOverviewError(msg.err.Error())
		} else {
			m.store.SetOverview(msg.overview)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runQuery validates the input and issues the stock request. An empty
// trimmed symbol is a precondition failure, not an error: nothing happens.
func (m *Model) runQuery() tea.Cmd {
	symbol := strings.ToUpper(strings.TrimSpace(m.input.Value()))
	if symbol == "" {
		return nil
	}

	m.seq++
	seq := m.seq
	m.store.BeginQuery()

	period := m.cfg.Period
	interval := m.cfg.Interval
	analysisType := m.cfg.AnalysisType
	client := m.client

	return func() tea.Msg {
		v, err := client.FetchStockData(context.Background(), symbol, period, interval, analysisType)
		return stockResultMsg{seq: seq, view: v, err: err}
	}
}

func (m *Model) fetchOverviewCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		o, err := client.FetchMarketOverview(context.Background())
		return overviewResultMsg{overview: o, err: err}
	}
}

const sideWidth = 42

func (m *Model) resizeCharts() {
	chartWidth := m.width - sideWidth - 4
	if chartWidth < 40 {
		chartWidth = 40
	}
	chartHeight := (m.height - 14) / 2
	if chartHeight < 8 {
		chartHeight = 8
	}
	m.priceChart.SetSize(chartWidth, chartHeight)
	m.indicatorChart.SetSize(chartWidth, chartHeight)
}

// View implements tea.Model. All panels render from one snapshot taken at
// the top of the pass, so no renderer can observe a half-applied update.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	snap := m.store.Snapshot()

	var b strings.Builder
	b.WriteString(headerStyle.Width(m.width).Render("📈 智能股票仪表盘"))
	b.WriteString("\n")
	b.WriteString(m.overview.Render(snap))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.status.Render(snap))
	b.WriteString("\n\n")

	charts := lipgloss.JoinVertical(lipgloss.Left,
		m.priceChart.Render(snap),
		"",
		m.indicatorChart.Render(snap),
	)
	side := lipgloss.NewStyle().Width(sideWidth).PaddingLeft(2).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.info.Render(snap),
			"",
			m.summary.Render(snap),
			"",
			m.signals.Render(snap),
		),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, charts, side))
	b.WriteString("\n\n")
	b.WriteString(m.analysis.Render(snap))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("回车 查询 · Tab 切换指标 · ↑/↓ 历史 · Esc 退出"))

	return b.String()
}
