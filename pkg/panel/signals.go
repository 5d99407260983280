package panel

import (
	"fmt"
	"strings"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// SignalsPanel shows the backend's trading signal digest
type SignalsPanel struct{}

// NewSignalsPanel creates the signals renderer
func NewSignalsPanel() *SignalsPanel { return &SignalsPanel{} }

// Render implements Renderer
func (p *SignalsPanel) Render(snap *view.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("交易信号"))
	b.WriteString("\n")

	st := snap.State(view.PanelSignals)
	switch st.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("加载中 ..."))
		return b.String()
	case view.PhaseSuccess:
	default:
		b.WriteString(dimStyle.Render("暂无数据"))
		return b.String()
	}

	sig := snap.Stock.Technical.Signals
	fmt.Fprintf(&b, "%s %s (强度: %.2f)", toneGlyph(sig.Overall), sig.Overall, sig.Strength)
	for _, msg := range sig.Messages {
		b.WriteString("\n· ")
		b.WriteString(msg)
	}

	return b.String()
}

func toneGlyph(t view.SignalTone) string {
	switch t {
	case view.ToneBullish:
		return "🟢"
	case view.ToneBearish:
		return "🔴"
	default:
		return "🟡"
	}
}
