package panel

import (
	"fmt"
	"strings"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// OverviewPanel shows the market index grid fetched once at startup
type OverviewPanel struct{}

// NewOverviewPanel creates the market overview renderer
func NewOverviewPanel() *OverviewPanel { return &OverviewPanel{} }

// Render implements Renderer
func (p *OverviewPanel) Render(snap *view.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("市场概览"))

	st := snap.State(view.PanelOverview)
	switch st.Phase {
	case view.PhaseLoading:
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("加载中 ..."))
		return b.String()
	case view.PhaseError:
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("❌ " + st.Message))
		return b.String()
	case view.PhaseSuccess:
	default:
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("暂无数据"))
		return b.String()
	}

	// An empty overview renders zero cards; that is not an error.
	for _, idx := range snap.Overview {
		b.WriteString("\n")
		glyph := "🟢"
		if idx.ChangePct < 0 {
			glyph = "🔴"
		}
		line := fmt.Sprintf("%s %s: $%.2f (%+.2f%%)", glyph, idx.Name, idx.CurrentPrice, idx.ChangePct)
		b.WriteString(changeStyle(idx.ChangePct).Render(line))
	}

	return b.String()
}
