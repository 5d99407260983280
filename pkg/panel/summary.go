package panel

import (
	"fmt"
	"strings"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// SummaryPanel shows the queried range summary plus, when the backend
// supplied one, the technical indicator digest
type SummaryPanel struct{}

// NewSummaryPanel creates the summary renderer
func NewSummaryPanel() *SummaryPanel { return &SummaryPanel{} }

// Render implements Renderer
func (p *SummaryPanel) Render(snap *view.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("行情摘要"))
	b.WriteString("\n")

	st := snap.State(view.PanelSummary)
	switch st.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("加载中 ..."))
		return b.String()
	case view.PhaseSuccess:
	default:
		b.WriteString(dimStyle.Render("暂无数据"))
		return b.String()
	}

	s := snap.Stock.Summary
	fmt.Fprintf(&b, "区间: %s ~ %s\n", s.FirstTime, s.LastTime)
	fmt.Fprintf(&b, "收盘: %.2f → %.2f\n", s.FirstClose, s.LastClose)
	b.WriteString("涨跌: ")
	b.WriteString(changeStyle(s.Change).Render(fmt.Sprintf("%+.2f (%+.2f%%)", s.Change, s.ChangePct)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "最高: %.2f  最低: %.2f", s.High, s.Low)

	if ti := snap.Stock.Technical; ti != nil && ti.Summary != "" {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("技术指标"))
		b.WriteString("\n")
		b.WriteString(ti.Summary)
	}

	return b.String()
}
