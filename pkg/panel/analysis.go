package panel

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// AnalysisPanel renders the AI market analysis text as markdown
type AnalysisPanel struct {
	mdRenderer *glamour.TermRenderer

	// cache of the last rendered text, keeps same-state re-renders cheap
	// and byte-identical
	lastText string
	rendered string
}

// NewAnalysisPanel creates the analysis renderer
func NewAnalysisPanel() *AnalysisPanel {
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	return &AnalysisPanel{mdRenderer: renderer}
}

// Render implements Renderer
func (p *AnalysisPanel) Render(snap *view.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("AI 分析"))
	b.WriteString("\n")

	st := snap.State(view.PanelAnalysis)
	switch st.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("分析生成中 ..."))
		return b.String()
	case view.PhaseSuccess:
	default:
		b.WriteString(dimStyle.Render("暂无分析"))
		return b.String()
	}

	text := snap.Stock.Analysis
	if text != p.lastText {
		p.lastText = text
		p.rendered = text
		if p.mdRenderer != nil {
			if out, err := p.mdRenderer.Render(text); err == nil {
				p.rendered = strings.TrimSpace(out)
			}
		}
	}

	b.WriteString(p.rendered)
	return b.String()
}
