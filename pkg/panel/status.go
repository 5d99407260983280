package panel

import (
	"fmt"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// StatusPanel is the one-line status indicator above the panels
type StatusPanel struct{}

// NewStatusPanel creates the status line renderer
func NewStatusPanel() *StatusPanel { return &StatusPanel{} }

// Render implements Renderer
func (p *StatusPanel) Render(snap *view.Snapshot) string {
	st := snap.State(view.PanelStatus)
	switch st.Phase {
	case view.PhaseLoading:
		return dimStyle.Render("⏳ 正在加载行情数据 ...")
	case view.PhaseSuccess:
		if v := snap.Stock; v != nil {
			return successStyle.Render(fmt.Sprintf("✅ 已加载 %s，共 %d 条记录", v.Symbol, len(v.Points)))
		}
		return successStyle.Render("✅ 加载完成")
	case view.PhaseError:
		return errorStyle.Render("❌ " + st.Message)
	default:
		return dimStyle.Render("输入股票代码，回车查询")
	}
}
