package panel

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/xinguang/stock-dashboard/pkg/view"
)

// InfoPanel shows company fundamentals for the loaded symbol
type InfoPanel struct{}

// NewInfoPanel creates the stock info renderer
func NewInfoPanel() *InfoPanel { return &InfoPanel{} }

// Render implements Renderer
func (p *InfoPanel) Render(snap *view.Snapshot) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("股票信息"))
	b.WriteString("\n")

	st := snap.State(view.PanelInfo)
	switch st.Phase {
	case view.PhaseLoading:
		b.WriteString(dimStyle.Render("加载中 ..."))
		return b.String()
	case view.PhaseSuccess:
	default:
		b.WriteString(dimStyle.Render("暂无数据"))
		return b.String()
	}

	info := snap.Stock.Info

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false

	tw.AppendRow(table.Row{"公司", info.Name})
	tw.AppendRow(table.Row{"行业", fmt.Sprintf("%s · %s", info.Sector, info.Industry)})
	tw.AppendRow(table.Row{"交易所", info.Exchange})
	tw.AppendRow(table.Row{"当前价格", fmt.Sprintf("$%.2f", info.Price)})
	tw.AppendRow(table.Row{"市值", "$" + groupDigits(info.MarketCap)})
	tw.AppendRow(table.Row{"市盈率", fmt.Sprintf("%.2f", info.PERatio)})
	tw.AppendRow(table.Row{"股息率", fmt.Sprintf("%.2f%%", info.DividendYield*100)})
	tw.AppendRow(table.Row{"Beta", fmt.Sprintf("%.2f", info.Beta)})

	b.WriteString(tw.Render())
	return b.String()
}

// groupDigits formats a non-negative amount with thousands separators
func groupDigits(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
