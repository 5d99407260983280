// stockdash - a terminal dashboard for the stock analysis backend
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/xinguang/stock-dashboard/pkg/api"
	"github.com/xinguang/stock-dashboard/pkg/config"
	"github.com/xinguang/stock-dashboard/pkg/dashboard"
)

var (
	version = "0.1.0"

	configPath   string
	serverURL    string
	symbol       string
	period       string
	interval     string
	analysisType string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stockdash",
		Short: "Terminal dashboard for stock quotes, indicators and AI analysis",
		Long: `stockdash renders price and indicator charts, company fundamentals,
trading signals and AI market analysis from the stock analysis backend
in an interactive terminal dashboard.`,
		RunE: runDashboard,
	}

	// Flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "Backend base URL (overrides config)")
	rootCmd.Flags().StringVar(&symbol, "symbol", "", "Symbol to pre-fill (overrides config)")
	rootCmd.Flags().StringVar(&period, "period", "", "Query period, e.g. 1mo, 1y (overrides config)")
	rootCmd.Flags().StringVar(&interval, "interval", "", "Data interval, e.g. 1d, 1h (overrides config)")
	rootCmd.Flags().StringVar(&analysisType, "analysis-type", "", "Analysis type requested from the backend (overrides config)")

	// Subcommands
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(quoteCmd())
	rootCmd.AddCommand(overviewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := tea.NewProgram(dashboard.New(cfg, newClient(cfg)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("stockdash version %s\n", version)
		},
	}
}

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote SYMBOL",
		Short: "Print a one-shot quote summary for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			v, err := newClient(cfg).FetchStock(context.Background(), strings.ToUpper(strings.TrimSpace(args[0])))
			if err != nil {
				return err
			}

			s := v.Summary
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.SetStyle(table.StyleLight)
			tw.AppendRow(table.Row{"代码", v.Symbol})
			tw.AppendRow(table.Row{"区间", fmt.Sprintf("%s ~ %s", s.FirstTime, s.LastTime)})
			tw.AppendRow(table.Row{"收盘", fmt.Sprintf("%.2f → %.2f", s.FirstClose, s.LastClose)})
			tw.AppendRow(table.Row{"涨跌", fmt.Sprintf("%+.2f (%+.2f%%)", s.Change, s.ChangePct)})
			tw.AppendRow(table.Row{"最高", fmt.Sprintf("%.2f", s.High)})
			tw.AppendRow(table.Row{"最低", fmt.Sprintf("%.2f", s.Low)})
			tw.AppendRow(table.Row{"记录数", len(v.Points)})
			tw.Render()

			if v.Analysis != "" {
				fmt.Printf("\nAI 分析:\n%s\n", v.Analysis)
			}
			return nil
		},
	}
}

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Print the market index overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			overview, err := newClient(cfg).FetchMarketOverview(context.Background())
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"指数", "价格", "涨跌", "涨跌幅"})
			for _, idx := range overview {
				tw.AppendRow(table.Row{
					idx.Name,
					fmt.Sprintf("$%.2f", idx.CurrentPrice),
					fmt.Sprintf("%+.2f", idx.Change),
					fmt.Sprintf("%+.2f%%", idx.ChangePct),
				})
			}
			tw.Render()
			return nil
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if serverURL != "" {
		cfg.ServerURL = serverURL
	}
	if symbol != "" {
		cfg.DefaultSymbol = strings.ToUpper(symbol)
	}
	if period != "" {
		cfg.Period = period
	}
	if interval != "" {
		cfg.Interval = interval
	}
	if analysisType != "" {
		cfg.AnalysisType = analysisType
	}

	result := cfg.Validate()
	if !result.IsValid() {
		e := result.Errors[0]
		return nil, fmt.Errorf("invalid config: %s %s (got %v)", e.Field, e.Message, e.Value)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *api.Client {
	client := api.NewClient(cfg.ServerURL)
	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			client.SetLogger(log.New(f, "", log.LstdFlags))
		}
	}
	return client
}
