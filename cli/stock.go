package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/printer"
	"github.com/goto/salt/term"
	"github.com/spf13/cobra"
)

func stocksCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stock",
		Aliases: []string{"stocks"},
		Short:   "Screen stocks",
		Annotations: map[string]string{
			"group": "core",
		},
		Example: heredoc.Doc(`
		$ screener stock list
		$ screener stock view <ticker>
		$ screener stock stats
		$ screener stock sectors
		`),
	}

	cmd.AddCommand(
		listStocksCommand(cfg),
		viewStockCommand(cfg),
		stockStatsCommand(cfg),
		listSectorsCommand(cfg),
	)

	return cmd
}

func listStocksCommand(cfg *Config) *cobra.Command {
	var flags listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "screen stocks matching the given criteria",
		Example: heredoc.Doc(`
			$ screener stock list
			$ screener stock list -f min_market_cap=1000 -f max_pe_ratio=30 --sort market_cap --sort_dir desc
			$ screener stock list -f sectors=Technology,Healthcare -q apple
		`),
		Args: cobra.NoArgs,
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			res, err := clnt.ListStocks(cmd.Context(), flags.params())
			if err != nil {
				return err
			}

			spinner.Stop()
			if flags.output == outputJSON {
				printJSON(res)
				return nil
			}

			report := [][]string{}
			report = append(report, []string{"TICKER", "NAME", "SECTOR", "MARKET CAP", "PE", "PS", "SENTIMENT", "GUIDANCE"})
			for _, s := range res.Items {
				report = append(report, []string{
					term.Bluef(s.Ticker), s.Name, fmtOrDash(s.Sector), fmtFloat(s.MarketCap),
					fmtFloat(s.PERatio), fmtFloat(s.PSRatio), fmtFloat(s.SentimentScore), fmtOrDash(string(s.ManagementGuidance)),
				})
			}
			printer.Table(os.Stdout, report)
			fmt.Println(pageFooter(res))
			return nil
		},
	}

	flags.register(cmd, "screening criteria, e.g. min_market_cap=1000 or management_guidance=positive")

	return cmd
}

func viewStockCommand(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "view <ticker>",
		Short: "view the stock with the given ticker",
		Example: heredoc.Doc(`
			$ screener stock view AAPL
		`),
		Args: cobra.ExactArgs(1),
		Annotations: map[string]string{
			"action:core": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			s, err := clnt.GetStock(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			spinner.Stop()
			if output == outputJSON {
				printJSON(s)
				return nil
			}

			printer.Table(os.Stdout, [][]string{
				{"TICKER", term.Bluef(s.Ticker)},
				{"NAME", s.Name},
				{"SECTOR", fmtOrDash(s.Sector)},
				{"MARKET CAP", fmtFloat(s.MarketCap)},
				{"PRICE", fmtFloat(s.Price)},
				{"PE RATIO", fmtFloat(s.PERatio)},
				{"PS RATIO", fmtFloat(s.PSRatio)},
				{"PB RATIO", fmtFloat(s.PBRatio)},
				{"EV/EBITDA", fmtFloat(s.EVEBITDA)},
				{"REVENUE GROWTH", fmtFloat(s.RevenueGrowth)},
				{"EARNINGS GROWTH", fmtFloat(s.EarningsGrowth)},
				{"SENTIMENT", fmtFloat(s.SentimentScore)},
				{"TREND", fmtOrDash(string(s.SentimentTrend))},
				{"GUIDANCE", fmtOrDash(string(s.ManagementGuidance))},
				{"VOLUME", fmtInt(s.Volume)},
				{"LAST UPDATED", fmtOrDash(s.LastUpdated)},
			})
			return nil
		},
	}

	outputFlag(cmd, &output)

	return cmd
}

func stockStatsCommand(cfg *Config) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "summarise every loaded stock",
		Example: heredoc.Doc(`
			$ screener stock stats
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			stats, err := clnt.StockStats(cmd.Context())
			if err != nil {
				return err
			}

			spinner.Stop()
			if output == outputJSON {
				printJSON(stats)
				return nil
			}

			report := [][]string{
				{"TOTAL STOCKS", strconv.Itoa(stats.TotalStocks)},
				{"AVERAGE PE", fmtFloat(stats.AveragePE)},
				{"AVERAGE SENTIMENT", fmtFloat(stats.AverageSentiment)},
			}
			for _, g := range sortedKeys(stats.GuidanceBreakdown) {
				report = append(report, []string{"GUIDANCE " + string(g), strconv.Itoa(stats.GuidanceBreakdown[g])})
			}
			for _, sector := range sortedKeys(stats.SectorBreakdown) {
				report = append(report, []string{"SECTOR " + sector, strconv.Itoa(stats.SectorBreakdown[sector])})
			}
			printer.Table(os.Stdout, report)
			return nil
		},
	}

	outputFlag(cmd, &output)

	return cmd
}

func listSectorsCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sectors",
		Short: "list the distinct sectors of the loaded stocks",
		Example: heredoc.Doc(`
			$ screener stock sectors
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spinner := printer.Spin("")
			defer spinner.Stop()

			clnt, err := newClient(cfg)
			if err != nil {
				return err
			}

			sectors, err := clnt.Sectors(cmd.Context())
			if err != nil {
				return err
			}

			spinner.Stop()
			for _, s := range sectors {
				fmt.Println(s)
			}
			return nil
		},
	}

	return cmd
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
