package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mverkerk/portfoliodb/internal/model"
	"github.com/mverkerk/portfoliodb/internal/valuation"
)

type valuateCmd struct {
	log zerolog.Logger

	file string
	date string
}

// investmentValuation pairs an investment's identity with its metrics for
// output.
type investmentValuation struct {
	ID        int64  `json:"id"`
	ISIN      string `json:"isin"`
	ShortName string `json:"shortname"`
	model.InvestmentMetrics
}

func (*valuateCmd) Name() string     { return "valuate" }
func (*valuateCmd) Synopsis() string { return "compute per-investment metrics and portfolio totals" }
func (*valuateCmd) Usage() string {
	return `valuate -file <portfolio.json> [-date YYYY-MM-DD]

  Valuates every investment in the portfolio document as of the target date
  (default: today) and prints the metrics plus portfolio totals.
`
}

func (c *valuateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "portfolio document (investments, movements, developments)")
	f.StringVar(&c.date, "date", "", "target date, YYYY-MM-DD (default today)")
}

func (c *valuateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		return subcommands.ExitUsageError
	}

	targetDate, err := parseTargetDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -date: %v\n", err)
		return subcommands.ExitUsageError
	}

	data, err := loadPortfolioFile(c.file)
	if err != nil {
		c.log.Error().Err(err).Msg("loading portfolio failed")
		return subcommands.ExitFailure
	}

	valuations := make([]investmentValuation, 0, len(data.Investments))
	metrics := make([]model.InvestmentMetrics, 0, len(data.Investments))
	for _, inv := range data.Investments {
		m := valuation.ValuateInvestment(inv, data.Developments, data.Movements, targetDate)
		metrics = append(metrics, m)
		valuations = append(valuations, investmentValuation{
			ID:                inv.ID,
			ISIN:              inv.ISIN,
			ShortName:         inv.ShortName,
			InvestmentMetrics: m,
		})
	}

	output := struct {
		Date        string                `json:"date"`
		Investments []investmentValuation `json:"investments"`
		Totals      model.Totals          `json:"totals"`
	}{
		Date:        targetDate.Format(model.DayFormat),
		Investments: valuations,
		Totals:      valuation.CalculateTotals(metrics),
	}

	if err := printJSON(output); err != nil {
		c.log.Error().Err(err).Msg("encoding valuation failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
