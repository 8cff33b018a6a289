package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mverkerk/portfoliodb/internal/irr"
	"github.com/mverkerk/portfoliodb/internal/model"
	"github.com/mverkerk/portfoliodb/internal/valuation"
)

type irrCmd struct {
	log zerolog.Logger

	file string
	isin string
	date string
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "compute the money-weighted return of one investment" }
func (*irrCmd) Usage() string {
	return `irr -file <portfolio.json> -isin <ISIN> [-date YYYY-MM-DD]

  Builds the cash-flow series of the investment (buys negative, sells and
  dividends positive, valuation as of the target date as terminal inflow)
  and prints the internal rate of return.
`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "portfolio document (investments, movements, developments)")
	f.StringVar(&c.isin, "isin", "", "ISIN of the investment")
	f.StringVar(&c.date, "date", "", "target date, YYYY-MM-DD (default today)")
}

func (c *irrCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || c.isin == "" {
		fmt.Fprintln(os.Stderr, "-file and -isin are required")
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

	var investment model.Investment
	found := false
	for _, inv := range data.Investments {
		if inv.ISIN == c.isin {
			investment, found = inv, true
			break
		}
	}
	if !found {
		fmt.Fprintf(os.Stderr, "no investment with ISIN %s\n", c.isin)
		return subcommands.ExitFailure
	}

	var movements []model.Movement
	for _, movement := range data.Movements {
		if movement.InvestmentID == investment.ID {
			movements = append(movements, movement)
		}
	}

	metrics := valuation.ValuateInvestment(investment, data.Developments, data.Movements, targetDate)
	dates, values := irr.CashFlows(movements, metrics.ValueAfter, targetDate)

	rate, err := irr.Calculate(dates, values)
	if err != nil {
		// Invalid cash flows and non-convergence are expected outcomes, not
		// crashes; report and fail the command.
		fmt.Fprintf(os.Stderr, "irr: %v\n", err)
		return subcommands.ExitFailure
	}

	output := struct {
		ISIN string  `json:"isin"`
		Date string  `json:"date"`
		Rate float64 `json:"rate"`
	}{
		ISIN: investment.ISIN,
		Date: targetDate.Format(model.DayFormat),
		Rate: rate,
	}

	if err := printJSON(output); err != nil {
		c.log.Error().Err(err).Msg("encoding rate failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
