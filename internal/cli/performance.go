package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mverkerk/portfoliodb/internal/valuation"
)

type performanceCmd struct {
	log zerolog.Logger

	file      string
	date      string
	timeRange string
}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "print the ISIN-keyed performance series" }
func (*performanceCmd) Usage() string {
	return `performance -file <portfolio.json> [-date YYYY-MM-DD] [-range 1M|3M|6M|1Y|ALL]

  Groups the development series by date and prints one point per date with
  the portfolio value and each investment's value keyed by ISIN.
`
}

func (c *performanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "portfolio document (investments, developments)")
	f.StringVar(&c.date, "date", "", "target date, YYYY-MM-DD (default today)")
	f.StringVar(&c.timeRange, "range", "", "reporting window ending at the last data point")
}

func (c *performanceCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	developments, err := windowDevelopments(data.Developments, c.timeRange, targetDate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -range: %v\n", err)
		return subcommands.ExitUsageError
	}

	series := valuation.CalculateInvestmentPerformance(developments, data.Investments, targetDate)
	if err := printJSON(series); err != nil {
		c.log.Error().Err(err).Msg("encoding series failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
