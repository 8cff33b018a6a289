package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mverkerk/portfoliodb/internal/valuation"
)

type chartCmd struct {
	log zerolog.Logger

	file      string
	timeRange string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "print the id-keyed, forward-filled chart series" }
func (*chartCmd) Usage() string {
	return `chart -file <portfolio.json> [-range 1M|3M|6M|1Y|ALL]

  Converts the development series into chart points keyed by investment id,
  carrying each asset's last known value forward across dates without an
  observation.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "portfolio document (developments)")
	f.StringVar(&c.timeRange, "range", "", "reporting window ending at the last data point")
}

func (c *chartCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		return subcommands.ExitUsageError
	}

	data, err := loadPortfolioFile(c.file)
	if err != nil {
		c.log.Error().Err(err).Msg("loading portfolio failed")
		return subcommands.ExitFailure
	}

	developments, err := windowDevelopments(data.Developments, c.timeRange, time.Time{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -range: %v\n", err)
		return subcommands.ExitUsageError
	}

	points := valuation.DevelopmentsToChartPoints(developments)
	if err := printJSON(points); err != nil {
		c.log.Error().Err(err).Msg("encoding chart failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
