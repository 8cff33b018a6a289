package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mverkerk/portfoliodb/internal/model"
	"github.com/mverkerk/portfoliodb/internal/snapshot"
)

type snapshotCmd struct {
	log zerolog.Logger

	file string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "derive the development series from movements and quotes" }
func (*snapshotCmd) Usage() string {
	return `snapshot -file <portfolio.json>

  Builds one development row per investment per observed day from the
  movement history and fetched quotes, and prints the series as JSON.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "portfolio document (movements, prices)")
}

func (c *snapshotCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		return subcommands.ExitUsageError
	}

	data, err := loadPortfolioFile(c.file)
	if err != nil {
		c.log.Error().Err(err).Msg("loading portfolio failed")
		return subcommands.ExitFailure
	}

	developments := snapshot.BuildDevelopments(data.Movements, data.Prices)
	c.log.Info().Int("developments", len(developments)).Msg("series built")

	records := make([]developmentRecord, len(developments))
	for i, dev := range developments {
		records[i] = developmentRecord{
			Investment: dev.InvestmentID,
			Date:       dev.Date.Format(model.DayFormat),
			Quantity:   dev.Quantity,
			Price:      dev.Price,
			Value:      dev.Value,
		}
	}

	if err := printJSON(records); err != nil {
		c.log.Error().Err(err).Msg("encoding developments failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
