package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mverkerk/portfoliodb/internal/model"
	"github.com/mverkerk/portfoliodb/internal/reconcile"
)

type reconcileCmd struct {
	log zerolog.Logger

	importFile    string
	portfolioFile string
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "resolve an import result against persisted investments" }
func (*reconcileCmd) Usage() string {
	return `reconcile -import <result.json> -file <portfolio.json>

  Matches the draft investments of an import result against the portfolio
  document by ISIN, creates full records for the unmatched ones and rewrites
  the provisional movement ids to persisted ids.
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.importFile, "import", "", "DataImportResult JSON as produced by the import command")
	f.StringVar(&c.portfolioFile, "file", "", "portfolio document with the persisted investments")
}

func (c *reconcileCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.importFile == "" || c.portfolioFile == "" {
		fmt.Fprintln(os.Stderr, "-import and -file are required")
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(c.importFile)
	if err != nil {
		c.log.Error().Err(err).Msg("reading import result failed")
		return subcommands.ExitFailure
	}
	var result model.DataImportResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Error().Err(err).Msg("decoding import result failed")
		return subcommands.ExitFailure
	}

	data, err := loadPortfolioFile(c.portfolioFile)
	if err != nil {
		c.log.Error().Err(err).Msg("loading portfolio failed")
		return subcommands.ExitFailure
	}

	resolution, err := reconcile.Resolve(result, data.Investments)
	if err != nil {
		c.log.Error().Err(err).Msg("reconciliation failed")
		return subcommands.ExitFailure
	}

	c.log.Info().
		Int("new_investments", len(resolution.NewInvestments)).
		Int("movements", len(resolution.Movements)).
		Msg("import result resolved")

	if err := printJSON(resolution); err != nil {
		c.log.Error().Err(err).Msg("encoding resolution failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
