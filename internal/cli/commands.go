package cli

import (
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/mverkerk/portfoliodb/internal/config"
	"github.com/mverkerk/portfoliodb/internal/importer"
	"github.com/mverkerk/portfoliodb/internal/model"
	"github.com/mverkerk/portfoliodb/internal/valuation"
)

// Commands returns every subcommand, wired to the registry and configuration
// built in main.
func Commands(registry *importer.Registry, cfg *config.Config, log zerolog.Logger) []subcommands.Command {
	return []subcommands.Command{
		&importCmd{registry: registry, cfg: cfg, log: log},
		&valuateCmd{log: log},
		&performanceCmd{log: log},
		&chartCmd{log: log},
		&irrCmd{log: log},
		&snapshotCmd{log: log},
		&reconcileCmd{log: log},
	}
}

// parseTargetDate interprets a -date flag value; empty means today.
func parseTargetDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return model.ParseDay(value)
}

// parseTimeRange validates a user-supplied -range flag value before it
// reaches GetDateRange, which treats unknown ranges as programmer errors.
func parseTimeRange(value string) (valuation.TimeRange, error) {
	switch valuation.TimeRange(value) {
	case valuation.Range1M, valuation.Range3M, valuation.Range6M, valuation.Range1Y, valuation.RangeAll:
		return valuation.TimeRange(value), nil
	default:
		return "", fmt.Errorf("unknown range %q (use 1M, 3M, 6M, 1Y or ALL)", value)
	}
}

// windowDevelopments applies an optional -range window to a development
// series.
func windowDevelopments(developments []model.Development, rangeFlag string, end time.Time) ([]model.Development, error) {
	if rangeFlag == "" {
		return developments, nil
	}
	timeRange, err := parseTimeRange(rangeFlag)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(developments))
	for i, dev := range developments {
		dates[i] = dev.Date
	}

	window := valuation.GetDateRange(dates, timeRange, end)
	return valuation.FilterDevelopmentsByDate(developments, window.StartDate, window.EndDate), nil
}
