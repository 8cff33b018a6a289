package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mverkerk/portfoliodb/internal/apperrors"
	"github.com/mverkerk/portfoliodb/internal/config"
	"github.com/mverkerk/portfoliodb/internal/importer"
	"github.com/mverkerk/portfoliodb/internal/model"
)

type importCmd struct {
	registry *importer.Registry
	cfg      *config.Config
	log      zerolog.Logger

	parser string
}

// fileImport pairs one input file with its parse result.
type fileImport struct {
	File   string                 `json:"file"`
	Parser string                 `json:"parser"`
	Result model.DataImportResult `json:"result"`
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "parse broker export files into draft records" }
func (*importCmd) Usage() string {
	return `import [-parser <name>] <file>...

  Parses each file with the named parser, or with the parser matching the
  file extension when exactly one does. Prints one result per file as JSON.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.parser, "parser", "", "parser name (overrides extension lookup)")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	files := f.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "at least one file is required")
		return subcommands.ExitUsageError
	}

	log := c.log.With().Str("run_id", uuid.NewString()).Logger()

	imports := make([]fileImport, len(files))
	group, _ := errgroup.WithContext(ctx)
	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			parser, err := c.resolveParser(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			content, err := os.ReadFile(file)
			if err != nil {
				return err
			}

			result := parser.Parse(string(content))
			log.Info().
				Str("file", file).
				Str("parser", parser.Name()).
				Int("investments", len(result.Investments)).
				Int("movements", len(result.Movements)).
				Int("errors", len(result.Errors)).
				Int("warnings", len(result.Warnings)).
				Msg("file parsed")

			imports[i] = fileImport{File: file, Parser: parser.Name(), Result: result}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("import failed")
		return subcommands.ExitFailure
	}

	if err := printJSON(imports); err != nil {
		log.Error().Err(err).Msg("encoding results failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// resolveParser picks the parser for a file: the -parser flag wins, then an
// unambiguous extension match, then the configured default parser as the
// tie-break among extension matches.
func (c *importCmd) resolveParser(file string) (importer.Parser, error) {
	if c.parser != "" {
		return c.registry.ByName(c.parser)
	}

	matches := c.registry.ByExtension(filepath.Ext(file))
	switch len(matches) {
	case 0:
		return nil, apperrors.ErrNoParserForExtension
	case 1:
		return matches[0], nil
	}

	if c.cfg.Import.DefaultParser != "" {
		for _, p := range matches {
			if p.Name() == c.cfg.Import.DefaultParser {
				return p, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: use -parser", apperrors.ErrAmbiguousExtension)
}
