package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/mcp-catalog/catsync/pkg/cli/config"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/infra"
	"github.com/mcp-catalog/catsync/pkg/usecase"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func enrichCommand() *cli.Command {
	var (
		openaiConf    config.OpenAI
		firestoreConf config.Firestore
		sentryConf    config.Sentry
		mode          modeFlags
		force         bool
		limit         int
		interval      time.Duration
	)

	return &cli.Command{
		Name:  "enrich",
		Usage: "Generate catalog content for records with a language model",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Re-analyze records that already have enrichment output",
				Destination: &force,
			},
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "Maximum number of records to enrich (0 = all)",
				Value:       0,
				Destination: &limit,
			},
			&cli.DurationFlag{
				Name:        "interval",
				Usage:       "Minimum delay between successive model calls",
				Value:       time.Second,
				Sources:     cli.EnvVars("CATSYNC_ENRICH_INTERVAL"),
				Destination: &interval,
			},
		}, openaiConf.Flags(), firestoreConf.Flags(), sentryConf.Flags(), mode.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			runMode, err := mode.Mode(types.RunModeDryRun)
			if err != nil {
				return err
			}
			if err := sentryConf.Configure(ctx); err != nil {
				return err
			}

			llmClient, err := openaiConf.New()
			if err != nil {
				return goerr.Wrap(err, "failed to create OpenAI client")
			}
			catalog, err := firestoreConf.NewRepository(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to open catalog store")
			}

			logging.From(ctx).Info("Starting enrich command",
				slog.String("mode", string(runMode)),
				slog.Any("openai", openaiConf),
				slog.Bool("force", force),
			)

			uc := usecase.New(infra.New(
				infra.WithLLM(llmClient),
				infra.WithCatalog(catalog),
			), usecase.WithEnrichInterval(interval))

			run, err := uc.Enrich(ctx, &usecase.EnrichInput{
				Mode:  runMode,
				Force: force,
				Limit: limit,
			})
			if err != nil {
				return err
			}

			return printJSON(run)
		},
	}
}
