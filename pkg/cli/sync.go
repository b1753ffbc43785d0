package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/mcp-catalog/catsync/pkg/cli/config"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/infra"
	"github.com/mcp-catalog/catsync/pkg/usecase"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

const defaultSearchQuery = `"mcp server" in:name,description,topics`

func syncCommand() *cli.Command {
	var (
		githubConf    config.GitHub
		firestoreConf config.Firestore
		sentryConf    config.Sentry
		mode          modeFlags
		query         string
		maxPages      int
		force         bool
	)

	return &cli.Command{
		Name:  "sync",
		Usage: "Fetch repositories from GitHub search and merge them into the catalog",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "query",
				Aliases:     []string{"q"},
				Usage:       "GitHub search query",
				Value:       defaultSearchQuery,
				Sources:     cli.EnvVars("CATSYNC_SEARCH_QUERY"),
				Destination: &query,
			},
			&cli.IntFlag{
				Name:        "max-pages",
				Usage:       "Maximum number of search pages to fetch (0 = all)",
				Value:       0,
				Destination: &maxPages,
			},
			&cli.BoolFlag{
				Name:        "force",
				Usage:       "Rewrite records even when unchanged upstream",
				Destination: &force,
			},
		}, githubConf.Flags(), firestoreConf.Flags(), sentryConf.Flags(), mode.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			runMode, err := mode.Mode(types.RunModeDryRun)
			if err != nil {
				return err
			}
			if err := sentryConf.Configure(ctx); err != nil {
				return err
			}

			ghClient, err := githubConf.New()
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}
			catalog, err := firestoreConf.NewRepository(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to open catalog store")
			}

			logging.From(ctx).Info("Starting sync command",
				slog.String("mode", string(runMode)),
				slog.Any("github", githubConf),
				slog.Any("firestore", firestoreConf),
			)

			uc := usecase.New(infra.New(
				infra.WithGitHub(ghClient),
				infra.WithCatalog(catalog),
			))

			run, err := uc.Sync(ctx, &usecase.SyncInput{
				Query:    query,
				MaxPages: maxPages,
				Mode:     runMode,
				Force:    force,
			})
			if err != nil {
				return err
			}

			return printJSON(run)
		},
	}
}
