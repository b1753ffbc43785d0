package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/mcp-catalog/catsync/pkg/cli/config"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/fuzzy"
	"github.com/mcp-catalog/catsync/pkg/infra"
	"github.com/mcp-catalog/catsync/pkg/usecase"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func fixLinksCommand() *cli.Command {
	var (
		githubConf    config.GitHub
		firestoreConf config.Firestore
		sentryConf    config.Sentry
		mode          modeFlags
		reportDir     string
		maxEditDist   int
	)

	return &cli.Command{
		Name:  "fix-links",
		Usage: "Validate stored repository links and repair broken ones by fuzzy matching",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "report-dir",
				Usage:       "Directory for the JSON repair report (no file if empty)",
				Sources:     cli.EnvVars("CATSYNC_REPORT_DIR"),
				Destination: &reportDir,
			},
			&cli.IntFlag{
				Name:        "max-edit-distance",
				Usage:       "Maximum Levenshtein distance for owner-listing candidates",
				Value:       fuzzy.DefaultConfig().MaxEditDistance,
				Destination: &maxEditDist,
			},
		}, githubConf.Flags(), firestoreConf.Flags(), sentryConf.Flags(), mode.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			runMode, err := mode.Mode(types.RunModeCheckOnly)
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

			logging.From(ctx).Info("Starting fix-links command",
				slog.String("mode", string(runMode)),
				slog.String("report_dir", reportDir),
			)

			fuzzyConf := fuzzy.DefaultConfig()
			fuzzyConf.MaxEditDistance = maxEditDist

			options := []usecase.Option{usecase.WithFuzzyConfig(fuzzyConf)}
			if reportDir != "" {
				options = append(options, usecase.WithReportDir(reportDir))
			}

			uc := usecase.New(infra.New(
				infra.WithGitHub(ghClient),
				infra.WithCatalog(catalog),
			), options...)

			report, err := uc.FixLinks(ctx, &usecase.FixLinksInput{
				Mode:        runMode,
				WriteReport: reportDir != "",
			})
			if err != nil {
				return err
			}

			return printJSON(report)
		},
	}
}
