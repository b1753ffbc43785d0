package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/mcp-catalog/catsync/pkg/cli/config"
	"github.com/mcp-catalog/catsync/pkg/infra"
	"github.com/mcp-catalog/catsync/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func auditCommand() *cli.Command {
	var firestoreConf config.Firestore

	return &cli.Command{
		Name:  "audit",
		Usage: "Scan the catalog and report data quality (read-only)",
		Flags: slice.Flatten(firestoreConf.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			catalog, err := firestoreConf.NewRepository(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to open catalog store")
			}

			uc := usecase.New(infra.New(infra.WithCatalog(catalog)))

			report, err := uc.Audit(ctx)
			if err != nil {
				return err
			}

			return printJSON(report)
		},
	}
}
