package config

import (
	"context"
	"log/slog"

	"github.com/mcp-catalog/catsync/pkg/domain/interfaces"
	"github.com/mcp-catalog/catsync/pkg/repository/firestore"
	"github.com/mcp-catalog/catsync/pkg/repository/memory"
	"github.com/urfave/cli/v3"
)

type Firestore struct {
	projectID  string
	databaseID string
}

func (x *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore project ID (in-memory catalog if not set)",
			Category:    "Firestore",
			Sources:     cli.EnvVars("CATSYNC_FIRESTORE_PROJECT_ID"),
			Destination: &x.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Firestore",
			Sources:     cli.EnvVars("CATSYNC_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.databaseID,
		},
	}
}

func (x *Firestore) Enabled() bool {
	return x.projectID != ""
}

// NewRepository returns the Firestore-backed catalog when a project ID is
// set, otherwise an in-memory catalog. The in-memory fallback only makes
// sense for dry runs and local experiments; its contents vanish on exit.
func (x *Firestore) NewRepository(ctx context.Context) (interfaces.CatalogRepository, error) {
	if !x.Enabled() {
		return memory.New(), nil
	}
	return firestore.New(ctx, x.projectID, x.databaseID)
}

func (x *Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("databaseID", x.databaseID),
	)
}
