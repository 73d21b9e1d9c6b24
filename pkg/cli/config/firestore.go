package config

import (
	"log/slog"

	"github.com/m-mizutani/tsumugi/pkg/adapters/firestore"
	"github.com/urfave/cli/v3"
)

// Firestore contains configuration for Google Cloud Firestore
type Firestore struct {
	ProjectID  string
	DatabaseID string
	Collection string
}

// Flags returns CLI flags for Firestore configuration
func (f *Firestore) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Category:    "storage",
			Usage:       "Google Cloud Project ID for Firestore",
			Sources:     cli.EnvVars("TSUMUGI_FIRESTORE_PROJECT_ID"),
			Destination: &f.ProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Category:    "storage",
			Usage:       "Firestore Database ID",
			Sources:     cli.EnvVars("TSUMUGI_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &f.DatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Category:    "storage",
			Usage:       "Firestore collection holding the key-value documents",
			Sources:     cli.EnvVars("TSUMUGI_FIRESTORE_COLLECTION"),
			Value:       firestore.DefaultCollection,
			Destination: &f.Collection,
		},
	}
}

// IsValid checks if the Firestore configuration is valid
func (f *Firestore) IsValid() bool {
	return f.ProjectID != "" && f.DatabaseID != ""
}

func (f Firestore) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("project_id", f.ProjectID),
		slog.String("database_id", f.DatabaseID),
		slog.String("collection", f.Collection),
	)
}
