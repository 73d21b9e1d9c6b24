package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/adapters/cs"
	"github.com/m-mizutani/tsumugi/pkg/adapters/firestore"
	"github.com/m-mizutani/tsumugi/pkg/adapters/fs"
	"github.com/m-mizutani/tsumugi/pkg/adapters/memory"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/utils/safe"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Storage selects the key-value backend. The first configured one wins in
// the order Firestore, Cloud Storage, file system, memory.
type Storage struct {
	Firestore Firestore

	// Cloud Storage configuration
	Bucket string
	Prefix string

	// File System storage configuration
	FSPath string

	CredentialsFile string
}

// Flags returns CLI flags for Storage configuration
func (s *Storage) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "cloud-storage-bucket",
			Category:    "storage",
			Sources:     cli.EnvVars("TSUMUGI_CLOUD_STORAGE_BUCKET"),
			Usage:       "Cloud Storage bucket for storage",
			Destination: &s.Bucket,
		},
		&cli.StringFlag{
			Name:        "cloud-storage-prefix",
			Category:    "storage",
			Sources:     cli.EnvVars("TSUMUGI_CLOUD_STORAGE_PREFIX"),
			Usage:       "Prefix for Cloud Storage objects",
			Destination: &s.Prefix,
		},
		&cli.StringFlag{
			Name:        "file-storage-path",
			Category:    "storage",
			Usage:       "Path for file system storage",
			Sources:     cli.EnvVars("TSUMUGI_FILE_STORAGE_PATH"),
			Destination: &s.FSPath,
		},
		&cli.StringFlag{
			Name:        "google-credentials-file",
			Category:    "storage",
			Usage:       "Service account key file for Firestore and Cloud Storage (Application Default Credentials if empty)",
			Sources:     cli.EnvVars("TSUMUGI_GOOGLE_CREDENTIALS_FILE"),
			Destination: &s.CredentialsFile,
		},
	}
	return append(flags, s.Firestore.Flags()...)
}

func (s *Storage) clientOptions() []option.ClientOption {
	if s.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(s.CredentialsFile)}
}

// CreateAdapter creates appropriate storage adapter based on configuration.
// The returned cleanup func is never nil.
func (s *Storage) CreateAdapter(ctx context.Context) (interfaces.StorageAdapter, func(), error) {
	switch {
	case s.Firestore.IsValid():
		client, err := firestore.New(ctx, s.Firestore.ProjectID, s.Firestore.DatabaseID,
			firestore.WithCollection(s.Firestore.Collection),
			firestore.WithClientOptions(s.clientOptions()...),
		)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to create Firestore client")
		}
		return client, func() { safe.Close(ctx, client) }, nil

	case s.Bucket != "":
		opts := []cs.Option{cs.WithClientOptions(s.clientOptions()...)}
		if s.Prefix != "" {
			opts = append(opts, cs.WithPrefix(s.Prefix))
		}

		client, err := cs.New(ctx, s.Bucket, opts...)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to create Cloud Storage client")
		}
		return client, func() { safe.Close(ctx, client) }, nil

	case s.FSPath != "":
		client, err := fs.New(fs.Config{Dir: s.FSPath})
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to create file system storage adapter")
		}
		return client, func() {}, nil

	default:
		ctxlog.From(ctx).Warn("no storage backend configured, using in-memory storage. Tokens are lost on restart")
		return memory.New(), func() {}, nil
	}
}

func (s Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("firestore", s.Firestore),
		slog.String("bucket", s.Bucket),
		slog.String("prefix", s.Prefix),
		slog.String("fs_path", s.FSPath),
		slog.String("credentials_file", s.CredentialsFile),
	)
}
