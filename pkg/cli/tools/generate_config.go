package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
	"github.com/urfave/cli/v3"
)

// CmdGenerateConfig returns the generate-config command
func CmdGenerateConfig() *cli.Command {
	return &cli.Command{
		Name:    "generate-config",
		Aliases: []string{"g"},
		Usage:   "Generate configuration file templates",
		Commands: []*cli.Command{
			cmdGeneratePropertyTypes(),
		},
	}
}

func cmdGeneratePropertyTypes() *cli.Command {
	var (
		outputPath string
		force      bool
	)

	return &cli.Command{
		Name:    "property-types",
		Aliases: []string{"pt"},
		Usage:   "Generate the Notion property type catalog template",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file path",
				Value:       "property_types.yaml",
				Destination: &outputPath,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "Overwrite existing file",
				Destination: &force,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return WritePropertyTypes(ctx, outputPath, force)
		},
	}
}

// WritePropertyTypes writes the embedded catalog to path
func WritePropertyTypes(ctx context.Context, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return goerr.New("file already exists, use --force to overwrite", goerr.V("path", path))
	}

	if err := os.WriteFile(path, notion.DefaultCatalogYAML(), 0600); err != nil {
		return goerr.Wrap(err, "failed to write property type catalog", goerr.V("path", path))
	}

	ctxlog.From(ctx).Info("property type catalog generated", "path", path)
	fmt.Printf("✅ Property type catalog generated: %s\n", path)
	fmt.Println("\nEdit the file and pass it with --notion-property-types to change the selectable types.")

	return nil
}
