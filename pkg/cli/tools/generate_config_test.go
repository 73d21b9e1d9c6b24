package tools_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/cli/tools"
	"github.com/m-mizutani/tsumugi/pkg/domain/model/notion"
)

func TestWritePropertyTypes(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "property_types.yaml")

	gt.NoError(t, tools.WritePropertyTypes(ctx, path, false)).Required()

	catalog, err := notion.LoadCatalog(path)
	gt.NoError(t, err).Required()
	gt.A(t, catalog.Types).Length(len(notion.DefaultCatalog().Types))

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		gt.Error(t, tools.WritePropertyTypes(ctx, path, false))
	})

	t.Run("overwrites with force", func(t *testing.T) {
		gt.NoError(t, os.WriteFile(path, []byte("types: []\n"), 0600)).Required()
		gt.NoError(t, tools.WritePropertyTypes(ctx, path, true)).Required()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.Equal(t, string(data), string(notion.DefaultCatalogYAML()))
	})
}
