package fs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/adapters/fs"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
)

func newClient(t *testing.T) *fs.Client {
	client, err := fs.New(fs.Config{Dir: t.TempDir()})
	gt.NoError(t, err).Required()
	return client
}

func TestClient_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)
	key := "tsumugi/modal/U1/notion_create_database/inputs"

	gt.NoError(t, client.Put(ctx, key, []byte(`{"title":"Roadmap"}`))).Required()

	got, err := client.Get(ctx, key)
	gt.NoError(t, err).Required()
	gt.V(t, string(got)).Equal(`{"title":"Roadmap"}`)

	gt.NoError(t, client.Delete(ctx, key))
	_, err = client.Get(ctx, key)
	gt.B(t, errors.Is(err, interfaces.ErrStorageKeyNotFound)).True()

	gt.NoError(t, client.Delete(ctx, key))
}

func TestClient_GetNotFound(t *testing.T) {
	client := newClient(t)
	_, err := client.Get(context.Background(), "nothing")
	gt.B(t, errors.Is(err, interfaces.ErrStorageKeyNotFound)).True()
}

func TestClient_InvalidKey(t *testing.T) {
	ctx := context.Background()
	client := newClient(t)

	for _, key := range []string{
		"",
		"../etc/passwd",
		"..\\windows\\system32",
		"/etc/passwd",
		"file\x00.txt",
	} {
		err := client.Put(ctx, key, []byte("x"))
		gt.B(t, errors.Is(err, fs.ErrInvalidKey)).True()
	}
}

func TestNew_RequiresDir(t *testing.T) {
	_, err := fs.New(fs.Config{})
	gt.Error(t, err)
}
