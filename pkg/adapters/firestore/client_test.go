package firestore_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/adapters/firestore"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
)

func newTestClient(t *testing.T) *firestore.Client {
	t.Helper()

	projectID, ok := os.LookupEnv("TEST_FIRESTORE_PROJECT_ID")
	if !ok {
		t.Skip("TEST_FIRESTORE_PROJECT_ID is not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	client, err := firestore.New(context.Background(), projectID, databaseID,
		firestore.WithCollection("test_kv_"+uuid.NewString()))
	gt.NoError(t, err).Required()
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestFirestoreClient_PutGetDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	key := "tsumugi/modal/U1/notion_create_database/properties"

	gt.NoError(t, client.Put(ctx, key, []byte(`[]`))).Required()
	gt.NoError(t, client.Put(ctx, key, []byte(`[{"name":"Status"}]`))).Required()

	got, err := client.Get(ctx, key)
	gt.NoError(t, err)
	gt.V(t, string(got)).Equal(`[{"name":"Status"}]`)

	gt.NoError(t, client.Delete(ctx, key))
	_, err = client.Get(ctx, key)
	gt.B(t, errors.Is(err, interfaces.ErrStorageKeyNotFound)).True()
}

func TestFirestoreClient_DistinctKeys(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// "a/b" and "a%2Fb" must not collide after escaping
	gt.NoError(t, client.Put(ctx, "a/b", []byte("1")))
	gt.NoError(t, client.Put(ctx, "a%2Fb", []byte("2")))

	v1, err := client.Get(ctx, "a/b")
	gt.NoError(t, err)
	v2, err := client.Get(ctx, "a%2Fb")
	gt.NoError(t, err)
	gt.V(t, string(v1)).Equal("1")
	gt.V(t, string(v2)).Equal("2")
}

func TestNew_RequiresProject(t *testing.T) {
	_, err := firestore.New(context.Background(), "", "")
	gt.Error(t, err)
}
