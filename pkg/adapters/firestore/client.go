package firestore

import (
	"context"
	"net/url"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultCollection holds all key-value documents
const DefaultCollection = "kv"

// document is one stored value. The key is kept for readability in the console.
type document struct {
	Key       string    `firestore:"key"`
	Value     []byte    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// Client stores each key as a document of one collection
type Client struct {
	client     *firestore.Client
	projectID  string
	databaseID string
	collection string
}

// Option is a functional option for Client
type Option func(*config)

type config struct {
	collection string
	clientOpts []option.ClientOption
}

// WithCollection changes the collection name
func WithCollection(name string) Option {
	return func(c *config) {
		c.collection = name
	}
}

// WithClientOptions passes Google API client options such as a credentials file
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(c *config) {
		c.clientOpts = append(c.clientOpts, opts...)
	}
}

// New creates a new Firestore client using Application Default Credentials
// unless client options override them
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Client, error) {
	if projectID == "" {
		return nil, goerr.New("project ID is required")
	}
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	cfg := &config{collection: DefaultCollection}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID, cfg.clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project_id", projectID),
			goerr.V("database_id", databaseID))
	}

	return &Client{
		client:     client,
		projectID:  projectID,
		databaseID: databaseID,
		collection: cfg.collection,
	}, nil
}

// Close closes the Firestore client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// docRef maps a key to a document. Keys contain "/" so they are escaped
// into a single document ID.
func (c *Client) docRef(key string) *firestore.DocumentRef {
	return c.client.Collection(c.collection).Doc(url.PathEscape(key))
}

func (c *Client) Put(ctx context.Context, key string, data []byte) error {
	doc := document{
		Key:       key,
		Value:     data,
		UpdatedAt: time.Now(),
	}

	if _, err := c.docRef(key).Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to put document",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.CollectionKey, c.collection))
	}
	return nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	snap, err := c.docRef(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, interfaces.ErrStorageKeyNotFound
		}
		return nil, goerr.Wrap(err, "failed to get document",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.CollectionKey, c.collection))
	}

	var doc document
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode document",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.CollectionKey, c.collection))
	}

	return doc.Value, nil
}

// Delete removes the document. Firestore treats deleting a missing document as success.
func (c *Client) Delete(ctx context.Context, key string) error {
	if _, err := c.docRef(key).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete document",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.CollectionKey, c.collection))
	}
	return nil
}

var _ interfaces.StorageAdapter = (*Client)(nil)
