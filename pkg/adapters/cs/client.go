package cs

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/domain/interfaces"
	"github.com/m-mizutani/tsumugi/pkg/domain/types/apperr"
	"google.golang.org/api/option"
)

// Client stores each key as an object in a Cloud Storage bucket
type Client struct {
	client     *storage.Client
	bucket     string
	prefix     string
	clientOpts []option.ClientOption
}

// Option is a functional option for Client
type Option func(*Client)

// WithPrefix sets the prefix for all object names
func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = prefix
	}
}

// WithClientOptions passes Google API client options such as a credentials file
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(c *Client) {
		c.clientOpts = append(c.clientOpts, opts...)
	}
}

// New creates a new Cloud Storage client
func New(ctx context.Context, bucketName string, opts ...Option) (*Client, error) {
	if bucketName == "" {
		return nil, goerr.New("bucket name is required")
	}

	c := &Client{bucket: bucketName}
	for _, opt := range opts {
		opt(c)
	}

	client, err := storage.NewClient(ctx, c.clientOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.TV(apperr.BucketKey, bucketName))
	}
	c.client = client

	return c, nil
}

// Close closes the Cloud Storage client
func (c *Client) Close() error {
	return c.client.Close()
}

func (c *Client) object(key string) *storage.ObjectHandle {
	return c.client.Bucket(c.bucket).Object(c.prefix + key)
}

func (c *Client) Put(ctx context.Context, key string, data []byte) error {
	w := c.object(key).NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.BucketKey, c.bucket))
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to close object writer",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.BucketKey, c.bucket))
	}

	return nil
}

func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := c.object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, interfaces.ErrStorageKeyNotFound
		}
		return nil, goerr.Wrap(err, "failed to open object reader",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.BucketKey, c.bucket))
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read object",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.BucketKey, c.bucket))
	}

	return data, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.object(key).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return goerr.Wrap(err, "failed to delete object",
			goerr.T(apperr.ErrTagStorage),
			goerr.TV(apperr.StorageKeyKey, key),
			goerr.TV(apperr.BucketKey, c.bucket))
	}
	return nil
}

var _ interfaces.StorageAdapter = (*Client)(nil)
