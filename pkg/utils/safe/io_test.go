package safe_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/tsumugi/pkg/utils/safe"
)

type closer struct {
	closed bool
	err    error
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	c := &closer{}
	safe.Close(ctx, c)
	gt.True(t, c.closed)

	failing := &closer{err: errors.New("already closed")}
	safe.Close(ctx, failing)
	gt.True(t, failing.closed)

	safe.Close(ctx, nil)
}

func TestWrite(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	safe.Write(ctx, &buf, []byte("OK"))
	gt.V(t, buf.String()).Equal("OK")

	safe.Write(ctx, brokenWriter{}, []byte("OK"))
}
