// Package safe wraps calls whose errors can only be logged, such as closing
// a client on shutdown or writing a response body after the header.
package safe

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/utils/errors"
)

// Close closes c and logs a failure
func Close(ctx context.Context, c io.Closer) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to close", goerr.V("type", fmt.Sprintf("%T", c))))
	}
}

// Write writes data to w and logs a failure. The peer may be gone already.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if _, err := w.Write(data); err != nil {
		errors.Handle(ctx, goerr.Wrap(err, "failed to write response", goerr.V("size", len(data))))
	}
}
