package async

import (
	"context"
	"runtime/debug"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/tsumugi/pkg/utils/errors"
)

// HandlerTimeout bounds work that continues after Slack has been acknowledged
const HandlerTimeout = time.Minute

var inflight sync.WaitGroup

// Dispatch runs handler after the webhook has been answered. The handler
// context keeps the request values (logger) but not its cancellation.
// Errors and panics are logged.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	if isSyncMode(ctx) {
		run(ctx, handler)
		return
	}

	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), HandlerTimeout)
	inflight.Add(1)
	go func() {
		defer inflight.Done()
		defer cancel()
		run(bg, handler)
	}()
}

func run(ctx context.Context, handler func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			errors.Handle(ctx, goerr.New("panic in dispatched handler",
				goerr.V("recover", r),
				goerr.V("stack", string(debug.Stack()))))
		}
	}()

	if err := handler(ctx); err != nil {
		errors.Handle(ctx, err)
	}
}

// Wait blocks until all dispatched handlers return or ctx is done
func Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "dispatched handlers are still running")
	}
}
