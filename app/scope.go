package main

import (
	"context"
	"errors"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/api"
	"github.com/kidandcat/promanager/internal/format"
	"github.com/kidandcat/promanager/internal/validate"
)

// scope owns the context of a mounted page. Requests started under it are
// cancelled on dismount and their late results dropped.
type scope struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *scope) start() context.Context {
	s.stop()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	return s.ctx
}

func (s *scope) stop() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// run calls fn off the UI goroutine and applies the result with done, unless
// the page went away meanwhile.
func run[T any](ctx app.Context, s *scope, fn func(context.Context) (T, error), done func(app.Context, T, error)) {
	rctx := s.ctx
	if rctx == nil {
		rctx = s.start()
	}
	ctx.Async(func() {
		v, err := fn(rctx)
		if rctx.Err() != nil || errors.Is(err, context.Canceled) {
			return
		}
		ctx.Dispatch(func(ctx app.Context) { done(ctx, v, err) })
	})
}

func setTitle(ctx app.Context, page string) {
	ctx.Page().SetTitle(format.Title(page))
}

// failure is the text a toast shows for err.
func failure(err error, fallback string) string {
	var verr *validate.Error
	if errors.As(err, &verr) {
		return verr.Message
	}
	return api.Message(err, fallback)
}

func confirm(msg string) bool {
	return app.Window().Call("confirm", msg).Bool()
}

func inputValue(ctx app.Context) string {
	return ctx.JSSrc().Get("value").String()
}
