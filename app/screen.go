package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/guard"
	"github.com/kidandcat/promanager/internal/session"
)

const msgAdminOnly = "هذه الصفحة متاحة للمدير فقط"

// Screen is the root of every route: the shared layout around a page, shown
// only once the route guard allows it.
type Screen struct {
	app.Compo

	env  *env
	need guard.Requirement
	page func() app.UI

	content     app.UI
	decided     bool
	decision    guard.Decision
	unsubscribe func()
}

func (s *Screen) OnMount(ctx app.Context) {
	s.unsubscribe = s.env.session.Subscribe(func(sess session.Session, ok bool) {
		ctx.Dispatch(func(ctx app.Context) { s.enforce(ctx, sess, ok) })
	})
	sess, ok := s.env.session.Read()
	s.enforce(ctx, sess, ok)
}

func (s *Screen) OnNav(ctx app.Context) {
	sess, ok := s.env.session.Read()
	s.enforce(ctx, sess, ok)
}

func (s *Screen) OnDismount() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

func (s *Screen) enforce(ctx app.Context, sess session.Session, ok bool) {
	d := guard.Decide(sess, ok, s.need)
	if s.decided && d == s.decision {
		return
	}
	s.decided, s.decision = true, d
	if d == guard.Allow {
		if s.content == nil {
			s.content = s.page()
		}
		return
	}

	s.content = nil
	if d == guard.Forbidden {
		s.env.notices.Warn(msgAdminOnly)
	}
	s.env.log.Debug().Str("decision", d.String()).Str("path", ctx.Page().URL().Path).Msg("route denied")
	replaceRoute(guard.Target(d))
}

// replaceRoute swaps the current history entry for path and lets the router
// pick it up, so Back never returns to the denied screen.
func replaceRoute(path string) {
	win := app.Window()
	win.Get("history").Call("replaceState", nil, "", path)
	win.Call("dispatchEvent", win.Get("PopStateEvent").New("popstate"))
}

func (s *Screen) Render() app.UI {
	return app.Div().Class("app").Dir("rtl").Body(
		&Navbar{env: s.env},
		&Toaster{env: s.env},
		app.Main().Class("page").Body(
			app.If(s.decided && s.decision == guard.Allow && s.content != nil, func() app.UI {
				return s.content
			}),
		),
		&Footer{},
	)
}
