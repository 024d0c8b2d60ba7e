package main

import (
	"context"
	"strconv"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/format"
	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
	"github.com/kidandcat/promanager/internal/shell"
)

const bellID = "notif-box"

// Navbar follows the session store: it re-renders on every login, logout,
// profile update and 401, and keeps the admin activity feed fresh.
type Navbar struct {
	app.Compo

	env   *env
	state shell.State
	user  models.User
	path  string

	menuOpen bool
	bellOpen bool
	feed     []models.Activity

	scope       scope
	unsubscribe func()
	stopPoll    context.CancelFunc
	outside     app.Func
}

func (n *Navbar) OnMount(ctx app.Context) {
	n.scope.start()
	n.path = ctx.Page().URL().Path

	if _, ok := n.env.session.Read(); ok && n.env.session.Expired() {
		n.env.log.Info().Msg("stored token expired")
		n.env.session.Clear()
		n.env.notices.Warn(msgSessionEnded)
	}

	n.unsubscribe = n.env.session.Subscribe(func(sess session.Session, ok bool) {
		ctx.Dispatch(func(ctx app.Context) { n.sync(ctx, sess, ok) })
	})
	sess, ok := n.env.session.Read()
	n.sync(ctx, sess, ok)
}

func (n *Navbar) OnNav(ctx app.Context) {
	n.path = ctx.Page().URL().Path
	n.menuOpen = false
	n.closeBell()
	if shell.Polls(n.state) {
		n.refresh(ctx)
	}
}

func (n *Navbar) OnDismount() {
	if n.unsubscribe != nil {
		n.unsubscribe()
	}
	n.stopPolling()
	n.releaseOutside()
	n.scope.stop()
}

func (n *Navbar) sync(ctx app.Context, sess session.Session, ok bool) {
	prev := n.state
	n.state = shell.StateOf(sess, ok)
	n.user = sess.User

	switch {
	case shell.Polls(n.state) && (n.stopPoll == nil || !shell.Polls(prev)):
		n.startPolling(ctx)
		n.refresh(ctx)
	case !shell.Polls(n.state):
		n.stopPolling()
		n.closeBell()
		n.feed = nil
	}
}

func (n *Navbar) startPolling(ctx app.Context) {
	n.stopPolling()
	pctx, cancel := context.WithCancel(n.scope.ctx)
	n.stopPoll = cancel
	every := n.env.cfg.PollInterval

	ctx.Async(func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-pctx.Done():
				return
			case <-t.C:
				ctx.Dispatch(func(ctx app.Context) { n.refresh(ctx) })
			}
		}
	})
}

func (n *Navbar) stopPolling() {
	if n.stopPoll != nil {
		n.stopPoll()
		n.stopPoll = nil
	}
}

func (n *Navbar) refresh(ctx app.Context) {
	run(ctx, &n.scope, n.env.api.Activities, func(ctx app.Context, list []models.Activity, err error) {
		if err != nil {
			n.env.log.Warn().Err(err).Msg("load activities")
			return
		}
		if !shell.Polls(n.state) {
			return
		}
		n.feed = n.env.dismissed.Filter(list)
	})
}

func (n *Navbar) toggleBell(ctx app.Context, e app.Event) {
	if n.bellOpen {
		n.closeBell()
		return
	}
	n.bellOpen = true
	n.refresh(ctx)
	n.listenOutside(ctx)
}

func (n *Navbar) closeBell() {
	n.bellOpen = false
	n.releaseOutside()
}

// listenOutside closes the dropdown on a mousedown anywhere outside the bell.
func (n *Navbar) listenOutside(ctx app.Context) {
	n.releaseOutside()
	n.outside = app.FuncOf(func(this app.Value, args []app.Value) any {
		if len(args) == 0 {
			return nil
		}
		box := app.Window().GetElementByID(bellID)
		if box.Truthy() && box.Call("contains", args[0].Get("target")).Bool() {
			return nil
		}
		ctx.Dispatch(func(ctx app.Context) { n.closeBell() })
		return nil
	})
	app.Window().Call("addEventListener", "mousedown", n.outside)
}

func (n *Navbar) releaseOutside() {
	if n.outside == nil {
		return
	}
	app.Window().Call("removeEventListener", "mousedown", n.outside)
	n.outside.Release()
	n.outside = nil
}

func (n *Navbar) clearFeed(ctx app.Context, e app.Event) {
	if err := n.env.dismissed.DismissAll(n.feed); err != nil {
		n.env.log.Error().Err(err).Msg("dismiss activities")
		return
	}
	n.feed = nil
}

func (n *Navbar) logout(ctx app.Context, e app.Event) {
	n.menuOpen = false
	n.closeBell()
	n.stopPolling()
	n.env.api.Logout()
	ctx.Navigate("/login")
}

func (n *Navbar) Render() app.UI {
	links := shell.Links(n.state)

	menuClass := "nav-links"
	if n.menuOpen {
		menuClass += " active"
	}
	toggleClass := "menu-icon"
	if n.menuOpen {
		toggleClass += " active"
	}

	return app.Nav().Class("navbar").Body(
		app.Div().Class("nav-container").Body(
			app.A().Href("/").Class("nav-logo").Body(
				app.Text("Pro"),
				app.Span().Text("Manager"),
			),
			app.Div().
				Class(toggleClass).
				OnClick(func(ctx app.Context, e app.Event) { n.menuOpen = !n.menuOpen }).
				Body(app.Span(), app.Span(), app.Span()),
			app.Ul().Class(menuClass).Body(
				app.Range(links).Slice(func(i int) app.UI {
					return n.renderLink(links[i])
				}),
			),
		),
	)
}

func (n *Navbar) renderLink(l shell.Link) app.UI {
	switch l.Kind {
	case shell.Button:
		return app.Li().Body(app.A().Href(l.Path).Class("nav-btn").Text(l.Label))
	case shell.Profile:
		return app.Li().Body(
			app.A().Href(l.Path).Class("nav-profile").Title(l.Label).Body(
				app.Img().
					Class("nav-avatar").
					Src(n.env.media.NavAvatar(n.user.Avatar, n.user.Name)).
					Alt(n.user.Name),
				app.Span().Text(n.user.FirstName()),
			),
		)
	case shell.Logout:
		return app.Li().Body(
			app.Button().Class("logout-btn").OnClick(n.logout).Text(l.Label),
		)
	case shell.Bell:
		return n.renderBell(l)
	}

	class := "nav-link"
	if n.path == l.Path {
		class += " active"
	}
	return app.Li().Body(app.A().Href(l.Path).Class(class).Text(l.Label))
}

func (n *Navbar) renderBell(l shell.Link) app.UI {
	return app.Li().ID(bellID).Class("notif-wrapper").Body(
		app.Div().Class("bell-icon").OnClick(n.toggleBell).Body(
			app.I().Class("fas fa-bell"),
			app.If(len(n.feed) > 0, func() app.UI {
				return app.Span().Class("notif-badge").Text(strconv.Itoa(len(n.feed)))
			}),
		),
		app.If(n.bellOpen, func() app.UI {
			return app.Div().Class("notif-dropdown").Body(
				app.Div().Class("notif-header").Body(
					app.H4().Text(l.Label),
					app.Span().Title("تحديث").OnClick(func(ctx app.Context, e app.Event) { n.refresh(ctx) }).Body(
						app.I().Class("fas fa-sync-alt"),
					),
					app.If(len(n.feed) > 0, func() app.UI {
						return app.Span().Class("notif-clear").OnClick(n.clearFeed).Text("مسح الكل")
					}),
				),
				app.If(len(n.feed) == 0, func() app.UI {
					return app.P().Class("notif-empty").Text("لا توجد تنبيهات جديدة 📭")
				}).Else(func() app.UI {
					now := time.Now()
					return app.Div().Class("notif-list").Body(
						app.Range(n.feed).Slice(func(i int) app.UI {
							a := n.feed[i]
							icon := "fas fa-file-upload"
							if a.Type == models.ActivityUser {
								icon = "fas fa-user-plus"
							}
							return app.Div().Class("notif-item").Body(
								app.Div().Class("notif-icon "+string(a.Type)).Body(app.I().Class(icon)),
								app.Div().Class("notif-text").Body(
									app.P().Text(a.Text),
									app.Small().Text(format.Ago(a.Date, now)),
								),
							)
						}),
					)
				}),
			)
		}),
	)
}
