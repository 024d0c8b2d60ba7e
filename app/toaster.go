package main

import (
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/notify"
)

// Toaster shows the notices pages publish. Each one closes itself after
// notify.Lifetime or on click.
type Toaster struct {
	app.Compo

	env     *env
	notices []notify.Notice
	timers  map[int]*time.Timer
	cancel  func()
}

func (t *Toaster) OnMount(ctx app.Context) {
	t.timers = make(map[int]*time.Timer)
	for _, n := range t.env.notices.Active() {
		t.show(ctx, n)
	}
	t.cancel = t.env.notices.Subscribe(func(n notify.Notice) {
		ctx.Dispatch(func(ctx app.Context) { t.show(ctx, n) })
	})
}

func (t *Toaster) OnDismount() {
	if t.cancel != nil {
		t.cancel()
	}
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}

func (t *Toaster) show(ctx app.Context, n notify.Notice) {
	if _, ok := t.timers[n.ID]; ok {
		return
	}
	t.notices = append(t.notices, n)
	t.timers[n.ID] = time.AfterFunc(time.Until(n.Expires()), func() {
		ctx.Dispatch(func(ctx app.Context) { t.remove(n.ID) })
	})
}

func (t *Toaster) remove(id int) {
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
	for i, n := range t.notices {
		if n.ID == id {
			t.notices = append(t.notices[:i], t.notices[i+1:]...)
			return
		}
	}
}

func (t *Toaster) Render() app.UI {
	return app.Div().Class("toaster").Body(
		app.Range(t.notices).Slice(func(i int) app.UI {
			n := t.notices[i]
			return app.Div().
				Class("toast toast-" + string(n.Kind)).
				OnClick(func(ctx app.Context, e app.Event) { t.remove(n.ID) }).
				Text(n.Text)
		}),
	)
}
