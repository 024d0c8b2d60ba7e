package main

import (
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/counter"
	"github.com/kidandcat/promanager/internal/format"
	"github.com/kidandcat/promanager/internal/models"
)

const splashDuration = 1500 * time.Millisecond

type Home struct {
	app.Compo

	env       *env
	scope     scope
	splash    bool
	total     int
	completed int
}

func (h *Home) OnMount(ctx app.Context) {
	setTitle(ctx, "الرئيسية")
	sctx := h.scope.start()
	h.splash = true

	ctx.Async(func() {
		t := time.NewTimer(splashDuration)
		defer t.Stop()
		select {
		case <-sctx.Done():
		case <-t.C:
			ctx.Dispatch(func(ctx app.Context) { h.splash = false })
		}
	})

	run(ctx, &h.scope, h.env.api.Stats, func(ctx app.Context, st models.Stats, err error) {
		if err != nil {
			h.env.log.Warn().Err(err).Msg("load stats")
			st = models.Stats{}
		}
		h.count(ctx, st.Projects, func(v int) { h.total = v })
		h.count(ctx, st.Completed, func(v int) { h.completed = v })
	})
}

func (h *Home) OnDismount() {
	h.scope.stop()
}

// count animates a statistic from zero to target.
func (h *Home) count(ctx app.Context, target int, set func(int)) {
	sctx := h.scope.ctx
	ctx.Async(func() {
		counter.Run(sctx, target, func(v int) {
			ctx.Dispatch(func(ctx app.Context) {
				if sctx.Err() == nil {
					set(v)
				}
			})
		})
	})
}

func (h *Home) Render() app.UI {
	class := "home-container"
	if !h.splash {
		class += " content-ready"
	}
	stat := func(v int, label string) app.UI {
		return app.Div().Class("stat-card glass-morph").Body(
			app.H3().Text("+"+format.Count(v)),
			app.P().Text(label),
		)
	}

	return app.Div().Body(
		app.If(h.splash, func() app.UI {
			return app.Div().Class("intro-overlay").Body(
				app.Div().Class("intro-logo").Body(app.Text("Pro"), app.Span().Text("Manager")),
				app.Div().Class("intro-line"),
			)
		}),
		app.Div().Class(class).Body(
			app.Section().Class("hero-section").Body(
				app.Div().Class("hero-content").Body(
					app.H1().Class("hero-title animate-fade-in").Body(
						app.Text("أدِر مشاريعك بذكاء مع "),
						app.Span().Text(format.AppName),
					),
					app.P().Class("hero-subtitle").Text("المنصة المتكاملة لتنظيم مهامك، تتبع فريقك، وتحقيق أهدافك بلمسة احترافية وتصميم عصري."),
					app.Div().Class("hero-btns").Body(
						app.A().Href("/add-project").Class("main-btn").Text("إضافة مشروع جديد"),
						app.A().Href("/projects").Class("outline-btn").Text("عرض مشروعاتي"),
					),
				),
				app.Div().Class("hero-stats").Body(
					stat(h.completed, "مشاريع منجزة"),
					stat(h.total, "إجمالي المشاريع"),
				),
			),
		),
	)
}
