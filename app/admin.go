package main

import (
	"bytes"
	"context"
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/export"
	"github.com/kidandcat/promanager/internal/format"
	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/search"
)

type AdminDashboard struct {
	app.Compo

	env     *env
	scope   scope
	loading bool
	stats   models.Stats
	users   []models.User
	query   string
}

type dashboard struct {
	stats models.Stats
	users []models.User
}

func (a *AdminDashboard) OnMount(ctx app.Context) {
	setTitle(ctx, "لوحة التحكم 📊")
	a.scope.start()
	a.loading = true
	run(ctx, &a.scope, a.fetch, func(ctx app.Context, d dashboard, err error) {
		a.loading = false
		if err != nil {
			a.env.notices.Error(failure(err, "فشل في جلب بيانات اللوحة"))
			return
		}
		a.stats, a.users = d.stats, d.users
	})
}

func (a *AdminDashboard) OnDismount() { a.scope.stop() }

// fetch loads the counters and the user table in parallel.
func (a *AdminDashboard) fetch(ctx context.Context) (dashboard, error) {
	type result struct {
		stats models.Stats
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		st, err := a.env.api.Stats(ctx)
		ch <- result{st, err}
	}()

	users, uerr := a.env.api.Users(ctx)
	st := <-ch
	if st.err != nil {
		return dashboard{}, st.err
	}
	if uerr != nil {
		return dashboard{}, uerr
	}
	return dashboard{stats: st.stats, users: users}, nil
}

func (a *AdminDashboard) toggle(ctx app.Context, id string) {
	type toggled struct {
		active bool
		msg    string
	}
	run(ctx, &a.scope, func(c context.Context) (toggled, error) {
		active, msg, err := a.env.api.ToggleUser(c, id)
		return toggled{active, msg}, err
	}, func(ctx app.Context, t toggled, err error) {
		if err != nil {
			a.env.notices.Error(failure(err, "فشل تغيير حالة الحساب"))
			return
		}
		a.users = search.SetActive(a.users, id, t.active)
		if t.msg != "" {
			a.env.notices.Info(t.msg)
		}
	})
}

func (a *AdminDashboard) delete(ctx app.Context, id string) {
	if !confirm("هل أنت متأكد من حذف هذا المستخدم نهائياً؟") {
		return
	}
	run(ctx, &a.scope, func(c context.Context) (struct{}, error) {
		return struct{}{}, a.env.api.DeleteUser(c, id)
	}, func(ctx app.Context, _ struct{}, err error) {
		if err != nil {
			a.env.notices.Error(failure(err, "فشل الحذف"))
			return
		}
		before := len(a.users)
		a.users = search.RemoveUser(a.users, id)
		if len(a.users) < before && a.stats.Users > 0 {
			a.stats.Users--
		}
		a.env.notices.Success("تم حذف المستخدم بنجاح")
	})
}

func (a *AdminDashboard) exportUsers(ctx app.Context, e app.Event) {
	var buf bytes.Buffer
	if err := export.Users(&buf, a.users); err != nil {
		a.env.log.Error().Err(err).Msg("export users")
		a.env.notices.Error("فشل تصدير البيانات")
		return
	}
	download(export.Filename, export.MIME, buf.Bytes())
}

func (a *AdminDashboard) Render() app.UI {
	if a.loading {
		return app.Div().Class("loader").Text("جاري تحميل لوحة التحكم...")
	}

	shown := search.Users(a.users, a.query)
	rate := 0
	if a.stats.Projects > 0 {
		rate = a.stats.Completed * 100 / a.stats.Projects
	}
	card := func(icon, label string, v int) app.UI {
		return app.Div().Class("stat-card card-glass").Body(
			app.I().Class(icon),
			app.Div().Body(
				app.H3().Text(format.Count(v)),
				app.P().Text(label),
			),
		)
	}

	return app.Div().Class("admin-container").Body(
		app.Div().Class("admin-header").Body(
			app.H2().Text("لوحة تحكم المدير"),
			app.Button().Class("export-btn").OnClick(a.exportUsers).Body(
				app.I().Class("fas fa-file-excel"),
				app.Text(" تصدير Excel"),
			),
		),
		app.Div().Class("stats-grid").Body(
			card("fas fa-users", "إجمالي الأعضاء", a.stats.Users),
			card("fas fa-project-diagram", "المشاريع المرفوعة", a.stats.Projects),
			card("fas fa-check-circle", "مشاريع منجزة", a.stats.Completed),
			card("fas fa-hourglass-half", "مشاريع قيد التنفيذ", a.stats.Pending()),
		),
		app.Div().Class("progress-card card-glass").Body(
			app.H3().Text("نسبة الإنجاز"),
			app.Div().Class("progress-bar").Body(
				app.Div().Class("progress-fill").Style("width", strconv.Itoa(rate)+"%"),
			),
			app.Span().Text(strconv.Itoa(rate)+"%"),
		),
		app.Div().Class("users-section card-glass").Body(
			app.Div().Class("users-header").Body(
				app.H3().Text("إدارة المستخدمين"),
				app.Input().
					Type("text").
					Class("search-input").
					Placeholder("ابحث بالاسم أو البريد...").
					Value(a.query).
					OnInput(func(ctx app.Context, e app.Event) { a.query = inputValue(ctx) }),
			),
			app.Table().Class("users-table").Body(
				app.THead().Body(app.Tr().Body(
					app.Th().Text("المستخدم"),
					app.Th().Text("البريد"),
					app.Th().Text("الصلاحية"),
					app.Th().Text("الحالة"),
					app.Th().Text("الإجراءات"),
				)),
				app.TBody().Body(
					app.Range(shown).Slice(func(i int) app.UI {
						return a.row(shown[i])
					}),
				),
			),
		),
	)
}

func (a *AdminDashboard) row(u models.User) app.UI {
	id := u.ID
	pill := "status-pill inactive"
	toggleTitle, toggleIcon := "تفعيل", "fas fa-user-check"
	if u.IsActive {
		pill = "status-pill active"
		toggleTitle, toggleIcon = "تعطيل", "fas fa-user-slash"
	}

	return app.Tr().Body(
		app.Td().Body(
			app.Div().Class("user-cell").Body(
				app.Img().Src(a.env.media.NavAvatar(u.Avatar, u.Name)).Alt(u.Name),
				app.Span().Text(u.Name),
			),
		),
		app.Td().Text(u.Email),
		app.Td().Body(app.Span().Class("role-badge "+string(u.Role)).Text(export.RoleLabel(u.Role))),
		app.Td().Body(app.Span().Class(pill).Text(export.StatusLabel(u.IsActive))),
		app.Td().Body(
			app.Div().Class("actions").Body(
				app.Button().
					Class("toggle-btn").
					Title(toggleTitle).
					OnClick(func(ctx app.Context, e app.Event) { a.toggle(ctx, id) }).
					Body(app.I().Class(toggleIcon)),
				app.Button().
					Class("delete-btn").
					Title("حذف").
					OnClick(func(ctx app.Context, e app.Event) { a.delete(ctx, id) }).
					Body(app.I().Class("fas fa-trash")),
			),
		),
	)
}
