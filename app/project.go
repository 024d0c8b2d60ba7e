package main

import (
	"context"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/format"
	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/validate"
)

// routeID is the last path segment after prefix, e.g. /project/{id}.
func routeID(ctx app.Context, prefix string) string {
	return strings.Trim(strings.TrimPrefix(ctx.Page().URL().Path, prefix), "/")
}

type ProjectDetails struct {
	app.Compo

	env     *env
	scope   scope
	id      string
	loading bool
	project *models.Project
}

func (d *ProjectDetails) OnMount(ctx app.Context) {
	setTitle(ctx, "تفاصيل المشروع")
	d.load(ctx)
}

func (d *ProjectDetails) OnNav(ctx app.Context) {
	if routeID(ctx, "/project/") != d.id {
		d.load(ctx)
	}
}

func (d *ProjectDetails) OnDismount() { d.scope.stop() }

func (d *ProjectDetails) load(ctx app.Context) {
	d.scope.start()
	d.id = routeID(ctx, "/project/")
	d.loading = true
	d.project = nil
	id := d.id
	run(ctx, &d.scope, func(c context.Context) (models.Project, error) {
		return d.env.api.Project(c, id)
	}, func(ctx app.Context, p models.Project, err error) {
		d.loading = false
		if err != nil {
			d.env.log.Warn().Err(err).Str("project", id).Msg("load project")
			d.env.notices.Error("حدث خطأ في جلب بيانات المشروع")
			ctx.Navigate("/projects")
			return
		}
		d.project = &p
	})
}

func (d *ProjectDetails) Render() app.UI {
	if d.loading {
		return app.Div().Class("loader").Text("جاري تحميل التفاصيل...")
	}
	if d.project == nil {
		return app.Div().Class("loader").Text("المشروع غير موجود")
	}

	p := *d.project
	sess, ok := d.env.session.Read()

	return app.Div().Class("details-container").Body(
		app.Button().
			Class("back-btn").
			OnClick(func(ctx app.Context, e app.Event) { app.Window().Get("history").Call("back") }).
			Text("⬅ رجوع"),
		app.Div().Class("details-card").Body(
			app.Div().Class("details-image").Body(
				app.Img().Src(d.env.media.Detail(p.Image)).Alt(p.Title),
			),
			app.Div().Class("details-content").Body(
				app.Div().Class("details-header").Body(
					app.H1().Text(p.Title),
					app.Span().Class(statusClass(p.Status)).Text(string(p.Status)),
				),
				app.Div().Class("details-meta").Body(
					metaItem("الأولوية:", app.Span().Class("priority-tag "+string(p.Priority)).Text(string(p.Priority))),
					metaItem("القسم:", app.Span().Text(string(p.Category))),
					metaItem("تاريخ التسليم:", app.Span().Text(format.LongDate(p.Deadline))),
				),
				app.Div().Class("details-description").Body(
					app.H3().Text("وصف المشروع"),
					app.Raw(`<div class="markdown">`+format.Markdown(p.Description)+`</div>`),
				),
				app.If(canManage(sess, ok, p), func() app.UI {
					return app.Div().Class("details-actions").Body(
						app.A().Href("/edit-project/"+p.ID).Class("edit-btn").Text("تعديل البيانات"),
					)
				}),
			),
		),
	)
}

func metaItem(label string, value app.UI) app.UI {
	return app.Div().Class("meta-item").Body(app.Strong().Text(label), value)
}

// projectForm is the state both project forms share.
type projectForm struct {
	in      models.ProjectInput
	image   *models.Upload
	preview objectURL
	sending bool
}

func (f *projectForm) pick(ctx app.Context, e app.Event) {
	readPicked(ctx, &f.preview, func(ctx app.Context, up *models.Upload) { f.image = up })
}

func (f *projectForm) text(placeholder string, value *string) app.UI {
	return app.Div().Class("input-group").Body(
		app.Input().
			Type("text").
			Placeholder(placeholder).
			Value(*value).
			Required(true).
			OnInput(func(ctx app.Context, e app.Event) { *value = inputValue(ctx) }),
	)
}

func (f *projectForm) description(label string) app.UI {
	return app.Div().Class("input-group").Body(
		app.If(label != "", func() app.UI { return app.Label().Text(label) }),
		app.Textarea().
			Placeholder("وصف المشروع...").
			Rows(4).
			Required(true).
			Text(f.in.Description).
			OnInput(func(ctx app.Context, e app.Event) { f.in.Description = inputValue(ctx) }),
	)
}

func (f *projectForm) deadline(label string) app.UI {
	return app.Div().Class("input-group").Body(
		app.Label().Text(label),
		app.Input().
			Type("date").
			Value(f.in.Deadline).
			Required(true).
			OnChange(func(ctx app.Context, e app.Event) { f.in.Deadline = inputValue(ctx) }),
	)
}

func choice[T ~string](label string, options []T, current T, set func(T)) app.UI {
	return app.Div().Class("input-group").Body(
		app.Label().Text(label),
		app.Select().
			OnChange(func(ctx app.Context, e app.Event) { set(T(inputValue(ctx))) }).
			Body(
				app.Range(options).Slice(func(i int) app.UI {
					o := options[i]
					return app.Option().Value(string(o)).Selected(o == current).Text(string(o))
				}),
			),
	)
}

func (f *projectForm) imagePicker(label, picked, current string) app.UI {
	text := label
	if f.image != nil {
		text = picked
	}
	src := current
	if f.preview.url != "" {
		src = f.preview.url
	}
	return app.Div().Class("file-input-wrapper").Body(
		app.Label().Class("file-label").Body(
			app.Span().Text(text),
			app.Input().Type("file").Accept("image/*").OnChange(f.pick),
		),
		app.If(src != "", func() app.UI {
			return app.Div().Class("image-preview").Body(app.Img().Src(src).Alt("Preview"))
		}),
	)
}

type AddProject struct {
	app.Compo

	env   *env
	scope scope
	form  projectForm
}

func (a *AddProject) OnMount(ctx app.Context) {
	setTitle(ctx, "إضافة مشروع جديد ➕")
	a.scope.start()
	a.form.in.Priority = models.PriorityMedium
	a.form.in.Category = models.CategoryOther
}

func (a *AddProject) OnDismount() {
	a.scope.stop()
	a.form.preview.release()
}

func (a *AddProject) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if a.form.sending {
		return
	}
	in, image := a.form.in, a.form.image
	if err := validate.Project(in); err != nil {
		a.env.notices.Error(failure(err, ""))
		return
	}
	a.form.sending = true
	run(ctx, &a.scope, func(c context.Context) (models.Project, error) {
		return a.env.api.CreateProject(c, in, image)
	}, func(ctx app.Context, _ models.Project, err error) {
		a.form.sending = false
		if err != nil {
			a.env.notices.Error(failure(err, "مشكلة في الرفع"))
			return
		}
		a.env.notices.Success("المشروع اتضاف والديدلاين اتحدد! 🚀")
		ctx.Navigate("/my-projects")
	})
}

func (a *AddProject) Render() app.UI {
	f := &a.form
	return app.Div().Class("auth-container").Body(
		app.Div().Class("auth-card project-card").Body(
			app.Div().Class("auth-header").Body(
				app.H2().Text("إضافة إبداع جديد 📁"),
				app.P().Text("املاً البيانات وحدد موعد التسليم"),
			),
			app.Form().Class("auth-form").OnSubmit(a.submit).Body(
				f.text("عنوان المشروع", &f.in.Title),
				f.description(""),
				f.deadline("تاريخ التسليم (Deadline):"),
				choice("القسم", models.Categories, f.in.Category, func(v models.Category) { f.in.Category = v }),
				choice("الأولوية", models.Priorities, f.in.Priority, func(v models.Priority) { f.in.Priority = v }),
				f.imagePicker("📸 ارفع صورة المشروع", "✅ تم اختيار الصورة", ""),
				app.Button().Type("submit").Class("auth-btn").Disabled(f.sending).Text("نشر المشروع الآن"),
			),
		),
	)
}

type EditProject struct {
	app.Compo

	env     *env
	scope   scope
	id      string
	loading bool
	image   string
	form    projectForm
}

func (ed *EditProject) OnMount(ctx app.Context) {
	setTitle(ctx, "تعديل المشروع ✏️")
	ed.scope.start()
	ed.id = routeID(ctx, "/edit-project/")
	ed.loading = true
	ed.form.in = models.ProjectInput{
		Status:   models.StatusPending,
		Priority: models.PriorityMedium,
		Category: models.CategoryOther,
	}

	id := ed.id
	run(ctx, &ed.scope, func(c context.Context) (models.Project, error) {
		return ed.env.api.Project(c, id)
	}, func(ctx app.Context, p models.Project, err error) {
		ed.loading = false
		if err != nil {
			ed.env.notices.Error(failure(err, "خطأ في جلب بيانات المشروع"))
			ctx.Navigate("/projects")
			return
		}
		ed.fill(p)
	})
}

func (ed *EditProject) OnDismount() {
	ed.scope.stop()
	ed.form.preview.release()
}

// fill copies p into the form, keeping the defaults for empty fields.
func (ed *EditProject) fill(p models.Project) {
	in := &ed.form.in
	in.Title = p.Title
	in.Description = p.Description
	in.Deadline = format.DateInput(p.Deadline)
	if p.Status != "" {
		in.Status = p.Status
	}
	if p.Priority != "" {
		in.Priority = p.Priority
	}
	if p.Category != "" {
		in.Category = p.Category
	}
	ed.image = p.Image
}

func (ed *EditProject) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if ed.form.sending {
		return
	}
	in, image, id := ed.form.in, ed.form.image, ed.id
	if err := validate.Project(in); err != nil {
		ed.env.notices.Error(failure(err, ""))
		return
	}
	ed.form.sending = true
	run(ctx, &ed.scope, func(c context.Context) (models.Project, error) {
		return ed.env.api.UpdateProject(c, id, in, image)
	}, func(ctx app.Context, _ models.Project, err error) {
		ed.form.sending = false
		if err != nil {
			ed.env.notices.Error(failure(err, "فشل التحديث"))
			return
		}
		ed.env.notices.Success("تم تحديث المشروع بنجاح")
		ctx.Navigate("/project/" + id)
	})
}

func (ed *EditProject) Render() app.UI {
	if ed.loading {
		return app.Div().Class("loader").Text("جاري تحميل البيانات...")
	}

	f := &ed.form
	return app.Div().Class("auth-container").Body(
		app.Div().Class("auth-card project-card edit-card").Body(
			app.Div().Class("auth-header").Body(
				app.H2().Text("تعديل المشروع"),
			),
			app.Form().Class("auth-form").OnSubmit(ed.submit).Body(
				f.imagePicker("تغيير صورة المشروع", "✅ تم اختيار الصورة", ed.env.media.Cover(ed.image)),
				f.text("عنوان المشروع", &f.in.Title),
				app.Div().Class("form-row").Body(
					choice("القسم", models.Categories, f.in.Category, func(v models.Category) { f.in.Category = v }),
					choice("الحالة", models.Statuses, f.in.Status, func(v models.Status) { f.in.Status = v }),
					choice("الأولوية", models.Priorities, f.in.Priority, func(v models.Priority) { f.in.Priority = v }),
				),
				f.deadline("تاريخ الانتهاء"),
				f.description("وصف المشروع"),
				app.Div().Class("form-actions").Body(
					app.Button().
						Type("button").
						Class("cancel-btn").
						OnClick(func(ctx app.Context, e app.Event) { ctx.Navigate("/project/" + ed.id) }).
						Text("إلغاء"),
					app.Button().Type("submit").Class("auth-btn").Disabled(f.sending).Text("حفظ التغييرات"),
				),
			),
		),
	)
}
