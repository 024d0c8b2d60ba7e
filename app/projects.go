package main

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/format"
	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/search"
	"github.com/kidandcat/promanager/internal/session"
)

// canManage reports whether the signed-in user may edit or delete p.
func canManage(sess session.Session, ok bool, p models.Project) bool {
	if !ok {
		return false
	}
	return sess.IsAdmin() || (p.Owner != nil && p.Owner.ID == sess.User.ID)
}

func statusClass(s models.Status) string {
	if s == models.StatusCompleted {
		return "status-badge completed"
	}
	return "status-badge pending"
}

// deleteProject asks first, then removes id server side and reports the
// outcome to done. Nothing changes locally until the server confirms.
func deleteProject(ctx app.Context, e *env, s *scope, id, question, ok, fail string, done func()) {
	if !confirm(question) {
		return
	}
	run(ctx, s, func(c context.Context) (struct{}, error) {
		return struct{}{}, e.api.DeleteProject(c, id)
	}, func(ctx app.Context, _ struct{}, err error) {
		if err != nil {
			e.log.Warn().Err(err).Str("project", id).Msg("delete project")
			e.notices.Error(failure(err, fail))
			return
		}
		e.notices.Success(ok)
		done()
	})
}

type Projects struct {
	app.Compo

	env      *env
	scope    scope
	loading  bool
	projects []models.Project
	query    string
	category models.Category
}

func (p *Projects) OnMount(ctx app.Context) {
	setTitle(ctx, "المشاريع")
	p.scope.start()
	p.loading = true
	p.category = models.CategoryAll
	run(ctx, &p.scope, p.env.api.Projects, func(ctx app.Context, list []models.Project, err error) {
		p.loading = false
		if err != nil {
			p.env.notices.Error(failure(err, "فشل تحميل المشاريع"))
			return
		}
		p.projects = list
	})
}

func (p *Projects) OnDismount() { p.scope.stop() }

func (p *Projects) delete(ctx app.Context, id string) {
	deleteProject(ctx, p.env, &p.scope, id,
		"هل أنت متأكد من حذف هذا المشروع نهائياً؟",
		"تم حذف المشروع بنجاح", "فشل في حذف المشروع",
		func() { p.projects = search.Remove(p.projects, id) })
}

func (p *Projects) Render() app.UI {
	if p.loading {
		return app.Div().Class("loader").Text("جاري تحميل المشاريع...")
	}

	sess, ok := p.env.session.Read()
	shown := search.Projects(p.projects, p.query, p.category)
	tags := append([]models.Category{models.CategoryAll}, models.Categories...)

	return app.Div().Class("projects-container").Body(
		app.Div().Class("projects-header").Body(
			app.H2().Body(app.Text("معرض "), app.Span().Text("المشاريع")),
			app.P().Text("استعرض قائمة بآخر إنجازاتك وإبداعاتك المرفوعة"),
		),
		app.Div().Class("filter-wrapper card-glass").Body(
			app.Div().Class("search-bar").Body(
				app.I().Class("fas fa-search"),
				app.Input().
					Type("text").
					Placeholder("ابحث بالعنوان أو الوصف...").
					Value(p.query).
					OnInput(func(ctx app.Context, e app.Event) { p.query = inputValue(ctx) }),
			),
			app.Div().Class("category-tags").Body(
				app.Range(tags).Slice(func(i int) app.UI {
					cat := tags[i]
					class := "tag-btn"
					if cat == p.category {
						class += " active"
					}
					return app.Button().
						Class(class).
						OnClick(func(ctx app.Context, e app.Event) { p.category = cat }).
						Text(string(cat))
				}),
			),
		),
		app.Div().Class("projects-grid").Body(
			app.If(len(shown) == 0, func() app.UI {
				return app.Div().Class("no-projects").Body(
					app.P().Text("لا توجد مشاريع تطابق بحثك حالياً.. 🔍"),
				)
			}).Else(func() app.UI {
				return app.Range(shown).Slice(func(i int) app.UI {
					pr := shown[i]
					return p.card(pr, canManage(sess, ok, pr))
				})
			}),
		),
	)
}

func (p *Projects) card(pr models.Project, manage bool) app.UI {
	owner := "مستخدم"
	avatar := ""
	if pr.Owner != nil {
		avatar = pr.Owner.Avatar
		if pr.Owner.Name != "" {
			owner = pr.Owner.Name
		}
	}
	id := pr.ID

	return app.Div().Class("project-card").Body(
		app.Div().Class("card-image").Body(
			app.Img().Src(p.env.media.Cover(pr.Image)).Alt(pr.Title),
			app.Span().Class(statusClass(pr.Status)).Text(string(pr.Status)),
		),
		app.Div().Class("card-body").Body(
			app.Div().Class("project-user-info").Body(
				app.Img().Class("user-small-avatar").Src(p.env.media.Avatar(avatar)).Alt("user-avatar"),
				app.Span().Class("user-name-text").Text("بواسطة: "+owner),
			),
			app.Div().Class("card-meta").Body(
				app.Span().Class("priority-tag "+string(pr.Priority)).Text(string(pr.Priority)),
				app.Span().Class("category-text").Text(string(pr.Category)),
			),
			app.H3().Text(pr.Title),
			app.P().Class("description-text").Text(pr.Description),
			app.Div().Class("card-footer").Body(
				app.Div().Class("deadline-info").Body(
					app.I().Class("far fa-calendar-alt"),
					app.Span().Text("ينتهي في: "+format.LongDate(pr.Deadline)),
				),
			),
			app.Div().Class("card-actions").Body(
				app.A().Href("/project/"+id).Class("view-btn").Text("تفاصيل"),
				app.If(manage, func() app.UI {
					return app.Button().
						Class("delete-btn").
						OnClick(func(ctx app.Context, e app.Event) { p.delete(ctx, id) }).
						Text("حذف")
				}),
			),
		),
	)
}

type MyProjects struct {
	app.Compo

	env      *env
	scope    scope
	loading  bool
	projects []models.Project
}

func (m *MyProjects) OnMount(ctx app.Context) {
	setTitle(ctx, "مشاريعي الخاصة 👤")
	m.scope.start()
	m.loading = true
	run(ctx, &m.scope, m.env.api.MyProjects, func(ctx app.Context, list []models.Project, err error) {
		m.loading = false
		if err != nil {
			m.env.notices.Error(failure(err, "فشل تحميل مشاريعك"))
			return
		}
		m.projects = list
	})
}

func (m *MyProjects) OnDismount() { m.scope.stop() }

func (m *MyProjects) delete(ctx app.Context, id string) {
	deleteProject(ctx, m.env, &m.scope, id,
		"هل تريد حذف مشروعك نهائياً؟",
		"تم الحذف بنجاح", "حدث خطأ أثناء الحذف",
		func() { m.projects = search.Remove(m.projects, id) })
}

func (m *MyProjects) Render() app.UI {
	if m.loading {
		return app.Div().Class("loader").Text("جاري تحميل مشاريعك...")
	}

	return app.Div().Class("projects-container").Body(
		app.Div().Class("projects-header").Body(
			app.H2().Body(app.Text("مشاريعي "), app.Span().Text("الخاصة")),
			app.P().Text("هنا يمكنك إدارة وتعديل مشاريعك التي قمت برفعها"),
		),
		app.If(len(m.projects) == 0, func() app.UI {
			return app.Div().Class("no-projects").Body(
				app.P().Text("لم تقم بإضافة أي مشاريع بعد."),
				app.A().Href("/add-project").Class("main-btn").Text("أضف مشروعك الأول الآن"),
			)
		}).Else(func() app.UI {
			return app.Div().Class("projects-grid").Body(
				app.Range(m.projects).Slice(func(i int) app.UI {
					pr := m.projects[i]
					id := pr.ID
					return app.Div().Class("project-card").Body(
						app.Div().Class("card-image").Body(
							app.Img().Src(m.env.media.Cover(pr.Image)).Alt(pr.Title),
							app.Span().Class(statusClass(pr.Status)).Text(string(pr.Status)),
						),
						app.Div().Class("card-body").Body(
							app.H3().Text(pr.Title),
							app.P().Class("description-text").Text(pr.Description),
							app.Div().Class("deadline-info").Body(
								app.I().Class("far fa-calendar-alt"),
								app.Span().Text("ينتهي في: "+format.LongDate(pr.Deadline)),
							),
							app.Div().Class("card-actions").Body(
								app.A().Href("/project/"+id).Class("view-btn").Text("تفاصيل"),
								app.A().Href("/edit-project/"+id).Class("edit-btn").Text("تعديل"),
								app.Button().
									Class("delete-btn").
									OnClick(func(ctx app.Context, e app.Event) { m.delete(ctx, id) }).
									Text("حذف"),
							),
						),
					)
				}),
			)
		}),
	)
}
