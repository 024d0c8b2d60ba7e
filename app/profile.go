package main

import (
	"context"
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/export"
	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/validate"
)

type Profile struct {
	app.Compo

	env      *env
	scope    scope
	user     models.User
	in       models.ProfileInput
	avatar   *models.Upload
	preview  objectURL
	projects int
	saving   bool
}

func (p *Profile) OnMount(ctx app.Context) {
	setTitle(ctx, "الملف الشخصي 👤")
	p.scope.start()
	if sess, ok := p.env.session.Read(); ok {
		p.user = sess.User
		p.in = models.ProfileInput{Name: sess.User.Name, Email: sess.User.Email}
	}
	run(ctx, &p.scope, p.env.api.MyProjects, func(ctx app.Context, list []models.Project, err error) {
		if err != nil {
			p.env.log.Warn().Err(err).Msg("count own projects")
			return
		}
		p.projects = len(list)
	})
}

func (p *Profile) OnDismount() {
	p.scope.stop()
	p.preview.release()
}

func (p *Profile) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if p.saving {
		return
	}
	in, avatar := p.in, p.avatar
	if err := validate.Profile(in); err != nil {
		p.env.notices.Error(failure(err, ""))
		return
	}
	p.saving = true
	run(ctx, &p.scope, func(c context.Context) (models.User, error) {
		return p.env.api.UpdateProfile(c, in, avatar)
	}, func(ctx app.Context, u models.User, err error) {
		p.saving = false
		if err != nil {
			p.env.notices.Error(failure(err, "فشل تحديث البيانات"))
			return
		}
		p.user = u
		p.avatar = nil
		p.preview.release()
		p.env.notices.Success("تم تحديث بياناتك بنجاح ✨")
	})
}

func (p *Profile) Render() app.UI {
	avatar := p.env.media.NavAvatar(p.user.Avatar, p.user.Name)
	if p.preview.url != "" {
		avatar = p.preview.url
	}
	field := func(label, typ string, value *string) app.UI {
		return app.Div().Class("input-group").Body(
			app.Label().Text(label),
			app.Input().
				Type(typ).
				Value(*value).
				Required(true).
				OnInput(func(ctx app.Context, e app.Event) { *value = inputValue(ctx) }),
		)
	}
	saveLabel := "حفظ التغييرات"
	if p.saving {
		saveLabel = "جاري الحفظ..."
	}

	return app.Div().Class("profile-container").Body(
		app.Div().Class("profile-sidebar card-glass").Body(
			app.Div().Class("avatar-wrapper").Body(
				app.Img().Class("profile-avatar").Src(avatar).Alt(p.user.Name),
				app.Label().Class("avatar-upload").Title("تغيير الصورة").Body(
					app.I().Class("fas fa-camera"),
					app.Input().Type("file").Accept("image/*").OnChange(func(ctx app.Context, e app.Event) {
						readPicked(ctx, &p.preview, func(ctx app.Context, up *models.Upload) { p.avatar = up })
					}),
				),
			),
			app.H3().Text(p.user.Name),
			app.P().Class("profile-email").Text(p.user.Email),
			app.Div().Class("profile-stats").Body(
				app.Div().Class("stat").Body(
					app.Strong().Text(strconv.Itoa(p.projects)),
					app.Span().Text("مشاريعك المرفوعة"),
				),
				app.Div().Class("stat").Body(
					app.Strong().Text(export.RoleLabel(p.user.Role)),
					app.Span().Text("رتبة الحساب"),
				),
			),
			app.P().Class("profile-tip").Text("نصيحة: استخدام صورة حقيقية يزيد من احترافية ملفك."),
		),
		app.Div().Class("profile-main card-glass").Body(
			app.H2().Text("إعدادات الحساب"),
			app.Form().Class("auth-form").OnSubmit(p.submit).Body(
				field("الاسم بالكامل", "text", &p.in.Name),
				field("البريد الإلكتروني", "email", &p.in.Email),
				app.Button().Type("submit").Class("auth-btn").Disabled(p.saving).Text(saveLabel),
			),
		),
	)
}
