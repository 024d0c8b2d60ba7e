package main

import (
	"context"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/models"
	"github.com/kidandcat/promanager/internal/session"
	"github.com/kidandcat/promanager/internal/validate"
)

type Login struct {
	app.Compo

	env     *env
	scope   scope
	creds   models.Credentials
	sending bool
}

func (l *Login) OnMount(ctx app.Context) {
	setTitle(ctx, "تسجيل الدخول 🔑")
	l.scope.start()
}

func (l *Login) OnDismount() { l.scope.stop() }

func (l *Login) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if l.sending {
		return
	}
	if err := validate.Login(l.creds); err != nil {
		l.env.notices.Error(failure(err, ""))
		return
	}
	l.sending = true
	creds := l.creds
	run(ctx, &l.scope, func(c context.Context) (session.Session, error) {
		return l.env.api.Login(c, creds)
	}, func(ctx app.Context, _ session.Session, err error) {
		l.sending = false
		if err != nil {
			l.env.notices.Error(failure(err, "خطأ في البيانات"))
			return
		}
		l.env.notices.Success("أهلاً بك يا برنس! 👋")
		ctx.Navigate("/")
	})
}

func (l *Login) Render() app.UI {
	return authCard("تسجيل الدخول", "مرحباً بعودتك! سجل دخولك لمتابعة مشاريعك",
		app.Form().Class("auth-form").OnSubmit(l.submit).Body(
			authInput("email", "البريد الإلكتروني", l.creds.Email, func(v string) { l.creds.Email = v }),
			authInput("password", "كلمة المرور", l.creds.Password, func(v string) { l.creds.Password = v }),
			app.Button().Type("submit").Class("auth-btn").Disabled(l.sending).Text("تسجيل الدخول"),
		),
		app.P().Class("auth-footer").Body(
			app.Text("ليس لديك حساب؟ "),
			app.A().Href("/register").Text("إنشاء حساب جديد"),
		),
	)
}

type Register struct {
	app.Compo

	env     *env
	scope   scope
	form    models.Registration
	sending bool
}

func (r *Register) OnMount(ctx app.Context) {
	setTitle(ctx, "إنشاء حساب جديد ✨")
	r.scope.start()
}

func (r *Register) OnDismount() { r.scope.stop() }

func (r *Register) submit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if r.sending {
		return
	}
	if err := validate.Registration(r.form); err != nil {
		r.env.notices.Error(failure(err, ""))
		return
	}
	r.sending = true
	form := r.form
	run(ctx, &r.scope, func(c context.Context) (struct{}, error) {
		return struct{}{}, r.env.api.Register(c, form)
	}, func(ctx app.Context, _ struct{}, err error) {
		r.sending = false
		if err != nil {
			r.env.notices.Error(failure(err, "فشل إنشاء الحساب، حاول مجدداً"))
			return
		}
		r.env.notices.Success("تم إنشاء الحساب بنجاح! سجل دخولك الآن 🚀")
		ctx.Navigate("/login")
	})
}

func (r *Register) Render() app.UI {
	return authCard("إنشاء حساب جديد", "انضم إلى ProManager وإبدأ إدارة مشاريعك باحترافية",
		app.Form().Class("auth-form").OnSubmit(r.submit).Body(
			authInput("text", "الاسم الكامل", r.form.Name, func(v string) { r.form.Name = v }),
			authInput("email", "البريد الإلكتروني", r.form.Email, func(v string) { r.form.Email = v }),
			authInput("password", "كلمة المرور", r.form.Password, func(v string) { r.form.Password = v }),
			authInput("password", "تأكيد كلمة المرور", r.form.ConfirmPassword, func(v string) { r.form.ConfirmPassword = v }),
			app.Button().Type("submit").Class("auth-btn").Disabled(r.sending).Text("إنشاء الحساب"),
		),
		app.P().Class("auth-footer").Body(
			app.Text("لديك حساب بالفعل؟ "),
			app.A().Href("/login").Text("تسجيل الدخول"),
		),
	)
}

func authCard(title, subtitle string, form, footer app.UI) app.UI {
	return app.Div().Class("auth-container").Body(
		app.Div().Class("auth-card").Body(
			app.Div().Class("auth-header").Body(
				app.H2().Text(title),
				app.P().Text(subtitle),
			),
			form,
			footer,
		),
	)
}

func authInput(typ, placeholder, value string, set func(string)) app.UI {
	return app.Div().Class("input-group").Body(
		app.Input().
			Type(typ).
			Placeholder(placeholder).
			Value(value).
			Required(true).
			OnInput(func(ctx app.Context, e app.Event) { set(inputValue(ctx)) }),
	)
}
