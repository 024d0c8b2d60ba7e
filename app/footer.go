package main

import (
	"strconv"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/shell"
)

type Footer struct {
	app.Compo
}

func (f *Footer) Render() app.UI {
	link := func(label, path string) app.UI {
		return app.Li().Body(app.A().Href(path).Text(label))
	}
	external := func(label, href string) app.UI {
		return app.Li().Body(app.A().Href(href).Target("_blank").Rel("noopener noreferrer").Text(label))
	}

	return app.Footer().Class("footer").Body(
		app.Div().Class("footer-content").Body(
			app.Div().Class("footer-section about").Body(
				app.H2().Class("logo").Body(app.Text("Pro"), app.Span().Text("Manager")),
				app.P().Text("منصتك الاحترافية لإدارة ورفع المشاريع البرمجية، صُممت لتسهيل عرض أعمالك والتواصل مع المبدعين."),
			),
			app.Div().Class("footer-section links").Body(
				app.H3().Text("روابط سريعة"),
				app.Ul().Body(
					link(shell.LabelHome, "/"),
					link(shell.LabelAdd, "/add-project"),
					link(shell.LabelProfile, "/profile"),
				),
			),
			app.Div().Class("footer-section contact").Body(
				app.H3().Text("تواصل معي"),
				app.Ul().Body(
					external("GitHub", "https://github.com/hhaamed74"),
					external("Portfolio", "https://hamed-personal-portfolio-yuqk.vercel.app/"),
					external("Email", "mailto:hamedabdulmohsenalsayed@gmail.com"),
				),
			),
		),
		app.Div().Class("footer-bottom").Body(
			app.P().Text("جميع الحقوق محفوظة © "+strconv.Itoa(time.Now().Year())+" | تم التطوير بكل ❤️ بواسطة Hamed El Shahawy"),
		),
	)
}
