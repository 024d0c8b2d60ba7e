package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/models"
)

// objectURL is a blob: URL for a local file preview. It must be revoked when
// replaced and when the page goes away.
type objectURL struct {
	url string
}

func (o *objectURL) set(file app.Value) string {
	o.release()
	o.url = app.Window().Get("URL").Call("createObjectURL", file).String()
	return o.url
}

func (o *objectURL) release() {
	if o.url == "" {
		return
	}
	app.Window().Get("URL").Call("revokeObjectURL", o.url)
	o.url = ""
}

// readPicked reads the file chosen in the input that fired the event and
// hands it to done on the UI goroutine. A cleared input gives nil.
func readPicked(ctx app.Context, preview *objectURL, done func(ctx app.Context, up *models.Upload)) {
	files := ctx.JSSrc().Get("files")
	if !files.Truthy() || files.Length() == 0 {
		preview.release()
		done(ctx, nil)
		return
	}
	file := files.Index(0)
	preview.set(file)

	name := file.Get("name").String()
	ctype := file.Get("type").String()
	file.Call("arrayBuffer").Then(func(buf app.Value) {
		arr := app.Window().Get("Uint8Array").New(buf)
		data := make([]byte, arr.Length())
		app.CopyBytesToGo(data, arr)
		ctx.Dispatch(func(ctx app.Context) {
			done(ctx, &models.Upload{Name: name, ContentType: ctype, Data: data})
		})
	})
}

// download hands data to the browser as a file named name.
func download(name, mime string, data []byte) {
	win := app.Window()
	arr := win.Get("Uint8Array").New(len(data))
	app.CopyBytesToJS(arr, data)
	parts := win.Get("Array").New()
	parts.Call("push", arr)
	opts := win.Get("Object").New()
	opts.Set("type", mime)
	blob := win.Get("Blob").New(parts, opts)

	url := win.Get("URL").Call("createObjectURL", blob)
	defer win.Get("URL").Call("revokeObjectURL", url)

	a := win.Get("document").Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", name)
	win.Get("document").Get("body").Call("appendChild", a)
	a.Call("click")
	a.Call("remove")
}
