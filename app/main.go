// Command promanager-web is the ProManager single-page client. Built for
// wasm it runs in the browser; built natively it serves the bundle.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/config"
	"github.com/kidandcat/promanager/internal/guard"
	"github.com/kidandcat/promanager/internal/logger"
)

func routes(e *env) {
	screen := func(need guard.Requirement, page func() app.UI) func() app.Composer {
		return func() app.Composer { return &Screen{env: e, need: need, page: page} }
	}

	app.Route("/", screen(guard.Public, func() app.UI { return &Home{env: e} }))
	app.Route("/login", screen(guard.Public, func() app.UI { return &Login{env: e} }))
	app.Route("/register", screen(guard.Public, func() app.UI { return &Register{env: e} }))
	app.Route("/projects", screen(guard.Public, func() app.UI { return &Projects{env: e} }))
	app.RouteWithRegexp(`^/project/[^/]+$`, screen(guard.Public, func() app.UI { return &ProjectDetails{env: e} }))

	app.Route("/profile", screen(guard.Authenticated, func() app.UI { return &Profile{env: e} }))
	app.Route("/add-project", screen(guard.Authenticated, func() app.UI { return &AddProject{env: e} }))
	app.RouteWithRegexp(`^/edit-project/[^/]+$`, screen(guard.Authenticated, func() app.UI { return &EditProject{env: e} }))
	app.Route("/my-projects", screen(guard.Authenticated, func() app.UI { return &MyProjects{env: e} }))

	app.Route("/admin/dashboard", screen(guard.Admin, func() app.UI { return &AdminDashboard{env: e} }))
}

func main() {
	if app.IsServer {
		config.LoadDotenv()
	}
	routes(newEnv())
	app.RunWhenOnBrowser()

	cfg := config.Load()
	log := logger.New(logger.Config{Level: cfg.LogLevel, ServiceName: "promanager-web"})

	clientEnv := cfg.Client.Env()
	clientEnv[envLogLevel] = cfg.LogLevel

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: &app.Handler{
			Name:        "ProManager",
			ShortName:   "ProManager",
			Title:       "ProManager",
			Description: "منصتك الاحترافية لإدارة ورفع المشاريع البرمجية",
			Lang:        "ar",
			Styles:      []string{"/web/app.css"},
			Env:         clientEnv,
		},
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("api", cfg.Client.APIURL).Msg("serving client")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
