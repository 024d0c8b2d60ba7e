package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/kidandcat/promanager/internal/api"
	"github.com/kidandcat/promanager/internal/config"
	"github.com/kidandcat/promanager/internal/logger"
	"github.com/kidandcat/promanager/internal/media"
	"github.com/kidandcat/promanager/internal/notify"
	"github.com/kidandcat/promanager/internal/session"
)

const envLogLevel = "LOG_LEVEL"

const msgSessionEnded = "انتهت الجلسة، سجل دخولك مرة أخرى"

// env is the state every component shares. It is built once in main and
// handed to each route, never reached through globals.
type env struct {
	cfg       config.Client
	log       *logger.Logger
	session   *session.Store
	api       *api.Client
	notices   *notify.Bus
	dismissed *notify.Dismissed
	media     media.Resolver
}

func newEnv() *env {
	cfg := config.ClientFrom(app.Getenv)

	var kv session.KV = session.NewMemoryKV()
	if app.IsClient {
		kv = newLocalStorage()
	}

	log := logger.New(logger.Config{
		Level:       app.Getenv(envLogLevel),
		ServiceName: "promanager-web",
	})

	e := &env{
		cfg:       cfg,
		log:       log,
		session:   session.NewStore(kv),
		notices:   notify.NewBus(),
		dismissed: notify.NewDismissed(kv),
		media:     media.Resolver{Base: cfg.AssetURL},
	}
	e.api = api.New(cfg.APIURL, e.session,
		api.WithTimeout(cfg.APITimeout),
		api.WithLogger(log.Named("api")),
		api.WithUnauthorized(func() { e.notices.Warn(msgSessionEnded) }),
	)
	return e
}
