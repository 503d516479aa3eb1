package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/mbolis/form-builder/app"
	"github.com/mbolis/form-builder/config"
	"github.com/mbolis/form-builder/log"
	"github.com/mbolis/form-builder/routes"
	"github.com/mbolis/form-builder/storage"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal("main.store.open:", err)
	}
	defer store.Close()

	app := app.App{
		Store:  store,
		Config: cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func openStore(cfg config.Config) (storage.Store, error) {
	if cfg.DBUrl != "" {
		log.Infof("Using SQLite store at %s", cfg.DBUrl)
		return storage.OpenSQLite(cfg.DBUrl)
	}
	log.Infof("Using JSON document store in %s/", cfg.DataDir)
	return storage.NewJSONStore(cfg.DataDir)
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
