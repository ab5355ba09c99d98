package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/taskboard-dev/taskboard/db"
	"github.com/taskboard-dev/taskboard/internal/auth"
	"github.com/taskboard-dev/taskboard/internal/config"
	"github.com/taskboard-dev/taskboard/internal/handlers"
	"github.com/taskboard-dev/taskboard/internal/logger"
	"github.com/taskboard-dev/taskboard/internal/realtime"
	"github.com/taskboard-dev/taskboard/internal/router"
	"github.com/taskboard-dev/taskboard/internal/services"
	"github.com/taskboard-dev/taskboard/internal/store"
)

const connectTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()

	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStore(cfg.DB)

	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to open store")
	}

	tokens := auth.NewTokenService(cfg.JWT.Secret, auth.DefaultTokenTTL)
	hub := realtime.NewHub(cfg.Server.AllowedOrigins, log)

	h := handlers.New(handlers.Deps{
		Accounts: services.NewAccountService(st, tokens),
		Projects: services.NewProjectService(st, hub),
		Tasks:    services.NewTaskService(st, hub, cfg.Auth.EnforceTaskProjectOwnership),
		Hub:      hub,
		Store:    st,
		Logger:   log,
	})

	r := router.NewRouter(router.Options{
		AllowedOrigins:     cfg.Server.AllowedOrigins,
		StrictBearerScheme: cfg.Auth.StrictBearerScheme,
		Tokens:             tokens,
		Handler:            h,
		Logger:             log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("driver", cfg.DB.Driver).Msg("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http": func(ctx context.Context) error {
				// Hijacked websocket connections are not tracked by Shutdown.
				hub.Close()
				return srv.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait

	if err := st.Close(context.Background()); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}

	log.Info().Int("code", exitCode).Msg("server stopped")
	os.Exit(exitCode)
}

func openStore(cfg config.DBConfig) (store.Store, error) {
	if cfg.Driver == config.DriverMongo {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		return store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}

	gormDB, err := db.Connect(cfg)

	if err != nil {
		return nil, err
	}

	if err := db.Migrate(gormDB); err != nil {
		return nil, err
	}

	return store.NewGormStore(gormDB), nil
}
