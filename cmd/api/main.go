package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/user/inventory_api/handlers"
	"github.com/user/inventory_api/internal/config"
	"github.com/user/inventory_api/internal/database"
	"github.com/user/inventory_api/internal/logger"
	"github.com/user/inventory_api/repository"
	"github.com/user/inventory_api/services"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "inventory-api")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	repos, err := repository.NewFactory(db, log)
	if err != nil {
		log.Fatal("failed to build repositories", zap.Error(err))
	}

	strategies, err := services.NewRoleStrategyFactory(repos.RoleRepository()).
		WithLogger(log).
		Build()
	if err != nil {
		log.Fatal("failed to build role strategy factory", zap.Error(err))
	}

	roleSvc, err := services.NewRoleBusiness(strategies, log)
	if err != nil {
		log.Fatal("failed to build role business", zap.Error(err))
	}

	roleFormSvc, err := services.NewRoleFormService(repos.RoleRepository(), repos.RoleFormRepository()).
		WithLogger(log).
		Build()
	if err != nil {
		log.Fatal("failed to build role form service", zap.Error(err))
	}

	handlers.SetHideErrorDetails(cfg.HideErrorDetails)

	mux := handlers.NewRouter().
		WithRoleService(roleSvc).
		WithRoleFormService(roleFormSvc).
		WithMiddlewares(handlers.DefaultMiddlewares(log.Named("http"))...).
		Build()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	trigger, stop := context.WithCancel(context.Background())
	defer stop()

	var serverFailed atomic.Bool
	go func() {
		if err := listen(server, log); err != nil {
			serverFailed.Store(true)
			stop()
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		trigger,
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Info("shutting down server")
				return server.Shutdown(ctx)
			},
			"database": func(ctx context.Context) error {
				return database.Close(db)
			},
		},
	)

	exitCode := <-wait
	if serverFailed.Load() && exitCode == 0 {
		exitCode = 1
	}
	log.Info("server exited", zap.Int("exit_code", exitCode))
	log.Sync()
	os.Exit(exitCode)
}

// listen serves until the server stops. A closed server is not a failure;
// anything else is logged and returned so the caller can start shutdown.
func listen(server *http.Server, log *zap.Logger) error {
	log.Info("starting server", zap.String("addr", server.Addr))
	err := server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	log.Error("server error", zap.Error(err))
	return err
}
