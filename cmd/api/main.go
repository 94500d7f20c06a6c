package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/DanielKiedis/TallerMecanico/internal/config"
	"github.com/DanielKiedis/TallerMecanico/internal/database"
	"github.com/DanielKiedis/TallerMecanico/internal/notify"
	"github.com/DanielKiedis/TallerMecanico/internal/repository/postgres"
	"github.com/DanielKiedis/TallerMecanico/internal/router"
	"github.com/DanielKiedis/TallerMecanico/internal/utils"
	"github.com/DanielKiedis/TallerMecanico/pkg/logger"
)

func main() {
	// config + logger
	_ = godotenv.Load()
	cfg := config.Load()
	l := logger.New(cfg.Env)

	// db
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool, err := database.Open(ctx, cfg)
	if err != nil {
		l.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		l.Fatal().Err(err).Msg("db migrate failed")
	}

	// first-run provisioning: seeded admin + sample catalog
	users := postgres.NewUserRepo(pool)
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		l.Fatal().Err(err).Msg("admin password hash failed")
	}
	if err := users.EnsureAdmin(ctx, "admin", hash); err != nil {
		l.Fatal().Err(err).Msg("admin seed failed")
	}
	if err := postgres.NewCatalogRepo(pool).SeedDefaults(ctx); err != nil {
		l.Fatal().Err(err).Msg("catalog seed failed")
	}

	// confirmation mail worker
	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, l)
	dispatcher := notify.NewDispatcher(mailer, l)
	go dispatcher.Run(ctx)

	// http
	r := router.New(l, pool, cfg, dispatcher)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Fatal().Err(err).Msg("server error")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	l.Info().Msg("shutdown complete")
}
