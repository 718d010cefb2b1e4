package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/ledgerkeep/ledgerkeep/internal/api"
	"github.com/ledgerkeep/ledgerkeep/internal/config"
	"github.com/ledgerkeep/ledgerkeep/internal/logger"
	"github.com/ledgerkeep/ledgerkeep/internal/store"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info")
		fallback.Fatal().Err(err).Msg("load configuration")
	}
	log := logger.New(cfg.LogLevel)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer st.Close()
	if err := st.Init(); err != nil {
		log.Fatal().Err(err).Msg("initialize database schema")
	}

	app := fiber.New(fiber.Config{
		AppName:   "ledgerkeep v" + version,
		BodyLimit: cfg.UploadLimitMB << 20,
	})

	h := &api.Handler{Store: st, Log: log}
	h.Register(app)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Str("db", cfg.DBPath).Msg("ledgerkeep listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
