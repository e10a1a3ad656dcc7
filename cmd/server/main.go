package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bottoms-up/internal/config"
	"bottoms-up/internal/db"
	"bottoms-up/internal/rooms"
	"bottoms-up/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.Env)

	conn, err := db.Open()
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if err := db.Tune(conn,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
		time.Duration(cfg.DBConnMaxLifetimeSeconds)*time.Second,
		time.Duration(cfg.DBConnMaxIdleTimeSeconds)*time.Second,
	); err != nil {
		logger.Fatal().Err(err).Msg("database pool configuration failed")
	}
	if cfg.Env == "local" {
		// Local runs skip the migrate binary.
		if err := db.Migrate(conn); err != nil {
			logger.Fatal().Err(err).Msg("database migration failed")
		}
	}

	svc := rooms.NewService(db.NewRepo(conn), logger, cfg.RoomTTL(), cfg.HigherLowerDeckSize)
	srv := server.New(svc, logger)

	logger.Info().Str("addr", cfg.Addr).Str("env", cfg.Env).Msg("bottoms-up server listening")
	if err := srv.Router().Run(cfg.Addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func newLogger(env string) zerolog.Logger {
	if env == "local" {
		gin.SetMode(gin.DebugMode)
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(out).With().Timestamp().Logger()
	}
	gin.SetMode(gin.ReleaseMode)
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}
