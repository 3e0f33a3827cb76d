package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"gostore/auth"
	"gostore/catalog"
	"gostore/config"
	"gostore/handlers"
)

func main() {
	seed := flag.Bool("seed", false, "drop and reseed the product database, then exit")
	flag.Parse()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	store, err := catalog.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open product database")
	}
	defer store.Close()

	if *seed {
		if err := store.Seed(); err != nil {
			log.Fatal().Err(err).Msg("failed to seed product database")
		}
		log.Info().Str("db", cfg.DBPath).Msg("product database seeded")
		return
	}

	if err := store.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize product database")
	}

	creds, err := auth.NewStatic(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up admin credentials")
	}

	r := handlers.NewRouter(cfg, store, creds, log, "templates/*")

	log.Info().Str("addr", cfg.Addr).Msg("server starting")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
