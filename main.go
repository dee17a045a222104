package main

import (
	"flag"
	"net/http"

	"unoscore/internal/config"
	"unoscore/internal/engine"
	"unoscore/internal/handlers"
	"unoscore/internal/logging"
	"unoscore/internal/storage"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logging.New(*debug)
	cfg := config.Load()

	var store storage.Store
	switch {
	case cfg.DBPath != "":
		db, err := storage.Open(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
		}
		store = db
		log.Info().Str("path", cfg.DBPath).Msg("using sqlite store")
	case cfg.DataDir != "":
		fs, err := storage.NewFile(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("open data dir")
		}
		store = fs
		log.Info().Str("dir", cfg.DataDir).Msg("using file store")
	default:
		store = storage.NewMemory()
		log.Warn().Msg("no backing store configured, scores will not survive a restart")
	}

	eng := engine.New(store, cfg.StorageKey, log)
	h := handlers.NewHandler(eng, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/games", h.HandleGames)
	mux.HandleFunc("/api/games/", h.HandleGame)
	mux.HandleFunc("/api/version", handleVersion)

	log.Info().Str("addr", cfg.Addr).Str("commit", commit).Msg("unoscore listening")
	err := http.ListenAndServe(cfg.Addr, handlers.RequestLogger(log, mux))
	log.Fatal().Err(err).Msg("server exited")
}
