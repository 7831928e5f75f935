package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mersetter/jass-game-app/internal/room"
	"github.com/mersetter/jass-game-app/internal/server"
)

func main() {
	if lvl, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		logrus.SetLevel(lvl)
	}

	addr := envOr("ADDR", ":8080")

	cfg := room.DefaultConfig()
	if ms := envInt("BOT_DELAY_MS", 0); ms > 0 {
		cfg.BotDelay = time.Duration(ms) * time.Millisecond
	}
	if ms := envInt("TRICK_DELAY_MS", 0); ms > 0 {
		cfg.TrickDelay = time.Duration(ms) * time.Millisecond
	}

	hub := server.NewHub()
	mgr := room.NewManager(room.NewMemoryStore(), hub, cfg)
	srv := server.New(mgr, hub)

	mux := http.NewServeMux()
	srv.Routes(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Serve frontend build with SPA fallback
	webDist := filepath.Join("web", "dist")
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(webDist, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(webDist, "index.html"))
	}))

	logrus.WithField("addr", addr).Info("listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
