// Command server exposes the engine over HTTP. Configuration comes
// from the environment (optionally via a .env file):
//
//	MODCLOCK_ADDR  listen address, default ":8080"
package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/GoodbyeKittyy/modular-arithmetic-clock/internal/httpapi"
)

func main() {
	// .env is optional; a missing file just means plain env vars.
	_ = godotenv.Load()

	addr := os.Getenv("MODCLOCK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	server := httpapi.New(logger)

	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
