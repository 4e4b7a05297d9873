package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/pawprint/server/core"
	"github.com/automoto/pawprint/shared/gameconfig"
	"github.com/automoto/pawprint/shared/leveldata"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	port := flag.String("port", envOr("PORT", "8080"), "HTTP port")
	configPath := flag.String("config", os.Getenv("PAWPRINT_CONFIG"), "YAML file overriding the simulation tuning")
	levelsDir := flag.String("levels", os.Getenv("PAWPRINT_LEVELS"), "directory of .tmx levels (default: built-in levels)")
	tickRate := flag.Int("tickrate", 0, "simulation steps per second (default: from config)")
	recovery := flag.String("recovery", "", "out-of-bounds recovery: respawn or snap_to_ground")
	flag.Parse()

	cfg := gameconfig.Default()
	if *configPath != "" {
		c, err := gameconfig.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = c
	}
	if *tickRate > 0 {
		cfg.Loop.TickRate = *tickRate
	}
	if *recovery != "" {
		p, err := gameconfig.ParsePolicy(*recovery)
		if err != nil {
			log.Fatalf("Invalid -recovery: %v", err)
		}
		cfg.Recovery.Policy = p
	}

	levels := leveldata.Builtin(cfg.Canvas.Width, cfg.Canvas.Height)
	if *levelsDir != "" {
		loaded, err := leveldata.LoadAllLevels(os.DirFS(*levelsDir), ".")
		if err != nil {
			log.Fatalf("Failed to load levels from %s: %v", *levelsDir, err)
		}
		levels = loaded
	}

	server, err := core.NewServer(cfg, levels)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + *port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting Pawprint server on :%s (%d levels, tick rate %d/s, recovery %s)",
		*port, len(levels), cfg.Loop.TickRate, cfg.Recovery.Policy)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
