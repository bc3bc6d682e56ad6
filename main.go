package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"codex-portfolio/internal/config"
	"codex-portfolio/internal/server"
	"codex-portfolio/internal/version"

	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the configuration file")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		os.Exit(0)
	}

	// Missing .env is fine, environment overrides are optional.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
