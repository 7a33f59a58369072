package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cubescene/internal/config"
	"cubescene/internal/game"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "scene settings file (YAML)")
	variant := flag.String("variant", "", "scene variant: camera, spin or orbit (overrides the config file)")
	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	if explicit {
		// Resolve against the caller's directory before moving away from it.
		abs, err := filepath.Abs(*configPath)
		if err != nil {
			log.Fatalf("Config: %v", err)
		}
		*configPath = abs
	}

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	load := config.Load
	if explicit {
		load = config.LoadFile
	}
	cfg, err := load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *variant != "" {
		cfg.Variant = config.Variant(*variant)
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Config: %v", err)
		}
	}

	g := game.New(cfg)
	g.Run()
}
