package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/racecoach/internal/coach"
	"github.com/claude/racecoach/internal/config"
	"github.com/claude/racecoach/internal/mcp"
	"github.com/claude/racecoach/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	remote := flag.String("remote", "", "RaceCoach server URL; query over its REST API instead of the database")
	apiKey := flag.String("api-key", "", "API key for -remote (defaults to RACECOACH_AUTH_API_KEY)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("racecoach-mcp", Version)
		return
	}

	// stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	var c *coach.Coach

	if *remote != "" {
		key := *apiKey
		if key == "" {
			key = os.Getenv("RACECOACH_AUTH_API_KEY")
		}
		if key == "" {
			fmt.Fprintln(os.Stderr, "Error: -remote requires -api-key or RACECOACH_AUTH_API_KEY")
			os.Exit(1)
		}
		ds = mcp.NewHTTPClient(*remote, key)
		log.Info("remote mode", "server", *remote)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}

		db, err := storage.New(context.Background(), cfg.Database.DSN())
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db

		// Generation tools only work with a database behind them; in remote
		// mode the REST API owns generation.
		gen := coach.NewHTTPGenerator(cfg.Generator.BaseURL, cfg.Generator.APIKey, cfg.Generator.Timeout)
		c = coach.New(gen, log).WithMaxAttempts(cfg.Generator.MaxAttempts)
	}

	s := mcp.New(ds, c, Version, log)
	log.Info("MCP server starting on stdio")
	if err := server.ServeStdio(s); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
