// ABOUTME: Entry point for coven-wiki, a small Markdown encyclopedia
// ABOUTME: Dispatches serve, init, health, and offline content subcommands

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"

	"github.com/2389/coven-wiki/internal/config"
	"github.com/2389/coven-wiki/internal/server"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
                                             _ _    _
  ___ _____   _____ _ __      __      _(_) | _(_)
 / __/ _ \ \ / / _ \ '_ \ ____\ \ /\ / / | |/ / |
| (_| (_) \ V /  __/ | | |_____\ V  V /| |   <| |
 \___\___/ \_/ \___|_| |_|      \_/\_/ |_|_|\_\_|
`

// getConfigPath returns the path to the wiki config file.
// Priority: COVEN_WIKI_CONFIG env var > XDG_CONFIG_HOME/coven/wiki.yaml > ~/.config/coven/wiki.yaml
func getConfigPath() string {
	if envPath := os.Getenv("COVEN_WIKI_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "wiki.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "coven", "wiki.yaml")
}

// getDataPath returns the path to the coven data directory.
// Priority: XDG_DATA_HOME/coven > ~/.local/share/coven
func getDataPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataDir, "coven")
}

func usage() {
	fmt.Println("Usage: coven-wiki <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  serve                        Start the wiki server")
	fmt.Println("  init                         Create a new config file interactively")
	fmt.Println("  health                       Check wiki health")
	fmt.Println("  list                         List all article titles")
	fmt.Println("  search QUERY                 Search article titles")
	fmt.Println("  random                       Print a random article title")
	fmt.Println("  export [FILE]                Write a backup (stdout if FILE is omitted)")
	fmt.Println("  import [--overwrite] FILE    Load articles from a backup")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	args := os.Args[2:]
	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit()
	case "health":
		err = runHealth(ctx)
	case "list":
		err = runList(ctx)
	case "search":
		err = runSearch(ctx, args)
	case "random":
		err = runRandom(ctx)
	case "export":
		err = runExport(ctx, args)
	case "import":
		err = runImport(ctx, args)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := getConfigPath()

	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	green.Print("    ▶ ")
	fmt.Printf("Config:    %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("Storage:   %s (%s)\n", cfg.Storage.Path, cfg.Storage.Backend)

	if cfg.Tailscale.Enabled {
		green.Print("    ▶ ")
		fmt.Printf("Tailscale: ")
		cyan.Print(cfg.Tailscale.Hostname)
		if cfg.Tailscale.Funnel {
			yellow.Print(" [funnel]")
		} else if cfg.Tailscale.HTTPS {
			yellow.Print(" [https]")
		}
		if cfg.Tailscale.Ephemeral {
			gray.Print(" (ephemeral)")
		}
		fmt.Println()
	} else {
		green.Print("    ▶ ")
		fmt.Printf("HTTP:      http://%s/\n", cfg.Server.HTTPAddr)
	}

	fmt.Println()

	logger.Info("starting coven-wiki",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
		"backend", cfg.Storage.Backend,
	)

	srv, err := server.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return srv.Run(ctx)
}
