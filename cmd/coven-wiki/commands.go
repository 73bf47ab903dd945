// ABOUTME: Offline and client subcommands for coven-wiki
// ABOUTME: health queries a running server; list, search, random, export, and import work on the store directly

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/2389/coven-wiki/internal/backup"
	"github.com/2389/coven-wiki/internal/config"
	"github.com/2389/coven-wiki/internal/store"
	"github.com/2389/coven-wiki/internal/wiki"
)

// healthURL returns the health endpoint of the server described by cfg.
func healthURL(cfg *config.Config) string {
	if cfg.Tailscale.Enabled {
		scheme := "http"
		if cfg.Tailscale.HTTPS || cfg.Tailscale.Funnel {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s/health", scheme, cfg.Tailscale.Hostname)
	}
	return fmt.Sprintf("http://%s/health", cfg.Server.HTTPAddr)
}

func runHealth(ctx context.Context) error {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, healthURL(cfg), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}

	fmt.Println("healthy")
	return nil
}

// openService loads the config and opens its store for offline use.
// Logs go to stderr so stdout stays clean for piping.
func openService() (*wiki.Service, func(), error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	s, err := store.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}

	logger := newLogger(cfg.Logging, os.Stderr)
	closeFn := func() {
		if err := s.Close(); err != nil {
			logger.Warn("closing store", "error", err)
		}
	}
	return wiki.New(s, wiki.NewPicker(), logger), closeFn, nil
}

func runList(ctx context.Context) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	names, err := svc.Index(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runSearch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("search requires a query")
	}
	query := strings.Join(args, " ")

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := svc.Search(ctx, query)
	if err != nil {
		return err
	}
	if result.Outcome == wiki.NoMatch {
		color.New(color.FgYellow).Fprintln(os.Stderr, "no matching articles")
		return nil
	}
	for _, name := range result.Names {
		fmt.Println(name)
	}
	return nil
}

func runRandom(ctx context.Context) error {
	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	name, err := svc.Random(ctx)
	if errors.Is(err, wiki.ErrEmptyStore) {
		return errors.New("the wiki has no articles")
	}
	if err != nil {
		return err
	}
	fmt.Println(name)
	return nil
}

func runExport(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("unexpected argument: %s", args[1])
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	n, err := exportTo(ctx, svc.Store(), path)
	if err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "  ✓ Exported %d articles\n", n)
	return nil
}

// exportTo writes a backup of s to path, or to stdout when path is "-".
// A failed close is reported since it can mean the backup was never flushed.
func exportTo(ctx context.Context, s store.Store, path string) (int, error) {
	if path == "-" {
		return backup.Export(ctx, s, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating backup file: %w", err)
	}
	n, err := backup.Export(ctx, s, f)
	if err != nil {
		_ = f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing backup file: %w", err)
	}
	return n, nil
}

// parseImportArgs accepts "[--overwrite] FILE" in either order.
func parseImportArgs(args []string) (overwrite bool, path string, err error) {
	for _, arg := range args {
		switch {
		case arg == "--overwrite" || arg == "-f":
			overwrite = true
		case arg != "-" && strings.HasPrefix(arg, "-"):
			return false, "", fmt.Errorf("unknown flag: %s", arg)
		case path != "":
			return false, "", fmt.Errorf("unexpected argument: %s", arg)
		default:
			path = arg
		}
	}
	if path == "" {
		return false, "", errors.New("import requires a backup file (use - for stdin)")
	}
	return overwrite, path, nil
}

func runImport(ctx context.Context, args []string) error {
	overwrite, path, err := parseImportArgs(args)
	if err != nil {
		return err
	}

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening backup file: %w", err)
		}
		defer f.Close()
		in = f
	}

	report, err := backup.Import(ctx, svc, in, overwrite)
	if err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "  ✓ Imported %d articles", report.Imported)
	if report.Skipped > 0 {
		color.New(color.FgYellow).Fprintf(os.Stderr, " (%d skipped, already present)", report.Skipped)
	}
	fmt.Fprintln(os.Stderr)
	return nil
}
