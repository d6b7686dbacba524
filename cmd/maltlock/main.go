package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/rlatmfrl24/maltlock"
	"github.com/rlatmfrl24/maltlock/crawl"
	"github.com/rlatmfrl24/maltlock/goquery"
	mlhttp "github.com/rlatmfrl24/maltlock/http"
	"github.com/rlatmfrl24/maltlock/regex"
	mlslog "github.com/rlatmfrl24/maltlock/slog"
	"github.com/rlatmfrl24/maltlock/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ItemService maltlock.ItemService
	RunService  maltlock.CrawlRunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("maltlock"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'maltlock --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(m.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set MALTLOCK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ItemService = sqlite.NewItemService(m.DB)
	m.RunService = sqlite.NewCrawlRunService(m.DB)
	deps.DB = m.DB
	deps.Items = m.ItemService
	deps.Runs = m.RunService

	if cmd == "crawl" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		registry := mlslog.NewLoggingRegistry(regex.NewRegistry(), logger)
		deps.Crawler = crawl.NewCrawler(
			mlhttp.NewFetcher(),
			registry,
			deps.Items,
			deps.Runs,
			crawl.WithInspector(goquery.NewInspector()),
			crawl.WithLogger(logger),
		)
	}

	return kongCtx.Run(deps)
}

// defaultDBPath returns the database path from MALTLOCK_DB, falling back to
// ~/.maltlock/maltlock.db.
func defaultDBPath() string {
	if path := os.Getenv("MALTLOCK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "maltlock.db"
	}
	return filepath.Join(home, ".maltlock", "maltlock.db")
}
