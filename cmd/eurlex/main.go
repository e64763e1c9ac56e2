package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/eurlex/etree"
	"github.com/fwojciec/eurlex/fs"
	"github.com/fwojciec/eurlex/goquery"
	"github.com/fwojciec/eurlex/htmltomarkdown"
	eurlexhttp "github.com/fwojciec/eurlex/http"
	"github.com/fwojciec/eurlex/pdf"
	eurlexslog "github.com/fwojciec/eurlex/slog"
	"github.com/fwojciec/eurlex/sqlite"
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
	// SQLite database holding query history. Opened only by commands
	// that record or read history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("eurlex"),
		kong.Description("Query EU legal document metadata and retrieve documents from Cellar."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'eurlex --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []eurlexhttp.Option{
		eurlexhttp.WithEndpoint(cli.Endpoint),
		eurlexhttp.WithBaseURL(cli.BaseURL),
		eurlexhttp.WithTimeout(cli.Timeout),
		eurlexhttp.WithRateLimit(cli.RateLimit),
	}

	switch cmd {
	case "run":
		execOpts := opts
		if cli.Run.Lenient {
			execOpts = append(execOpts, eurlexhttp.WithLenient(deps.Logger))
		}
		deps.Executor = eurlexslog.NewLoggingExecutor(eurlexhttp.NewExecutor(execOpts...), deps.Logger)

	case "notice", "data":
		docs := eurlexhttp.NewDocumentService(opts...)
		docs.HTML = goquery.NewTextExtractor()
		if cli.Data.Markdown {
			docs.HTML = htmltomarkdown.NewTextExtractor()
		}
		docs.PDF = pdf.NewTextExtractor()
		docs.Links = goquery.NewLinkExtractor()
		docs.Notices = etree.NewNoticeParser()
		deps.Documents = eurlexslog.NewLoggingDocumentService(docs, deps.Logger)

		var writerOpts []fs.Option
		if cli.Notice.Append {
			writerOpts = append(writerOpts, fs.WithAppend())
		}
		deps.Writer = fs.NewNoticeWriter(cli.Notice.OutputDir, writerOpts...)
	}

	if cmd == "history" || (cmd == "run" && !cli.Run.NoSave) {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = defaultDBPath()
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set EURLEX_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()
		deps.Records = sqlite.NewQueryRecordService(m.DB)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "eurlex.db"
	}
	dir := filepath.Join(home, ".eurlex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "eurlex.db")
}

