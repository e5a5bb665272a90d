// Command kupu corrects, validates and scores te reo Māori usage in English
// tourism text.
//
// Usage:
//
//	kupu [flags] <command> [text...]
//
// Commands read the text from the remaining arguments, or from standard
// input when none are given. The validate command exits with status 3 when
// the text is not culturally safe.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/MrWong99/kupu/internal/config"
	"github.com/MrWong99/kupu/internal/monitor"
	"github.com/MrWong99/kupu/internal/observe"
	"github.com/MrWong99/kupu/pkg/engine"
	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

const usage = `usage: kupu [flags] <command> [text...]

commands:
  correct         print the corrected text
  validate        check cultural safety without changing the text
  score           print cultural authenticity and commercial relevance
  batch           correct standard input line by line, one JSON result per line
  lexicon-export  write the merged lexicon as flat record YAML, optionally
                  only the tiers named as arguments

flags:
`

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitUsage  = 2
	exitUnsafe = 3
)

// batchChunk is the number of lines corrected before results are flushed.
const batchChunk = 256

// maxLine is the longest input line accepted by batch mode.
const maxLine = 1 << 20

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// cli holds what every subcommand needs.
type cli struct {
	cfg    config.Config
	eng    *engine.Engine
	ectx   types.EngineContext
	asJSON bool
	stdin  io.Reader
	stdout io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	fs := flag.NewFlagSet("kupu", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "path to the YAML configuration file (optional)")
	region := fs.String("region", "", "region focus; overrides engine.region")
	userLevel := fs.String("user-level", "", "tourist, business or expert; overrides engine.user_level")
	demoMode := fs.String("demo-mode", "", "general, curated or advanced; overrides engine.demo_mode")
	asJSON := fs.Bool("json", false, "print the full correction result as JSON (correct only)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	// ── Load configuration ────────────────────────────────────────────────────
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "kupu: %v\n", err)
		return exitError
	}
	if *region != "" {
		cfg.Engine.Region = *region
	}
	if *userLevel != "" {
		cfg.Engine.UserLevel = types.UserLevel(*userLevel)
	}
	if *demoMode != "" {
		cfg.Engine.DemoMode = types.DemoMode(*demoMode)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "kupu: %v\n", err)
		return exitError
	}
	resolved := cfg.WithDefaults()

	// ── Logger ────────────────────────────────────────────────────────────────
	slog.SetDefault(newLogger(resolved.LogLevel, stderr))

	// ── Engine ────────────────────────────────────────────────────────────────
	overlays, err := config.LoadOverlays(&resolved)
	if err != nil {
		slog.Error("failed to load lexicon overlays", "err", err)
		return exitError
	}
	eng, err := engine.NewBuiltin(overlays,
		engine.WithSafetyFloor(*resolved.Engine.SafetyFloor),
		engine.WithAutoApplyOnly(resolved.Engine.AutoApplyOnly),
	)
	if err != nil {
		slog.Error("failed to build engine", "err", err)
		return exitError
	}
	slog.Debug("engine ready",
		"entries", eng.Store().Len(),
		"overlays", len(overlays),
		"region", resolved.Engine.Region,
		"user_level", resolved.Engine.UserLevel,
		"demo_mode", resolved.Engine.DemoMode,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := &cli{
		cfg:    resolved,
		eng:    eng,
		ectx:   resolved.Engine.EngineContext(),
		asJSON: *asJSON,
		stdin:  stdin,
		stdout: stdout,
	}
	rest := fs.Args()[1:]

	switch cmd := fs.Arg(0); cmd {
	case "correct":
		err = c.correct(ctx, rest)
	case "validate":
		var safe bool
		safe, err = c.validate(ctx, rest)
		if err == nil && !safe {
			return exitUnsafe
		}
	case "score":
		err = c.score(ctx, rest)
	case "batch":
		err = c.batch(ctx)
	case "lexicon-export":
		err = c.export(rest)
	default:
		fmt.Fprintf(stderr, "kupu: unknown command %q\n", cmd)
		fs.Usage()
		return exitUsage
	}
	if err != nil {
		slog.Error("command failed", "command", fs.Arg(0), "err", err)
		return exitError
	}
	return exitOK
}

// loadConfig reads path, or returns the zero config when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file %q not found", path)
		}
		return nil, err
	}
	return cfg, nil
}

// text joins args, or reads all of standard input when args is empty.
func (c *cli) text(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(c.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func (c *cli) correct(ctx context.Context, args []string) error {
	text, err := c.text(args)
	if err != nil {
		return err
	}
	res := c.eng.Correct(ctx, text, c.ectx)
	if c.asJSON {
		return writeJSON(c.stdout, res)
	}
	_, err = fmt.Fprintln(c.stdout, res.Text)
	return err
}

func (c *cli) validate(ctx context.Context, args []string) (bool, error) {
	text, err := c.text(args)
	if err != nil {
		return false, err
	}
	res := c.eng.ValidateCulturalSafety(ctx, text)
	return res.IsSafe, writeJSON(c.stdout, res)
}

// scores is the output of the score command.
type scores struct {
	Cultural   types.CulturalScore   `json:"cultural"`
	Commercial types.CommercialScore `json:"commercial"`
}

func (c *cli) score(ctx context.Context, args []string) error {
	text, err := c.text(args)
	if err != nil {
		return err
	}
	return writeJSON(c.stdout, scores{
		Cultural:   c.eng.ScoreCulturalAuthenticity(ctx, text, c.ectx),
		Commercial: c.eng.ScoreCommercialRelevance(ctx, text, c.ectx),
	})
}

// export writes the entries of the named tiers, or of every tier when none
// are named.
func (c *cli) export(tierNames []string) error {
	store := c.eng.Store()
	if len(tierNames) == 0 {
		return lexicon.EncodeRecords(c.stdout, store.All())
	}
	var entries []lexicon.Entry
	for _, name := range tierNames {
		t, err := lexicon.ParseTier(name)
		if err != nil {
			return err
		}
		entries = append(entries, store.EntriesForTier(t)...)
	}
	return lexicon.EncodeRecords(c.stdout, entries)
}

// batch corrects standard input line by line. When metrics.listen_addr is
// set it serves the monitoring endpoint until the input is exhausted.
func (c *cli) batch(ctx context.Context) error {
	log := slog.With("batch_id", uuid.NewString())
	log.Debug("batch started", "workers", c.cfg.Batch.Workers)

	if addr := c.cfg.Metrics.ListenAddr; addr != "" {
		stopMonitor, err := c.startMonitor(ctx, addr)
		if err != nil {
			return err
		}
		defer stopMonitor()
	}

	sc := bufio.NewScanner(c.stdin)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	enc := json.NewEncoder(c.stdout)
	enc.SetEscapeHTML(false)

	lines := make([]string, 0, batchChunk)
	flush := func() error {
		if len(lines) == 0 {
			return nil
		}
		results, err := c.eng.CorrectBatch(ctx, lines, c.ectx, c.cfg.Batch.Workers)
		if err != nil {
			return err
		}
		for _, res := range results {
			if err := enc.Encode(res); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
		lines = lines[:0]
		return nil
	}

	total := 0
	for sc.Scan() {
		lines = append(lines, sc.Text())
		total++
		if len(lines) == batchChunk {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}
	log.Info("batch complete", "lines", total)
	return nil
}

// startMonitor installs the Prometheus-backed OTel providers and serves the
// monitoring endpoint on addr. The returned function stops both.
func (c *cli) startMonitor(ctx context.Context, addr string) (func(), error) {
	shutdownOTel, err := observe.InitProvider(ctx, observe.ProviderConfig{})
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		_ = shutdownOTel(ctx)
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	srvCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() {
		done <- monitor.Serve(srvCtx, ln, monitor.Handler(observe.DefaultMetrics(), monitor.LexiconCheck(c.eng.Store())))
	}()

	return func() {
		cancel()
		if err := <-done; err != nil {
			slog.Warn("monitoring endpoint stopped with error", "err", err)
		}
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		if err := shutdownOTel(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func newLogger(level config.LogLevel, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case config.LogDebug:
		lvl = slog.LevelDebug
	case config.LogWarn:
		lvl = slog.LevelWarn
	case config.LogError:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
