package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"

	"github.com/andyrewlee/marquee/internal/config"
	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/marquee"
	"github.com/andyrewlee/marquee/internal/safego"
	"github.com/andyrewlee/marquee/internal/ui"
	"github.com/andyrewlee/marquee/internal/watch"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	text := flag.String("text", "", "text to scroll (positional words work too)")
	file := flag.String("file", "", "scroll the first line of this file, reloading it on change")
	width := flag.Int("width", 0, "viewport width in cells")
	wait := flag.Duration("wait", 0, "delay between frames")
	filler := flag.String("filler", "", "padding character for empty cells")
	direction := flag.String("direction", "", "scroll direction: left or right")
	passes := flag.Int("passes", 1, "number of full passes; -1 repeats until interrupted")
	includeFirst := flag.Bool("include-first", true, "emit the all-filler leading frame")
	includeLast := flag.Bool("include-last", true, "emit the all-filler trailing frame")
	prefix := flag.String("prefix", "", "string printed before each frame")
	suffix := flag.String("suffix", "", "string printed after each frame")
	configPath := flag.String("config", "", "config file (default ~/.marquee/config.toml)")
	tui := flag.Bool("tui", false, "run the interactive viewer")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("marquee %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	cfg, paths, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if paths != nil {
		if err := logging.Initialize(paths.LogsRoot, logging.LevelInfo); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not initialize logging: %v\n", err)
		}
		defer logging.Close()
	}

	// Flags override the config file only when given explicitly.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["width"] {
		cfg.Width = *width
	}
	if set["wait"] {
		cfg.WaitMs = int(wait.Milliseconds())
	}
	if set["filler"] {
		cfg.Filler = *filler
	}
	if set["direction"] {
		cfg.Direction = *direction
	}
	if set["prefix"] {
		cfg.Prefix = *prefix
	}
	if set["suffix"] {
		cfg.Suffix = *suffix
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, runParams{
		cfg:          cfg,
		text:         *text,
		args:         flag.Args(),
		file:         *file,
		passes:       *passes,
		includeFirst: *includeFirst,
		includeLast:  *includeLast,
		tui:          *tui,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.WithError(err, "marquee exited")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if logPath := logging.GetLogPath(); logPath != "" {
			fmt.Fprintf(os.Stderr, "See %s for details\n", logPath)
		}
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, *config.Paths, error) {
	if path != "" {
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return nil, nil, err
		}
		paths, pathsErr := config.DefaultPaths()
		if pathsErr != nil {
			paths = nil
		}
		return cfg, paths, nil
	}
	return config.Load()
}

type runParams struct {
	cfg          *config.Config
	text         string
	args         []string
	file         string
	passes       int
	includeFirst bool
	includeLast  bool
	tui          bool
}

func run(ctx context.Context, p runParams) error {
	dir, err := marquee.ParseDirection(p.cfg.Direction)
	if err != nil {
		return err
	}
	opts := marquee.Options{
		Width:        p.cfg.Width,
		Wait:         p.cfg.Wait(),
		Filler:       p.cfg.FillerRune(),
		Direction:    dir,
		IncludeFirst: p.includeFirst,
		IncludeLast:  p.includeLast,
	}

	if p.file != "" {
		if p.tui {
			return errors.New("-file and -tui cannot be combined")
		}
		return scrollFile(ctx, p, opts)
	}

	opts.Text = p.text
	if opts.Text == "" {
		opts.Text = strings.Join(p.args, " ")
	}
	if opts.Text == "" {
		return errors.New("nothing to scroll: pass -text, -file, or positional words")
	}

	if p.tui {
		return runTUI(opts, p.cfg)
	}

	opts.Sink = (&marquee.LinePrinter{W: os.Stdout, Prefix: p.cfg.Prefix, Suffix: p.cfg.Suffix}).Print
	engine, err := marquee.New(opts)
	if err != nil {
		return err
	}
	logging.Info("scrolling %d runes in a %d-cell viewport", len([]rune(opts.Text)), opts.Width)
	return engine.Repeat(ctx, p.passes)
}

func runTUI(opts marquee.Options, cfg *config.Config) error {
	if !term.IsTerminal(os.Stdout.Fd()) {
		return errors.New("the interactive viewer needs a terminal")
	}
	m, err := ui.New(opts, cfg.Prefix, cfg.Suffix)
	if err != nil {
		return err
	}
	logging.Info("starting interactive viewer")
	_, err = tea.NewProgram(m).Run()
	return err
}

// scrollFile scrolls the file's first line and rebuilds the engine with
// fresh text whenever the file changes.
func scrollFile(ctx context.Context, p runParams, opts marquee.Options) error {
	text, err := watch.ReadText(p.file)
	if err != nil {
		return err
	}

	textCh := make(chan string, 1)
	w, err := watch.NewTextWatcher(p.file, func(t string) {
		// Keep only the newest text if reloads outpace the scroller.
		select {
		case <-textCh:
		default:
		}
		textCh <- t
	})
	if err != nil {
		return err
	}
	defer w.Close()
	safego.Go("text-watcher", func() { _ = w.Run(ctx) })

	for {
		opts.Text = text
		opts.Sink = (&marquee.LinePrinter{W: os.Stdout, Prefix: p.cfg.Prefix, Suffix: p.cfg.Suffix}).Print
		engine, err := marquee.New(opts)
		if err != nil {
			return err
		}

		runCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() { done <- engine.Repeat(runCtx, p.passes) }()

		select {
		case text = <-textCh:
			cancel()
			<-done
			fmt.Println()
			logging.Info("reloaded text from %s", p.file)
		case err := <-done:
			cancel()
			return err
		}
	}
}
