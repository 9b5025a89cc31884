package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/service"
	"fitness-tracker/internal/store"
	"fitness-tracker/internal/tui"
)

var (
	flagTUI        bool
	flagHistory    bool
	flagInitConfig bool
)

func init() {
	flag.BoolVar(&flagTUI, "tui", false, "browse the batch results in a terminal UI")
	flag.BoolVar(&flagHistory, "history", false, "open the terminal UI on the journal history")
	flag.BoolVar(&flagInitConfig, "init-config", false, "write a default config file and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [CODE:v1,v2,...]...\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Without packages the built-in samples are processed.")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if flagInitConfig {
		path, err := config.CreateExample()
		if err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		fmt.Printf("Config file at:\n  %s\n", path)
		return nil
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	packages := service.SamplePackages()
	if flag.NArg() > 0 {
		packages, err = service.ParsePackages(flag.Args())
		if err != nil {
			return fmt.Errorf("parsing packages: %w", err)
		}
	}

	// Open the journal only when asked to
	var db *store.DB
	var recorder service.Recorder
	if cfg.Journal.Enabled {
		db, err = store.Open(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("opening journal: %w", err)
		}
		defer db.Close()
		recorder = service.NewJournalRecorder(db)
	}

	calc := service.NewCalculator(cfg.Batch, recorder)
	results, err := calc.Process(ctx, packages)
	if err != nil && !errors.Is(err, service.ErrRecording) {
		return err
	}
	// A failed journal write still leaves the computed results
	recordErr := err

	if flagTUI || flagHistory {
		start := tui.ScreenResults
		if flagHistory {
			start = tui.ScreenHistory
		}
		app := tui.NewApp(results, db, cfg.Display, start)
		if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("running TUI: %w", err)
		}
		return recordErr
	}

	printResults(os.Stdout, results)
	return recordErr
}

// printResults writes one summary line per package in input order and logs
// the rejected ones
func printResults(w io.Writer, results []service.Result) {
	for _, r := range results {
		if r.Err != nil {
			log.Printf("package %d (%s): %v", r.Index+1, r.Package.Code, r.Err)
			continue
		}
		fmt.Fprintln(w, r.Message)
	}
}
