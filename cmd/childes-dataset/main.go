package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	childes "github.com/jamesainslie/go-childes"
	"github.com/jamesainslie/go-childes/internal/config"
	"github.com/jamesainslie/go-childes/internal/report"
	"github.com/jamesainslie/go-childes/lexicon"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	root := flag.String("root", "CHILDES", "Corpus directory containing .cha transcripts")
	output := flag.String("output", "cha_data.csv", "Base path of the dataset CSV files")
	lexiconPath := flag.String("lexicon", "", "Word list of the transcript language (required)")
	workers := flag.Int("workers", 0, "Concurrent transcripts (0 = all CPUs)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	requireTimestamps := flag.Bool("require-timestamps", true, "Only keep utterances with a media timestamp")

	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.UseMode(config.ModeUtterances); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (use childes-patterns)\n", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			cfg.Root = *root
		case "output":
			cfg.Output = *output
		case "lexicon":
			cfg.Lexicon = *lexiconPath
		case "workers":
			cfg.Workers = *workers
		case "log-level":
			cfg.LogLevel = config.LogLevel(*logLevel)
		case "require-timestamps":
			cfg.RequireTimestamps = requireTimestamps
		}
	})
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Lexicon == "" {
		fmt.Fprintln(os.Stderr, "Usage: childes-dataset -lexicon WORDS [OPTIONS]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel.Level()}))

	words, err := lexicon.LoadFile(cfg.Lexicon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading lexicon: %v\n", err)
		os.Exit(1)
	}

	miner, err := childes.New(words,
		childes.WithWorkers(cfg.Workers),
		childes.WithAllowWords(cfg.AllowWords),
		childes.WithRequireTimestamps(cfg.TimestampsRequired()),
		childes.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating miner: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := miner.Mine(ctx, cfg.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	written, err := report.WriteDatasets(cfg.OutputPath(), res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transcripts: %d (%d failed)\n", len(res.Files), len(res.Failures))
	for _, path := range written {
		fmt.Printf("  %s\n", path)
	}

	if len(res.Failures) > 0 {
		os.Exit(2)
	}
}
