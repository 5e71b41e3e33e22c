package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	childes "github.com/jamesainslie/go-childes"
	"github.com/jamesainslie/go-childes/internal/config"
	"github.com/jamesainslie/go-childes/internal/report"
	"github.com/jamesainslie/go-childes/lexicon"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to YAML config file")
		root        = flag.String("root", "CHILDES", "Corpus directory containing .cha transcripts")
		output      = flag.String("output", "Patterns_CHILDES.xlsx", "Output file (.xlsx or .csv)")
		lexiconPath = flag.String("lexicon", "", "Word list of the transcript language (required)")
		workers     = flag.Int("workers", 0, "Concurrent transcripts (0 = all CPUs)")
		logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn or error")
		top         = flag.Int("top", 20, "Number of most frequent patterns to print")
		profile     = flag.Bool("profile", true, "Print the error profile")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := cfg.UseMode(config.ModeFrequency); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (use childes-dataset)\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the config file.
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
		}
	})
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Lexicon == "" {
		fmt.Fprintln(os.Stderr, "error: -lexicon required")
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel.Level()}))

	words, err := lexicon.LoadFile(cfg.Lexicon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading lexicon: %v\n", err)
		os.Exit(1)
	}
	logger.Info("lexicon loaded", "path", cfg.Lexicon, "words", words.Len())

	miner, err := childes.New(words,
		childes.WithWorkers(cfg.Workers),
		childes.WithAllowWords(cfg.AllowWords),
		childes.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating miner: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := miner.Mine(ctx, cfg.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error mining %s: %v\n", cfg.Root, err)
		os.Exit(1)
	}

	counts := res.Frequencies()
	out := cfg.OutputPath()
	if err := report.WriteFrequencies(out, counts); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Mined %d transcripts from %s (%d failed)\n", len(res.Files), cfg.Root, len(res.Failures))
	fmt.Printf("Wrote %d patterns to %s\n\n", len(counts), out)

	printTop(counts, *top)
	if *profile && len(counts) > 0 {
		fmt.Println()
		report.NewProfile(counts).Print(os.Stdout)
	}

	if len(res.Failures) > 0 {
		os.Exit(2)
	}
}

func printTop(counts []childes.PatternCount, n int) {
	if n <= 0 || len(counts) == 0 {
		return
	}
	if n > len(counts) {
		n = len(counts)
	}
	fmt.Printf("%-30s %-16s %-16s %-6s\n", "Pattern", "Wrong", "Correct", "Freq")
	fmt.Println(strings.Repeat("-", 70))
	for _, c := range counts[:n] {
		fmt.Printf("%-30s %-16s %-16s %-6d\n", c.Pattern, c.Wrong, c.Correct, c.Frequency)
	}
}
