package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"yashubustudio/reviewer/review"
)

type cliOptions struct {
	configPath string
	inputPath  string
	outputPath string
	outputDir  string
	stdout     bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatalf("reviewer-cli: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("reviewer-cli: %v", err)
	}
}

func parseFlags() (cliOptions, error) {
	var opts cliOptions
	flag.StringVar(&opts.configPath, "config", "", "Path to config.json (default: ./config.json)")
	flag.StringVar(&opts.inputPath, "input", "", "CSV file containing rows to validate and normalize")
	flag.StringVar(&opts.outputPath, "output", "", "CSV file to write (default uses --output-dir/annotated_*.csv)")
	flag.StringVar(&opts.outputDir, "output-dir", "", "Directory where normalized CSVs are written when --output is omitted")
	flag.BoolVar(&opts.stdout, "stdout", false, "Print a dataset summary to STDOUT")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --input FILE [options]\n\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	opts.configPath = strings.TrimSpace(opts.configPath)
	opts.inputPath = strings.TrimSpace(opts.inputPath)
	opts.outputPath = strings.TrimSpace(opts.outputPath)
	opts.outputDir = strings.TrimSpace(opts.outputDir)
	if opts.inputPath == "" {
		return opts, errors.New("--input is required")
	}
	return opts, nil
}

func run(opts cliOptions) error {
	cfg, err := review.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}

	set, err := review.LoadFile(opts.inputPath)
	if err != nil {
		var missingErr *review.MissingColumnsError
		if errors.As(err, &missingErr) {
			return fmt.Errorf("%s: missing required columns: %s",
				filepath.Base(opts.inputPath), strings.Join(missingErr.Missing, ", "))
		}
		return err
	}

	outPath := opts.outputPath
	if outPath == "" {
		outPath, err = set.SaveAnnotated(opts.inputPath, cfg)
		if err != nil {
			return err
		}
	} else {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", filepath.Base(outPath), err)
		}
		defer f.Close()
		if err := set.Serialize(f); err != nil {
			return err
		}
	}

	if opts.stdout {
		printSummary(set)
	}
	fmt.Printf("wrote %s (%d rows)\n", outPath, set.Len())
	return nil
}

func printSummary(set *review.RecordSet) {
	locked := 0
	flagged := make(map[review.Category]int)
	for i := 0; i < set.Len(); i++ {
		rec := set.Row(i)
		if rec.Correct() {
			locked++
			continue
		}
		for _, c := range review.Categories() {
			if rec.Answer(c) == review.Yes {
				flagged[c]++
			}
		}
	}
	fmt.Printf("rows: %d\nmarked correct: %d\n", set.Len(), locked)
	for _, c := range review.Categories() {
		fmt.Printf("%-14s %d\n", c+":", flagged[c])
	}
}
