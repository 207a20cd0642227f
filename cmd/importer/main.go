package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"importcli/internal/config"
	"importcli/internal/infrastructure"
	"importcli/internal/services"
	"importcli/pkg/contracts/domain"
)

func main() {
	format := flag.String("format", "", "force a source format id, skipping detection")
	locale := flag.String("locale", "", "locale hint for ambiguous dates/numbers (e.g. en-GB)")
	detectOnly := flag.Bool("detect", false, "only detect the format, do not parse")
	out := flag.String("out", "", "output json file path (defaults to stdout)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: importer [flags] <file>...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}
	// CLI output goes to stdout; keep logs off it.
	cfg.Logging.Output = "stderr"

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	svc := services.NewImportServiceWithLogger(cfg.Import, logger)
	ctx := context.Background()

	if *detectOnly {
		runDetect(ctx, svc, logger, flag.Args())
		return
	}

	files := make([]services.ImportFile, 0, flag.NArg())
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("cannot read input file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		files = append(files, services.ImportFile{
			Filename: path,
			Data:     data,
			Options: services.ImportOptions{
				Format: domain.SourceFormat(*format),
				Locale: *locale,
			},
		})
	}

	results, err := svc.ImportAll(ctx, files)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeResults(*out, results); err != nil {
		logger.Error("cannot write output", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, res := range results {
		logger.Info("file imported",
			slog.String("file", res.Filename),
			slog.String("format", string(res.Result.SourceFormat)),
			slog.Int("trades", len(res.Result.Trades)),
			slog.Int("rejected_rows", res.Result.Metadata.InvalidRows))
	}
}

func runDetect(ctx context.Context, svc *services.ImportService, logger *slog.Logger, paths []string) {
	exitCode := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.Error("cannot read input file",
				slog.String("path", path),
				slog.String("error", err.Error()))
			exitCode = 1
			continue
		}
		format, err := svc.Detect(ctx, path, data)
		if err != nil {
			format = domain.SourceUnknown
			exitCode = 1
		}
		fmt.Printf("%s\t%s\n", path, format)
	}
	os.Exit(exitCode)
}

func writeResults(out string, results []*services.ImportResult) error {
	var w *os.File
	if out == "" {
		w = os.Stdout
	} else {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
