package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"importcli/internal/adapters"
	"importcli/internal/config"
	apierrors "importcli/internal/errors"
	"importcli/pkg/contracts/domain"
)

// ImportOptions controls one file import. A zero Format means detect from
// the file content; a zero Locale defers to the adapter's home locale.
type ImportOptions struct {
	Format domain.SourceFormat
	Locale string
}

// ImportFile is one upload handed to ImportAll.
type ImportFile struct {
	Filename string
	Data     []byte
	Options  ImportOptions
}

// ImportResult is the outcome of importing one file.
type ImportResult struct {
	BatchID  string              `json:"batch_id"`
	Filename string              `json:"filename"`
	Result   *domain.ParseResult `json:"result"`
}

// ImportService orchestrates detection and parsing of broker exports
type ImportService struct {
	cfg      config.ImportConfig
	logger   *slog.Logger
	validate *validator.Validate
}

// NewImportService creates a new import service using default logger
func NewImportService(cfg config.ImportConfig) *ImportService {
	return NewImportServiceWithLogger(cfg, slog.Default())
}

// NewImportServiceWithLogger creates a new import service with a specific logger
func NewImportServiceWithLogger(cfg config.ImportConfig, logger *slog.Logger) *ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportService{
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "import_service")),
		validate: validator.New(),
	}
}

// Formats returns the supported source format ids in detection order.
func (s *ImportService) Formats() []domain.SourceFormat {
	regs := adapters.Registry()
	out := make([]domain.SourceFormat, 0, len(regs))
	for _, a := range regs {
		out = append(out, a.ID())
	}
	return out
}

// Detect runs format detection over the file's leading sample and returns
// the matched format. SourceUnknown comes back as a FORMAT_UNDETECTED error.
func (s *ImportService) Detect(ctx context.Context, filename string, data []byte) (domain.SourceFormat, error) {
	if err := s.checkSize(data); err != nil {
		return domain.SourceUnknown, err
	}

	sample := adapters.ReadSample(data, s.cfg.SampleLines)
	format := adapters.DetectFormat(sample)

	s.logger.InfoContext(ctx, "format detection completed",
		slog.String("filename", filename),
		slog.String("format", string(format)),
	)

	if format == domain.SourceUnknown {
		return domain.SourceUnknown, apierrors.FormatUndetectedError(filename)
	}
	return format, nil
}

// Import detects (or honors the forced format of) one file and parses it
// into normalized trades.
func (s *ImportService) Import(ctx context.Context, filename string, data []byte, opts ImportOptions) (*ImportResult, error) {
	if err := s.checkSize(data); err != nil {
		return nil, err
	}

	adapter, err := s.resolveAdapter(ctx, filename, data, opts)
	if err != nil {
		importFilesTotal.WithLabelValues(string(domain.SourceUnknown), "undetected").Inc()
		return nil, err
	}
	format := adapter.ID()

	locale := opts.Locale
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}

	parseCtx := ctx
	if s.cfg.ParseTimeout > 0 {
		var cancel context.CancelFunc
		parseCtx, cancel = context.WithTimeout(ctx, s.cfg.ParseTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := adapter.Parse(parseCtx, bytes.NewReader(data), locale)
	importDurationSeconds.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
	if err != nil {
		importFilesTotal.WithLabelValues(string(format), "unreadable").Inc()
		s.logger.ErrorContext(ctx, "file parse failed",
			slog.String("filename", filename),
			slog.String("format", string(format)),
			slog.String("error", err.Error()),
		)
		return nil, apierrors.FileUnreadableError(err)
	}

	s.validateTrades(result)
	s.capWarnings(result)

	importFilesTotal.WithLabelValues(string(format), "ok").Inc()
	importTradesTotal.WithLabelValues(string(format)).Add(float64(len(result.Trades)))
	importRowsRejectedTotal.WithLabelValues(string(format)).Add(float64(result.Metadata.InvalidRows))

	s.logger.InfoContext(ctx, "file imported",
		slog.String("filename", filename),
		slog.String("format", string(format)),
		slog.Int("trades", len(result.Trades)),
		slog.Int("rejected_rows", result.Metadata.InvalidRows),
		slog.Int("total_rows", result.Metadata.TotalRows),
	)

	return &ImportResult{
		BatchID:  uuid.New().String(),
		Filename: filename,
		Result:   result,
	}, nil
}

// ImportAll imports several files concurrently. One unreadable file fails
// the whole batch; row-level problems stay warnings inside each result.
func (s *ImportService) ImportAll(ctx context.Context, files []ImportFile) ([]*ImportResult, error) {
	results := make([]*ImportResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers())
	for i, f := range files {
		g.Go(func() error {
			res, err := s.Import(gctx, f.Filename, f.Data, f.Options)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Filename, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *ImportService) workers() int {
	if s.cfg.Workers <= 0 {
		return 1
	}
	return s.cfg.Workers
}

func (s *ImportService) checkSize(data []byte) error {
	if len(data) == 0 {
		return apierrors.ErrInvalidRequest
	}
	if s.cfg.MaxUploadBytes > 0 && int64(len(data)) > s.cfg.MaxUploadBytes {
		return apierrors.ErrFileTooLarge
	}
	return nil
}

func (s *ImportService) resolveAdapter(ctx context.Context, filename string, data []byte, opts ImportOptions) (adapters.Adapter, error) {
	if opts.Format != "" && opts.Format != domain.SourceUnknown {
		a := adapters.Lookup(opts.Format)
		if a == nil {
			return nil, apierrors.UnsupportedFormatError(string(opts.Format))
		}
		return a, nil
	}

	format, err := s.Detect(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	return adapters.Lookup(format), nil
}

// validateTrades drops trades that fail struct validation, demoting them to
// warnings. The adapters already guard these invariants; this is the last
// line before results leave the process.
func (s *ImportService) validateTrades(result *domain.ParseResult) {
	kept := result.Trades[:0]
	for _, tr := range result.Trades {
		if err := s.validate.Struct(tr); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("trade %s %s: %v", tr.Ticker, tr.Date.Format("2006-01-02"), err))
			result.Metadata.InvalidRows++
			continue
		}
		kept = append(kept, tr)
	}
	result.Trades = kept
}

func (s *ImportService) capWarnings(result *domain.ParseResult) {
	if s.cfg.MaxWarnings > 0 && len(result.Warnings) > s.cfg.MaxWarnings {
		dropped := len(result.Warnings) - s.cfg.MaxWarnings
		result.Warnings = result.Warnings[:s.cfg.MaxWarnings]
		result.Warnings = append(result.Warnings, fmt.Sprintf("%d further warnings suppressed", dropped))
	}
}
