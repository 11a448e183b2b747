package scfind

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with scfind-specific context helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler falls
// back to a text handler at info level writing to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithGene adds a gene field to the logger.
func (l *Logger) WithGene(gene string) *Logger {
	return &Logger{Logger: l.Logger.With("gene", gene)}
}

// WithCellType adds a cell_type field to the logger.
func (l *Logger) WithCellType(ct string) *Logger {
	return &Logger{Logger: l.Logger.With("cell_type", ct)}
}

// LogIngest logs the outcome of an IngestSlice call.
func (l *Logger) LogIngest(ctx context.Context, cellType string, cells, genes, warnings int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest failed",
			"cell_type", cellType,
			"cells", cells,
			"error", err,
		)
		return
	}
	if warnings > 0 {
		l.WarnContext(ctx, "ingest completed with warnings",
			"cell_type", cellType,
			"cells", cells,
			"genes", genes,
			"empty_rows_skipped", warnings,
		)
		return
	}
	l.InfoContext(ctx, "ingest completed",
		"cell_type", cellType,
		"cells", cells,
		"genes", genes,
	)
}

// LogQuery logs the outcome of QueryGenes or FindCellTypes.
func (l *Logger) LogQuery(ctx context.Context, op string, genes []string, hits int, unknownGenes []string) {
	if len(unknownGenes) > 0 {
		l.WarnContext(ctx, op+" referenced unknown genes",
			"requested", genes,
			"unknown", unknownGenes,
		)
	}
	l.DebugContext(ctx, op+" completed",
		"requested", genes,
		"hits", hits,
	)
}

// LogMerge logs the outcome of a Merge call.
func (l *Logger) LogMerge(ctx context.Context, incomingPostings, totalCellsAfter int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "merge failed", "error", err)
		return
	}
	l.InfoContext(ctx, "merge completed",
		"postings_absorbed", incomingPostings,
		"total_cells", totalCellsAfter,
	)
}

// LogMarkerMining logs the outcome of FindMarkerGenes.
func (l *Logger) LogMarkerMining(ctx context.Context, candidateGenes int, transactions int, patterns int) {
	l.InfoContext(ctx, "marker mining completed",
		"candidate_genes", candidateGenes,
		"transactions", transactions,
		"patterns_found", patterns,
	)
}
