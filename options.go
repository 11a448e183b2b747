package scfind

import (
	"github.com/evanbiederstedt/scfind/internal/fpgrowth"
	"github.com/evanbiederstedt/scfind/quantize"
)

type options struct {
	logger            *Logger
	metrics           MetricsCollector
	quantizerBits     int
	miner             fpgrowth.Miner
	defaultMinSupport int
}

func defaultOptions() *options {
	return &options{
		logger:            NoopLogger(),
		metrics:           NoopMetricsCollector{},
		quantizerBits:     quantize.DefaultBits,
		miner:             fpgrowth.New(),
		defaultMinSupport: 1,
	}
}

// Option configures a new IndexStore.
type Option func(*options)

// WithLogger sets the Logger used for diagnostics. Defaults to a no-op
// logger so library use does not spam stderr unless asked to.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the MetricsCollector. Defaults to NoopMetricsCollector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithQuantizerBits overrides the quantile code width (default: 2).
func WithQuantizerBits(bits int) Option {
	return func(o *options) {
		if bits > 0 {
			o.quantizerBits = bits
		}
	}
}

// WithMiner overrides the FrequentPatternMiner used by FindMarkerGenes.
// Defaults to fpgrowth.New(), a real FP-tree miner.
func WithMiner(m fpgrowth.Miner) Option {
	return func(o *options) {
		if m != nil {
			o.miner = m
		}
	}
}

// WithDefaultMinSupport sets the min_support used by FindMarkerGenes when
// callers pass a value below 1. Values below 1 are ignored.
func WithDefaultMinSupport(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.defaultMinSupport = n
		}
	}
}
