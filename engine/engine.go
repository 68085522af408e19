// Package engine wires the scanner, parameter rewriting and value typing
// into one facade for the query-execution and results layers.
package engine

import (
	"github.com/Konsultn-Engineering/sqlbind/cache"
	"github.com/Konsultn-Engineering/sqlbind/dialect"
	"github.com/Konsultn-Engineering/sqlbind/value"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Engine scans, binds, infers, formats and compares. All operations are
// total and safe for concurrent use.
type Engine struct {
	scans      cache.ScanCache
	formatter  *value.Formatter
	comparator *value.Comparator
	logger     *zap.Logger

	template  dialect.Template
	maxLength int
}

// Option configures an Engine.
type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithScanCache memoizes scans in c. A nil cache disables memoization.
func WithScanCache(c cache.ScanCache) Option {
	return func(e *Engine) {
		e.scans = c
	}
}

func WithFormatter(f *value.Formatter) Option {
	return func(e *Engine) {
		if f != nil {
			e.formatter = f
		}
	}
}

func WithComparator(c *value.Comparator) Option {
	return func(e *Engine) {
		if c != nil {
			e.comparator = c
		}
	}
}

// WithTemplate sets the placeholder style BindDefault rewrites to.
func WithTemplate(t dialect.Template) Option {
	return func(e *Engine) {
		e.template = t
	}
}

// WithMaxLength bounds formatted output when Format is called without
// explicit options.
func WithMaxLength(n int) Option {
	return func(e *Engine) {
		e.maxLength = n
	}
}

// New creates an Engine. Without options it logs nowhere, formats with the
// process-wide cache and binds to "$n".
func New(opts ...Option) *Engine {
	e := &Engine{
		scans:    cache.NewScanCache(cache.DefaultScanCacheSize),
		logger:   zap.NewNop(),
		template: dialect.TemplateNumbered,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.formatter == nil {
		e.formatter = value.NewFormatter()
	}
	if e.comparator == nil {
		e.comparator = value.NewComparator(language.AmericanEnglish)
	}
	return e
}

func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

func (e *Engine) Template() dialect.Template {
	return e.template
}

func (e *Engine) Formatter() *value.Formatter {
	return e.formatter
}
