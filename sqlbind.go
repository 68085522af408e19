// Package sqlbind normalizes SQL bind parameters across placeholder dialects
// and types, formats and orders result values.
package sqlbind

import (
	"github.com/Konsultn-Engineering/sqlbind/cache"
	"github.com/Konsultn-Engineering/sqlbind/dialect"
	"github.com/Konsultn-Engineering/sqlbind/engine"
	"github.com/Konsultn-Engineering/sqlbind/params"
	"github.com/Konsultn-Engineering/sqlbind/types"
	"github.com/Konsultn-Engineering/sqlbind/value"
	"go.uber.org/zap"
)

type Engine = engine.Engine
type Values = params.Values
type TypedValue = params.TypedValue
type Template = dialect.Template
type Type = types.Type

const (
	TemplateNumbered   = dialect.TemplateNumbered
	TemplateColonName  = dialect.TemplateColonName
	TemplateAtName     = dialect.TemplateAtName
	TemplateDollarName = dialect.TemplateDollarName
	TemplateBraceName  = dialect.TemplateBraceName
	TemplateQuestion   = dialect.TemplateQuestion
)

// New builds an Engine from cfg. A nil logger discards output.
func New(cfg Config, logger *zap.Logger) (*engine.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tag, _ := cfg.locale()
	unit, _ := cfg.currency()
	tpl, _ := cfg.template()

	fc := cache.Default()
	if cfg.FormatCacheSize > 0 {
		fc = cache.NewFormatCache(cfg.FormatCacheSize)
	}

	var sc cache.ScanCache
	if cfg.ScanCacheSize > 0 {
		sc = cache.NewScanCache(cfg.ScanCacheSize)
	}

	logger.Debug("engine configured",
		zap.String("locale", tag.String()),
		zap.String("currency", unit.String()),
		zap.String("template", string(tpl)),
		zap.Int("format_cache_size", fc.Capacity()),
		zap.Int("scan_cache_size", cfg.ScanCacheSize))

	return engine.New(
		engine.WithLogger(logger),
		engine.WithScanCache(sc),
		engine.WithTemplate(tpl),
		engine.WithMaxLength(cfg.MaxLength),
		engine.WithFormatter(value.NewFormatter(
			value.WithCache(fc),
			value.WithLocale(tag),
			value.WithCurrency(unit),
		)),
		engine.WithComparator(value.NewComparator(tag)),
	), nil
}

// MustNew is New for static configuration; it panics on an invalid cfg.
func MustNew(cfg Config) *engine.Engine {
	e, err := New(cfg, nil)
	if err != nil {
		panic(err)
	}
	return e
}
