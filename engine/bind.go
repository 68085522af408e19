package engine

import (
	"github.com/Konsultn-Engineering/sqlbind/dialect"
	"github.com/Konsultn-Engineering/sqlbind/params"
	"go.uber.org/zap"
)

// Bind rewrites sql into tpl's placeholder style and aligns values with it.
func (e *Engine) Bind(sql string, tpl dialect.Template, values params.Values) params.Bound {
	b := params.Bind(sql, e.scan(sql), values, tpl)
	for _, o := range b.Skipped {
		e.logger.Warn("placeholder left unrewritten",
			zap.Int("position", o.Position),
			zap.String("expected", o.Literal()),
			zap.String("template", string(tpl)))
	}
	return b
}

// BindDefault binds with the engine's configured template.
func (e *Engine) BindDefault(sql string, values params.Values) params.Bound {
	return e.Bind(sql, e.template, values)
}

// BindForDriver binds with the template of a registered driver name.
func (e *Engine) BindForDriver(sql, driver string, values params.Values) (params.Bound, error) {
	d, err := dialect.ForDriver(driver)
	if err != nil {
		return params.Bound{}, err
	}
	return e.Bind(sql, d.Template(), values), nil
}
