package dialect

import (
	"fmt"
)

// SQLite accepts ?, :name, @name and $name. ? is the portable choice.
type SQLite struct{}

func NewSQLiteDialect() Dialect {
	return &SQLite{}
}

func (s SQLite) Name() string {
	return "sqlite"
}

func (s SQLite) Template() Template {
	return TemplateQuestion
}

func (s SQLite) Placeholder(n int) string {
	return "?"
}

func (s SQLite) RenderValue(v any) string {
	return renderLiteral(v, func(b []byte) string {
		return fmt.Sprintf("X'%x'", b)
	})
}
