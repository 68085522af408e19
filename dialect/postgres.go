package dialect

import (
	"fmt"
	"strconv"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (p Postgres) Name() string {
	return "postgres"
}

func (p Postgres) Template() Template {
	return TemplateNumbered
}

func (p Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (Postgres) RenderValue(v any) string {
	return renderLiteral(v, func(b []byte) string {
		return fmt.Sprintf("'\\x%x'", b) // hex bytea literal
	})
}
