package dialect

import (
	"fmt"
)

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (m MySQL) Name() string {
	return "mysql"
}

func (m MySQL) Template() Template {
	return TemplateQuestion
}

func (m MySQL) Placeholder(n int) string {
	return "?"
}

func (m MySQL) RenderValue(v any) string {
	return renderLiteral(v, func(b []byte) string {
		return fmt.Sprintf("X'%x'", b)
	})
}
