package dialect

import (
	"fmt"
	"strconv"
)

// SQLServer binds by @name. Positional fallbacks are rendered @p1, @p2 ...
type SQLServer struct{}

func NewSQLServerDialect() Dialect {
	return &SQLServer{}
}

func (s SQLServer) Name() string {
	return "sqlserver"
}

func (s SQLServer) Template() Template {
	return TemplateAtName
}

func (s SQLServer) Placeholder(n int) string {
	return "@p" + strconv.Itoa(n)
}

func (s SQLServer) RenderValue(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "1"
		}
		return "0"
	}
	return renderLiteral(v, func(b []byte) string {
		return fmt.Sprintf("0x%X", b)
	})
}
