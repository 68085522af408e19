package dialect

import (
	"fmt"
	"strconv"
)

type Oracle struct{}

func NewOracleDialect() Dialect {
	return &Oracle{}
}

func (o Oracle) Name() string {
	return "oracle"
}

func (o Oracle) Template() Template {
	return TemplateColonName
}

func (o Oracle) Placeholder(n int) string {
	return ":" + strconv.Itoa(n)
}

func (o Oracle) RenderValue(v any) string {
	return renderLiteral(v, func(b []byte) string {
		return fmt.Sprintf("HEXTORAW('%X')", b)
	})
}
