package dialect

import (
	"fmt"
	"strconv"
	"strings"
)

// Template is a driver's native bind-parameter syntax. The set is closed:
// collaborators exchange these exact strings.
type Template string

const (
	TemplateNumbered   Template = "$n"
	TemplateColonName  Template = ":name"
	TemplateAtName     Template = "@name"
	TemplateDollarName Template = "$name"
	TemplateBraceName  Template = "{name}"
	TemplateQuestion   Template = "?"
)

// Templates lists every supported template.
var Templates = []Template{
	TemplateNumbered,
	TemplateColonName,
	TemplateAtName,
	TemplateDollarName,
	TemplateBraceName,
	TemplateQuestion,
}

// ParseTemplate validates s as one of the six templates.
func ParseTemplate(s string) (Template, error) {
	for _, t := range Templates {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, s)
}

// Numbered reports whether the template binds by position index.
func (t Template) Numbered() bool {
	return strings.Contains(string(t), "$n")
}

// Named reports whether the template binds by name.
func (t Template) Named() bool {
	return strings.Contains(string(t), "name")
}

// Render produces the placeholder for a parameter with the given 1-based
// index and name. The marker the template contains decides which of the two
// is used. ok is false when the template needs a name and none is given.
func (t Template) Render(index int, name string) (placeholder string, ok bool) {
	s := string(t)
	switch {
	case strings.Contains(s, "$n"):
		return strings.Replace(s, "$n", "$"+strconv.Itoa(index), 1), true
	case strings.Contains(s, ":name"):
		return renderName(s, ":name", ":"+name, name)
	case strings.Contains(s, "@name"):
		return renderName(s, "@name", "@"+name, name)
	case strings.Contains(s, "$name"):
		return renderName(s, "$name", "$"+name, name)
	case strings.Contains(s, "{name}"):
		return renderName(s, "{name}", "{"+name+"}", name)
	default:
		return "?", true
	}
}

func renderName(s, marker, repl, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	return strings.Replace(s, marker, repl, 1), true
}

// Dialect describes a database's placeholder and literal conventions.
type Dialect interface {
	Name() string
	Template() Template
	Placeholder(n int) string
	RenderValue(v any) string
}
