package dialect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	for _, tpl := range Templates {
		got, err := ParseTemplate(string(tpl))
		require.NoError(t, err)
		assert.Equal(t, tpl, got)
	}

	_, err := ParseTemplate("%s")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
	assert.Len(t, Templates, 6)
}

func TestTemplateRender(t *testing.T) {
	tests := []struct {
		template Template
		index    int
		name     string
		want     string
		ok       bool
	}{
		{TemplateNumbered, 3, "id", "$3", true},
		{TemplateColonName, 1, "id", ":id", true},
		{TemplateAtName, 1, "id", "@id", true},
		{TemplateDollarName, 1, "id", "$id", true},
		{TemplateBraceName, 1, "id", "{id}", true},
		{TemplateQuestion, 7, "id", "?", true},
		{TemplateColonName, 1, "", "", false},
		{TemplateNumbered, 2, "", "$2", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.template)+"/"+tt.name, func(t *testing.T) {
			got, ok := tt.template.Render(tt.index, tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, TemplateNumbered.Numbered())
	assert.False(t, TemplateQuestion.Named())
	assert.True(t, TemplateBraceName.Named())
}

func TestForDriver(t *testing.T) {
	tests := []struct {
		driver   string
		name     string
		template Template
	}{
		{"pgx", "postgres", TemplateNumbered},
		{"MySQL", "mysql", TemplateQuestion},
		{"tidb", "tidb", TemplateQuestion},
		{"sqlserver", "sqlserver", TemplateAtName},
		{"godror", "oracle", TemplateColonName},
		{"sqlite3", "sqlite", TemplateQuestion},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := ForDriver(tt.driver)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
			assert.Equal(t, tt.template, d.Template())
		})
	}

	_, err := ForDriver("nope")
	assert.ErrorIs(t, err, ErrUnknownDriver)

	Register("custom", NewPostgresDialect)
	d, err := ForDriver("CUSTOM")
	require.NoError(t, err)
	assert.Equal(t, "$2", d.Placeholder(2))
}

func TestRenderValue(t *testing.T) {
	pg := NewPostgresDialect()
	assert.Equal(t, "NULL", pg.RenderValue(nil))
	assert.Equal(t, "'O''Brien'", pg.RenderValue("O'Brien"))
	assert.Equal(t, "TRUE", pg.RenderValue(true))
	assert.Equal(t, "42", pg.RenderValue(int64(42)))
	assert.Equal(t, "1.5", pg.RenderValue(1.5))
	assert.Equal(t, "'\\x0aff'", pg.RenderValue([]byte{0x0a, 0xff}))
	assert.Equal(t, "'2024-01-02 03:04:05.000000'",
		pg.RenderValue(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)))

	ms := NewSQLServerDialect()
	assert.Equal(t, "1", ms.RenderValue(true))
	assert.Equal(t, "0x0AFF", ms.RenderValue([]byte{0x0a, 0xff}))

	assert.Equal(t, "X'0aff'", NewMySQLDialect().RenderValue([]byte{0x0a, 0xff}))
}
