package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type session struct {
	userID int
	tenant string
}

func TestLiteral(t *testing.T) {
	v := Literal[session](42)
	assert.False(t, v.IsComputed())
	assert.Equal(t, 42, v.Resolve(session{}))
}

func TestComputed(t *testing.T) {
	v := Computed(func(s session) int { return s.userID })
	assert.True(t, v.IsComputed())
	assert.Equal(t, 7, v.Resolve(session{userID: 7}))
	assert.Equal(t, 9, v.Resolve(session{userID: 9}))
}

func TestComputedNil(t *testing.T) {
	v := Computed[session, string](nil)
	assert.Equal(t, "", v.Resolve(session{}))
}

func TestAll(t *testing.T) {
	values := map[string]Value[session, any]{
		"limit":  Literal[session, any](10),
		"tenant": Computed(func(s session) any { return s.tenant }),
	}

	got := All(session{tenant: "acme"}, values)
	assert.Equal(t, map[string]any{"limit": 10, "tenant": "acme"}, got)
}
