package parser

import (
	"testing"
	"time"

	"github.com/pradyuprasad/tp/internal/command"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertParseSuccess(t *testing.T, p Parser, input string, expected command.Command) {
	t.Helper()
	got, err := p.Parse(input)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func assertParseFailure(t *testing.T, p Parser, input string, expectedMessage string) {
	t.Helper()
	got, err := p.Parse(input)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, expectedMessage, err.Error())
}

func assertParseFailureKind(t *testing.T, p Parser, input string, kind ErrorKind) {
	t.Helper()
	_, err := p.Parse(input)
	require.Error(t, err)
	got, ok := KindOf(err)
	require.True(t, ok, "expected a ParseError, got %T", err)
	assert.Equal(t, kind, got, "got kind %s", got)
}

func date(d, m, y int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func clock(h, m int) time.Time {
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC)
}
