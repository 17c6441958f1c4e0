package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstStatement(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no semicolon", input: "SELECT 1", expected: "SELECT 1"},
		{name: "trailing semicolon", input: "SELECT 1;", expected: "SELECT 1"},
		{name: "trailing semicolon and whitespace", input: "  SELECT 1 ;  \n", expected: "SELECT 1"},
		{name: "second statement dropped", input: "SELECT 1; DROP TABLE users", expected: "SELECT 1"},
		{name: "semicolon in single quotes", input: "SELECT * FROM t WHERE n = 'a;b'", expected: "SELECT * FROM t WHERE n = 'a;b'"},
		{name: "semicolon in double quotes", input: `SELECT * FROM "x;y"`, expected: `SELECT * FROM "x;y"`},
		{name: "doubled quote escape", input: "SELECT 'it''s;ok'; SELECT 2", expected: "SELECT 'it''s;ok'"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FirstStatement(tt.input))
		})
	}
}

func TestHasMultipleStatements(t *testing.T) {
	assert.False(t, HasMultipleStatements("SELECT 1"))
	assert.False(t, HasMultipleStatements("SELECT 1;"))
	assert.False(t, HasMultipleStatements("SELECT 1;;  "))
	assert.False(t, HasMultipleStatements("SELECT ';' FROM t"))
	assert.True(t, HasMultipleStatements("SELECT 1; SELECT 2"))
}
