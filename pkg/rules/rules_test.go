// pkg/rules/rules_test.go
package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuleSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	content := `{
		"version": "test",
		"lastUpdated": "2026-08-28",
		"classes": [
			{"name": "chain", "target": "name", "weight": 30, "patterns": ["mega", "corp"]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	rs, err := LoadRuleSet(path)
	require.NoError(t, err)

	assert.Equal(t, "test", rs.Version)
	require.NotNil(t, rs.Class("chain"))
	assert.Equal(t, 30, rs.Class("chain").Weight)
	assert.Equal(t, TargetName, rs.Class("chain").Target)
	assert.Nil(t, rs.Class("premium"))
}

func TestLoadRuleSet_MissingFile(t *testing.T) {
	_, err := LoadRuleSet(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	rs := Default(25, 20, 15)

	require.NotNil(t, rs.Class("chain"))
	require.NotNil(t, rs.Class("premium"))
	require.NotNil(t, rs.Class("location"))

	assert.Equal(t, 25, rs.Class("chain").Weight)
	assert.Equal(t, 20, rs.Class("premium").Weight)
	assert.Equal(t, 15, rs.Class("location").Weight)
	assert.Equal(t, TargetAddress, rs.Class("location").Target)
	assert.NotEmpty(t, rs.Class("chain").Patterns)
}
