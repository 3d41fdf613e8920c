package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/njchilds90/gopoly"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestCommands_Text(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"parse", "7 - Y + 2*X^2"}, "2*X^2 - Y + 7"},
		{[]string{"add", "X^2 + 2*X - 1", "2*X^2 - 3*X + 6"}, "3*X^2 - X + 5"},
		{[]string{"sub", "X^2 + 2*X", "3*X + 5"}, "X^2 - X - 5"},
		{[]string{"mul", "6*X + 1", "6*Y + 1"}, "36*X*Y + 6*X + 6*Y + 1"},
		{[]string{"div", "36*X*Y + 6*X + 6*Y + 1", "6*X + 1"}, "6*Y + 1"},
		{[]string{"pow", "2*X*Y^2 - 1", "2"}, "4*X^2*Y^4 - 4*X*Y^2 + 1"},
		{[]string{"diff", "132*X*Y + 77*X + 55*Y + 1"}, "132*Y + 77"},
		{[]string{"diff", "--var", "Y", "132*X*Y + 77*X + 55*Y + 1"}, "132*X + 55"},
		{[]string{"integrate", "--constant", "5", "3*X^2 + 2*X + 1"}, "X^3 + X^2 + X + 5"},
		{[]string{"eval", "3*X*Y + 2", "X=2", "Y=5"}, "32"},
		{[]string{"compose", "X^2 + Y", "X=Y + 1"}, "Y^2 + 3*Y + 1"},
		{[]string{"gcd", "X^4 + 8*X^3 + 21*X^2 + 22*X + 8", "X^3 + 6*X^2 + 11*X + 6"}, "X^2 + 3*X + 2"},
		{[]string{"factor", "X^2 + 3*X + 2"}, "(X + 1)*(X + 2)"},
		{[]string{"--field", "bigint", "eval", "X^3*Y^2 + 7*X*Y - 1", "X=45468", "Y=63570"}, "379858611850401439122119"},
		{[]string{"-f", "rational", "integrate", "X"}, "1/2*X^2"},
	}
	for _, c := range cases {
		got, err := execute(t, c.args...)
		require.NoError(t, err, c.args)
		assert.Equal(t, c.want, got, c.args)
	}
}

func TestCommands_JSON(t *testing.T) {
	got, err := execute(t, "-o", "json", "factor", "2*X^2 + 2")
	require.NoError(t, err)
	var resp gopoly.ToolResponse
	require.NoError(t, json.Unmarshal([]byte(got), &resp))
	assert.Equal(t, "int64", resp.Field)
	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "%T", resp.Result)
	assert.Equal(t, false, result["complete"])
	assert.Equal(t, "X^2 + 1", result["remainder"])
}

func TestCommands_YAML(t *testing.T) {
	got, err := execute(t, "--output", "yaml", "--field", "complex", "add", "(1, 2)*X", "X")
	require.NoError(t, err)
	var resp map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(got), &resp))
	assert.Equal(t, "complex", resp["field"])
	assert.Equal(t, "(2, 2)*X", resp["string"])
}

func TestCommands_ConfigDefaultField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gopoly.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: rational\n"), 0o644))
	got, err := execute(t, "--config", path, "div", "X^2 - 1", "2*X + 2")
	require.NoError(t, err)
	assert.Equal(t, "1/2*X - 1/2", got)
}

func TestCommands_Errors(t *testing.T) {
	cases := []struct {
		args   []string
		substr string
	}{
		{[]string{"add", "X"}, "accepts 2 arg(s)"},
		{[]string{"pow", "X", "two"}, "not an integer"},
		{[]string{"eval", "X", "X"}, "not SYMBOL=VALUE"},
		{[]string{"div", "X", "0"}, "invalid argument"},
		{[]string{"-o", "xml", "parse", "X"}, "unknown output format"},
		{[]string{"-f", "octonion", "parse", "X"}, "unknown field"},
	}
	for _, c := range cases {
		out, err := execute(t, c.args...)
		require.Error(t, err, c.args)
		assert.Contains(t, err.Error()+out, c.substr, c.args)
	}
}

func TestSchemaCommand(t *testing.T) {
	got, err := execute(t, "schema")
	require.NoError(t, err)
	assert.JSONEq(t, gopoly.MCPToolSpec(), got)
}
