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

	"github.com/numerals/romankit/pkg/roman"
)

// execute runs the root command in an empty directory with the roman
// variables cleared, so neither a stray .env nor the caller's shell leaks in.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{"ROMAN_UPPER_BOUND", "ROMAN_ALIASES", "ROMAN_LENIENT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	t.Run("subtractive", func(t *testing.T) {
		out, err := execute(t, "", "encode", "1994", "4", "3999")
		require.NoError(t, err)
		assert.Equal(t, "MCMXCIV\nIV\nMMMCMXCIX\n", out)
	})

	t.Run("additive", func(t *testing.T) {
		out, err := execute(t, "", "encode", "--additive", "4", "9")
		require.NoError(t, err)
		assert.Equal(t, "IIII\nVIIII\n", out)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := execute(t, "", "encode", "4000")
		require.Error(t, err)
		assert.ErrorIs(t, err, roman.ErrRange)
	})

	t.Run("extended flag", func(t *testing.T) {
		out, err := execute(t, "", "encode", "--extended", "4000")
		require.NoError(t, err)
		assert.Equal(t, "MMMM\n", out)
	})

	t.Run("not an integer", func(t *testing.T) {
		_, err := execute(t, "", "encode", "twelve")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"twelve"`)
	})

	t.Run("requires an argument", func(t *testing.T) {
		_, err := execute(t, "", "encode")
		require.Error(t, err)
	})
}

func TestDecodeCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		out, err := execute(t, "", "decode", "mcmxciv", " XIV ")
		require.NoError(t, err)
		assert.Equal(t, "1994\n14\n", out)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := execute(t, "", "decode", "IIII")
		require.Error(t, err)
		assert.ErrorIs(t, err, roman.ErrInvalidFormat)
	})

	t.Run("lenient", func(t *testing.T) {
		out, err := execute(t, "", "decode", "--lenient", "XCX")
		require.NoError(t, err)
		assert.Equal(t, "100\n", out)
	})

	t.Run("aliases", func(t *testing.T) {
		out, err := execute(t, "", "decode", "--aliases", "F")
		require.NoError(t, err)
		assert.Equal(t, "40\n", out)
	})
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roman.env")
	require.NoError(t, os.WriteFile(path, []byte("ROMAN_UPPER_BOUND=4999\n"), 0o600))

	out, err := execute(t, "", "--env-file", path, "decode", "MMMMCMXCIX")
	require.NoError(t, err)
	assert.Equal(t, "4999\n", out)

	_, err = execute(t, "", "--env-file", filepath.Join(dir, "missing.env"), "decode", "I")
	require.Error(t, err)
}

func TestTableCommand(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out, err := execute(t, "", "table", "1", "3")
		require.NoError(t, err)
		assert.Equal(t, "1  I\n2  II\n3  III\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, "", "table", "8", "10", "--format", "json")
		require.NoError(t, err)

		var rows []tableRow
		require.NoError(t, json.Unmarshal([]byte(out), &rows))
		assert.Equal(t, []tableRow{{8, "VIII"}, {9, "IX"}, {10, "X"}}, rows)
	})

	t.Run("yaml additive", func(t *testing.T) {
		out, err := execute(t, "", "table", "4", "5", "--format", "yaml", "--additive")
		require.NoError(t, err)

		var rows []tableRow
		require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
		assert.Equal(t, []tableRow{{4, "IIII"}, {5, "V"}}, rows)
	})

	t.Run("single value", func(t *testing.T) {
		out, err := execute(t, "", "table", "2026")
		require.NoError(t, err)
		assert.Equal(t, "2026  MMXXVI\n", out)
	})

	t.Run("whole range", func(t *testing.T) {
		out, err := execute(t, "", "table")
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), roman.StandardBound)
	})

	tests := []struct {
		name string
		args []string
	}{
		{"reversed", []string{"table", "10", "1"}},
		{"not an integer", []string{"table", "x"}},
		{"above bound", []string{"table", "3998", "4000"}},
		{"below bound", []string{"table", "0", "2"}},
		{"unknown format", []string{"table", "1", "2", "--format", "xml"}},
		{"too many args", []string{"table", "1", "2", "3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestInteractive(t *testing.T) {
	t.Run("one round", func(t *testing.T) {
		out, err := execute(t, "12\nXII\nn\n")
		require.NoError(t, err)
		assert.Contains(t, out, "Choose 'n' to exit")
		assert.Contains(t, out, "Integer: 12 equals the Roman number: XII")
		assert.Contains(t, out, "Roman number: XII equals the integer number: 12")
	})

	t.Run("errors keep the loop going", func(t *testing.T) {
		out, err := execute(t, "0\nabc\n7\nVIIII\n8\nVIII\nN\n")
		require.NoError(t, err)
		assert.Equal(t, 3, strings.Count(out, "Error:"))
		assert.Contains(t, out, "Integer: 8 equals the Roman number: VIII")
		assert.Contains(t, out, "Roman number: VIII equals the integer number: 8")
	})

	t.Run("end of input", func(t *testing.T) {
		out, err := execute(t, "5\n")
		require.NoError(t, err)
		assert.Contains(t, out, "Integer: 5 equals the Roman number: V")
	})

	t.Run("rejects positional args", func(t *testing.T) {
		_, err := execute(t, "", "1994")
		assert.Error(t, err)
	})
}
