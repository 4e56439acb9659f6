package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestHyphenateCommand(t *testing.T) {
	out, err := run(t, "", "hyphenate", "--patterns", filepath.Join("..", "..", "testdata", "hyph-sample.tex"),
		"hyphenation", "table")
	require.NoError(t, err)
	assert.Equal(t, "hy-phen-ation\nta-ble\n", out)
}

func TestScanCommand(t *testing.T) {
	dic := writeFile(t, "test.dic", "2\ncolour\ncolor\n")
	out, err := run(t, "", "scan", "--forbid", "our=british", dic)
	assert.Error(t, err)
	assert.Equal(t, "line 2: \"colour\" contains \"our\" (british)\n", out)
}

func TestAutocorrectCommands(t *testing.T) {
	xml := writeFile(t, "DocumentList.xml", `<block-list:block-list xmlns:block-list="http://openoffice.org/2001/block-list">
<block-list:block block-list:abbreviated-name="teh" block-list:name="the"/>
</block-list:block-list>`)
	out, err := run(t, "teh end", "autocorrect", "apply", xml)
	require.NoError(t, err)
	assert.Equal(t, "the end", out)

	out, err = run(t, "", "autocorrect", "lint", xml)
	require.NoError(t, err)
	assert.Empty(t, out)
}
