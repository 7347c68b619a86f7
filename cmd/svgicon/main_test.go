package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigLayers(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "svgicon.yaml", `
path: ./icons
prefix: ic-
stripStyles: true
colorTags: [path, circle]
workers: 2
`)
	cfg, err := loadConfig(file, map[string]string{
		"SVGICON_PREFIX":        "icon-",
		"SVGICON_FUNCTION_NAME": "inline",
		"OTHER_PATH":            "/nowhere",
	})
	require.NoError(t, err)
	assert.Equal(t, "./icons", cfg.Path)
	assert.Equal(t, "icon-", cfg.Prefix)
	assert.Equal(t, "inline", cfg.FunctionName)
	assert.True(t, cfg.StripStyles)
	assert.Equal(t, []string{"path", "circle"}, cfg.ColorTags)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	opts := cfg.options()
	assert.Equal(t, "./svgs", opts.Path)
	assert.Equal(t, "svgicon", opts.FunctionName)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), map[string]string{})
	assert.Error(t, err)
	_, err = loadConfig("", map[string]string{"SVGICON_WORKERS": "many"})
	assert.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--prefix", "x-", "--workers", "3", "-d"}))
	cfg := defaultConfig()
	cfg.Prefix = "from-file-"
	cfg.Path = "from-file"
	cfg.applyFlags(cmd)
	assert.Equal(t, "x-", cfg.Prefix)
	assert.Equal(t, "from-file", cfg.Path, "unset flags must not override")
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestRunCSS(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "star.svg", `<path d="M0 0" fill="#000"/>`)
	input := writeFile(t, dir, "styles.css", ".a { background: svgicon(star, red); }\n")
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--path", dir, input})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, ".a {\n  background-image: url('data:image/svg+xml;charset=utf-8,<path d=\"M0 0\" fill=\"red\"/>');\n}\n", stdout.String())
}

func TestRunHTMLToFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "star.svg", `<path d="M0 0" fill="#000"/>`)
	input := writeFile(t, dir, "page.html", "<html><head><style>.a { background: svgicon(star); }</style></head></html>")
	output := filepath.Join(dir, "out.html")
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--path", dir, "-o", output, input})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `fill="#000"`)
	assert.True(t, strings.HasPrefix(string(data), "<html>"))
}

func TestRunMissingIcon(t *testing.T) {
	dir := t.TempDir()
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(".a { background: svgicon(star); }"))
	cmd.SetArgs([]string{"--path", dir})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, 0, stdout.Len())
}

func TestSchema(t *testing.T) {
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"schema"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), `"functionName"`)
	assert.Contains(t, stdout.String(), `"Icon Directory"`)
}

func TestRunDumpAndWarnings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "star.svg", `<path d="M0 0" fill="#000"/>`)
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(".a { background: svgicon(star, reddish); }"))
	cmd.SetArgs([]string{"--path", dir, "--dump"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, stdout.String(), `fill="reddish"`)
	assert.Contains(t, stderr.String(), "is not a CSS color")
	assert.Contains(t, stderr.String(), "rule(.a)")
}
