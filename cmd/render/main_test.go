package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"pts.svg", "-o", "x.png", "--circles", "--scale=4", "-v"})
	require.NoError(t, err)
	assert.Equal(t, config{
		input:   "pts.svg",
		output:  "x.png",
		format:  "auto",
		scale:   4,
		circles: true,
		verbose: true,
	}, cfg)

	_, err = parseFlags([]string{"--format=json"})
	assert.Error(t, err)
}

func TestRun_Text(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	cfg := config{input: "-", output: out, format: "auto", validate: true, dump: true}

	var stdout, stderr bytes.Buffer
	in := strings.NewReader("0 0\n4 0\n4 3\n0 3\n2 1.5\nbroken\n")
	require.NoError(t, run(cfg, in, &stdout, &stderr))

	assert.Contains(t, stdout.String(), "triangles")
	assert.Contains(t, stdout.String(), "faces:")
	assert.Contains(t, stderr.String(), "line 6")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	assert.NoError(t, err)
}

func TestRun_SVG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "pts.svg")
	svg := `<svg><circle cx="0" cy="0" r="1"/><circle cx="5" cy="0" r="1"/><circle cx="0" cy="5" r="1"/></svg>`
	require.NoError(t, os.WriteFile(in, []byte(svg), 0o644))

	cfg := config{input: in, output: filepath.Join(dir, "out.png"), format: "auto"}
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(cfg, nil, &stdout, &stderr))
	assert.FileExists(t, cfg.output)
}

func TestRun_NoPoints(t *testing.T) {
	cfg := config{input: "-", output: filepath.Join(t.TempDir(), "out.png"), format: "text"}
	var stdout, stderr bytes.Buffer
	err := run(cfg, strings.NewReader("\n"), &stdout, &stderr)
	assert.Error(t, err)
}
