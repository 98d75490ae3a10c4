package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/cometdom/internal/check"
	"github.com/brogergvhs/cometdom/internal/registry"
)

func render(t *testing.T, opts Options) string {
	t.Helper()
	b, err := Bytes(opts)
	require.NoError(t, err)
	return string(b)
}

func TestRenderBindings(t *testing.T) {
	out := render(t, Options{})

	assert.True(t, strings.HasPrefix(out, "// js/comet-dom.js\n"))

	for _, b := range registry.Bindings() {
		switch b.Lookup {
		case registry.ByID:
			assert.Contains(t, out, fmt.Sprintf("export const %s = document.getElementById(%q);\n", b.Name, b.Selector))
		case registry.QueryAll:
			assert.Contains(t, out, fmt.Sprintf("export const %s = document.querySelectorAll(%q);\n", b.Name, b.Selector))
		}
	}

	assert.Contains(t, out, "export const views = {\n"+
		"    landing: landingViewElement,\n"+
		"    login: loginViewElement,\n"+
		"    upload: uploadViewElement,\n"+
		"    reader: readerViewElement\n"+
		"};\n")

	for _, s := range registry.Sections() {
		assert.Contains(t, out, "\n// SECTION: "+s.Title+"\n")
	}
}

func TestRenderDocumentsEveryExport(t *testing.T) {
	lines := strings.Split(render(t, Options{}), "\n")

	for i, line := range lines {
		if !strings.HasPrefix(line, "export const ") {
			continue
		}
		require.Positive(t, i)
		assert.True(t, strings.HasPrefix(lines[i-1], "// "), "no comment above %q", line)
	}
}

func TestRenderOrder(t *testing.T) {
	out := render(t, Options{})

	last := -1
	for _, b := range registry.Bindings() {
		idx := strings.Index(out, "export const "+string(b.Name)+" =")
		require.NotEqual(t, -1, idx, b.Name)
		assert.Greater(t, idx, last, "%s out of order", b.Name)
		last = idx
	}

	assert.Greater(t, strings.Index(out, "export function checkCriticalElements()"), last)
}

func TestRenderCheckFunction(t *testing.T) {
	out := render(t, Options{})

	assert.Contains(t, out, "    if (!uploadViewElement || !readerViewElement) {\n"+
		"        console.error(\""+check.MsgCoreMissing+"\");\n"+
		"        return false;\n"+
		"    }\n")

	for _, s := range check.Secondary {
		assert.Contains(t, out, fmt.Sprintf("    if (!%s) {\n        console.error(%q);\n    }\n", s.Name, s.Message))
	}

	assert.True(t, strings.HasSuffix(out, "    return true;\n}\n"))
}

func TestRenderDeterministic(t *testing.T) {
	a := render(t, Options{Path: "static/js/comet-dom.js"})
	b := render(t, Options{Path: "static/js/comet-dom.js"})

	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "// static/js/comet-dom.js\n"))
}

func TestRenderMinify(t *testing.T) {
	full := render(t, Options{})
	small := render(t, Options{Minify: true})

	assert.Less(t, len(small), len(full))
	assert.NotContains(t, small, "// SECTION")
	assert.Contains(t, small, "checkCriticalElements")
	assert.Contains(t, small, "uploadView")
	assert.Contains(t, small, ".fit-label")
}

func TestWriteFileAndStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "js", "comet-dom.js")
	opts := Options{}

	stale, err := Stale(path, opts)
	require.NoError(t, err)
	assert.True(t, stale)

	n, err := WriteFile(path, opts)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(b)), n)
	assert.Equal(t, render(t, opts), string(b))

	stale, err = Stale(path, opts)
	require.NoError(t, err)
	assert.False(t, stale)

	stale, err = Stale(path, Options{Minify: true})
	require.NoError(t, err)
	assert.True(t, stale)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
