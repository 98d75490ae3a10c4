package audit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uiSource = `// comet-ui.js
import * as DOM from './comet-dom.js';
import * as State from './comet-state.js';

export function showView(viewName) {
    Object.values(DOM.views).forEach(v => v && v.classList.remove('active'));
    if (DOM.views[viewName]) {
        DOM.views[viewName].classList.add('active');
    }
    DOM.readerMessage.textContent = State.message;
    DOM.pageCounter.textContent = '';
}
`

const readerSource = `import {
    checkCriticalElements,
    fileInput as input,
    settingsPanel
} from "./comet-dom.js";
import { other } from './comet-other.js';

if (!checkCriticalElements()) { throw new Error('no'); }
`

func TestScanSourceNamespace(t *testing.T) {
	refs := ScanSource("comet-ui.js", uiSource)

	var names []string
	for _, r := range refs {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"views", "views", "views", "readerMessage", "pageCounter"}, names)

	last := refs[len(refs)-1]
	assert.Equal(t, 11, last.Line)
	assert.Equal(t, "comet-ui.js", last.File)
}

func TestScanSourceNamedImport(t *testing.T) {
	refs := ScanSource("comet-reader.js", readerSource)

	require.Len(t, refs, 3)
	assert.Equal(t, "checkCriticalElements", refs[0].Name)
	assert.Equal(t, "fileInput", refs[1].Name)
	assert.Equal(t, "settingsPanel", refs[2].Name)
	assert.Equal(t, 1, refs[0].Line)
}

func TestScanSourceIgnoresOtherModules(t *testing.T) {
	src := `import * as DOM from './comet-state.js';
DOM.whatever = 1;`

	assert.Empty(t, ScanSource("x.js", src))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("fileInput"))
	assert.True(t, Known("views"))
	assert.True(t, Known("fitLabels"))
	assert.True(t, Known(CheckFunction))
	assert.False(t, Known("pageCounter"))
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	write := func(rel, body string) {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	}

	write("js/comet-ui.js", uiSource)
	write("js/comet-reader.js", readerSource)
	write("js/comet-dom.js", "export const DOM = 1; DOM.bogus;")
	write("node_modules/lib/index.js", `import * as DOM from './comet-dom.js'; DOM.bogus;`)
	write("README.md", "DOM.bogus")

	rep, err := Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Files)
	assert.Len(t, rep.References, 8)
	require.Len(t, rep.Unknown, 2)
	assert.Equal(t, Reference{File: "js/comet-reader.js", Line: 1, Name: "settingsPanel"}, rep.Unknown[0])
	assert.Equal(t, Reference{File: "js/comet-ui.js", Line: 11, Name: "pageCounter"}, rep.Unknown[1])

	unused := rep.Unused()
	assert.Contains(t, unused, "comicImage")
	assert.NotContains(t, unused, "views")
	assert.NotContains(t, unused, "fileInput")
	assert.NotContains(t, unused, CheckFunction)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
