package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/brogergvhs/cometdom/internal/check"
	"github.com/brogergvhs/cometdom/internal/dom"
	"github.com/brogergvhs/cometdom/internal/ui"
)

const (
	viablePage   = `<div id="uploadView"><input id="fileInput"></div><div id="readerView"><div id="imageContainer"><img id="comicImage"></div></div>`
	degradedPage = `<div id="uploadView"></div><div id="readerView"><img id="comicImage"></div>`
	brokenPage   = `<div id="readerView"></div>`
)

func writePages(t *testing.T) (dir string, pages []string) {
	t.Helper()
	dir = t.TempDir()
	for name, body := range map[string]string{
		"viable.html":   viablePage,
		"degraded.html": degradedPage,
		"broken.html":   brokenPage,
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
	}

	for _, name := range []string{"viable.html", "degraded.html", "broken.html", "missing.html"} {
		pages = append(pages, filepath.Join(dir, name))
	}
	return dir, pages
}

func TestCheckPages(t *testing.T) {
	_, pages := writePages(t)
	core, logs := observer.New(zapcore.ErrorLevel)

	results := checkPages(context.Background(), dom.NewLoader(nil, nil), pages, 2, ui.NewLoggerFromCore(core, false), nil)
	require.Len(t, results, 4)

	assert.True(t, results[0].result.OK)
	assert.Empty(t, results[0].result.Findings)

	assert.True(t, results[1].result.OK)
	assert.True(t, results[1].result.Degraded())
	assert.Len(t, results[1].result.Findings, 2)

	assert.False(t, results[2].result.OK)
	assert.Error(t, results[3].err)

	assert.Equal(t, 1, logs.FilterMessage(check.MsgCoreMissing).Len())
	assert.Equal(t, 1, logs.FilterMessage(check.MsgFileInputMissing).Len())
	assert.Equal(t, 1, logs.FilterMessage(check.MsgImageContainerMissing).Len())
	assert.Equal(t, 1, logs.FilterField(zapcore.Field{Key: "page", Type: zapcore.StringType, String: pages[2]}).Len())
}

func TestSummarize(t *testing.T) {
	_, pages := writePages(t)
	results := checkPages(context.Background(), dom.NewLoader(nil, nil), pages, 1,
		ui.NewLoggerFromCore(zapcore.NewNopCore(), false), nil)

	err := summarize(results, false, time.Second)
	assert.Len(t, multierr.Errors(err), 2)

	err = summarize(results, true, time.Second)
	assert.Len(t, multierr.Errors(err), 3)

	assert.NoError(t, summarize(results[:1], true, time.Second))
}
