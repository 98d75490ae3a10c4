package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/brogergvhs/cometdom/internal/config"
	"github.com/brogergvhs/cometdom/internal/dom"
	"github.com/brogergvhs/cometdom/internal/ui"
)

func TestPageClientUsesConfiguredIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "comet-bot/2", r.Header.Get("User-Agent"))
		assert.Equal(t, "a=1; session=abc", r.Header.Get("Cookie"))
		_, _ = w.Write([]byte(viablePage))
	}))
	defer srv.Close()

	cookies := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(cookies, []byte("session=abc\n"), 0644))

	cfg := config.DefaultConfig()
	cfg.UserAgent = "comet-bot/2"
	cfg.Cookie = "a=1"
	cfg.CookieFile = cookies

	logSvc := ui.NewLoggerFromCore(zapcore.NewNopCore(), false)
	client, err := newPageClient(cfg, logSvc)
	require.NoError(t, err)

	doc, err := dom.NewLoader(client, logSvc).Load(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.True(t, doc.GetElementByID("uploadView").Present())
}
