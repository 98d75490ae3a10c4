package cmd

import (
	"net/http"
	"time"

	"github.com/brogergvhs/cometdom/internal/config"
	"github.com/brogergvhs/cometdom/internal/ui"
	"github.com/brogergvhs/cometdom/internal/util"
)

func newLogger(debug bool) *ui.Logger {
	return ui.NewLogger(debug || flagDebug)
}

// newPageClient builds the client remote pages are fetched with, carrying
// the configured identity.
func newPageClient(cfg *config.Config, logSvc *ui.Logger) (*http.Client, error) {
	return util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     30 * time.Second,
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		Cookie:      cfg.Cookie,
		CookieFile:  cfg.CookieFile,
		DebugLogger: logSvc,
	})
}
