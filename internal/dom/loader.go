package dom

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/brogergvhs/cometdom/internal/util"
)

// Loader resolves page locations. http(s) URLs are fetched, anything else
// is read from disk.
type Loader struct {
	client *http.Client
	log    interface{ Debugf(string, ...any) }
}

func NewLoader(c *http.Client, log interface{ Debugf(string, ...any) }) *Loader {
	return &Loader{client: c, log: log}
}

func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

func (l *Loader) Load(ctx context.Context, location string) (*HTMLDocument, error) {
	if IsRemote(location) {
		return l.fetch(ctx, location)
	}

	if l.log != nil {
		l.log.Debugf("Reading page %s\n", location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Parse(f)
}

func (l *Loader) fetch(ctx context.Context, target string) (*HTMLDocument, error) {
	if l.client == nil {
		return nil, fmt.Errorf("fetch %s: no http client configured", target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := util.DoWithRetry(ctx, l.client, req, 3, 500*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", target, resp.StatusCode)
	}

	return Parse(resp.Body)
}
