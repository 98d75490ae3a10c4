package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/brogergvhs/cometdom/internal/check"
	"github.com/brogergvhs/cometdom/internal/config"
	"github.com/brogergvhs/cometdom/internal/dom"
	"github.com/brogergvhs/cometdom/internal/registry"
	"github.com/brogergvhs/cometdom/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var (
	flagCheckWorkers    int
	flagCheckStrict     bool
	flagCheckCookie     string
	flagCheckCookieFile string
	flagCheckUserAgent  string
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [page ...]",
		Short: "Resolve the element registry against HTML pages and run the critical element check",
		Long: "Each page is a local HTML file or an http(s) URL. Without arguments the pages\n" +
			"from the active config are checked.",
		RunE: runCheck,
	}

	checkCmd.Flags().IntVar(&flagCheckWorkers, "workers", config.DefaultWorkers, "pages checked in parallel")
	checkCmd.Flags().BoolVar(&flagCheckStrict, "strict", false, "also fail when secondary elements are missing")
	checkCmd.Flags().StringVar(&flagCheckCookie, "cookie", "", "cookie string for remote pages, e.g. \"key=value; other=123\"")
	checkCmd.Flags().StringVar(&flagCheckCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	checkCmd.Flags().StringVar(&flagCheckUserAgent, "user-agent", "", "override User-Agent for remote pages")

	rootCmd.AddCommand(checkCmd)
}

type pageResult struct {
	page   string
	result check.Result
	err    error
}

func runCheck(cmd *cobra.Command, args []string) error {
	opts := config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Pages:        args,
		Strict:       flagCheckStrict,
		Cookie:       flagCheckCookie,
		CookieFile:   flagCheckCookieFile,
		UserAgent:    flagCheckUserAgent,
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = flagCheckWorkers
	}

	cfg, usedPath, err := config.LoadMerged(opts)
	if err != nil {
		return err
	}

	logSvc := newLogger(cfg.Debug)
	defer logSvc.Sync()
	logSvc.Debugf("Config file: %s\n", usedPath)

	if len(cfg.Pages) == 0 {
		return fmt.Errorf("no pages given and none configured")
	}

	client, err := newPageClient(cfg, logSvc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var progress *ui.PageProgress
	if len(cfg.Pages) > 1 {
		progress = ui.NewPageProgress(os.Stderr, len(cfg.Pages))
	}

	start := time.Now()
	results := checkPages(ctx, dom.NewLoader(client, logSvc), cfg.Pages, cfg.Workers, logSvc, progress)
	if progress != nil {
		progress.Close()
	}

	return summarize(results, cfg.Strict, time.Since(start))
}

func checkPages(
	ctx context.Context,
	loader *dom.Loader,
	pages []string,
	workers int,
	logSvc *ui.Logger,
	progress *ui.PageProgress,
) []pageResult {
	results := make([]pageResult, len(pages))

	sem := make(chan struct{}, max(1, workers))
	var wg sync.WaitGroup

	for i, page := range pages {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = checkPage(ctx, loader, page, logSvc.With("page", page))
			if progress != nil {
				progress.Done(results[i].err == nil && results[i].result.OK)
			}
		}()
	}
	wg.Wait()

	return results
}

func checkPage(ctx context.Context, loader *dom.Loader, page string, log *ui.Logger) pageResult {
	doc, err := loader.Load(ctx, page)
	if err != nil {
		log.Errorf("Cannot load page: %v\n", err)
		return pageResult{page: page, err: err}
	}

	log.Debugf("Loaded %q\n", doc.Title())

	reg := registry.Build(doc)
	if missing := reg.Missing(); len(missing) > 0 {
		log.Debugf("Absent bindings: %v\n", missing)
	}
	log.Debugf("fitLabels: %d element(s)\n", len(reg.FitLabels()))

	return pageResult{page: page, result: check.Run(reg, log)}
}

func summarize(results []pageResult, strict bool, took time.Duration) error {
	stats := &ui.Stats{}
	var errs error

	for _, r := range results {
		stats.Pages.Add(1)
		switch {
		case r.err != nil:
			stats.Failed.Add(1)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.page, r.err))
		case !r.result.OK:
			stats.Failed.Add(1)
			errs = multierr.Append(errs, fmt.Errorf("%s: reader cannot start, core view elements missing", r.page))
		case r.result.Degraded():
			stats.Degraded.Add(1)
			if strict {
				errs = multierr.Append(errs, fmt.Errorf("%s: %d secondary element(s) missing", r.page, len(r.result.Findings)))
			}
		default:
			stats.Viable.Add(1)
		}
	}

	fmt.Println()
	fmt.Println("Check Summary:")
	fmt.Printf("Pages:    %d\n", stats.Pages.Load())
	fmt.Printf("Viable:   %d\n", stats.Viable.Load())
	fmt.Printf("Degraded: %d\n", stats.Degraded.Load())
	fmt.Printf("Failed:   %d\n", stats.Failed.Load())
	fmt.Printf("Time:     %s\n", took.Round(time.Millisecond))

	return errs
}
