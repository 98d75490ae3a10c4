package ui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// PageProgress is one bar counting checked pages.
type PageProgress struct {
	p     *mpb.Progress
	bar   *mpb.Bar
	bad   atomic.Int64
}

func NewPageProgress(out io.Writer, total int) *PageProgress {
	pp := &PageProgress{}
	pp.p = mpb.New(
		mpb.WithWidth(52),
		mpb.WithOutput(out),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	pp.bar = pp.p.New(
		int64(total),
		mpb.BarStyle().Rbound("]"),
		mpb.PrependDecorators(
			decor.Name("Pages  "),
		),
		mpb.AppendDecorators(
			decor.Percentage(decor.WCSyncWidth),
			decor.CountersNoUnit(" | %d/%d checked", decor.WCSyncWidth),
			decor.Any(func(_ decor.Statistics) string {
				if n := pp.bad.Load(); n > 0 {
					return fmt.Sprintf(" | %d failing", n)
				}
				return ""
			}),
		),
	)

	return pp
}

// Done records one finished page.
func (pp *PageProgress) Done(ok bool) {
	if !ok {
		pp.bad.Add(1)
	}
	pp.bar.Increment()
}

func (pp *PageProgress) Close() {
	if !pp.bar.Completed() {
		pp.bar.Abort(false)
	}
	pp.p.Wait()
}
