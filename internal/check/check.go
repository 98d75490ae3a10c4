// Package check decides whether a resolved registry is enough for the
// reader to start.
package check

import (
	"github.com/brogergvhs/cometdom/internal/registry"
)

// Logger receives one error-level line per finding.
type Logger interface {
	Errorf(format string, args ...any)
}

type Severity int

const (
	// Fatal means the reader cannot start.
	Fatal Severity = iota
	// Degraded means the reader starts with a feature broken.
	Degraded
)

func (s Severity) String() string {
	if s == Fatal {
		return "fatal"
	}
	return "degraded"
}

type Finding struct {
	Severity Severity
	Elements []registry.Name
	Message  string
}

type Result struct {
	OK       bool
	Findings []Finding
}

// Degraded reports whether any non-fatal finding was raised.
func (r Result) Degraded() bool {
	for _, f := range r.Findings {
		if f.Severity == Degraded {
			return true
		}
	}

	return false
}

const (
	MsgCoreMissing           = "Comet Reader: Core view elements (uploadView or readerView) NOT FOUND! Application cannot start correctly."
	MsgFileInputMissing      = "Comet Reader: fileInput element NOT FOUND! File selection will not work."
	MsgImageContainerMissing = "Comet Reader: imageContainer element NOT FOUND! Images cannot be displayed."
	MsgComicImageMissing     = "Comet Reader: comicImage element NOT FOUND! Images cannot be rendered."
)

// Core lists the containers without which the reader cannot start.
var Core = []registry.Name{registry.UploadView, registry.ReaderView}

// Secondary lists the elements whose absence is reported but tolerated,
// with the message raised for each.
var Secondary = []struct {
	Name    registry.Name
	Message string
}{
	{registry.FileInput, MsgFileInputMissing},
	{registry.ImageContainer, MsgImageContainerMissing},
	{registry.ComicImage, MsgComicImageMissing},
}

// Evaluate runs the critical-element rules without logging.
//
// A missing core container yields a single fatal finding and stops there;
// the secondary elements are then not inspected. Otherwise each missing
// secondary element yields its own degraded finding and OK stays true.
func Evaluate(reg *registry.Registry) Result {
	var missingCore []registry.Name
	for _, n := range Core {
		if !reg.Ref(n).Present() {
			missingCore = append(missingCore, n)
		}
	}

	if len(missingCore) > 0 {
		return Result{
			OK: false,
			Findings: []Finding{{
				Severity: Fatal,
				Elements: missingCore,
				Message:  MsgCoreMissing,
			}},
		}
	}

	res := Result{OK: true}
	for _, s := range Secondary {
		if !reg.Ref(s.Name).Present() {
			res.Findings = append(res.Findings, Finding{
				Severity: Degraded,
				Elements: []registry.Name{s.Name},
				Message:  s.Message,
			})
		}
	}

	return res
}

// Run evaluates reg and logs every finding at error level.
func Run(reg *registry.Registry, log Logger) Result {
	res := Evaluate(reg)
	for _, f := range res.Findings {
		log.Errorf("%s", f.Message)
	}

	return res
}

// CriticalElements reports whether the reader can start. A true result may
// still come with logged degradations; callers learn which from the log,
// not from the return value.
func CriticalElements(reg *registry.Registry, log Logger) bool {
	return Run(reg, log).OK
}
