// Package codegen renders the element registry as the browser-side ES
// module js/comet-dom.js.
package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/js"

	"github.com/brogergvhs/cometdom/internal/check"
	"github.com/brogergvhs/cometdom/internal/registry"
	"github.com/brogergvhs/cometdom/internal/util"
)

const DefaultPath = "js/comet-dom.js"

//go:embed templates/*.tmpl
var templates embed.FS

var moduleTmpl = template.Must(
	template.New("comet-dom.js.tmpl").
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"jsString": strconv.Quote}).
		ParseFS(templates, "templates/comet-dom.js.tmpl"),
)

type Options struct {
	// Path is echoed in the header comment. Empty means DefaultPath.
	Path   string
	Minify bool
}

type bindingView struct {
	Name     registry.Name
	Call     string
	Selector string
	Members  []string
	Doc      []string
}

type sectionView struct {
	Title    string
	Doc      []string
	Bindings []bindingView
}

type secondaryView struct {
	Name    registry.Name
	Message string
}

type moduleView struct {
	Path           string
	Sections       []sectionView
	Core           []registry.Name
	CoreMessage    string
	Secondary      []secondaryView
	SecondaryNames []registry.Name
}

func buildView(opts Options) moduleView {
	v := moduleView{
		Path:        opts.Path,
		Core:        check.Core,
		CoreMessage: check.MsgCoreMissing,
	}
	if v.Path == "" {
		v.Path = DefaultPath
	}

	for _, s := range registry.Sections() {
		sv := sectionView{Title: s.Title, Doc: s.Doc}
		for _, b := range s.Bindings {
			bv := bindingView{Name: b.Name, Selector: b.Selector, Doc: b.Doc}
			switch b.Lookup {
			case registry.ByID:
				bv.Call = "getElementById"
			case registry.QueryAll:
				bv.Call = "querySelectorAll"
			case registry.Group:
				for _, m := range b.Members {
					bv.Members = append(bv.Members, fmt.Sprintf("%s: %s", m.Key, m.Target))
				}
			}
			sv.Bindings = append(sv.Bindings, bv)
		}
		v.Sections = append(v.Sections, sv)
	}

	for _, s := range check.Secondary {
		v.Secondary = append(v.Secondary, secondaryView{Name: s.Name, Message: s.Message})
		v.SecondaryNames = append(v.SecondaryNames, s.Name)
	}

	return v
}

// Render writes the module. Equal options always produce equal bytes.
func Render(w io.Writer, opts Options) error {
	var buf bytes.Buffer
	if err := moduleTmpl.Execute(&buf, buildView(opts)); err != nil {
		return fmt.Errorf("render module: %w", err)
	}

	if !opts.Minify {
		_, err := w.Write(buf.Bytes())
		return err
	}

	if err := js.Minify(minify.New(), w, &buf, nil); err != nil {
		return fmt.Errorf("minify module: %w", err)
	}

	return nil
}

func Bytes(opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, opts); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFile renders the module into path and returns the number of bytes
// written.
func WriteFile(path string, opts Options) (int64, error) {
	data, err := Bytes(opts)
	if err != nil {
		return 0, err
	}

	if err := util.WriteFileAtomic(path, data, 0644); err != nil {
		return 0, err
	}

	return int64(len(data)), nil
}

// Stale reports whether path is missing or differs from a fresh render.
func Stale(path string, opts Options) (bool, error) {
	want, err := Bytes(opts)
	if err != nil {
		return false, err
	}

	have, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return !bytes.Equal(have, want), nil
}
