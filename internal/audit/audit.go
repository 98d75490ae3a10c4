// Package audit cross-checks the JavaScript that consumes comet-dom.js
// against the names the registry exports.
package audit

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/brogergvhs/cometdom/internal/registry"
)

// CheckFunction is exported by the generated module next to the bindings.
const CheckFunction = "checkCriticalElements"

var (
	reNamespaceImport = regexp.MustCompile(`import\s+\*\s+as\s+([A-Za-z_$][\w$]*)\s+from\s+["']([^"']*comet-dom(?:\.js)?)["']`)
	reNamedImport     = regexp.MustCompile(`import\s*\{([^}]*)\}\s*from\s*["']([^"']*comet-dom(?:\.js)?)["']`)
	reIdent           = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
)

type Reference struct {
	File string
	Line int
	Name string
}

type Report struct {
	Files      int
	References []Reference
	Unknown    []Reference
}

// Known reports whether the generated module exports name.
func Known(name string) bool {
	if name == CheckFunction {
		return true
	}
	_, ok := registry.Find(registry.Name(name))

	return ok
}

// Unused lists exports that no scanned file references, in table order.
func (r *Report) Unused() []string {
	used := map[string]bool{}
	for _, ref := range r.References {
		used[ref.Name] = true
	}

	var out []string
	for _, b := range registry.Bindings() {
		if !used[string(b.Name)] {
			out = append(out, string(b.Name))
		}
	}
	if !used[CheckFunction] {
		out = append(out, CheckFunction)
	}

	return out
}

// Scan walks root for .js files and collects every reference to the
// module's exports. The generated module itself and node_modules are skipped.
func Scan(root string) (*Report, error) {
	rep := &Report{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" || (strings.HasPrefix(d.Name(), ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".js" || d.Name() == "comet-dom.js" {
			return nil
		}

		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, rerr := filepath.Rel(root, path)
		if rerr != nil {
			rel = path
		}

		rep.Files++
		rep.add(ScanSource(filepath.ToSlash(rel), string(b)))

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rep.Unknown, func(i, j int) bool {
		if rep.Unknown[i].File != rep.Unknown[j].File {
			return rep.Unknown[i].File < rep.Unknown[j].File
		}
		return rep.Unknown[i].Line < rep.Unknown[j].Line
	})

	return rep, nil
}

func (r *Report) add(refs []Reference) {
	for _, ref := range refs {
		r.References = append(r.References, ref)
		if !Known(ref.Name) {
			r.Unknown = append(r.Unknown, ref)
		}
	}
}

// ScanSource extracts references from one file: members accessed through a
// namespace import (DOM.fileInput) and names listed in a named import.
func ScanSource(file, src string) []Reference {
	var out []Reference

	for _, m := range reNamedImport.FindAllStringSubmatchIndex(src, -1) {
		line := lineOf(src, m[0])
		for spec := range strings.SplitSeq(src[m[2]:m[3]], ",") {
			name := strings.TrimSpace(spec)
			if i := strings.Index(name, " as "); i >= 0 {
				name = strings.TrimSpace(name[:i])
			}
			if reIdent.MatchString(name) {
				out = append(out, Reference{File: file, Line: line, Name: name})
			}
		}
	}

	for _, m := range reNamespaceImport.FindAllStringSubmatch(src, -1) {
		member := regexp.MustCompile(`(?:^|[^\w$.])` + regexp.QuoteMeta(m[1]) + `\.([A-Za-z_$][\w$]*)`)

		for i, text := range strings.Split(src, "\n") {
			for _, u := range member.FindAllStringSubmatch(text, -1) {
				out = append(out, Reference{File: file, Line: i + 1, Name: u[1]})
			}
		}
	}

	return out
}

func lineOf(src string, offset int) int {
	return strings.Count(src[:offset], "\n") + 1
}
