package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

type HTMLDocument struct {
	doc *goquery.Document
}

func Parse(r io.Reader) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return &HTMLDocument{doc: doc}, nil
}

func ParseString(s string) (*HTMLDocument, error) {
	return Parse(strings.NewReader(s))
}

// GetElementByID returns the first element in document order whose id
// attribute equals id exactly. Ids are compared raw, so values that would
// need escaping inside a CSS selector still match. Template content is
// inert and never matches.
func (d *HTMLDocument) GetElementByID(id string) Ref {
	if id == "" {
		return None()
	}

	match := d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id && live(s)
	}).First()

	if match.Length() == 0 {
		return None()
	}

	return Some(htmlElement{n: match.Get(0)})
}

// QuerySelectorAll returns matches in document order, template content
// excluded. A selector that does not compile matches nothing.
func (d *HTMLDocument) QuerySelectorAll(selector string) []Element {
	out := []Element{}
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if live(s) {
			out = append(out, htmlElement{n: s.Get(0)})
		}
	})

	return out
}

// x/net/html keeps <template> content as ordinary children; browsers
// hold it in a separate fragment that document lookups do not reach.
func live(s *goquery.Selection) bool {
	return s.ParentsFiltered("template").Length() == 0
}

// Title is the text of the page's <title>, logged when a page is checked.
func (d *HTMLDocument) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

type htmlElement struct {
	n *html.Node
}

func (e htmlElement) ID() string {
	v, _ := e.Attr("id")
	return v
}

func (e htmlElement) Tag() string {
	return e.n.Data
}

func (e htmlElement) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}

	return "", false
}

func (e htmlElement) Text() string {
	return goquery.NewDocumentFromNode(e.n).Text()
}
