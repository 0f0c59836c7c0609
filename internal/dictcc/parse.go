package dictcc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	// ErrUnrecognizedLayout means neither known table structure is on the page.
	ErrUnrecognizedLayout = errors.New("unrecognized dict.cc results page layout")
	// ErrLayoutChanged means a known structure was found but its language headings were not.
	ErrLayoutChanged = errors.New("dict.cc results page layout change, please raise an issue")
)

type Layout int

const (
	LayoutUnknown Layout = iota
	// LayoutSuggestions is the "did you mean" page: two td3nl cells full of links.
	LayoutSuggestions
	// LayoutTranslations is the regular page: alternating td7nl cells per row.
	LayoutTranslations
)

func (l Layout) String() string {
	switch l {
	case LayoutSuggestions:
		return "suggestions"
	case LayoutTranslations:
		return "translations"
	default:
		return "unknown"
	}
}

const (
	selSuggestion   = "td.td3nl"
	selTranslation  = `td.td7nl[dir="ltr"]`
	selLabel        = "td.td2"
	selLabelLTR     = `td.td2[dir="ltr"]`
	selTranslateKid = "a, var"
)

func DetectLayout(doc *goquery.Document) Layout {
	if doc.Find(selSuggestion).Length() == 2 {
		return LayoutSuggestions
	}
	if doc.Find(selTranslation).Length() >= 2 {
		return LayoutTranslations
	}
	return LayoutUnknown
}

// ParsePage extracts the word columns from a results page.
func ParsePage(body io.Reader) (Result, Layout, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return Result{}, LayoutUnknown, fmt.Errorf("parse html: %w", err)
	}

	layout := DetectLayout(doc)
	var res Result
	switch layout {
	case LayoutSuggestions:
		res, err = parseSuggestions(doc)
	case LayoutTranslations:
		res, err = parseTranslations(doc)
	default:
		return Result{}, layout, ErrUnrecognizedLayout
	}
	return res, layout, err
}

func parseSuggestions(doc *goquery.Document) (Result, error) {
	var labels []string
	doc.Find(selLabel).EachWithBreak(func(i int, s *goquery.Selection) bool {
		labels = append(labels, strings.TrimSpace(s.Text()))
		return len(labels) < 2
	})
	if len(labels) != 2 {
		return Result{}, ErrLayoutChanged
	}

	cols := doc.Find(selSuggestion)
	source := linkTexts(cols.Eq(0))
	target := linkTexts(cols.Eq(1))

	return Result{FromLang: labels[0], ToLang: labels[1], Pairs: zip(source, target)}, nil
}

func parseTranslations(doc *goquery.Document) (Result, error) {
	var labels []string
	doc.Find(selLabelLTR).Each(func(i int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(firstText(s.Nodes[0])))
	})
	if len(labels) != 2 {
		return Result{}, ErrLayoutChanged
	}

	cells := doc.Find(selTranslation)
	// the trailing cell is never part of a row
	n := cells.Length() - 1
	var source, target []string
	for i := 0; i < n; i++ {
		kids := cells.Eq(i).Find(selTranslateKid)
		if i%2 == 0 {
			source = append(source, sourceText(kids))
		} else {
			target = append(target, targetText(kids))
		}
	}

	return Result{FromLang: labels[0], ToLang: labels[1], Pairs: zip(source, target)}, nil
}

func linkTexts(col *goquery.Selection) []string {
	var out []string
	col.Find("a").Each(func(i int, a *goquery.Selection) {
		out = append(out, a.Text())
	})
	return out
}

// sourceText joins every text node under the cell's links with single spaces.
func sourceText(kids *goquery.Selection) string {
	parts := make([]string, 0, kids.Length())
	kids.Each(func(i int, s *goquery.Selection) {
		parts = append(parts, strings.Join(textNodes(s.Nodes[0]), " "))
	})
	return strings.Join(parts, " ")
}

func targetText(kids *goquery.Selection) string {
	parts := make([]string, 0, kids.Length())
	kids.Each(func(i int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	return strings.Join(parts, " ")
}

func textNodes(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			out = append(out, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// firstText returns the first non-blank text node, e.g. "Englisch" out of "<b>Englisch</b> 12 Treffer".
func firstText(n *html.Node) string {
	for _, t := range textNodes(n) {
		if strings.TrimSpace(t) != "" {
			return t
		}
	}
	return ""
}

func zip(source, target []string) []Pair {
	n := min(len(source), len(target))
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{Source: source[i], Target: target[i]}
	}
	return pairs
}
