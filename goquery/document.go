// Package goquery provides the markup-parsing implementation of the
// hadithsearch document tree, built on PuerkitoBio/goquery's permissive
// HTML parser.
package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/x7007x/hadithsearch"
	"golang.org/x/net/html"
)

// Ensure Parser implements hadithsearch.Parser at compile time.
var _ hadithsearch.Parser = (*Parser)(nil)

// Parser builds document trees from raw HTML. Parsing is forgiving:
// malformed or unclosed tags degrade to a best-effort tree, and parsing
// fails only when the input is not valid UTF-8 text.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses markup into a traversable document tree.
func (p *Parser) Parse(markup string) (hadithsearch.Node, error) {
	if !utf8.ValidString(markup) {
		return nil, hadithsearch.Errorf(hadithsearch.EINTERNAL, "markup is not valid UTF-8 text")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, hadithsearch.Errorf(hadithsearch.EINTERNAL, "failed to parse markup: %v", err)
	}
	if len(doc.Selection.Nodes) == 0 {
		return nil, hadithsearch.Errorf(hadithsearch.EINTERNAL, "parsed markup produced no document root")
	}

	return &node{n: doc.Selection.Nodes[0]}, nil
}

// Ensure node implements hadithsearch.Node at compile time.
var _ hadithsearch.Node = (*node)(nil)

// node adapts an html.Node to the hadithsearch.Node interface. Raw
// html.Node traversal is used instead of goquery selections because the
// upstream markup carries record metadata in comment nodes, which CSS
// selection cannot reach.
type node struct {
	n *html.Node
}

// TagName returns the element tag name, or "" for non-element nodes.
func (nd *node) TagName() string {
	if nd.n.Type != html.ElementNode {
		return ""
	}
	return nd.n.Data
}

// Text returns the concatenated text of all descendant text nodes, each
// segment trimmed of surrounding whitespace.
func (nd *node) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(nd.n)
	return strings.TrimSpace(b.String())
}

// Attr returns the value of the named attribute.
func (nd *node) Attr(key string) (string, bool) {
	for _, a := range nd.n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the node's class list contains name.
func (nd *node) HasClass(name string) bool {
	classes, ok := nd.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(classes) {
		if c == name {
			return true
		}
	}
	return false
}

// FindFirst returns the first descendant matching m in document order.
func (nd *node) FindFirst(m hadithsearch.Matcher) (hadithsearch.Node, bool) {
	var found *node
	walkNodes(nd.n, func(n *html.Node) bool {
		cand := &node{n: n}
		if cand.matches(m) {
			found = cand
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return found, true
}

// FindAll returns all descendants matching m in document order.
func (nd *node) FindAll(m hadithsearch.Matcher) []hadithsearch.Node {
	var out []hadithsearch.Node
	walkNodes(nd.n, func(n *html.Node) bool {
		cand := &node{n: n}
		if cand.matches(m) {
			out = append(out, cand)
		}
		return true
	})
	return out
}

// ChildElements returns the node's direct element children.
func (nd *node) ChildElements() []hadithsearch.Node {
	var out []hadithsearch.Node
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &node{n: c})
		}
	}
	return out
}

// FindString returns the content of the first descendant text or comment
// node matching re.
func (nd *node) FindString(re *regexp.Regexp) (string, bool) {
	var found string
	var ok bool
	walkNodes(nd.n, func(n *html.Node) bool {
		if n.Type != html.TextNode && n.Type != html.CommentNode {
			return true
		}
		if re.MatchString(n.Data) {
			found = n.Data
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// matches reports whether the node satisfies every condition of m.
func (nd *node) matches(m hadithsearch.Matcher) bool {
	if nd.n.Type != html.ElementNode {
		return false
	}
	if m.Tag != "" && nd.n.Data != m.Tag {
		return false
	}
	if m.Class != "" {
		for _, c := range strings.Fields(m.Class) {
			if !nd.HasClass(c) {
				return false
			}
		}
	}
	if m.Attr != "" {
		val, ok := nd.Attr(m.Attr)
		if !ok {
			return false
		}
		if m.AttrPattern != nil && !m.AttrPattern.MatchString(val) {
			return false
		}
	}
	return true
}

// walkNodes visits root's descendants (not root itself) in document order.
// The visit callback returns false to stop the walk.
func walkNodes(root *html.Node, visit func(*html.Node) bool) bool {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if !visit(c) {
			return false
		}
		if !walkNodes(c, visit) {
			return false
		}
	}
	return true
}
