package hadithsearch

import "regexp"

// Matcher describes the conditions a node must satisfy to be selected.
// Zero-value fields impose no condition, so conditions compose freely.
type Matcher struct {
	// Tag restricts matches to elements with this tag name.
	Tag string

	// Class is a space-separated list of class names that must all appear
	// in the element's class list. Matching is membership, not equality:
	// an element may carry additional classes.
	Class string

	// Attr names an attribute that must be present on the element.
	Attr string

	// AttrPattern, set together with Attr, additionally requires the
	// attribute value to match the pattern.
	AttrPattern *regexp.Regexp
}

// Node is a read-only view of one node in a parsed markup tree. It is the
// narrow capability surface the extraction logic is written against, so
// the parsing library behind it can be swapped without touching the
// extraction rules.
type Node interface {
	// TagName returns the element tag name, or "" for non-element nodes.
	TagName() string

	// Text returns the concatenated text of the node's descendant text
	// nodes, each segment trimmed of surrounding whitespace.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(key string) (string, bool)

	// HasClass reports whether the node's class list contains name.
	HasClass(name string) bool

	// FindFirst returns the first descendant matching m in document order.
	FindFirst(m Matcher) (Node, bool)

	// FindAll returns all descendants matching m in document order.
	FindAll(m Matcher) []Node

	// ChildElements returns the node's direct element children.
	ChildElements() []Node

	// FindString returns the content of the first descendant text or
	// comment node matching re. Comment nodes are included because the
	// upstream markup stores record metadata inside HTML comments.
	FindString(re *regexp.Regexp) (string, bool)
}

// Parser builds a traversable document tree from raw markup.
type Parser interface {
	// Parse parses markup into a document tree. Parsing is forgiving:
	// malformed or unclosed tags degrade to a best-effort tree. It fails
	// only when the input is not decodable text.
	Parse(markup string) (Node, error)
}
