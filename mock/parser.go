package mock

import "github.com/x7007x/hadithsearch"

var _ hadithsearch.Parser = (*Parser)(nil)

// Parser is a mock implementation of hadithsearch.Parser.
type Parser struct {
	ParseFn func(markup string) (hadithsearch.Node, error)
}

func (p *Parser) Parse(markup string) (hadithsearch.Node, error) {
	return p.ParseFn(markup)
}
