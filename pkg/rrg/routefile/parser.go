// Package routefile loads the textual interchange format that carries a
// placed-and-routed design into the viewer: device grid, block types
// with pin placement, the routing-resource graph and the per-net traces.
package routefile

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses the interchange format.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser builds the grammar.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(RouteLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses from a reader.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}
