package routefile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// RouteLexer defines the lexical structure of the textual interchange
// format: line comments, bare keywords, signed integers and identifiers.
var RouteLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Top-level statement keywords
	{Name: "KwDevice", Pattern: `\bdevice\b`},
	{Name: "KwChanWidth", Pattern: `\bchanwidth\b`},
	{Name: "KwBlockType", Pattern: `\bblocktype\b`},
	{Name: "KwTile", Pattern: `\btile\b`},
	{Name: "KwBlock", Pattern: `\bblock\b`},
	{Name: "KwSwitch", Pattern: `\bswitch\b`},
	{Name: "KwNode", Pattern: `\bnode\b`},
	{Name: "KwEdge", Pattern: `\bedge\b`},
	{Name: "KwNet", Pattern: `\bnet\b`},

	// Clause keywords
	{Name: "KwIndex", Pattern: `\bindex\b`},
	{Name: "KwSize", Pattern: `\bsize\b`},
	{Name: "KwPins", Pattern: `\bpins\b`},
	{Name: "KwCapacity", Pattern: `\bcapacity\b`},
	{Name: "KwPin", Pattern: `\bpin\b`},
	{Name: "KwOutput", Pattern: `\boutput\b`},
	{Name: "KwOn", Pattern: `\bon\b`},
	{Name: "KwOffset", Pattern: `\boffset\b`},
	{Name: "KwAt", Pattern: `\bat\b`},
	{Name: "KwBuffered", Pattern: `\bbuffered\b`},
	{Name: "KwPass", Pattern: `\bpass\b`},
	{Name: "KwPtc", Pattern: `\bptc\b`},
	{Name: "KwDir", Pattern: `\bdir\b`},
	{Name: "KwCap", Pattern: `\bcap\b`},
	{Name: "KwOcc", Pattern: `\bocc\b`},
	{Name: "KwDriver", Pattern: `\bdriver\b`},
	{Name: "KwSinks", Pattern: `\bsinks\b`},
	{Name: "KwRoute", Pattern: `\broute\b`},
	{Name: "KwGlobal", Pattern: `\bglobal\b`},

	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},

	{Name: "Int", Pattern: `-?[0-9]+`},

	// Identifiers (must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.\[\]-]*`},
})
