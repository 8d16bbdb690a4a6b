package diag

import (
	"fmt"
)

// Code identifies a diagnostic condition. The numeric space is partitioned by
// compiler phase: 1000s lexer, 2000s parser, 3000s semantics, 4000s I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Парсерные
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnexpectedTopLevel    Code = 2002
	SynExpectIdentifier      Code = 2003
	SynExpectSemicolon       Code = 2004
	SynExpectType            Code = 2005
	SynExpectExpression      Code = 2006
	SynExpectPattern         Code = 2007
	SynUnclosedDelimiter     Code = 2008
	SynMissingModuleHeader   Code = 2009
	SynDuplicateModuleHeader Code = 2010

	// Семантические
	SemaInfo                   Code = 3000
	SemaMisplacedRestPattern   Code = 3001
	SemaDeclNotAllowedInModule Code = 3002

	// I/O
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInfo:                     "lexer info",
	LexUnknownChar:              "unknown character",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	LexBadNumber:                "malformed number literal",

	SynInfo:                  "parser info",
	SynUnexpectedToken:       "unexpected token",
	SynUnexpectedTopLevel:    "unexpected top-level construct",
	SynExpectIdentifier:      "expected identifier",
	SynExpectSemicolon:       "expected ';'",
	SynExpectType:            "expected type",
	SynExpectExpression:      "expected expression",
	SynExpectPattern:         "expected pattern",
	SynUnclosedDelimiter:     "unclosed delimiter",
	SynMissingModuleHeader:   "missing module kind header",
	SynDuplicateModuleHeader: "duplicate module kind header",

	SemaInfo:                   "semantic info",
	SemaMisplacedRestPattern:   "rest pattern not in final position",
	SemaDeclNotAllowedInModule: "declaration not allowed in this module kind",

	IOInfo:          "I/O info",
	IOLoadFileError: "failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
