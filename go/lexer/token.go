package lexer

import "fmt"

// Kind classifies a Token. The set is closed; consumers such as go/calc
// switch over it and treat anything they do not handle as an error.
type Kind int

const (
	KindEOF Kind = iota
	KindUnknown

	// Keywords.
	KindFunction
	KindExtern
	KindIf
	KindThen
	KindElse
	KindFor
	KindIn

	// Literals.
	KindInteger
	KindFloat
	KindIdentifier

	// Operators.
	KindPlus
	KindMinus
	KindMultiply
	KindDivide
	KindModulo
	KindPower

	// Comparisons. Produced by the lexer but carry no meaning to the
	// expression evaluator.
	KindLess
	KindGreater
	KindEqual
	KindNotEqual

	// Punctuation.
	KindLeftParen
	KindRightParen
	KindComma
	KindSemicolon
)

var kindNames = [...]string{
	KindEOF:        "EOF",
	KindUnknown:    "UNKNOWN",
	KindFunction:   "FUNCTION",
	KindExtern:     "EXTERN",
	KindIf:         "IF",
	KindThen:       "THEN",
	KindElse:       "ELSE",
	KindFor:        "FOR",
	KindIn:         "IN",
	KindInteger:    "INTEGER",
	KindFloat:      "FLOAT",
	KindIdentifier: "IDENTIFIER",
	KindPlus:       "PLUS",
	KindMinus:      "MINUS",
	KindMultiply:   "MULTIPLY",
	KindDivide:     "DIVIDE",
	KindModulo:     "MODULO",
	KindPower:      "POWER",
	KindLess:       "LESS",
	KindGreater:    "GREATER",
	KindEqual:      "EQUAL",
	KindNotEqual:   "NOT_EQUAL",
	KindLeftParen:  "LEFT_PAREN",
	KindRightParen: "RIGHT_PAREN",
	KindComma:      "COMMA",
	KindSemicolon:  "SEMICOLON",
}

// String returns the canonical name of the kind, e.g. "FUNCTION" for the
// token produced by the keyword "def".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// keywords maps reserved words to their kinds. Only a full identifier lexeme
// is looked up here, so "forever" remains an identifier rather than "for"
// plus a remainder.
var keywords = map[string]Kind{
	"def":    KindFunction,
	"extern": KindExtern,
	"if":     KindIf,
	"then":   KindThen,
	"else":   KindElse,
	"for":    KindFor,
	"in":     KindIn,
}

// LookupIdent returns the keyword kind for ident, or KindIdentifier when
// ident is not a reserved word. Built-in function names ("sin", "cos", ...)
// are ordinary identifiers at this level; go/calc decides what they mean.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return KindIdentifier
}

// singleCharKinds is the dispatch table for tokens that are exactly one
// character long. '!' is deliberately absent: it only forms a token as part
// of "!=", which the lexer matches with one character of lookahead before
// consulting this table.
var singleCharKinds = map[rune]Kind{
	'+': KindPlus,
	'-': KindMinus,
	'*': KindMultiply,
	'/': KindDivide,
	'%': KindModulo,
	'^': KindPower,
	'<': KindLess,
	'>': KindGreater,
	'=': KindEqual,
	'(': KindLeftParen,
	')': KindRightParen,
	',': KindComma,
	';': KindSemicolon,
}

// Token is a single classified unit of source text. Tokens are produced once
// by the Lexer and never modified afterwards.
type Token struct {
	Kind Kind
	// Text is the exact source lexeme. Synthetic tokens with no lexeme (EOF)
	// carry the kind's canonical name instead.
	Text string
	// Line and Column are the 1-based position of the token's first
	// character. Columns count characters, not bytes.
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %d:%d", t.Kind, t.Text, t.Line, t.Column)
}
