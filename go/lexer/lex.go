// Package lexer turns source text for a small expression language into a
// stream of classified tokens.
//
// Scanning is total: every input, including binary garbage, produces a token
// sequence ending in exactly one EOF token. Characters that match no rule
// come back as KindUnknown tokens carrying the offending character, leaving
// the decision to ignore, warn, or fail to the caller. Whitespace and line
// comments ("#" through end of line) are consumed and produce nothing;
// concatenating the lexemes of all non-EOF tokens reproduces the rest of the
// source byte for byte, in order.
package lexer

import (
	"unicode"
	"unicode/utf8"
)

// Lexer scans one source string. The zero value is not usable; call New.
type Lexer struct {
	src  string
	pos  int // byte offset of the next unread character
	line int // 1-based line of the next unread character
	col  int // 1-based column, in characters, of the next unread character
}

// New returns a Lexer over src, positioned at line 1, column 1.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Tokenize scans src to completion. Shorthand for New(src).ScanAll().
func Tokenize(src string) []Token {
	return New(src).ScanAll()
}

// ScanAll consumes the remaining source and returns its tokens in order,
// terminated by an EOF token recorded at the position scanning stopped.
func (l *Lexer) ScanAll() []Token {
	var tokens []Token
	for !l.atEnd() {
		if tok, ok := l.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	return append(tokens, Token{Kind: KindEOF, Text: KindEOF.String(), Line: l.line, Column: l.col})
}

// scanToken performs one scanning step: it consumes at least one character
// and reports the token it produced, if any. Whitespace and comments consume
// without producing.
//
// Classification is ordered: whitespace, comment, the two-character "!=",
// the single-character table, identifier/keyword, numeric literal, and
// finally the KindUnknown fallback, which is what makes scanning total.
func (l *Lexer) scanToken() (Token, bool) {
	start, startLine, startCol := l.pos, l.line, l.col
	r := l.next()

	if unicode.IsSpace(r) {
		return Token{}, false
	}

	if r == '#' {
		// Comment through end of line. The newline itself is left to be
		// consumed as whitespace so line accounting stays in one place.
		for !l.atEnd() && l.peek() != '\n' {
			l.next()
		}
		return Token{}, false
	}

	if r == '!' && l.peek() == '=' {
		l.next()
		return l.token(KindNotEqual, start, startLine, startCol), true
	}

	if kind, ok := singleCharKinds[r]; ok {
		return l.token(kind, start, startLine, startCol), true
	}

	if r == '_' || unicode.IsLetter(r) {
		for !l.atEnd() && isIdentRune(l.peek()) {
			l.next()
		}
		tok := l.token(KindIdentifier, start, startLine, startCol)
		tok.Kind = LookupIdent(tok.Text)
		return tok, true
	}

	if isDigit(r) || (r == '.' && isDigit(l.peek())) {
		return l.scanNumber(r, start, startLine, startCol), true
	}

	return l.token(KindUnknown, start, startLine, startCol), true
}

// scanNumber consumes the remainder of a numeric literal whose first
// character, first, has already been consumed. The literal takes ASCII
// digits and at most one '.'; a second '.' ends it. A literal is a FLOAT
// exactly when it contains a '.'.
func (l *Lexer) scanNumber(first rune, start, startLine, startCol int) Token {
	hasDot := first == '.'
scan:
	for !l.atEnd() {
		switch p := l.peek(); {
		case isDigit(p):
			l.next()
		case p == '.' && !hasDot:
			hasDot = true
			l.next()
		default:
			break scan
		}
	}
	kind := KindInteger
	if hasDot {
		kind = KindFloat
	}
	return l.token(kind, start, startLine, startCol)
}

// token builds a Token of the given kind whose lexeme is the source consumed
// since start. Slicing the source, rather than re-encoding scanned runes,
// keeps lexemes byte-exact even for invalid UTF-8.
func (l *Lexer) token(kind Kind, start, line, col int) Token {
	return Token{Kind: kind, Text: l.src[start:l.pos], Line: line, Column: col}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// next consumes and returns the next character. Each invalid UTF-8 byte
// comes back as one utf8.RuneError. Must not be called at end of input.
func (l *Lexer) next() rune {
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

// peek returns the next unconsumed character without advancing, or 0 at end
// of input.
func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	return r
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
