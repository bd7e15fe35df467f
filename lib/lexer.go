package lib

import (
	"fmt"
	"strconv"
)

// UnexpectedCharError reports a character the scanner has no rule for. Pos is
// the rune offset of the character in the source.
type UnexpectedCharError struct {
	Ch  rune
	Pos int
}

func (e *UnexpectedCharError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Ch, e.Pos)
}

var keywords = map[string]TokenType{
	"if":   TokenTypeIf,
	"else": TokenTypeElse,
}

// Tokenize scans source and returns its tokens in source order. Scanning
// stops at the first character with no lexical rule and reports it as an
// UnexpectedCharError rather than silently dropping the rest of the input.
func Tokenize(source string) ([]Token, error) {
	tokens := []Token{}
	err := lex(source, func(tok Token) {
		tokens = append(tokens, tok)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func lex(source string, emit func(Token)) error {
	l := newLexer(source, emit)
	return l.scan()
}

type lexer struct {
	source       []rune
	length       int
	current      int
	emitCallback func(Token)
}

func newLexer(source string, emit func(Token)) *lexer {
	runes := []rune(source)
	return &lexer{
		source:       runes,
		length:       len(runes),
		current:      0,
		emitCallback: emit,
	}
}

func (l *lexer) emit(tok Token) {
	l.emitCallback(tok)
}

// peek inspects the next unconsumed character without advancing the cursor.
func (l *lexer) peek() (rune, bool) {
	if l.current >= l.length {
		return 0, false
	}
	return l.source[l.current], true
}

// advance consumes one character. The cursor only ever moves forward.
func (l *lexer) advance() (rune, bool) {
	ch, ok := l.peek()
	if ok {
		l.current++
	}
	return ch, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	return nil
}

func (l *lexer) next() (bool, error) {
	pos := l.current
	ch, ok := l.advance()
	if !ok {
		return false, nil
	}

	switch ch {
	case '+':
		l.emit(Token{Type: TokenTypePlus})
	case '-':
		l.emit(Token{Type: TokenTypeMinus})
	case '*':
		l.emit(Token{Type: TokenTypeAsterisk})
	case '/':
		l.emit(Token{Type: TokenTypeSlash})
	case '(':
		l.emit(Token{Type: TokenTypeLParen})
	case ')':
		l.emit(Token{Type: TokenTypeRParen})
	case '{':
		l.emit(Token{Type: TokenTypeLCurly})
	case '}':
		l.emit(Token{Type: TokenTypeRCurly})
	case '!':
		l.emit(Token{Type: TokenTypeNot})
	case '=':
		if l.match('=') {
			l.emit(Token{Type: TokenTypeEqual})
		} else {
			l.emit(Token{Type: TokenTypeAssign})
		}
	case '<':
		if l.match('=') {
			l.emit(Token{Type: TokenTypeLessOrEqual})
		} else {
			l.emit(Token{Type: TokenTypeLess})
		}
	case '>':
		if l.match('=') {
			l.emit(Token{Type: TokenTypeGreaterOrEqual})
		} else {
			l.emit(Token{Type: TokenTypeGreater})
		}
	case '&':
		if !l.match('&') {
			return false, &UnexpectedCharError{Ch: ch, Pos: pos}
		}
		l.emit(Token{Type: TokenTypeAnd})
	case '|':
		if !l.match('|') {
			return false, &UnexpectedCharError{Ch: ch, Pos: pos}
		}
		l.emit(Token{Type: TokenTypeOr})
	case ' ':
		// single spaces are the only whitespace the language knows
	default:
		if isDigit(ch) {
			return true, l.scanNumber(pos)
		}
		if isLower(ch) {
			l.scanIdentifier(pos)
			return true, nil
		}
		return false, &UnexpectedCharError{Ch: ch, Pos: pos}
	}

	return true, nil
}

// match consumes the next character only if it equals expected.
func (l *lexer) match(expected rune) bool {
	ch, ok := l.peek()
	if !ok || ch != expected {
		return false
	}
	l.current++
	return true
}

// scanNumber greedily consumes the digit run starting at start (the first
// digit is already consumed) and emits one Number token.
func (l *lexer) scanNumber(start int) error {
	for {
		ch, ok := l.peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
	}

	literal := string(l.source[start:l.current])
	value, err := strconv.Atoi(literal)
	if err != nil {
		return fmt.Errorf("number %s at position %d out of range", literal, start)
	}

	l.emit(Token{Type: TokenTypeNumber, Number: value})
	return nil
}

// scanIdentifier greedily consumes the alphanumeric run starting at start and
// emits a keyword token if the full name is reserved, otherwise an
// Identifier. Greedy accumulation before lookup means "ifx" is a plain
// identifier, never If followed by "x".
func (l *lexer) scanIdentifier(start int) {
	for {
		ch, ok := l.peek()
		if !ok || (!isLower(ch) && !isDigit(ch)) {
			break
		}
		l.advance()
	}

	name := string(l.source[start:l.current])
	if keyword, ok := keywords[name]; ok {
		l.emit(Token{Type: keyword})
		return
	}
	l.emit(Token{Type: TokenTypeIdentifier, Name: name})
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLower(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}
