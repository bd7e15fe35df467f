package lib

import (
	"errors"
	"time"
)

const TOKEN_BUF_SIZE = 100

var TokenReadTimeout = 1 * time.Second

type peekResult struct {
	tok  Token
	done bool
	err  error
}

// Stream delivers tokens one at a time while the lexer runs in a background
// goroutine. A scan error is delivered in source order: every token emitted
// before the offending character comes through Next first, then Next reports
// done with the error.
type Stream struct {
	tokChan      chan Token
	doneChan     chan error
	peeked       *peekResult
	doneReceived bool
	doneErr      error
}

var _ TokenReader = (*Stream)(nil)

// NewStream starts lexing source and returns a reader over its tokens.
func NewStream(source string) *Stream {
	s := newStream()
	go func() {
		s.doneChan <- lex(source, s.write)
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		tokChan:  make(chan Token, TOKEN_BUF_SIZE),
		doneChan: make(chan error, 1),
		peeked:   nil,
	}
}

func (s *Stream) write(tok Token) {
	s.tokChan <- tok
}

func (s *Stream) Next() (tok Token, done bool, err error) {
	if s.peeked != nil {
		res := s.peeked
		s.peeked = nil
		return res.tok, res.done, res.err
	}

	if s.doneReceived {
		// The done signal arrives only after every write, so anything still
		// buffered precedes the terminal condition.
		select {
		case tok := <-s.tokChan:
			return tok, false, nil
		default:
			return Token{}, true, s.doneErr
		}
	}

	select {
	case tok := <-s.tokChan:
		return tok, false, nil
	case err := <-s.doneChan:
		s.doneReceived = true
		s.doneErr = err
		return s.Next()
	case <-time.After(TokenReadTimeout):
		return Token{}, false, errors.New("timed out waiting for next token")
	}
}

func (s *Stream) Peek() (Token, bool, error) {
	if s.peeked != nil {
		return s.peeked.tok, s.peeked.done, s.peeked.err
	}
	tok, done, err := s.Next()
	s.peeked = &peekResult{tok: tok, done: done, err: err}
	return tok, done, err
}
