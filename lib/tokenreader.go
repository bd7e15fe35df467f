package lib

// TokenReader yields tokens in source order. done is true once the source is
// exhausted; a non-nil err alongside done reports the scan failure that ended
// the stream. A consumer (typically a parser) may hold one token of lookahead
// via Peek without consuming it.
type TokenReader interface {
	Next() (tok Token, done bool, err error)
	Peek() (tok Token, done bool, err error)
}
