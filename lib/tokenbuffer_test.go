package lib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStreamNext(t *testing.T) {
	s := newStream()

	s.write(Token{Type: TokenTypeIdentifier, Name: "hello"})

	tok, done, err := s.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, TokenTypeIdentifier, tok.Type)
	require.Equal(t, "hello", tok.Name)
}

func TestStreamNextDone(t *testing.T) {
	s := newStream()

	s.write(Token{Type: TokenTypeIdentifier, Name: "hello"})
	s.doneChan <- nil

	tok, done, err := s.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, TokenTypeIdentifier, tok.Type)
	require.Equal(t, "hello", tok.Name)

	_, done, err = s.Next()
	require.NoError(t, err)
	require.True(t, done)
}

func TestStreamNextDoneMulti(t *testing.T) {
	s := newStream()

	s.write(Token{Type: TokenTypeNumber, Number: 42})
	s.doneChan <- nil

	tok, done, err := s.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, TokenTypeNumber, tok.Type)
	require.Equal(t, 42, tok.Number)

	_, done, err = s.Next()
	require.NoError(t, err)
	require.True(t, done)

	_, done, err = s.Next()
	require.NoError(t, err)
	require.True(t, done)

	_, done, err = s.Next()
	require.NoError(t, err)
	require.True(t, done)
}

func TestStreamNextTimeout(t *testing.T) {
	oldTimeout := TokenReadTimeout
	TokenReadTimeout = 1 * time.Microsecond
	defer func() {
		TokenReadTimeout = oldTimeout
	}()

	s := newStream()
	_, done, err := s.Next()
	require.Error(t, err)
	require.False(t, done)
}

func TestStreamPeek(t *testing.T) {
	s := newStream()

	s.write(Token{Type: TokenTypeIdentifier, Name: "hello"})
	s.doneChan <- nil

	tok, done, err := s.Peek()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, "hello", tok.Name)

	tok, done, err = s.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, "hello", tok.Name)

	_, done, err = s.Next()
	require.NoError(t, err)
	require.True(t, done)
}

func TestStreamFromSource(t *testing.T) {
	s := NewStream("if x == 1")

	expected := []TokenType{
		TokenTypeIf,
		TokenTypeIdentifier,
		TokenTypeEqual,
		TokenTypeNumber,
	}
	for _, typ := range expected {
		tok, done, err := s.Next()
		require.NoError(t, err)
		require.False(t, done)
		require.Equal(t, typ, tok.Type)
	}

	_, done, err := s.Next()
	require.NoError(t, err)
	require.True(t, done)
}

func TestStreamErrorAfterTokens(t *testing.T) {
	s := NewStream("x & y")

	tok, done, err := s.Next()
	require.NoError(t, err)
	require.False(t, done)
	require.Equal(t, TokenTypeIdentifier, tok.Type)
	require.Equal(t, "x", tok.Name)

	_, done, err = s.Next()
	require.True(t, done)
	require.Error(t, err)
}
