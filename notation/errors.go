package notation

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes the ways a range expression can fail to parse.
type ErrorKind uint8

const (
	// InvalidToken means the character at the cursor matches no production.
	InvalidToken ErrorKind = iota + 1
	// EndOfLine means input ran out where another token was required.
	EndOfLine
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidToken:
		return "invalid token"
	case EndOfLine:
		return "end of line"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against a *ParseError.
var (
	ErrInvalidToken = errors.New("unexpected token")
	ErrEndOfLine    = errors.New("unexpected end of line")
)

// ParseError reports where and why a range expression was rejected.
type ParseError struct {
	Kind  ErrorKind
	Char  rune   // offending character, zero for EndOfLine
	Pos   int    // rune offset into the trimmed input
	Input string // trimmed input
}

func (e *ParseError) Error() string {
	if e.Kind == EndOfLine {
		return ErrEndOfLine.Error()
	}
	return fmt.Sprintf("%s %q at position %d", ErrInvalidToken, e.Char, e.Pos)
}

// Is matches the package sentinels by kind.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrInvalidToken:
		return e.Kind == InvalidToken
	case ErrEndOfLine:
		return e.Kind == EndOfLine
	}
	return false
}
