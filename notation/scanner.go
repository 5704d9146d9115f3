package notation

import "strings"

// Scanner is a single-character lookahead cursor over a trimmed expression.
type Scanner struct {
	chars  []rune
	cursor int
	input  string
}

// NewScanner trims surrounding whitespace from s and positions the cursor on
// its first character.
func NewScanner(s string) *Scanner {
	s = strings.TrimSpace(s)
	return &Scanner{chars: []rune(s), input: s}
}

// Peek returns the character under the cursor without consuming it.
// ok is false at end of input.
func (s *Scanner) Peek() (r rune, ok bool) {
	if s.cursor >= len(s.chars) {
		return 0, false
	}
	return s.chars[s.cursor], true
}

// Next consumes and returns the character under the cursor.
func (s *Scanner) Next() (r rune, ok bool) {
	r, ok = s.Peek()
	if ok {
		s.cursor++
	}
	return r, ok
}

// ConsumeIf advances past the current character only when it equals want.
func (s *Scanner) ConsumeIf(want rune) bool {
	r, ok := s.Peek()
	if !ok || r != want {
		return false
	}
	s.cursor++
	return true
}

// AtEnd reports whether a non-empty input has been fully consumed.
// An empty input is never at its end.
func (s *Scanner) AtEnd() bool {
	return len(s.chars) != 0 && s.cursor == len(s.chars)
}

// Pos returns the rune offset of the cursor.
func (s *Scanner) Pos() int {
	return s.cursor
}

// Input returns the trimmed text being scanned.
func (s *Scanner) Input() string {
	return s.input
}

// errorHere builds the error for an unexpected character, or for running out
// of input, at the cursor.
func (s *Scanner) errorHere() *ParseError {
	r, ok := s.Peek()
	if !ok {
		return &ParseError{Kind: EndOfLine, Pos: s.cursor, Input: s.input}
	}
	return &ParseError{Kind: InvalidToken, Char: r, Pos: s.cursor, Input: s.input}
}
