package cli

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// quoteState is the tokenizer's position relative to quote characters
type quoteState int

const (
	unquoted quoteState = iota
	singleQuoted
	doubleQuoted
)

// Tokenize splits a shell-like command string into arguments.
//
// Whitespace outside quotes separates tokens. Single and double quotes
// group characters literally and are not part of the token; the other
// quote character is kept as-is inside them. Adjacent segments join into
// one token, so `"hello"world` yields `helloworld`. An unterminated quote
// is not an error: whatever was collected still forms the last token.
//
// There is no escaping, globbing or variable expansion.
func Tokenize(text string) []string {
	var (
		tokens  []string
		current strings.Builder
		state   = unquoted
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	// Walk by rune for whitespace detection but copy the original bytes, so
	// arguments that are not valid UTF-8 reach the command unchanged.
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		chunk := text[i : i+size]
		i += size

		switch state {
		case unquoted:
			switch {
			case r == '\'':
				state = singleQuoted
			case r == '"':
				state = doubleQuoted
			case r != utf8.RuneError && unicode.IsSpace(r):
				flush()
			default:
				current.WriteString(chunk)
			}
		case singleQuoted:
			if r == '\'' {
				state = unquoted
			} else {
				current.WriteString(chunk)
			}
		case doubleQuoted:
			if r == '"' {
				state = unquoted
			} else {
				current.WriteString(chunk)
			}
		}
	}
	flush()

	return tokens
}
