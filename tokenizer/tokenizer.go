package tokenizer

import (
	"fmt"
	"iter"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// Tokenizer splits an RPN expression into single-character tokens.
type Tokenizer struct {
	input string
}

// NewTokenizer creates a new Tokenizer
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokens returns an iterator of tokens.
// Unrecognised characters are yielded as INVALID tokens together with an error;
// iteration continues unless the consumer stops it.
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		for i := 0; i < len(t.input); i++ {
			token := Classify(t.input[i], i)

			var err error
			if token.Type == INVALID {
				err = fmt.Errorf("%w '%c' at position %d", ErrUnexpectedCharacter, token.Char, i+1)
			}

			if !yield(token, err) {
				return
			}
		}
	}
}

// AllTokens returns all tokens, stopping at the first invalid character.
func (t *Tokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, len(t.input))

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Tokenize is a convenience wrapper around NewTokenizer(input).AllTokens().
func Tokenize(input string) ([]Token, error) {
	return NewTokenizer(input).AllTokens()
}

// Classify determines the token for a single character at pos.
func Classify(c byte, pos int) Token {
	token := Token{Char: c, Position: pos}

	switch {
	case c >= 'a' && c <= 'z':
		token.Type = VARIABLE
		token.Index = int(c - 'a')
	case c == '0' || c == '1':
		token.Type = LITERAL
		token.Value = int(c - '0')
	default:
		if op, ok := LookupOperator(c); ok {
			token.Type = OPERATOR
			token.Operator = op
		}
	}

	return token
}
