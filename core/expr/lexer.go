package expr

import (
	"strconv"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokPlus
	tokMinus
	tokStar
	tokPow
	tokSlash
	tokPercent
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	num  float64
	text string
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(input) {
		ch := input[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case isDigit(ch) || ch == '.':
			start := i
			end, err := scanNumber(input, i)
			if err != nil {
				return nil, err
			}
			text := input[start:end]
			n, perr := strconv.ParseFloat(text, 64)
			if perr != nil {
				return nil, syntaxErr(start, "invalid number %q", text)
			}
			tokens = append(tokens, token{kind: tokNumber, pos: start, num: n, text: text})
			i = end
		case ch == '*' && i+1 < len(input) && input[i+1] == '*':
			tokens = append(tokens, token{kind: tokPow, pos: i, text: "**"})
			i += 2
		default:
			kind, ok := operators[ch]
			if !ok {
				return nil, syntaxErr(i, "unexpected character %q at position %d", ch, i)
			}
			tokens = append(tokens, token{kind: kind, pos: i, text: string(ch)})
			i++
		}
	}
	tokens = append(tokens, token{kind: tokEOF, pos: len(input)})
	return tokens, nil
}

var operators = map[byte]tokenKind{
	'+': tokPlus,
	'-': tokMinus,
	'*': tokStar,
	'/': tokSlash,
	'%': tokPercent,
	'(': tokLParen,
	')': tokRParen,
}

// scanNumber returns the end offset of the numeric literal starting at i.
// Accepted forms: 12, 1.5, .5, 3., 1e3, 2.5E-4.
func scanNumber(input string, i int) (int, error) {
	start := i
	digits := 0
	for i < len(input) && isDigit(input[i]) {
		i++
		digits++
	}
	if i < len(input) && input[i] == '.' {
		i++
		for i < len(input) && isDigit(input[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, syntaxErr(start, "unexpected token '.' at position %d", start)
	}
	if i < len(input) && (input[i] == 'e' || input[i] == 'E') {
		j := i + 1
		if j < len(input) && (input[j] == '+' || input[j] == '-') {
			j++
		}
		expDigits := 0
		for j < len(input) && isDigit(input[j]) {
			j++
			expDigits++
		}
		if expDigits == 0 {
			return 0, syntaxErr(i, "invalid or unexpected token at position %d", i)
		}
		i = j
	}
	if i < len(input) && (isDigit(input[i]) || input[i] == '.' || isLetter(input[i])) {
		return 0, syntaxErr(i, "invalid or unexpected token at position %d", i)
	}
	return i, nil
}

func isDigit(ch byte) bool  { return ch >= '0' && ch <= '9' }
func isLetter(ch byte) bool { return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_' }
