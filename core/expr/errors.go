package expr

import "fmt"

// Kind classifies evaluation failures.
type Kind string

const (
	// KindSyntax marks input that is not a valid expression.
	KindSyntax Kind = "SyntaxError"
	// KindRange marks a well-formed expression whose value cannot be computed.
	KindRange Kind = "RangeError"
)

// Error is returned for every failed evaluation.
type Error struct {
	Kind Kind
	Msg  string
	// Pos is the byte offset in the input, or -1 when not tied to a position.
	Pos int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func syntaxErr(pos int, format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func rangeErr(pos int, format string, args ...any) *Error {
	return &Error{Kind: KindRange, Msg: fmt.Sprintf(format, args...), Pos: pos}
}
