// Package expr evaluates small arithmetic expressions such as "2+2" or "(1.5 * 4) ** 2".
//
// It backs the /vuln-eval route. The route exists so static analysers have an
// evaluation sink to report, but the evaluator itself only understands numbers
// and arithmetic operators. Errors are *Error values whose text reads like
// "SyntaxError: unexpected token '+' at position 2".
package expr
