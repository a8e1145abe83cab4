// Package token defines lexical token kinds for the cee front end.
// Invariants:
//   - RawToken comes from the scanner; Token is what the refiner hands to the parser.
//   - Token.Span covers the source characters of the token; for a synthetic
//     Semicolon it is the span of the newline that produced it.
//   - Keywords, punctuation and the result arrow '<-' are recognised through one
//     immutable table (Lookup); everything else stays Ident or Operator.
//   - String and Char tokens carry the escape-decoded value in Text.
package token
