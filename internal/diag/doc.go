// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// Diagnostic is the central record: severity, a numeric Code with a stable
// string form (LEX1004, SYN2001, ...), a short message, the primary span and
// optional notes and fixes. Syntax errors produced by the parser additionally
// carry Expected/Found node descriptors.
//
// Phases emit through a Reporter; BagReporter collects into a Bag that keeps
// detection order and supports Sort and Dedup. Package diag does no
// formatting or IO; rendering lives in internal/diagfmt.
package diag
