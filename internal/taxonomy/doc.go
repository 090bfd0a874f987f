// Package taxonomy recovers the lexical token taxonomy from a token
// definition source file.
//
// The scanner is a line-oriented state machine with two live states:
//
//   - outside: lines are ignored until one declares the TokenKind enumeration;
//   - inside: each line is tested, in priority order, for the closing brace,
//     a section header comment, an exact-text annotation and a variant.
//
// Section attribution is sticky: a header applies to every following variant
// until the next header. Variants seen before any header count towards the
// total only. Nothing here validates the host language; lines the scanner
// does not understand are skipped and reported to an optional diag.Reporter.
package taxonomy
