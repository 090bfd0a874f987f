// Package precedence recovers a Pratt parser's binding power table from the
// bodies of two routines in the token definition file.
//
// The scanner switches between three states on fixed marker phrases:
//
//	idle   --"fn infix_binding_power"-->  infix
//	any    --"fn prefix_binding_power"--> prefix
//
// There is no exit marker: entering prefix leaves infix implicitly and the
// prefix state lasts until end of input. In infix state each match arm of the
// form `A | Self::B => Some((l, r))` yields one InfixEntry; in prefix state an
// arm `A | B => bp` yields one PrefixEntry. Catch-all arms and arms whose
// numbers cannot be captured are skipped and reported, never fatal.
//
// The scanner assumes a single catch-all arm per routine and the fixed
// two-integer / one-integer capture shapes; arms with other shapes are dropped.
package precedence
