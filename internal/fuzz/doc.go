// Package fuzztests houses Go fuzz harnesses for the line scanners and the
// block splicer. They guard against panics on arbitrary input and check the
// invariants that must hold for any text: attributed variants never exceed
// the total, keywords stay sorted and unique, infix output is ordered, and
// splicing is idempotent.
//
// Run one with:
//
//	go test ./internal/fuzz -fuzz=FuzzTaxonomyScan
package fuzztests
