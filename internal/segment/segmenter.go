// Package segment splits raw document text into per-invoice blocks.
// A block begins at an account anchor immediately followed by an invoice
// number anchor and runs to the next anchor pair or end of text.
package segment

import (
	"iter"
	"regexp"
)

// anchorPattern matches the "Account: <digits> ... Invoice#: <alnum>" pair
// that opens every invoice in the weekly distributor statements. Whitespace
// between label and value varies by extractor, so both gaps are loose.
var anchorPattern = regexp.MustCompile(`Account:\s*(\d+)\s*Invoice#:\s*([0-9A-Z]+)`)

// Block is one invoice-sized span of source text. It is consumed
// immediately by the line-item extractor and never persisted.
type Block struct {
	AccountID string
	InvoiceID string
	Body      string // text between this anchor pair and the next
}

// Blocks returns a lazy, restartable sequence of invoice blocks found in
// text. Text with no anchors yields an empty sequence; callers treat zero
// blocks as "no invoices in this document", not as an error. Malformed
// anchors simply fail to match and fall into the preceding block's body.
func Blocks(text string) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		// The cursor is local so every invocation rescans from the start
		// of the original input.
		remaining := text
		loc := anchorPattern.FindStringSubmatchIndex(remaining)
		for loc != nil {
			account := remaining[loc[2]:loc[3]]
			invoice := remaining[loc[4]:loc[5]]
			rest := remaining[loc[1]:]

			next := anchorPattern.FindStringSubmatchIndex(rest)
			body := rest
			if next != nil {
				body = rest[:next[0]]
			}
			if !yield(Block{AccountID: account, InvoiceID: invoice, Body: body}) {
				return
			}
			remaining = rest
			loc = next
		}
	}
}

// Count reports how many invoice blocks the text contains without
// materializing their bodies. The pipeline uses it to flag documents
// that carry no invoices at all.
func Count(text string) int {
	return len(anchorPattern.FindAllStringIndex(text, -1))
}
