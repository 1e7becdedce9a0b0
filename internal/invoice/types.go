// Package invoice turns one segmented invoice block into header fields and
// an ordered list of line items.
package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Header carries the invoice-level fields shared by every row of the
// invoice. InvoiceDate is nil when no date in the block parses with high
// confidence; the pipeline never guesses a date.
type Header struct {
	AccountID   string
	InvoiceID   string
	InvoiceDate *time.Time
}

// LineItem is one parsed row of the item table. Amount is always derived
// from Rate and Quantity, never read from the source text, so
// Amount == Rate * Quantity holds for every item by construction.
type LineItem struct {
	ItemCode    string // optional, empty when the row carried no SKU
	Description string
	Quantity    int64
	Rate        decimal.Decimal
	Amount      decimal.Decimal
	FreeGoods   bool // description matched the free-goods phrase
}

// Invoice is the parsed form of one block.
type Invoice struct {
	Header Header
	Items  []LineItem
}
