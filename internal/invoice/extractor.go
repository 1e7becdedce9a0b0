package invoice

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rmartins/invoice2ledger/internal/segment"
)

var (
	// itemSection bounds the item table: from the column banner to the
	// "Cases:" totals line or end of block.
	itemSection = regexp.MustCompile(`(?is)ITEM#\s*DESCRIPTION\s*QTY\s*-+\s*(.*?)\s*(?:Cases:|\z)`)

	// itemRow captures one table row: optional SKU, free-text description,
	// optional printed rate ("@16.50" or "$16.50" or bare "16.50"), and an
	// optional trailing quantity with or without a QTY label. The
	// description is non-greedy so trailing numeric fields win the tie.
	itemRow = regexp.MustCompile(`^(?:((?:[A-Z]{2,5}\d{2,}|\d{3,})[A-Z0-9]*)\s+)?(.+?)(?:\s+[@$]?(\d+\.\d{1,2}))?(?:\s+(?:QTY\s+)?(\d+))?$`)

	freeGoodsBanner = regexp.MustCompile(`(?i)FREE\s+GOODS`)

	// noiseRow matches separator lines and column rules that are not data.
	noiseRow = regexp.MustCompile(`^[-=*\s.]*$`)
)

// Parser extracts header fields and line items from invoice blocks. It is
// stateless across calls; one instance serves a whole run.
type Parser struct {
	freeGoodsPhrase string // upper-cased marker phrase
	logger          *slog.Logger
}

// NewParser returns a block parser. phrase is matched case-insensitively
// inside descriptions to flag free-goods rows.
func NewParser(phrase string, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		freeGoodsPhrase: strings.ToUpper(strings.TrimSpace(phrase)),
		logger:          logger,
	}
}

// ParseBlock extracts one invoice from a segmented block. Rows that do not
// yield at least a description are dropped with a warning; the batch never
// aborts over a single bad row.
func (p *Parser) ParseBlock(b segment.Block) Invoice {
	inv := Invoice{
		Header: Header{
			AccountID:   b.AccountID,
			InvoiceID:   b.InvoiceID,
			InvoiceDate: findDate(b.Body),
		},
	}

	if m := itemSection.FindStringSubmatch(b.Body); m != nil {
		for _, raw := range strings.Split(m[1], "\n") {
			raw = strings.TrimSpace(raw)
			if raw == "" || noiseRow.MatchString(raw) {
				continue
			}
			item, ok := p.parseRow(raw)
			if !ok {
				p.logger.Warn("dropping unparseable item row",
					"invoice", b.InvoiceID, "row", raw)
				continue
			}
			inv.Items = append(inv.Items, item)
		}
	}

	// Blocks that carry a free-goods banner but no parseable table still
	// represent one no-charge shipment (original statement quirk).
	if len(inv.Items) == 0 && freeGoodsBanner.MatchString(b.Body) {
		inv.Items = append(inv.Items, p.buildItem("", "FREE GOODS - NO CHARGE TO CUSTOMER", 1, decimal.Zero))
	}

	return inv
}

// parseRow parses a single candidate row. The bool is false when the row
// has no usable description.
func (p *Parser) parseRow(raw string) (LineItem, bool) {
	m := itemRow.FindStringSubmatch(raw)
	if m == nil {
		return LineItem{}, false
	}

	code := m[1]
	desc := strings.TrimSpace(m[2])
	if desc == "" {
		return LineItem{}, false
	}

	qty := int64(1)
	if m[4] != "" {
		if n, err := decimal.NewFromString(m[4]); err == nil {
			qty = n.IntPart()
		}
	}
	if qty <= 0 {
		qty = 1
	}

	rate := decimal.Zero
	if m[3] != "" {
		if r, err := decimal.NewFromString(m[3]); err == nil {
			rate = r
		}
	}

	return p.buildItem(code, desc, qty, rate), true
}

// buildItem finalizes a line item: free-goods rows get their rate forced
// to zero regardless of any printed rate, and the amount is derived.
func (p *Parser) buildItem(code, desc string, qty int64, rate decimal.Decimal) LineItem {
	free := p.freeGoodsPhrase != "" &&
		strings.Contains(strings.ToUpper(desc), p.freeGoodsPhrase)
	if free {
		rate = decimal.Zero
	}
	return LineItem{
		ItemCode:    code,
		Description: desc,
		Quantity:    qty,
		Rate:        rate,
		Amount:      rate.Mul(decimal.NewFromInt(qty)),
		FreeGoods:   free,
	}
}
