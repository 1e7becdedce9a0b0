package normalize

import (
	"strconv"

	"github.com/rmartins/invoice2ledger/internal/glmap"
	"github.com/rmartins/invoice2ledger/internal/invoice"
)

// Canonical target column names, as exported by the accounting system's
// vendor-bill template. The headers reference file decides which of these
// actually appear in the output and in what order.
const (
	colTranID        = "tranId"
	colPostingPeriod = "postingPeriodRef"
	colVendor        = "vendorRef"
	colTranDate      = "tranDate"
	colPayable       = "payableAccountRef"
	colTerms         = "termsRef"
	colMemo          = "memo"
	colAccount       = "accountRef"
	colItemRef       = "purchaseItemline_itemRef"
	colQuantity      = "purchaseItemline_quantity"
	colSerials       = "purchaseItemline_serialNumbers"
	colUnits         = "purchaseitemline_unitsRef"
	colRate          = "purchaseItemLine_rate"
	colAmount        = "purchaseItemLine_amount"
	colItemMemo      = "purchaseItemLine_memo"
	colDepartment    = "purchaseItemLine_departmentRef"
	colClass         = "purchaseItemLine_classRef"
	colLocation      = "purchaseItemLine_locationRef"
	colCustomer      = "purchaseItemLine_customerRef"
	colIsBillable    = "purchaseItemLine_isBillable"
	colTaxCode       = "purchaseItemLine_taxCodeRef"
	colTaxAmount     = "purchaseItemLine_taxCodeAmount"
)

// Date renderings used by the accounting import.
const (
	postingPeriodLayout = "Jan 2006"
	tranDateLayout      = "01/02/2006"
)

// Normalizer builds NormalizedRows for a run. Vendor and terms are
// constant per batch and stamped onto every row.
type Normalizer struct {
	vendor string
	terms  string
}

// NewNormalizer returns a normalizer stamping the given vendor and terms.
func NewNormalizer(vendor, terms string) *Normalizer {
	return &Normalizer{vendor: vendor, terms: terms}
}

// Normalize derives exactly one row from a line item plus its invoice
// header and GL classification. Date columns go null when the source date
// did not parse; the GL code lands in the repurposed class column (the
// target schema has no dedicated GL column), null when unmapped.
func (n *Normalizer) Normalize(hdr invoice.Header, item invoice.LineItem, cls glmap.Classification) Row {
	row := Row{
		colTranID:     String(hdr.InvoiceID),
		colVendor:     String(n.vendor),
		colTerms:      String(n.terms),
		colAccount:    String(hdr.AccountID),
		colQuantity:   String(strconv.FormatInt(item.Quantity, 10)),
		colRate:       String(item.Rate.StringFixed(2)),
		colAmount:     String(item.Amount.StringFixed(2)),
		colItemMemo:   String(item.Description),
		colIsBillable: String("false"),
		colTaxAmount:  String("0.00"),

		colPayable:    Null(),
		colMemo:       Null(),
		colSerials:    Null(),
		colDepartment: Null(),
		colLocation:   Null(),
		colCustomer:   Null(),
		colTaxCode:    Null(),
	}

	if hdr.InvoiceDate != nil {
		row[colPostingPeriod] = String(hdr.InvoiceDate.Format(postingPeriodLayout))
		row[colTranDate] = String(hdr.InvoiceDate.Format(tranDateLayout))
	} else {
		row[colPostingPeriod] = Null()
		row[colTranDate] = Null()
	}

	if item.ItemCode != "" {
		row[colItemRef] = String(item.ItemCode)
		row[colUnits] = String("CASE")
	} else {
		row[colItemRef] = Null()
		row[colUnits] = Null()
	}

	if cls.Code != "" {
		row[colClass] = String(cls.Code)
	} else {
		row[colClass] = Null()
	}

	return row
}
