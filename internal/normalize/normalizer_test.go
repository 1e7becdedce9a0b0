package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmartins/invoice2ledger/internal/glmap"
	"github.com/rmartins/invoice2ledger/internal/invoice"
)

func sampleItem() invoice.LineItem {
	rate := decimal.RequireFromString("16.50")
	return invoice.LineItem{
		ItemCode:    "731869",
		Description: "LF Lemon Seltzer 24pk",
		Quantity:    12,
		Rate:        rate,
		Amount:      rate.Mul(decimal.NewFromInt(12)),
	}
}

func TestNormalize(t *testing.T) {
	n := NewNormalizer("Big Geyser Inc.", "CHAIN 30")

	t.Run("fully resolved row", func(t *testing.T) {
		date := time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC)
		hdr := invoice.Header{AccountID: "1234", InvoiceID: "990011", InvoiceDate: &date}
		row := n.Normalize(hdr, sampleItem(), glmap.Classification{Category: "Rebates", Code: "4809"})

		assert.Equal(t, String("990011"), row["tranId"])
		assert.Equal(t, String("1234"), row["accountRef"])
		assert.Equal(t, String("Aug 2025"), row["postingPeriodRef"])
		assert.Equal(t, String("08/27/2025"), row["tranDate"])
		assert.Equal(t, String("Big Geyser Inc."), row["vendorRef"])
		assert.Equal(t, String("CHAIN 30"), row["termsRef"])
		assert.Equal(t, String("731869"), row["purchaseItemline_itemRef"])
		assert.Equal(t, String("CASE"), row["purchaseitemline_unitsRef"])
		assert.Equal(t, String("12"), row["purchaseItemline_quantity"])
		assert.Equal(t, String("16.50"), row["purchaseItemLine_rate"])
		assert.Equal(t, String("198.00"), row["purchaseItemLine_amount"])
		assert.Equal(t, String("LF Lemon Seltzer 24pk"), row["purchaseItemLine_memo"])
		assert.Equal(t, String("4809"), row["purchaseItemLine_classRef"])
		assert.Equal(t, String("false"), row["purchaseItemLine_isBillable"])
		assert.Equal(t, String("0.00"), row["purchaseItemLine_taxCodeAmount"])
	})

	t.Run("unparseable date degrades to null, not empty string", func(t *testing.T) {
		hdr := invoice.Header{AccountID: "1234", InvoiceID: "990011"}
		row := n.Normalize(hdr, sampleItem(), glmap.Unmapped())

		assert.Equal(t, Null(), row["postingPeriodRef"])
		assert.Equal(t, Null(), row["tranDate"])
		assert.False(t, row["tranDate"].Valid)
	})

	t.Run("unmapped classification nulls the class column", func(t *testing.T) {
		hdr := invoice.Header{AccountID: "1234", InvoiceID: "990011"}
		row := n.Normalize(hdr, sampleItem(), glmap.Unmapped())
		assert.Equal(t, Null(), row["purchaseItemLine_classRef"])
	})

	t.Run("missing item code nulls itemRef and units", func(t *testing.T) {
		item := sampleItem()
		item.ItemCode = ""
		row := n.Normalize(invoice.Header{InvoiceID: "1"}, item, glmap.Unmapped())
		assert.Equal(t, Null(), row["purchaseItemline_itemRef"])
		assert.Equal(t, Null(), row["purchaseitemline_unitsRef"])
	})

	t.Run("every canonical column is explicitly set", func(t *testing.T) {
		row := n.Normalize(invoice.Header{InvoiceID: "1"}, sampleItem(), glmap.Unmapped())
		for _, col := range []string{
			"tranId", "postingPeriodRef", "vendorRef", "tranDate",
			"payableAccountRef", "termsRef", "memo", "accountRef",
			"purchaseItemline_itemRef", "purchaseItemline_quantity",
			"purchaseItemline_serialNumbers", "purchaseitemline_unitsRef",
			"purchaseItemLine_rate", "purchaseItemLine_amount",
			"purchaseItemLine_memo", "purchaseItemLine_departmentRef",
			"purchaseItemLine_classRef", "purchaseItemLine_locationRef",
			"purchaseItemLine_customerRef", "purchaseItemLine_isBillable",
			"purchaseItemLine_taxCodeRef", "purchaseItemLine_taxCodeAmount",
		} {
			_, present := row[col]
			assert.True(t, present, "column %s missing from row", col)
		}
	})
}

func TestRowValues(t *testing.T) {
	row := Row{"a": String("1"), "b": Null()}
	headers := []string{"a", "b", "unknownColumn"}

	values := row.Values(headers)
	require.Equal(t, []string{"1", "", ""}, values)
}
