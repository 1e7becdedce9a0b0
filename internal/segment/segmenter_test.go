package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoInvoiceText = `Weekly Statement
Account: 1001 Invoice#: A90001
ITEM# DESCRIPTION QTY
---------------------
731869 LF Lemon Seltzer 12
Cases: 12
Account: 1002
Invoice#: B90002
ITEM# DESCRIPTION QTY
---------------------
731870 LF Lime Seltzer 6
Cases: 6
`

func collect(text string) []Block {
	var blocks []Block
	for b := range Blocks(text) {
		blocks = append(blocks, b)
	}
	return blocks
}

func TestBlocks(t *testing.T) {
	t.Run("splits on anchor pairs", func(t *testing.T) {
		blocks := collect(twoInvoiceText)
		require.Len(t, blocks, 2)

		assert.Equal(t, "1001", blocks[0].AccountID)
		assert.Equal(t, "A90001", blocks[0].InvoiceID)
		assert.Contains(t, blocks[0].Body, "LF Lemon Seltzer")
		assert.NotContains(t, blocks[0].Body, "LF Lime Seltzer")

		assert.Equal(t, "1002", blocks[1].AccountID)
		assert.Equal(t, "B90002", blocks[1].InvoiceID)
		assert.Contains(t, blocks[1].Body, "LF Lime Seltzer")
	})

	t.Run("anchor labels split across lines still match", func(t *testing.T) {
		blocks := collect("Account: 55\nInvoice#: XYZ123\nsome body")
		require.Len(t, blocks, 1)
		assert.Equal(t, "55", blocks[0].AccountID)
		assert.Equal(t, "XYZ123", blocks[0].InvoiceID)
	})

	t.Run("no anchors yields empty sequence", func(t *testing.T) {
		assert.Empty(t, collect("just an ordinary page of text"))
		assert.Empty(t, collect(""))
	})

	t.Run("malformed anchors are skipped", func(t *testing.T) {
		// Account without a following invoice number never opens a block.
		blocks := collect("Account: 123 no invoice here\nAccount: 77 Invoice#: OK1 body")
		require.Len(t, blocks, 1)
		assert.Equal(t, "77", blocks[0].AccountID)
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		seq := Blocks(twoInvoiceText)
		var first, second []Block
		for b := range seq {
			first = append(first, b)
		}
		for b := range seq {
			second = append(second, b)
		}
		require.Len(t, first, 2)
		assert.Equal(t, first, second, "second iteration must yield the same blocks")
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		var got []string
		for b := range Blocks(twoInvoiceText) {
			got = append(got, b.InvoiceID)
			break
		}
		assert.Equal(t, []string{"A90001"}, got)
	})
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, Count(twoInvoiceText))
	assert.Equal(t, 0, Count("no anchors"))
}
