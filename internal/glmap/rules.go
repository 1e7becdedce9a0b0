// Package glmap classifies line-item descriptions into general-ledger
// categories. The rule table is an ordered list evaluated first-match-wins:
// rule order is part of the contract, so a description matching several
// keyword sets resolves to the earliest rule.
package glmap

// Rule pairs a keyword set with a ledger category. Code is the default GL
// code for the category; the chart of accounts may override it at load
// time. Rules are static for the lifetime of the process.
type Rule struct {
	Keywords []string // case-insensitive substrings, any one matches
	Category string
	Code     string
}

// UnmappedCategory is returned when no rule matches. Its code is null.
const UnmappedCategory = "Unmapped"

// Classification is the result of classifying one description. An empty
// Code means the null marker (no GL code could be assigned).
type Classification struct {
	Category string
	Code     string
}

// Unmapped is the zero-match classification.
func Unmapped() Classification {
	return Classification{Category: UnmappedCategory}
}

// DefaultRules returns the ordered rule table for distributor invoices.
// The keyword stems double as the lookup keys used to resolve codes from
// the chart of accounts.
func DefaultRules() []Rule {
	return []Rule{
		{
			Keywords: []string{"samples", "sample", "free goods", "donations", "donation", "no charge"},
			Category: "Samples",
			Code:     "6520",
		},
		{
			Keywords: []string{"advertising", "advertis", "pos", "promo", "display"},
			Category: "Distributor Advertising",
			Code:     "6405",
		},
		{
			Keywords: []string{"rebates", "rebate"},
			Category: "Rebates",
			Code:     "4809",
		},
		{
			Keywords: []string{"invasion", "slotting"},
			Category: "Invasion Fee",
			Code:     "4825",
		},
		{
			Keywords: []string{"allowances", "allowance", "discounts", "discount", "off invoice"},
			Category: "Sales Allowances",
			Code:     "4834",
		},
		{
			Keywords: []string{"incentives", "incentive"},
			Category: "Incentives",
			Code:     "4837",
		},
	}
}
