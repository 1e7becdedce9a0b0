package glmap

import (
	"log/slog"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// ChartAccount is one row of the ledger-code catalog: a GL code and the
// invoice-facing account name it belongs to.
type ChartAccount struct {
	Code string
	Name string
}

// Table is the process-wide classification table. It is built once before
// processing starts and is read-only afterwards, so it is safe to share
// across documents without synchronization.
type Table struct {
	rules   []Rule
	matcher *ahocorasick.Matcher
	ruleOf  []int // pattern index -> rule index
	fuzzy   *FuzzyMatcher
	logger  *slog.Logger
}

// NewTable builds the classification table. Chart accounts override the
// default code of any rule whose keywords appear in the account name, the
// way the ledger catalog names its promo and sample accounts. A nil fuzzy
// matcher disables the fuzzy fallback.
func NewTable(rules []Rule, chart []ChartAccount, fuzzy *FuzzyMatcher, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}

	resolved := make([]Rule, len(rules))
	copy(resolved, rules)
	for i := range resolved {
		if code, ok := chartCode(resolved[i], chart); ok {
			resolved[i].Code = code
		}
	}

	// One Aho-Corasick pass over the description finds every keyword of
	// every rule; the lowest rule index among the hits preserves the
	// ordered-list, first-match-wins contract.
	var patterns []string
	var ruleOf []int
	for ri, rule := range resolved {
		for _, kw := range rule.Keywords {
			patterns = append(patterns, strings.ToUpper(kw))
			ruleOf = append(ruleOf, ri)
		}
	}

	return &Table{
		rules:   resolved,
		matcher: ahocorasick.NewStringMatcher(patterns),
		ruleOf:  ruleOf,
		fuzzy:   fuzzy,
		logger:  logger,
	}
}

// chartCode resolves a rule's GL code from the chart of accounts by
// keyword match against account names. First matching account wins.
func chartCode(rule Rule, chart []ChartAccount) (string, bool) {
	for _, acct := range chart {
		name := strings.ToLower(acct.Name)
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return acct.Code, true
			}
		}
	}
	return "", false
}

// Classify maps a description to its ledger category and code. It is a
// pure function of the description and the immutable table. Descriptions
// matching no rule come back Unmapped with a null code unless the fuzzy
// fallback resolves them against the chart of accounts.
func (t *Table) Classify(description string) Classification {
	if strings.TrimSpace(description) == "" {
		return Unmapped()
	}

	hits := t.matcher.Match([]byte(strings.ToUpper(description)))
	if len(hits) > 0 {
		best := -1
		for _, h := range hits {
			if h < 0 || h >= len(t.ruleOf) {
				continue
			}
			if ri := t.ruleOf[h]; best == -1 || ri < best {
				best = ri
			}
		}
		if best >= 0 {
			if t.multiRule(hits, best) {
				t.logger.Debug("description matches multiple GL rules, first rule wins",
					"description", description, "category", t.rules[best].Category)
			}
			return Classification{Category: t.rules[best].Category, Code: t.rules[best].Code}
		}
	}

	if t.fuzzy != nil {
		if acct, ok := t.fuzzy.Match(description); ok {
			return Classification{Category: acct.Name, Code: acct.Code}
		}
	}
	return Unmapped()
}

// multiRule reports whether the hit set spans more than the winning rule.
func (t *Table) multiRule(hits []int, winner int) bool {
	for _, h := range hits {
		if h >= 0 && h < len(t.ruleOf) && t.ruleOf[h] != winner {
			return true
		}
	}
	return false
}

// FreeGoods returns the classification stamped on flagged free-goods
// rows: always Samples, whatever else the description mentions.
func (t *Table) FreeGoods() Classification {
	for _, rule := range t.rules {
		if rule.Category == "Samples" {
			return Classification{Category: rule.Category, Code: rule.Code}
		}
	}
	return Unmapped()
}

// Rules returns the resolved rule table, mainly for logging at startup.
func (t *Table) Rules() []Rule {
	return t.rules
}
