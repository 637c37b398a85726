package condition

import "strings"

// Rule maps one lowercase keyword to a Label. Matching is case-insensitive
// substring containment against the sample's free text.
type Rule struct {
	Keyword string
	Label   Label
}

// RuleTable is an ordered decision list. Within a single text field, rules
// are tried in table order and the first hit wins, so when a value contains
// both "control" and "treated" the earlier rule decides. Reorder the table
// to change precedence; there is no scoring.
type RuleTable []Rule

// Tables holds the named rule tables selectable from the command line.
var Tables = map[string]RuleTable{
	"default": {
		{Keyword: "control", Label: Control},
		{Keyword: "normal", Label: Control},
		{Keyword: "healthy", Label: Control},
		{Keyword: "non-tumor", Label: Control},
		{Keyword: "non tumor", Label: Control},
		{Keyword: "untreated", Label: Control},
		{Keyword: "vehicle", Label: Control},
		{Keyword: "treated", Label: Treated},
		{Keyword: "tumor", Label: Treated},
		{Keyword: "carcinoma", Label: Treated},
		{Keyword: "cancer", Label: Treated},
		{Keyword: "case", Label: Treated},
		{Keyword: "disease", Label: Treated},
	},
	// strict recognizes only the unambiguous terms, for studies whose titles
	// reuse words like "case" in other senses.
	"strict": {
		{Keyword: "control", Label: Control},
		{Keyword: "untreated", Label: Control},
		{Keyword: "vehicle", Label: Control},
		{Keyword: "treated", Label: Treated},
		{Keyword: "tumor", Label: Treated},
	},
}

// TableNames lists the registered rule table names for CLI help text.
func TableNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Tables {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}
