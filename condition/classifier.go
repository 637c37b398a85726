package condition

import (
	"fmt"
	"strings"

	"github.com/carbocation/geoharmonize/seriesmatrix"
)

// Classifier assigns a Label to a raw sample record using its RuleTable.
// The table travels with the classifier rather than living in package state,
// so different studies can be classified under different rule sets in one
// process.
type Classifier struct {
	Rules RuleTable
}

// New looks up a registered rule table by name.
func New(table string) (*Classifier, error) {
	t, exists := Tables[table]
	if !exists {
		return nil, fmt.Errorf("rule table %s is not found. Valid table names include: %s", table, TableNames())
	}

	return NewWithRules(t)
}

// NewWithRules wraps an explicit rule table, for callers that build their
// own.
func NewWithRules(rules RuleTable) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("refusing to classify with an empty rule table")
	}

	return &Classifier{Rules: rules}, nil
}

// Classify scans the record's title and then each characteristic value, in
// order. Within each field the rules are tried in table order; the first
// matching rule decides the label and the field that matched is returned as
// the source text. A record with no matching field is Unknown with an empty
// source.
func (c *Classifier) Classify(rec seriesmatrix.RawRecord) (Label, string) {
	if label, ok := c.match(rec.Title); ok {
		return label, rec.Title
	}

	for _, char := range rec.Characteristics {
		if label, ok := c.match(char.Value); ok {
			return label, char.Value
		}
	}

	return Unknown, ""
}

func (c *Classifier) match(text string) (Label, bool) {
	if text == "" {
		return Unknown, false
	}

	lower := strings.ToLower(text)
	for _, rule := range c.Rules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Label, true
		}
	}

	return Unknown, false
}
