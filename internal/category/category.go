package category

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultCategory is assigned when no rule matches.
const DefaultCategory = "Other"

// Category is a named bucket for expenses.
type Category struct {
	Name     string
	Position int
}

// Rule maps a lowercase keyword to a category. Keywords are unique across the table.
type Rule struct {
	ID       uuid.UUID
	Keyword  string
	Category string
	Position int
}

// MatchPolicy decides which rule wins when several keywords occur in a description.
type MatchPolicy string

const (
	// MatchFirst picks the first matching rule in stored order.
	MatchFirst MatchPolicy = "first"
	// MatchLongest picks the longest matching keyword, ties broken by stored order.
	MatchLongest MatchPolicy = "longest"
)

// Categorizer assigns categories from an immutable snapshot of the rule table.
type Categorizer struct {
	rules    []Rule
	policy   MatchPolicy
	fallback string
}

type Option func(*Categorizer)

func WithPolicy(p MatchPolicy) Option {
	return func(c *Categorizer) {
		if p == MatchLongest {
			c.policy = MatchLongest
		}
	}
}

func WithDefault(name string) Option {
	return func(c *Categorizer) {
		if name = strings.TrimSpace(name); name != "" {
			c.fallback = name
		}
	}
}

// NewCategorizer copies rules, so later changes to the slice do not affect it.
func NewCategorizer(rules []Rule, opts ...Option) *Categorizer {
	c := &Categorizer{
		rules:    make([]Rule, len(rules)),
		policy:   MatchFirst,
		fallback: DefaultCategory,
	}
	copy(c.rules, rules)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Categorize returns the category of the rule whose keyword occurs in description (case-insensitive),
// or the default category when nothing matches.
func (c *Categorizer) Categorize(description string) string {
	desc := strings.ToLower(description)

	best := -1

	for i, r := range c.rules {
		if r.Keyword == "" || !strings.Contains(desc, r.Keyword) {
			continue
		}

		if c.policy == MatchFirst {
			return r.Category
		}

		if best < 0 || len(r.Keyword) > len(c.rules[best].Keyword) {
			best = i
		}
	}

	if best >= 0 {
		return c.rules[best].Category
	}

	return c.fallback
}

// Default returns the category used when no rule matches.
func (c *Categorizer) Default() string {
	return c.fallback
}

// NormalizeKeyword trims and lowercases a keyword the way it is stored.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}
