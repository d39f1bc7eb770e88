// Package household models the configured set of household members.
package household

import (
	"slices"
	"strings"
)

// Member identifies a household member by configured name.
type Member string

// Household is the fixed membership list loaded from configuration.
type Household struct {
	members     []Member
	debtViewers []Member
}

// New builds a household from member names. Names are trimmed and empty or duplicate entries dropped.
// debtViewers lists the members allowed to see personal debts.
func New(members []string, debtViewers []string) *Household {
	h := &Household{}

	for _, m := range members {
		m = strings.TrimSpace(m)
		if m == "" || slices.Contains(h.members, Member(m)) {
			continue
		}

		h.members = append(h.members, Member(m))
	}

	for _, m := range debtViewers {
		m = strings.TrimSpace(m)
		if h.Contains(Member(m)) {
			h.debtViewers = append(h.debtViewers, Member(m))
		}
	}

	return h
}

// Members returns the members in configured order.
func (h *Household) Members() []Member {
	return slices.Clone(h.members)
}

func (h *Household) Contains(m Member) bool {
	return slices.Contains(h.members, m)
}

// Counterpart returns the first member other than m, used as the default split partner.
func (h *Household) Counterpart(m Member) (Member, bool) {
	for _, other := range h.members {
		if other != m {
			return other, true
		}
	}

	return "", false
}

// CanViewPersonalDebts reports whether m may see personal debts.
func (h *Household) CanViewPersonalDebts(m Member) bool {
	return slices.Contains(h.debtViewers, m)
}
