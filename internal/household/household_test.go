package household_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

func TestNew_DropsEmptyAndDuplicates(t *testing.T) {
	h := household.New([]string{"ray", " amber ", "", "ray"}, []string{"ray", "stranger"})

	assert.Equal(t, []household.Member{"ray", "amber"}, h.Members())
	assert.True(t, h.CanViewPersonalDebts("ray"))
	assert.False(t, h.CanViewPersonalDebts("amber"))
	assert.False(t, h.CanViewPersonalDebts("stranger"))
}

func TestCounterpart(t *testing.T) {
	h := household.New([]string{"ray", "amber", "sam"}, nil)

	other, ok := h.Counterpart("ray")
	assert.True(t, ok)
	assert.Equal(t, household.Member("amber"), other)

	other, ok = h.Counterpart("amber")
	assert.True(t, ok)
	assert.Equal(t, household.Member("ray"), other)

	solo := household.New([]string{"ray"}, nil)
	_, ok = solo.Counterpart("ray")
	assert.False(t, ok)
}
