package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/buxfer/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

func TestMemberModel_AsksWhoIsUsingTheDevice(t *testing.T) {
	m := view.NewMemberModel(nil, household.New([]string{"ray", "amber"}, nil))

	assert.Equal(t, "Select Member", m.Title())
	assert.Contains(t, m.View(), "Who is using Buxfer?")
}
