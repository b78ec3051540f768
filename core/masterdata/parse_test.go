package masterdata_test

import (
	"testing"

	"craftstore/core/crafting"
	"craftstore/core/masterdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequiredItem(t *testing.T) {
	tests := []struct {
		name      string
		tuple     string
		wantID    uint32
		wantStack int
		wantErr   bool
	}{
		{"Host Format", "(1203, 2)", 1203, 2, false},
		{"No Spaces", "(5,1)", 5, 1, false},
		{"Empty Slot", "(0, 0)", 0, 0, false},
		{"Missing Stack", "(5)", 0, 0, true},
		{"Extra Field", "(5, 1, 2)", 0, 0, true},
		{"Bad Id", "(abc, 1)", 0, 0, true},
		{"Negative Id", "(-1, 1)", 0, 0, true},
		{"Bad Stack", "(5, x)", 0, 0, true},
		{"Negative Stack", "(5, -2)", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, stack, err := masterdata.ParseRequiredItem(tt.tuple)
			if tt.wantErr {
				assert.ErrorIs(t, err, masterdata.ErrMalformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantStack, stack)
		})
	}
}

func TestKindFromCode(t *testing.T) {
	kind, err := masterdata.KindFromCode(masterdata.CodeGroup)
	require.NoError(t, err)
	assert.Equal(t, crafting.Group, kind)

	_, err = masterdata.KindFromCode(3)
	assert.ErrorIs(t, err, masterdata.ErrMalformed)
}

func TestParseLines(t *testing.T) {
	lines, err := masterdata.ParseLines([]string{"(1, 2)", "(9, 1)"}, []int64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []crafting.RequiredItemLine{
		{TargetID: 1, RequiredStack: 2, Kind: crafting.Item},
		{TargetID: 9, RequiredStack: 1, Kind: crafting.Category},
	}, lines)

	_, err = masterdata.ParseLines([]string{"(1, 2)"}, nil)
	assert.ErrorIs(t, err, masterdata.ErrMalformed)

	_, err = masterdata.ParseLines([]string{"(1, 2)", "broken"}, []int64{0, 0})
	assert.ErrorIs(t, err, masterdata.ErrMalformed)
	assert.Contains(t, err.Error(), "slot 1")
}
