package mouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultButtons(t *testing.T) {
	table := DefaultButtons()

	assert.Len(t, table, 7)
	assert.Equal(t, uint8(1), table[BtnLeft])
	assert.Equal(t, uint8(2), table[BtnMiddle])
	assert.Equal(t, uint8(3), table[BtnRight])
	assert.Equal(t, uint8(4), table[BtnScrollUp])
	assert.Equal(t, uint8(5), table[BtnScrollDown])
	assert.Equal(t, uint8(6), table[BtnScrollLeft])
	assert.Equal(t, uint8(7), table[BtnScrollRight])
}

func TestDefaultButtonsNotAliased(t *testing.T) {
	a := DefaultButtons()
	a["button_left"] = 99

	assert.Equal(t, uint8(1), DefaultButtons()["button_left"])
}

func TestResolve(t *testing.T) {
	table := DefaultButtons()

	tests := []struct {
		name   string
		button Button
		want   uint8
	}{
		{"known name", ButtonName(BtnRight), 3},
		{"unknown name falls back to 1", ButtonName("button_thumb"), 1},
		{"raw id passes through", ButtonID(9), 9},
		{"zero button resolves to 1", Button{}, 1},
		{"zero id resolves to 1", ButtonID(0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Resolve(tt.button))
		})
	}
}

func TestResolveAgainstNilTable(t *testing.T) {
	var table ButtonMap

	// Resolution stays total even with no table at all.
	assert.Equal(t, uint8(1), table.Resolve(ButtonName(BtnLeft)))
	assert.Equal(t, uint8(5), table.Resolve(ButtonID(5)))
}
