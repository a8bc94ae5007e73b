package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyCode_String(t *testing.T) {
	tests := []struct {
		name string
		code KeyCode
		want string
	}{
		{"rune", Rune('q'), "q"},
		{"enter", Enter, "enter"},
		{"named", Named("ctrl+c"), "ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.String())
		})
	}
}

func TestMatches_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap

	assert.True(t, Matches(Rune('q'), km.Quit))
	assert.True(t, Matches(Rune('j'), km.Down))
	assert.True(t, Matches(Rune('k'), km.Up))
	assert.True(t, Matches(Enter, km.Claim))

	assert.False(t, Matches(Rune('Q'), km.Quit), "bindings are case sensitive")
	assert.False(t, Matches(Named("enter"), km.Quit))
	assert.False(t, Matches(Rune('x'), km.Down))
}

func TestMatches_DisabledBinding(t *testing.T) {
	km := DefaultKeyMap
	km.Quit.SetEnabled(false)

	assert.False(t, Matches(Rune('q'), km.Quit), "disabled binding should not trigger")
	assert.True(t, DefaultKeyMap.Quit.Enabled(), "default key map must be left untouched")
}

func TestKeyMap_IsZero(t *testing.T) {
	assert.True(t, KeyMap{}.IsZero())
	assert.False(t, DefaultKeyMap.IsZero())
}

func TestKeyMap_Help(t *testing.T) {
	short := DefaultKeyMap.ShortHelp()
	assert.Len(t, short, 4)
	assert.Equal(t, "quit", short[3].Help().Desc)
	assert.Len(t, DefaultKeyMap.FullHelp(), 2)
}
