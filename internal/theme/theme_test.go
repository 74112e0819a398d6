package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetThemeFallsBackToDracula(t *testing.T) {
	assert.Equal(t, Dracula(), GetTheme("does-not-exist"))
	assert.Equal(t, Nord(), GetTheme(NordName))
}

func TestAvailableThemesSortedAndResolvable(t *testing.T) {
	names := AvailableThemes()
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, DraculaName)
	for _, name := range names {
		assert.True(t, Exists(name), name)
		assert.NotEmpty(t, GetTheme(name).Accent, name)
	}
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(DraculaLightName))
	assert.False(t, IsLight(DraculaName))
	assert.False(t, IsLight("unknown"))
}
