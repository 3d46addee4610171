package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoaded(t *testing.T) {
	for _, name := range []string{"Title", "Step", "Command", "Path", "Success", "Warning", "Error", "Muted"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be registered", name)
	}
	assert.True(t, GetStyle("Error").GetBold())
}

func TestGetStyleUnknown(t *testing.T) {
	s := GetStyle("DoesNotExist")
	assert.Equal(t, "plain", s.Render("plain"))
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, LoadStyles(defaultStyles)) })

	err := LoadStyles([]byte(`
styles:
  Loud:
    bold: true
    paddingLeft: 3
`))
	require.NoError(t, err)

	loud := GetStyle("Loud")
	assert.True(t, loud.GetBold())
	assert.Equal(t, 3, loud.GetPaddingLeft())
	_, ok := StyleRegistry["Title"]
	assert.False(t, ok, "loading replaces the registry")

	assert.Error(t, LoadStyles([]byte("styles: [unterminated")))
}
