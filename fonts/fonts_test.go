package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Bold, Title, Small} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, Title.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestLoadRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 10))
}

func TestGetUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
