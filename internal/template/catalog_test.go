package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsCopy(t *testing.T) {
	first, err := Get("podcast")
	require.NoError(t, err)

	first.Intro = "mutated"

	second, err := Get("podcast")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second.Intro)
}

func TestGetUnknown(t *testing.T) {
	_, err := Get("no such template")
	assert.Error(t, err)
}

func TestMergeOverridesOnlyNonEmpty(t *testing.T) {
	base, err := Get("lecture")
	require.NoError(t, err)

	merged, err := Merge("lecture", Overrides{Dialog: "custom dialog"})
	require.NoError(t, err)

	assert.Equal(t, "custom dialog", merged.Dialog)
	assert.Equal(t, base.Intro, merged.Intro)
	assert.Equal(t, base.ScratchPad, merged.ScratchPad)

	// Catalog entry stays untouched.
	again, err := Get("lecture")
	require.NoError(t, err)
	assert.Equal(t, base.Dialog, again.Dialog)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "podcast")
	assert.Contains(t, names, "podcast (French)")
	assert.Contains(t, names, "short summary")
	assert.Contains(t, names, Default)
	assert.Len(t, names, 8)
}
