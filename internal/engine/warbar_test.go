package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBarCentered(t *testing.T) {
	bar := RenderBar(5, 0, "A", "D")
	assert.Equal(t, 5, bar.AttackerTiles)
	assert.Equal(t, 5, bar.DefenderTiles)
	assert.Equal(t, 11, bar.Slots())
	assert.Equal(t, "AAAAA"+CenterGlyph+"DDDDD", bar.String())
}

func TestRenderBarClampsMomentum(t *testing.T) {
	bar := RenderBar(3, 10, "A", "D")
	assert.Equal(t, 3, bar.Momentum)
	assert.Equal(t, 6, bar.AttackerTiles)
	assert.Equal(t, 0, bar.DefenderTiles)
	assert.Equal(t, "AAAAAA"+CenterGlyph, bar.String())

	bar = RenderBar(3, -10, "A", "D")
	assert.Equal(t, -3, bar.Momentum)
	assert.Equal(t, 0, bar.AttackerTiles)
	assert.Equal(t, 6, bar.DefenderTiles)
}

func TestRenderBarSlotInvariant(t *testing.T) {
	for intensity := 1; intensity <= 20; intensity++ {
		for momentum := -25; momentum <= 25; momentum++ {
			bar := RenderBar(intensity, momentum, "A", "D")
			assert.Equal(t, 2*intensity+1, bar.Slots())
			assert.GreaterOrEqual(t, bar.AttackerTiles, 0)
			assert.GreaterOrEqual(t, bar.DefenderTiles, 0)
		}
	}
}

func TestRenderBarDefaultGlyphs(t *testing.T) {
	bar := RenderBar(1, 0, "", "")
	assert.Equal(t, DefaultAttackerGlyph+CenterGlyph+DefaultDefenderGlyph, bar.String())
	assert.Equal(t, 1, strings.Count(bar.String(), DefaultAttackerGlyph))
}
