package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	out := RenderProgress(0.5, 10)
	assert.Contains(t, out, " 50%")
	assert.Equal(t, 5, strings.Count(out, filledBlock))
	assert.Equal(t, 5, strings.Count(out, emptyBlock))
}

func TestRenderProgress_ClampsRange(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 10), "  0%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
}

func TestRatio(t *testing.T) {
	out := Ratio(3, 4, 8)
	assert.Contains(t, out, "3/4")
	assert.Contains(t, out, " 75%")
}

func TestRatio_ZeroTotal(t *testing.T) {
	out := Ratio(0, 0, 8)
	assert.Contains(t, out, "0/0")
	assert.Contains(t, out, "  0%")
}
