package debugui_test

import (
	"testing"

	"github.com/plus3/confetti/debugui"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistory(t *testing.T) {
	h := debugui.NewFrameHistory(3)
	assert.Equal(t, float32(0), h.Average())

	h.Record(0.010)
	h.Record(0.020)
	assert.Equal(t, 2, h.Len())
	assert.InDelta(t, 15.0, h.Average(), 1e-4)

	h.Record(0.030)
	h.Record(0.040)
	assert.Equal(t, 3, h.Len())
	assert.InDelta(t, 30.0, h.Average(), 1e-4)
}

func TestFrameHistoryMinimumSize(t *testing.T) {
	h := debugui.NewFrameHistory(0)
	h.Record(0.5)
	h.Record(0.25)
	assert.Equal(t, 1, h.Len())
	assert.InDelta(t, 250.0, h.Average(), 1e-4)
}

func TestSystemAdd(t *testing.T) {
	var sys debugui.System
	calls := 0
	sys.Add(func() { calls++ })
	sys.Add(nil)

	assert.Len(t, sys.Items, 2)
	sys.Items[0].Render()
	assert.Equal(t, 1, calls)
}
