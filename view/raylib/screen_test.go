package raylib_test

import (
	"image/color"
	"testing"

	"github.com/plus3/confetti/burst"
	"github.com/plus3/confetti/view/raylib"
	"github.com/stretchr/testify/assert"
)

func TestScreenKeepsAttachOrder(t *testing.T) {
	s := raylib.NewScreen(640, 480)
	for id := burst.ElementId(1); id <= 3; id++ {
		s.Attach(id, burst.Sprite{Size: 4})
	}

	s.Detach(2)
	s.Detach(2)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Attached(2))
	assert.True(t, s.Attached(3))

	s.Place(7, burst.Transform{X: 1})
	assert.False(t, s.Attached(7))
}

func TestColorFades(t *testing.T) {
	look := burst.Sprite{Color: color.NRGBA{R: 10, G: 20, B: 30, A: 200}}

	c := raylib.Color(look, 0.5)
	assert.Equal(t, uint8(10), c.R)
	assert.Equal(t, uint8(100), c.A)
	assert.Equal(t, uint8(200), raylib.Color(look, 3).A)
	assert.Equal(t, uint8(0), raylib.Color(look, -1).A)
}

func TestAppCelebrate(t *testing.T) {
	app := raylib.NewApp(800, 600, burst.WithTuning(burst.DefaultTuning()))
	app.Celebrate(burst.Vec2{X: 400, Y: 300})

	for range 5 {
		app.Sim.Step()
	}
	assert.Equal(t, app.Sim.Active()+app.Effects.Len(), app.Screen.Len())
	assert.Greater(t, app.Sim.Active(), 0)
}

func TestAppSendTransferOneAtATime(t *testing.T) {
	app := raylib.NewApp(800, 600)
	assert.True(t, app.SendTransfer())
	assert.False(t, app.SendTransfer())
	assert.Equal(t, 3, app.Effects.Queued())
}
