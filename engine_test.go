package tfdrawer_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tfdrawer "github.com/Kaiserouo/Image-Transfer-Function-Drawer-GUI"
)

func testGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func testColor(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestNewEngineStrategyByChannels(t *testing.T) {
	gray, err := tfdrawer.NewEngine(testGray(4, 4, 50))
	require.NoError(t, err)
	assert.Equal(t, tfdrawer.StrategyGrayscale, gray.Strategy())

	colorEngine, err := tfdrawer.NewEngine(testColor(4, 4, color.NRGBA{R: 1, G: 2, B: 3, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, tfdrawer.StrategyLuminance, colorEngine.Strategy())
}

func TestNewEngineSeedText(t *testing.T) {
	e, err := tfdrawer.NewEngine(testGray(4, 4, 0), func(o *tfdrawer.Options) {
		o.SeedText = "[(0, 0), (64, 200), (255, 255)]"
	})
	require.NoError(t, err)

	assert.Equal(t, []tfdrawer.Point{
		{X: 0, Y: 0},
		{X: 64, Y: 200},
		{X: 255, Y: 255},
	}, e.Points())
	assert.Equal(t, "[(0, 0), (64, 200), (255, 255)]", tfdrawer.FormatPoints(e.Points()))
}

func TestNewEngineMalformedSeed(t *testing.T) {
	_, err := tfdrawer.NewEngine(testGray(4, 4, 0), func(o *tfdrawer.Options) {
		o.SeedText = "[(banana)]"
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, tfdrawer.ErrInvalidSeed)
}

func TestEngineAddPointReprocesses(t *testing.T) {
	e, err := tfdrawer.NewEngine(testGray(8, 8, 64))
	require.NoError(t, err)

	// Identity to begin with.
	assert.True(t, e.Table().IsIdentity())
	assert.Equal(t, uint8(64), e.Processed().(*image.Gray).Pix[0])

	out := e.AddPoint(128, 255)
	// Ramp 0..255 over [0,128]: 64 maps to 127.
	assert.Equal(t, uint8(127), out.(*image.Gray).Pix[0])
	assert.Len(t, e.Points(), 3)
}

func TestEngineIgnoresStrayEvents(t *testing.T) {
	e, err := tfdrawer.NewEngine(testGray(4, 4, 10))
	require.NoError(t, err)

	before := e.Points()
	e.AddPoint(300, 10)
	e.AddPoint(0, 10)
	e.RemovePoint(0)
	e.RemovePoint(1)
	e.RemovePoint(-4)

	assert.Equal(t, before, e.Points())
	assert.True(t, e.Table().IsIdentity())
}

func TestEngineRemovePoint(t *testing.T) {
	e, err := tfdrawer.NewEngine(testGray(4, 4, 64), func(o *tfdrawer.Options) {
		o.Seed = []tfdrawer.Point{{X: 128, Y: 255}}
	})
	require.NoError(t, err)
	require.Len(t, e.Points(), 3)

	out := e.RemovePoint(1)
	assert.Len(t, e.Points(), 2)
	assert.True(t, e.Table().IsIdentity())
	assert.Equal(t, uint8(64), out.(*image.Gray).Pix[0])
}

func TestEngineRenderDecoupledFromDisplay(t *testing.T) {
	e, err := tfdrawer.NewEngine(testGray(8, 8, 64), func(o *tfdrawer.Options) {
		o.DisplayScale = 0.5
	})
	require.NoError(t, err)

	assert.Equal(t, 4, e.Processed().Bounds().Dx())
	assert.Equal(t, 4, e.Processed().Bounds().Dy())

	e.AddPoint(128, 255)

	// The full-resolution source renders through the same table.
	full := e.Render(testGray(8, 8, 64)).(*image.Gray)
	assert.Equal(t, 8, full.Bounds().Dx())
	assert.Equal(t, uint8(127), full.Pix[0])
}

func TestEngineSetDisplayScale(t *testing.T) {
	e, err := tfdrawer.NewEngine(testGray(10, 10, 64))
	require.NoError(t, err)

	out := e.SetDisplayScale(0.2)
	assert.Equal(t, 2, out.Bounds().Dx())

	// Non-positive factor is a stray event.
	out = e.SetDisplayScale(0)
	assert.Equal(t, 2, out.Bounds().Dx())

	out = e.SetDisplayScale(1)
	assert.Equal(t, 10, out.Bounds().Dx())
}
