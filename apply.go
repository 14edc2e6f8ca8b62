package tfdrawer

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
)

// Strategy selects how a lookup table is applied to a color image.
// Grayscale images are always remapped directly, whatever the strategy.
type Strategy int

const (
	// StrategyGrayscale remaps single-channel intensities directly.
	// On a color image it degenerates to StrategyPerChannel.
	StrategyGrayscale Strategy = iota
	// StrategyLuminance converts to a hue/saturation/lightness
	// representation, remaps only the lightness channel, and converts
	// back. Preserves color balance while reshaping brightness. Default
	// for color input.
	StrategyLuminance
	// StrategyPerChannel remaps the three channels independently. Fast,
	// but can shift hue and saturation.
	StrategyPerChannel
	// StrategyRatio remaps a luma rendition of the pixel and scales each
	// channel by the new/old luma ratio. Kept for completeness; not the
	// default.
	StrategyRatio
)

func (s Strategy) String() string {
	switch s {
	case StrategyGrayscale:
		return "grayscale"
	case StrategyLuminance:
		return "luminance"
	case StrategyPerChannel:
		return "per-channel"
	case StrategyRatio:
		return "ratio"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy resolves a strategy by its String name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "grayscale", "gray":
		return StrategyGrayscale, nil
	case "luminance", "luma":
		return StrategyLuminance, nil
	case "per-channel", "perchannel", "channel":
		return StrategyPerChannel, nil
	case "ratio":
		return StrategyRatio, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", name)
	}
}

// Apply remaps img through the table and returns a new image of the same
// dimensions. The input is never modified. Images other than *image.Gray
// and *image.NRGBA are converted to NRGBA first.
func Apply(img image.Image, t Table, s Strategy) image.Image {
	switch src := img.(type) {
	case *image.Gray:
		return applyGray(src, t)
	case *image.NRGBA:
		return applyNRGBA(src, t, s)
	default:
		return applyNRGBA(toNRGBA(img), t, s)
	}
}

func applyNRGBA(src *image.NRGBA, t Table, s Strategy) *image.NRGBA {
	switch s {
	case StrategyLuminance:
		return applyLuminance(src, t)
	case StrategyRatio:
		return applyRatio(src, t)
	default:
		return applyPerChannel(src, t)
	}
}

// applyGray remaps whole rows of the Pix slice. Per-pixel At/Set access is
// too slow for interactive reapplication on full-size images.
func applyGray(src *image.Gray, t Table) *image.Gray {
	dst := image.NewGray(src.Bounds())
	w := src.Rect.Dx()
	for y := 0; y < src.Rect.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range row {
			out[x] = t[v]
		}
	}
	return dst
}

func applyPerChannel(src *image.NRGBA, t Table) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	rowSize := src.Rect.Dx() * 4
	for y := 0; y < src.Rect.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+rowSize]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+rowSize]
		for x := 0; x < rowSize; x += 4 {
			out[x+0] = t[row[x+0]]
			out[x+1] = t[row[x+1]]
			out[x+2] = t[row[x+2]]
			out[x+3] = row[x+3]
		}
	}
	return dst
}

func applyLuminance(src *image.NRGBA, t Table) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	rowSize := src.Rect.Dx() * 4
	for y := 0; y < src.Rect.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+rowSize]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+rowSize]
		for x := 0; x < rowSize; x += 4 {
			c := colorful.Color{
				R: float64(row[x+0]) / 255,
				G: float64(row[x+1]) / 255,
				B: float64(row[x+2]) / 255,
			}
			h, s, l := c.Hsl()
			l = float64(t[clampToByte(l*255)]) / 255
			c = colorful.Hsl(h, s, l).Clamped()
			out[x+0] = clampToByte(c.R * 255)
			out[x+1] = clampToByte(c.G * 255)
			out[x+2] = clampToByte(c.B * 255)
			out[x+3] = row[x+3]
		}
	}
	return dst
}

func applyRatio(src *image.NRGBA, t Table) *image.NRGBA {
	dst := image.NewNRGBA(src.Bounds())
	rowSize := src.Rect.Dx() * 4
	for y := 0; y < src.Rect.Dy(); y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+rowSize]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+rowSize]
		for x := 0; x < rowSize; x += 4 {
			r, g, b := row[x+0], row[x+1], row[x+2]
			luma := clampToByte(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b))
			if luma == 0 {
				// Ratio is indeterminate for black; the remapped pixel
				// stays black.
				out[x+0], out[x+1], out[x+2] = 0, 0, 0
				out[x+3] = row[x+3]
				continue
			}
			ratio := float64(t[luma]) / float64(luma)
			out[x+0] = clampToByte(float64(r) * ratio)
			out[x+1] = clampToByte(float64(g) * ratio)
			out[x+2] = clampToByte(float64(b) * ratio)
			out[x+3] = row[x+3]
		}
	}
	return dst
}

func toNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok {
		return src
	}
	dst := image.NewNRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
