package tfdrawer

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/nfnt/resize"

	"github.com/Kaiserouo/Image-Transfer-Function-Drawer-GUI/internal/imageio"
)

// Scale uniformly scales img by factor, preserving aspect ratio. It backs
// the cosmetic display copy used during interactive editing; the transfer
// function itself is always available against the unscaled source through
// Engine.Render. Dimensions are clamped to at least one pixel.
func Scale(img image.Image, factor float64) image.Image {
	b := img.Bounds()
	w := uint(math.Max(1, math.Round(float64(b.Dx())*factor)))
	h := uint(math.Max(1, math.Round(float64(b.Dy())*factor)))
	return resize.Resize(w, h, img, resize.Lanczos3)
}

// ScaleFile reads the image at inPath, scales it by factor and writes the
// result to outPath. The output format follows the outPath extension.
func ScaleFile(inPath, outPath string, factor float64) error {
	if factor <= 0 {
		return errors.New("scale factor must be positive")
	}
	img, err := imageio.Load(inPath, false)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if err := imageio.Save(outPath, Scale(img, factor)); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
