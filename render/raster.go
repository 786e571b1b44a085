package render

import (
	"github.com/automoto/lurk/components"
	"github.com/automoto/lurk/config"
	"github.com/automoto/lurk/shared/detection"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// rasterImage mirrors the union raster on the GPU. It is rebuilt when the
// raster size changes, which only happens on level load.
var (
	rasterImage *ebiten.Image
	rasterBytes []byte
)

// DrawRaster overlays the union visibility raster when
// config.Debug.ShowRaster is on.
func DrawRaster(e *ecs.ECS, screen *ebiten.Image) {
	if !config.Debug.ShowRaster {
		return
	}
	level, ok := levelOf(e.World)
	if !ok {
		return
	}
	detEntry, ok := components.Detection.First(e.World)
	if !ok {
		return
	}
	union := components.Detection.Get(detEntry).Resolver.Union()

	img := uploadRaster(union)
	v := viewFor(screen, level)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale)/union.Scale, float64(v.scale)/union.Scale)
	op.ColorScale.ScaleAlpha(0.35)
	screen.DrawImage(img, op)
}

func uploadRaster(s *detection.Surface) *ebiten.Image {
	b := s.Pix.Rect
	w, h := b.Dx(), b.Dy()
	if rasterImage == nil || rasterImage.Bounds().Dx() != w || rasterImage.Bounds().Dy() != h {
		rasterImage = ebiten.NewImage(w, h)
		rasterBytes = make([]byte, 4*w*h)
	}

	// Premultiplied: each channel scales with coverage.
	for i, a := range s.Pix.Pix[:w*h] {
		rasterBytes[4*i] = byte(uint16(rasterTint.R) * uint16(a) / 255)
		rasterBytes[4*i+1] = byte(uint16(rasterTint.G) * uint16(a) / 255)
		rasterBytes[4*i+2] = byte(uint16(rasterTint.B) * uint16(a) / 255)
		rasterBytes[4*i+3] = a
	}
	rasterImage.WritePixels(rasterBytes)
	return rasterImage
}
