package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// imageRenderer draws *ebiten.Image frames onto dst.
type imageRenderer struct {
	dst *ebiten.Image
}

// DrawFrame draws f with its top-left corner at (x, y), rotated about its
// centre.
func (r imageRenderer) DrawFrame(f invaders.Frame, x, y, rotation float64) {
	img, ok := f.(*ebiten.Image)
	if !ok || img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = frameGeoM(b.Dx(), b.Dy(), x, y, rotation)
	r.dst.DrawImage(img, op)
}

// frameGeoM places a w x h image at (x, y) rotated about its centre.
func frameGeoM(w, h int, x, y, rotation float64) ebiten.GeoM {
	var m ebiten.GeoM
	hw, hh := float64(w)/2, float64(h)/2
	m.Translate(-hw, -hh)
	m.Rotate(rotation)
	m.Translate(x+hw, y+hh)
	return m
}
