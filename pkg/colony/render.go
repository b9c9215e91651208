package colony

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrBufferSize is returned by Render when the pixel buffer has the wrong length.
var ErrBufferSize = errors.New("colony: render buffer has wrong size")

// Palette
var (
	BackgroundColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	FoodColor       = color.RGBA{0x00, 0x00, 0xff, 0xff}
	NestColor       = color.RGBA{0xff, 0x65, 0x00, 0xff}
	PheromoneColor  = color.RGBA{0x80, 0x00, 0x80, 0xff}
	AntColor        = color.RGBA{0x00, 0xff, 0x00, 0xff}
	CarrierColor    = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// Render paints the current state into buf as RGBA8, PixelWidth x PixelHeight.
// Later layers cover earlier ones: food, nest, pheromone, ants.
func (s *Simulation) Render(buf []byte) error {
	if want := s.Config.BufferSize(); len(buf) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(buf), want)
	}

	for i := 0; i < len(buf); i += 4 {
		setPixel(buf[i:i+4], BackgroundColor)
	}
	for _, f := range s.Env.Food {
		s.fillCell(buf, f.X, f.Y, FoodColor)
	}
	s.fillCell(buf, s.Env.Nest.X, s.Env.Nest.Y, NestColor)
	s.Env.Pheromone.Each(func(x, y int, p Pheromone) {
		s.blendCell(buf, x, y, PheromoneColor, intensityAlpha(p.Intensity))
	})
	for _, a := range s.Ants {
		c := AntColor
		if a.CarryingFood() {
			c = CarrierColor
		}
		s.fillCell(buf, a.X, a.Y, c)
	}
	return nil
}

func intensityAlpha(v float32) uint8 {
	switch {
	case v >= 1:
		return 0xff
	case v <= 0:
		return 0
	}
	return uint8(v * 255)
}

// cellPixels calls fn with the 4-byte slice of every pixel covered by grid cell (x, y).
func (s *Simulation) cellPixels(buf []byte, x, y int, fn func(px []byte)) {
	if !s.Config.inBounds(x, y) {
		return
	}
	stride := s.Config.PixelWidth()
	for dy := 0; dy < s.Config.ScaleY; dy++ {
		row := (y*s.Config.ScaleY + dy) * stride
		for dx := 0; dx < s.Config.ScaleX; dx++ {
			i := (row + x*s.Config.ScaleX + dx) * 4
			if i+4 > len(buf) {
				return
			}
			fn(buf[i : i+4])
		}
	}
}

func (s *Simulation) fillCell(buf []byte, x, y int, c color.RGBA) {
	s.cellPixels(buf, x, y, func(px []byte) { setPixel(px, c) })
}

func (s *Simulation) blendCell(buf []byte, x, y int, c color.RGBA, alpha uint8) {
	a := uint16(alpha)
	s.cellPixels(buf, x, y, func(px []byte) {
		px[0] = uint8((uint16(c.R)*a + uint16(px[0])*(255-a)) / 255)
		px[1] = uint8((uint16(c.G)*a + uint16(px[1])*(255-a)) / 255)
		px[2] = uint8((uint16(c.B)*a + uint16(px[2])*(255-a)) / 255)
		px[3] = 0xff
	})
}

func setPixel(px []byte, c color.RGBA) {
	px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
}
