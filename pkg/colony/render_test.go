package colony

import (
	"errors"
	"image/color"
	"testing"
)

func pixelAt(buf []byte, cfg Config, px, py int) color.RGBA {
	i := (py*cfg.PixelWidth() + px) * 4
	return color.RGBA{buf[i], buf[i+1], buf[i+2], buf[i+3]}
}

// cellColor checks every pixel of grid cell (x, y) has the same colour and returns it.
func cellColor(t *testing.T, buf []byte, cfg Config, x, y int) color.RGBA {
	t.Helper()
	want := pixelAt(buf, cfg, x*cfg.ScaleX, y*cfg.ScaleY)
	for dy := 0; dy < cfg.ScaleY; dy++ {
		for dx := 0; dx < cfg.ScaleX; dx++ {
			if got := pixelAt(buf, cfg, x*cfg.ScaleX+dx, y*cfg.ScaleY+dy); got != want {
				t.Fatalf("cell (%d, %d) not uniform: %v vs %v", x, y, got, want)
			}
		}
	}
	return want
}

func TestRenderRejectsWrongBuffer(t *testing.T) {
	s := mustSim(t, smallConfig(4, 4, Position{0, 0}), 1)
	for _, n := range []int{0, s.Config.BufferSize() - 1, s.Config.BufferSize() + 4} {
		if err := s.Render(make([]byte, n)); !errors.Is(err, ErrBufferSize) {
			t.Errorf("len %d: err = %v, want ErrBufferSize", n, err)
		}
	}
}

func TestRenderLayers(t *testing.T) {
	cfg := smallConfig(3, 3, Position{1, 1})
	cfg.ScaleX, cfg.ScaleY = 2, 3
	s := mustSim(t, cfg, 1)
	s.Env.Food = []Position{{0, 0}, {1, 1}, {0, 2}}
	s.Env.AddPheromone(0, 0, Vec{1, 0}, 1)
	s.Env.AddPheromone(2, 2, Vec{1, 0}, 0.5)

	buf := make([]byte, cfg.BufferSize())
	if err := s.Render(buf); err != nil {
		t.Fatal(err)
	}

	half := uint8(uint16(0x80) * 127 / 255)
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background", 2, 0, BackgroundColor},
		{"food", 0, 2, FoodColor},
		{"pheromone over food", 0, 0, PheromoneColor},
		{"ant over nest and food", 1, 1, AntColor},
		{"faint pheromone blended", 2, 2, color.RGBA{half, 0, half, 0xff}},
	}
	for _, tt := range tests {
		if got := cellColor(t, buf, cfg, tt.x, tt.y); got != tt.want {
			t.Errorf("%s: cell (%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}

	s.Ants[0].State = Returning
	s.Ants[0].Position = Position{1, 2}
	if err := s.Render(buf); err != nil {
		t.Fatal(err)
	}
	if got := cellColor(t, buf, cfg, 1, 2); got != CarrierColor {
		t.Errorf("carrier = %v, want %v", got, CarrierColor)
	}
	if got := cellColor(t, buf, cfg, 1, 1); got != NestColor {
		t.Errorf("empty nest = %v, want %v", got, NestColor)
	}
}

func TestRenderDeterministic(t *testing.T) {
	s := mustSim(t, DefaultConfig(), 5)
	s.Run(50)
	a := make([]byte, s.Config.BufferSize())
	b := make([]byte, s.Config.BufferSize())
	if err := s.Render(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Render(b); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d differs between renders", i)
		}
	}
}
