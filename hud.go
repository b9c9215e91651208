package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/ant-colony-go/pkg/colony"
)

var hudPanel = color.RGBA{0x00, 0x00, 0x00, 0xa0}

func hudLines(st colony.Stats, ticksPerFrame int, paused bool) []string {
	status := fmt.Sprintf("x%d", ticksPerFrame)
	if paused {
		status = "paused"
	}
	return []string{
		fmt.Sprintf("tick %d  %s", st.Tick, status),
		fmt.Sprintf("ants %d  carrying %d", st.Ants, st.Carrying),
		fmt.Sprintf("food %d  delivered %d", st.FoodLeft, st.Delivered),
		fmt.Sprintf("trail cells %d", st.PheromoneCells),
		"space pause  +/- speed  R reset  S/L save/load  H hide",
	}
}

func drawHUD(screen *ebiten.Image, st colony.Stats, ticksPerFrame int, paused bool) {
	lines := hudLines(st, ticksPerFrame, paused)
	const lineHeight = 16
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*7)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(width+12), float32(len(lines)*lineHeight+8), hudPanel, false)
	for i, l := range lines {
		text.Draw(screen, l, basicfont.Face7x13, 6, 16+i*lineHeight, color.White)
	}
}
