package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ezrec/vm6502/emulator"
	"github.com/ezrec/vm6502/video"
)

// Game draws the emulator's published video frames.
type Game struct {
	emu  *emulator.Emulator
	zoom int

	frame    *emulator.Frame
	videoImg *ebiten.Image // reused WIDTH x HEIGHT canvas
}

func (g *Game) Update() error {
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.videoImg == nil {
		g.videoImg = ebiten.NewImage(video.WIDTH, video.HEIGHT)
	}

	frame := g.emu.Frame()
	if frame != g.frame {
		g.videoImg.WritePixels(video.Frame(frame[:]).Pix)
		g.frame = frame
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.zoom), float64(g.zoom))
	screen.DrawImage(g.videoImg, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return video.WIDTH * g.zoom, video.HEIGHT * g.zoom
}
