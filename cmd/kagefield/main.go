// Command kagefield shows the colour field in an Ebitengine window.
package main

import (
	"flag"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stewi1014/colorfield/colorfield"
	"github.com/stewi1014/colorfield/kage"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	width := flag.Int("width", 1200, "window width")
	height := flag.Int("height", 800, "window height")
	fullscreen := flag.Bool("fullscreen", false, "cover the primary monitor")
	offsetMs := flag.Float64("offset", -1, "startup time offset in ms, negative for random")
	flag.Parse()

	offset := colorfield.Offset(*offsetMs)
	if *offsetMs < 0 || *offsetMs >= colorfield.MaxOffset {
		offset = colorfield.NewOffset(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	log.Printf("starting at offset %.0fms", float64(offset))

	game, err := kage.NewGame(colorfield.ColorField())
	if err != nil {
		return err
	}
	colorfield.NewAnimator(offset, game.Drawable()).Attach(game)

	ebiten.SetWindowTitle("Color Field")
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	ebiten.SetVsyncEnabled(true)

	return ebiten.RunGame(game)
}
