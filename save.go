package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stewi1014/colorfield/colorfield"
)

// save renders opts.Frames frames on the CPU and writes them as PNG files.
func save(ctx context.Context, opts Options, offset colorfield.Offset) error {
	width, height := opts.Size(func() (int, int) { return defaultWidth, defaultHeight })

	pixel := colorfield.Color
	if opts.Float32 {
		pixel = colorfield.Color32
	}

	canvas := colorfield.NewCanvas(ctx, width, height, pixel)
	canvas.Supersample = opts.Supersample

	frame := 0
	canvas.Emit = func(img *image.NRGBA, uniforms colorfield.Uniforms) error {
		name := frameName(opts.Save, frame, opts.Frames)
		frame++

		if err := writePNG(name, img); err != nil {
			return err
		}

		centre, _ := colorful.MakeColor(img.At(width/2, height/2))
		log.Printf("saved %v at %.0fms, centre %v", name, uniforms.Time, centre.Hex())
		return nil
	}

	step := &colorfield.FixedStep{
		Start:  opts.At.Seconds(),
		FPS:    opts.FPS,
		Frames: opts.Frames,
	}
	colorfield.NewAnimator(offset, canvas).Attach(step)

	if err := step.Run(ctx); err != nil {
		return err
	}
	return canvas.Err()
}

// frameName numbers name when more than one frame is saved,
// so out.png becomes out-0000.png, out-0001.png and so on.
func frameName(name string, frame, frames int) string {
	if frames <= 1 {
		return name
	}

	ext := filepath.Ext(name)
	return fmt.Sprintf("%s-%04d%s", strings.TrimSuffix(name, ext), frame, ext)
}

func writePNG(name string, img image.Image) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %v: %w", name, err)
	}
	return nil
}
