package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/stewi1014/colorfield/colorfield"
)

const (
	backendGTK  = "gtk"
	backendGLFW = "glfw"

	defaultWidth  = 1200
	defaultHeight = 800
)

// Options configures a run. Width and Height of zero pick a size from the
// primary monitor.
type Options struct {
	Backend       string
	Width, Height int
	Fullscreen    bool

	// Offset is the startup offset in ms. Negative draws one at random.
	Offset float64
	Seed   uint64

	Save        string
	At          time.Duration
	Frames      int
	FPS         float64
	Supersample int
	Float32     bool
}

func ParseOptions(name string, args []string, output io.Writer) (Options, error) {
	var opts Options
	var size string

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.Backend, "backend", backendGTK, "window backend, gtk or glfw")
	fs.StringVar(&size, "size", "", "window or image size as WIDTHxHEIGHT")
	fs.BoolVar(&opts.Fullscreen, "fullscreen", false, "cover the primary monitor")
	fs.Float64Var(&opts.Offset, "offset", -1, "startup time offset in ms, negative for random")
	fs.Uint64Var(&opts.Seed, "seed", 0, "seed for the random offset, 0 for a fresh one")
	fs.StringVar(&opts.Save, "save", "", "render to this PNG file instead of opening a window")
	fs.DurationVar(&opts.At, "at", 0, "elapsed time of the first saved frame")
	fs.IntVar(&opts.Frames, "frames", 1, "number of frames to save")
	fs.Float64Var(&opts.FPS, "fps", 30, "frame rate of saved frames")
	fs.IntVar(&opts.Supersample, "supersample", 1, "render saved frames this many times larger and scale down")
	fs.BoolVar(&opts.Float32, "float32", false, "evaluate saved frames in single precision like the GPU")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if size != "" {
		var err error
		opts.Width, opts.Height, err = parseSize(size)
		if err != nil {
			return opts, err
		}
	}

	switch opts.Backend {
	case backendGTK, backendGLFW:
	default:
		return opts, fmt.Errorf("unknown backend %q", opts.Backend)
	}

	if opts.Offset >= colorfield.MaxOffset {
		return opts, fmt.Errorf("offset %v is not below %v", opts.Offset, colorfield.MaxOffset)
	}
	if opts.Frames < 1 {
		return opts, errors.New("frames must be at least 1")
	}
	if opts.FPS <= 0 {
		return opts, errors.New("fps must be positive")
	}
	if opts.Supersample < 1 {
		return opts, errors.New("supersample must be at least 1")
	}

	return opts, nil
}

func parseSize(size string) (width, height int, err error) {
	w, h, ok := strings.Cut(strings.ToLower(size), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q is not WIDTHxHEIGHT", size)
	}

	width, err = strconv.Atoi(w)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", size, err)
	}
	height, err = strconv.Atoi(h)
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", size, err)
	}

	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size %q must be positive", size)
	}
	return width, height, nil
}

// StartOffset returns the offset the animation starts at.
func (o Options) StartOffset() colorfield.Offset {
	if o.Offset >= 0 {
		return colorfield.Offset(o.Offset)
	}

	seed := o.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return colorfield.NewOffset(rand.New(rand.NewPCG(seed, seed)))
}

// Size returns the configured size, or fallback if none was given.
func (o Options) Size(fallback func() (int, int)) (width, height int) {
	if o.Width > 0 && o.Height > 0 {
		return o.Width, o.Height
	}
	return fallback()
}
