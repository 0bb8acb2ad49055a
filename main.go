package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
)

const (
	debug = false

	title       = "Color Field"
	refreshRate = 60
)

func init() {
	// gtk and glfw both want the thread main started on.
	runtime.LockOSThread()
}

func main() {
	opts, err := ParseOptions(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, opts)
	stop()

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, opts Options) error {
	offset := opts.StartOffset()
	log.Printf("starting at offset %.0fms", float64(offset))

	switch {
	case opts.Save != "":
		return save(ctx, opts, offset)
	case opts.Backend == backendGLFW:
		opts.Width, opts.Height = opts.Size(func() (int, int) { return defaultWidth, defaultHeight })
		return runGLFW(ctx, opts, offset)
	default:
		return runGTK(ctx, opts, offset)
	}
}
