package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/colorfield/colorfield"
)

// RenderWindow hosts the colour field in a GtkGLArea.
type RenderWindow struct {
	*gtk.ApplicationWindow
	gla *gtk.GLArea

	ctx  context.Context
	quit context.CancelCauseFunc

	program  colorfield.Program
	offset   colorfield.Offset
	drawable *GLDrawable
	frame    colorfield.FrameFunc
	start    time.Time
}

var _ colorfield.Scheduler = (*RenderWindow)(nil)

func NewRenderWindow(
	app *gtk.Application,
	ctx context.Context,
	quit context.CancelCauseFunc,
	opts Options,
	offset colorfield.Offset,
) (*RenderWindow, error) {
	var err error
	w := &RenderWindow{
		ctx:     ctx,
		quit:    quit,
		program: colorfield.ColorField(),
		offset:  offset,
	}

	w.ApplicationWindow, err = gtk.ApplicationWindowNew(app)
	if err != nil {
		return nil, fmt.Errorf("gtk.ApplicationWindowNew: %w", err)
	}

	w.SetDefaultSize(opts.Width, opts.Height)

	w.gla, err = gtk.GLAreaNew()
	if err != nil {
		return nil, fmt.Errorf("gtk.GLAreaNew: %w", err)
	}

	w.gla.SetRequiredVersion(4, 6)
	w.gla.Connect("realize", w.glaRealize)
	w.gla.Connect("render", w.glaRender)
	w.gla.Connect("resize", w.resize)
	w.gla.Connect("unrealize", w.glaUnrealize)

	w.Add(w.gla)
	if opts.Fullscreen {
		w.Fullscreen()
	}
	w.ShowAll()

	return w, nil
}

func (w *RenderWindow) OnFrame(frame colorfield.FrameFunc) {
	w.frame = frame
}

func (w *RenderWindow) glaRealize(gla *gtk.GLArea) {
	defer CatchPanicToContext(w.quit)
	gla.MakeCurrent()

	err := gl.Init()
	if err != nil {
		w.quit(fmt.Errorf("%w: gl.Init: %w", colorfield.ErrRenderingUnavailable, err))
		return
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	w.drawable, err = NewGLDrawable(w.program)
	if err != nil {
		w.quit(err)
		return
	}

	colorfield.NewAnimator(w.offset, w.drawable).Attach(w)
	w.start = time.Now()

	glib.TimeoutAdd(uint(time.Second/time.Millisecond/refreshRate), func() bool {
		if w.ctx.Err() != nil || w.drawable == nil {
			return false
		}
		gla.QueueRender()
		return true
	})
}

func (w *RenderWindow) glaRender(gla *gtk.GLArea) bool {
	defer CatchPanicToContext(w.quit)
	if w.drawable == nil || w.frame == nil {
		return false
	}

	w.frame(time.Since(w.start).Seconds())
	return true
}

func (w *RenderWindow) resize(gla *gtk.GLArea, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (w *RenderWindow) glaUnrealize(gla *gtk.GLArea) {
	if w.drawable == nil {
		return
	}

	gla.MakeCurrent()
	w.drawable.Delete()
	w.drawable = nil
}
