package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/colorfield/colorfield"
)

func runGTK(ctx context.Context, opts Options, offset colorfield.Offset) error {
	gtk.Init(&os.Args)
	app, err := gtk.ApplicationNew("com.github.stewi1014.colorfield", glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		return fmt.Errorf("gtk.ApplicationNew failed: %w", err)
	}

	appContext, appQuit := context.WithCancelCause(ctx)
	var renderWindow *RenderWindow
	app.Connect("activate", func() {
		opts.Width, opts.Height = opts.Size(getWindowSize)

		var err error
		renderWindow, err = NewRenderWindow(app, appContext, appQuit, opts, offset)
		if err != nil {
			appQuit(err)
			return
		}
		renderWindow.SetTitle(title)
		renderWindow.Connect("destroy", func() {
			appQuit(nil)
		})
	})

	go func() {
		<-appContext.Done()
		glib.IdleAdd(func() {
			err := context.Cause(appContext)
			if err != nil && !errors.Is(err, context.Canceled) && renderWindow != nil {
				NewErrorDialog(renderWindow.ApplicationWindow, err)
			}
			app.Quit()
		})
	}()

	app.Run(nil)
	appQuit(nil)

	if err := context.Cause(appContext); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func getWindowSize() (width, height int) {
	width = defaultWidth
	height = defaultHeight

	display, err := gdk.DisplayGetDefault()
	if err != nil {
		return
	}

	monitor, err := display.GetPrimaryMonitor()
	if err != nil {
		return
	}

	width = int(float32(monitor.GetGeometry().GetWidth()) * .6)
	height = int(float32(monitor.GetGeometry().GetHeight()) * .6)
	return
}
