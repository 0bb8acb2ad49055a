package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/colorfield/colorfield"
)

// GLFWWindow hosts the colour field in a glfw window. All of its methods
// must be called from the main thread.
type GLFWWindow struct {
	*glfw.Window
	drawable *GLDrawable
	frame    colorfield.FrameFunc
}

var _ colorfield.Scheduler = (*GLFWWindow)(nil)

// NewGLFWWindow opens the window and prepares the drawable. glfw.Init must
// have been called.
func NewGLFWWindow(opts Options, program colorfield.Program) (*GLFWWindow, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	width, height := opts.Width, opts.Height
	var monitor *glfw.Monitor
	if opts.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
		glfw.WindowHint(glfw.RefreshRate, mode.RefreshRate)
	}

	window, err := glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: glfw.CreateWindow failed: %w", colorfield.ErrRenderingUnavailable, err)
	}

	w := &GLFWWindow{
		Window: window,
	}

	w.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("%w: gl.Init failed: %w", colorfield.ErrRenderingUnavailable, err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	glfw.SwapInterval(1)

	w.drawable, err = NewGLDrawable(program)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	fbWidth, fbHeight := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	w.SetKeyCallback(func(window *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			window.SetShouldClose(true)
		}
	})

	return w, nil
}

// Drawable is the GL drawable bound to this window's context.
func (w *GLFWWindow) Drawable() colorfield.Drawable {
	return w.drawable
}

func (w *GLFWWindow) OnFrame(frame colorfield.FrameFunc) {
	w.frame = frame
}

// Run calls the registered FrameFunc once per refresh until the window is
// closed or ctx is done.
func (w *GLFWWindow) Run(ctx context.Context) error {
	defer w.Destroy()
	defer w.drawable.Delete()

	glfw.SetTime(0)
	for !w.ShouldClose() {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		if w.frame != nil {
			w.frame(glfw.GetTime())
		}

		w.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

func runGLFW(ctx context.Context, opts Options, offset colorfield.Offset) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: glfw.Init failed: %w", colorfield.ErrRenderingUnavailable, err)
	}
	defer glfw.Terminate()

	w, err := NewGLFWWindow(opts, colorfield.ColorField())
	if err != nil {
		return err
	}

	colorfield.NewAnimator(offset, w.Drawable()).Attach(w)
	return w.Run(ctx)
}
