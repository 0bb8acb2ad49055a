// Package kage hosts the colour field on Ebitengine, drawing it with the Kage
// port of the fragment shader.
package kage

import (
	"fmt"
	"reflect"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stewi1014/colorfield/colorfield"
)

// Game is an ebiten.Game that calls its FrameFunc once per Draw.
type Game struct {
	drawable *ScreenDrawable
	frame    colorfield.FrameFunc
	now      func() time.Time
	start    time.Time
}

// ScreenDrawable draws onto the screen of the ebiten Draw call in progress.
type ScreenDrawable struct {
	shader   *ebiten.Shader
	screen   *ebiten.Image
	uniforms map[string]any
}

var (
	_ ebiten.Game          = (*Game)(nil)
	_ colorfield.Scheduler = (*Game)(nil)
	_ colorfield.Drawable  = (*ScreenDrawable)(nil)
)

// NewGame compiles the Kage source of program.
func NewGame(program colorfield.Program) (*Game, error) {
	shader, err := ebiten.NewShader(program.KageShader)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %v shader: %w", colorfield.ErrRenderingUnavailable, program.Name, err)
	}

	return &Game{
		drawable: &ScreenDrawable{shader: shader},
		now:      time.Now,
	}, nil
}

func (g *Game) Drawable() *ScreenDrawable {
	return g.drawable
}

func (g *Game) OnFrame(frame colorfield.FrameFunc) {
	g.frame = frame
}

func (g *Game) Update() error {
	if g.start.IsZero() {
		g.start = g.now()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil || g.start.IsZero() {
		return
	}

	g.drawable.screen = screen
	g.frame(g.now().Sub(g.start).Seconds())
	g.drawable.screen = nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (d *ScreenDrawable) Draw(uniforms colorfield.Uniforms) {
	if d.screen == nil {
		return
	}

	d.uniforms = UniformMap(uniforms.Shader(), d.uniforms)
	bounds := d.screen.Bounds()
	d.screen.DrawRectShader(bounds.Dx(), bounds.Dy(), d.shader, &ebiten.DrawRectShaderOptions{
		Uniforms: d.uniforms,
	})
}

// UniformMap converts uniforms into the form DrawRectShader takes, keyed by
// the kage struct tags. dst is reused when not nil.
func UniformMap(uniforms colorfield.ShaderUniforms, dst map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}

	v := reflect.ValueOf(uniforms)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("kage")
		if name == "" {
			continue
		}

		f := v.Field(i)
		if f.Kind() == reflect.Array {
			values := make([]float32, f.Len())
			for j := range values {
				values[j] = float32(f.Index(j).Float())
			}
			dst[name] = values
			continue
		}
		dst[name] = float32(f.Float())
	}

	return dst
}
