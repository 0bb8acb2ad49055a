package colorfield

import (
	"context"
	"image"
	"image/color"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// NewImage returns an image that evaluates pixel for every pixel it is asked
// for. Pixels are sampled at their centres, with y pointing up as in GL.
func NewImage(uniforms Uniforms, pixel PixelFunc, width, height int) *Image {
	return &Image{
		uniforms:  uniforms,
		bounds:    image.Rect(0, 0, width, height),
		pixelFunc: pixel,
	}
}

type Image struct {
	uniforms  Uniforms
	bounds    image.Rectangle
	pixelFunc PixelFunc
}

// Position returns the normalized position the pixel at x, y is shaded at.
func (i *Image) Position(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(x-i.bounds.Min.X) + 0.5) / float64(i.bounds.Dx()),
		1 - (float64(y-i.bounds.Min.Y)+0.5)/float64(i.bounds.Dy()),
	}
}

func (i *Image) GetPixel(pos mgl64.Vec2) colorful.Color {
	c := i.pixelFunc(i.uniforms, pos)
	return colorful.Color{R: c[0], G: c[1], B: c[2]}
}

func (i *Image) At(x, y int) color.Color {
	r, g, b := i.GetPixel(i.Position(x, y)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func (i *Image) Bounds() image.Rectangle {
	return i.bounds
}

func (i *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (i *Image) Opaque() bool {
	return true
}

// Render evaluates every pixel of img into a new buffer, spreading rows over
// all CPUs.
func Render(ctx context.Context, img image.Image) (*image.NRGBA, error) {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	chunkSize := 32
	for chunkMin := bounds.Min.Y; chunkMin < bounds.Max.Y; chunkMin += chunkSize {
		chunkMax := min(chunkMin+chunkSize, bounds.Max.Y)

		g.Go(func() error {
			for y := chunkMin; y < chunkMax; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				for x := bounds.Min.X; x < bounds.Max.X; x++ {
					dst.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dst, nil
}

// RenderFrame renders one frame at width x height. With factor above 1 the
// frame is rendered factor times larger and scaled down.
func RenderFrame(
	ctx context.Context,
	uniforms Uniforms,
	pixel PixelFunc,
	width, height int,
	factor int,
) (*image.NRGBA, error) {
	if factor <= 1 {
		return Render(ctx, NewImage(uniforms, pixel, width, height))
	}

	large, err := Render(ctx, NewImage(uniforms, pixel, width*factor, height*factor))
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), large, large.Bounds(), draw.Src, nil)
	return dst, nil
}

// Canvas is a Drawable that renders on the CPU. Each Draw replaces Frame and
// then calls Emit, if set.
type Canvas struct {
	Width, Height int
	Supersample   int
	Pixel         PixelFunc
	Emit          func(frame *image.NRGBA, uniforms Uniforms) error

	ctx   context.Context
	Frame *image.NRGBA
	err   error
}

func NewCanvas(ctx context.Context, width, height int, pixel PixelFunc) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixel:  pixel,
		ctx:    ctx,
	}
}

func (c *Canvas) Draw(uniforms Uniforms) {
	if c.err != nil {
		return
	}

	c.Frame, c.err = RenderFrame(c.ctx, uniforms, c.Pixel, c.Width, c.Height, c.Supersample)
	if c.err == nil && c.Emit != nil {
		c.err = c.Emit(c.Frame, uniforms)
	}
}

// Err returns the first error hit while drawing. Later draws are skipped once
// it is set.
func (c *Canvas) Err() error {
	return c.err
}
