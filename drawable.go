package main

import (
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/colorfield/colorfield"
)

// GLDrawable draws a colorfield.Program over the whole viewport.
// It must only be used on the thread owning its GL context.
type GLDrawable struct {
	vao              uint32
	vbo              uint32
	program          uint32
	vertexAttrib     uint32
	uniformLocations map[string]int32

	uniforms colorfield.ShaderUniforms
}

var _ colorfield.Drawable = (*GLDrawable)(nil)

// NewGLDrawable compiles program and uploads the quad. gl.Init must already
// have been called for the current context.
func NewGLDrawable(program colorfield.Program) (*GLDrawable, error) {
	d := &GLDrawable{}

	gl.DebugMessageCallback(glDebugMessage, nil)
	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	verticies := colorfield.QuadData()

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verticies)*4, gl.Ptr(verticies), gl.STATIC_DRAW)

	if err := d.loadProgram(program); err != nil {
		d.Delete()
		return nil, fmt.Errorf("%w: %w", colorfield.ErrRenderingUnavailable, err)
	}

	return d, nil
}

func (d *GLDrawable) Draw(uniforms colorfield.Uniforms) {
	d.uniforms = uniforms.Shader()

	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(d.program)
	d.loadUniforms()
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, colorfield.QuadVertexCount)
}

func (d *GLDrawable) Delete() {
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
}

func (d *GLDrawable) loadUniforms() {
	v := reflect.ValueOf(&d.uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)

		ptr := f.Addr().UnsafePointer()
		loc, ok := d.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]
		if !ok || loc < 0 {
			continue
		}

		switch f.Type() {
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec3{}):
			gl.Uniform3fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec4{}):
			gl.Uniform4fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(int32(0)):
			gl.Uniform1iv(loc, 1, (*int32)(ptr))
		default:
			log.Printf("unsupported uniform type %v", f.Type())
		}
	}
}

func (d *GLDrawable) loadProgram(program colorfield.Program) error {
	vertexShader, err := compileShader(program.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(program.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fragmentShader)

	d.program = gl.CreateProgram()
	gl.AttachShader(d.program, vertexShader)
	gl.AttachShader(d.program, fragmentShader)
	gl.BindFragDataLocation(d.program, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(d.program)

	var status int32
	gl.GetProgramiv(d.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(d.program, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(d.program, l, nil, gl.Str(log))
		return fmt.Errorf("failed to link program %v: %v", program.Name, log)
	}
	gl.UseProgram(d.program)

	d.uniformLocations = make(map[string]int32)
	t := reflect.TypeOf(d.uniforms)
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		d.uniformLocations[name] = gl.GetUniformLocation(d.program, gl.Str(name+"\x00"))
	}

	d.vertexAttrib = uint32(gl.GetAttribLocation(d.program, gl.Str("position\x00")))
	gl.EnableVertexAttribArray(d.vertexAttrib)
	gl.VertexAttribPointerWithOffset(d.vertexAttrib, 2, gl.FLOAT, false, 2*4, 0)

	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		log := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, log)
	}

	return shader, nil
}

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	severityStr := "unknown"
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "high"
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "low"
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "medium"
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		return
	}

	sourceStr := "unknownSource"
	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "api"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "application"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "shaderCompiler"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "windowSystem"
	case gl.DEBUG_SOURCE_OTHER:
		sourceStr = "other"
	}

	typeStr := "unknownType"
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "deprecatedBehavior"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "undefinedBehavior"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "performance"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "portability"
	case gl.DEBUG_TYPE_OTHER:
		typeStr = "other"
	}

	log.Printf("%v(%v): %v; %v\n", sourceStr, severityStr, typeStr, message)
}
