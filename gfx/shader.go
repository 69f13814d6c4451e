package gfx

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type ShaderSource interface {
	Stage() ShaderStage
	Source() string
}

type VertexShader string
type FragmentShader string

func (v VertexShader) Stage() ShaderStage { return VertexStage }
func (v VertexShader) Source() string     { return string(v) }

func (f FragmentShader) Stage() ShaderStage { return FragmentStage }
func (f FragmentShader) Source() string     { return string(f) }

var ErrNoProgram = errors.New("gfx: no program")

// Program is a linked shader program handle. A Program does not own the
// handle unless it was returned by BuildProgram.
type Program uint32

// BuildProgram compiles and links srcs into a new program. Compile and link
// failures carry the driver's info log.
func BuildProgram(ctx Context, srcs ...ShaderSource) (_ Program, err error) {
	prog := ctx.CreateProgram()
	if prog == 0 {
		return 0, errors.Wrap(ErrAllocFailed, "program")
	}
	shaders := make([]uint32, 0, len(srcs))
	defer func() {
		// No longer need shader objects with a fully built program.
		for _, s := range shaders {
			ctx.DetachShader(prog, s)
			ctx.DeleteShader(s)
		}
		if err != nil {
			ctx.DeleteProgram(prog)
		}
	}()
	for _, src := range srcs {
		s := ctx.CreateShader(src.Stage())
		if s == 0 {
			return 0, errors.Wrapf(ErrAllocFailed, "%v shader", src.Stage())
		}
		ctx.AttachShader(prog, s)
		shaders = append(shaders, s)
		if ok, log := ctx.CompileShader(s, src.Source()); !ok {
			return 0, errors.Errorf("gfx: %v shader: %s", src.Stage(), log)
		}
	}
	if ok, log := ctx.LinkProgram(prog); !ok {
		return 0, errors.Errorf("gfx: link: %s", log)
	}
	return Program(prog), nil
}

// Use activates the program and returns a func that deactivates it.
func (p Program) Use(ctx Context) func() {
	ctx.UseProgram(uint32(p))
	return func() { ctx.UseProgram(0) }
}

func (p Program) Delete(ctx Context) {
	if p != 0 {
		ctx.DeleteProgram(uint32(p))
	}
}

// Bindings maps uniform names to fixed locations. The table is shared with
// the shaders that declare those locations explicitly, so any change to it
// must bump Version.
type Bindings struct {
	Version   int
	Locations map[string]int32
}

func (b Bindings) Location(name string) (int32, bool) {
	loc, ok := b.Locations[name]
	return loc, ok
}

var (
	vec3Type = reflect.TypeOf(mgl32.Vec3{})
	mat4Type = reflect.TypeOf(mgl32.Mat4{})
)

// SetUniforms takes struct fields with a "uniform" tag, in declaration
// order, and assigns their values to the locations bound to the tag names.
// The program receiving the values must be in use.
func SetUniforms(ctx Context, bindings Bindings, data interface{}) error {
	val := reflect.Indirect(reflect.ValueOf(data))
	if val.Kind() != reflect.Struct {
		return errors.Errorf("gfx: uniforms from %v, want struct", val.Kind())
	}
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name := f.Tag.Get("uniform")
		if name == "" {
			continue
		}
		loc, ok := bindings.Location(name)
		if !ok {
			return errors.Errorf("gfx: uniform %q has no binding", name)
		}
		v := val.Field(i)
		switch {
		case v.Kind() == reflect.Float32:
			ctx.Uniform1f(loc, float32(v.Float()))
		case v.Type() == vec3Type:
			var vec mgl32.Vec3
			floats(vec[:], v)
			ctx.Uniform3fv(loc, vec)
		case v.Type() == mat4Type:
			var m mgl32.Mat4
			floats(m[:], v)
			ctx.UniformMatrix4fv(loc, m)
		default:
			return errors.Errorf("gfx: uniform %q has unsupported type %v", name, v.Type())
		}
	}
	return nil
}

// floats reads a float32 array field element by element, which works for
// unexported fields as well.
func floats(dst []float32, v reflect.Value) {
	for i := range dst {
		dst[i] = float32(v.Index(i).Float())
	}
}
