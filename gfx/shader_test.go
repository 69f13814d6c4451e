package gfx_test

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"j4k.co/phong/gfx"
	"j4k.co/phong/gfx/testgfx"
)

var (
	vs gfx.VertexShader   = "void main() {}"
	fs gfx.FragmentShader = "out vec4 color; void main() { color = vec4(1.0); }"
)

func TestBuildProgram(t *testing.T) {
	ctx := testgfx.New()
	prog, err := gfx.BuildProgram(ctx, vs, fs)
	if err != nil {
		t.Fatal(err)
	}
	if prog == 0 || !ctx.Programs[uint32(prog)] {
		t.Fatalf("program %d not live", prog)
	}
	if len(ctx.Shaders) != 0 {
		t.Fatalf("shaders not deleted: %v", ctx.Shaders)
	}
	prog.Delete(ctx)
	if len(ctx.Programs) != 0 || len(ctx.Errors) != 0 {
		t.Fatalf("programs %v, errors %v", ctx.Programs, ctx.Errors)
	}
}

func TestBuildProgramCompileError(t *testing.T) {
	ctx := testgfx.New()
	ctx.CompileLog = "0:1: syntax error"
	_, err := gfx.BuildProgram(ctx, vs, fs)
	if err == nil || !strings.Contains(err.Error(), "vertex shader: 0:1: syntax error") {
		t.Fatalf("err = %v", err)
	}
	if len(ctx.Programs) != 0 || len(ctx.Shaders) != 0 {
		t.Fatalf("leaked programs %v, shaders %v", ctx.Programs, ctx.Shaders)
	}
}

func TestBuildProgramLinkError(t *testing.T) {
	ctx := testgfx.New()
	ctx.LinkLog = "unresolved symbol"
	_, err := gfx.BuildProgram(ctx, vs, fs)
	if err == nil || !strings.Contains(err.Error(), "link: unresolved symbol") {
		t.Fatalf("err = %v", err)
	}
	if len(ctx.Programs) != 0 || len(ctx.Shaders) != 0 {
		t.Fatalf("leaked programs %v, shaders %v", ctx.Programs, ctx.Shaders)
	}
}

func TestBuildProgramAllocFailure(t *testing.T) {
	ctx := testgfx.New()
	ctx.AllocLimit = 2
	if _, err := gfx.BuildProgram(ctx, vs, fs); !errors.Is(err, gfx.ErrAllocFailed) {
		t.Fatalf("err = %v", err)
	}
	if len(ctx.Programs) != 0 || len(ctx.Shaders) != 0 {
		t.Fatalf("leaked programs %v, shaders %v", ctx.Programs, ctx.Shaders)
	}
}

func TestProgramUse(t *testing.T) {
	ctx := testgfx.New()
	unuse := gfx.Program(5).Use(ctx)
	if ctx.Program != 5 {
		t.Fatalf("program = %d", ctx.Program)
	}
	unuse()
	if ctx.Program != 0 {
		t.Fatalf("program = %d after unuse", ctx.Program)
	}
}

var testBindings = gfx.Bindings{
	Version: 1,
	Locations: map[string]int32{
		"scale": 2,
		"tint":  0,
		"mvp":   1,
	},
}

func TestSetUniforms(t *testing.T) {
	ctx := testgfx.New()
	mvp := mgl32.Translate3D(1, 2, 3)
	data := struct {
		Tint  mgl32.Vec3 `uniform:"tint"`
		MVP   mgl32.Mat4 `uniform:"mvp"`
		skip  int
		Scale float32 `uniform:"scale"`
	}{
		Tint:  mgl32.Vec3{1, 0.5, 0},
		MVP:   mvp,
		Scale: 2,
	}
	defer gfx.Program(1).Use(ctx)()
	if err := gfx.SetUniforms(ctx, testBindings, &data); err != nil {
		t.Fatal(err)
	}
	want := []testgfx.Upload{
		{Location: 0, Value: mgl32.Vec3{1, 0.5, 0}},
		{Location: 1, Value: mvp},
		{Location: 2, Value: float32(2)},
	}
	if len(ctx.Uploads) != len(want) {
		t.Fatalf("uploads = %+v", ctx.Uploads)
	}
	for i := range want {
		if ctx.Uploads[i] != want[i] {
			t.Errorf("upload %d = %+v, want %+v", i, ctx.Uploads[i], want[i])
		}
	}
}

func TestSetUniformsUnexported(t *testing.T) {
	ctx := testgfx.New()
	data := struct {
		tint mgl32.Vec3 `uniform:"tint"`
	}{mgl32.Vec3{0, 1, 0}}
	defer gfx.Program(1).Use(ctx)()
	if err := gfx.SetUniforms(ctx, testBindings, data); err != nil {
		t.Fatal(err)
	}
	if ctx.Uniforms[0] != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("tint = %v", ctx.Uniforms[0])
	}
}

func TestSetUniformsErrors(t *testing.T) {
	ctx := testgfx.New()
	tests := []struct {
		name string
		data interface{}
	}{
		{"not a struct", 3},
		{"unbound", struct {
			X float32 `uniform:"missing"`
		}{}},
		{"unsupported", struct {
			X int `uniform:"scale"`
		}{}},
	}
	for _, test := range tests {
		if err := gfx.SetUniforms(ctx, testBindings, test.data); err == nil {
			t.Errorf("%s: no error", test.name)
		}
	}
}
