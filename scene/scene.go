// Package scene draws a single Phong-lit cube. A Scene owns the cube's GPU
// buffers and the light and material state, and uploads uniforms to an
// externally built shader program each time the camera changes and once
// per frame.
//
// A Scene is not safe for concurrent use. All calls must come from the
// thread its graphics context is current on.
package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"j4k.co/phong/geometry"
	"j4k.co/phong/gfx"
)

// Camera is the transform collaborator a Scene forwards camera requests to.
// The Scene never owns it; the same camera may be held by the window or
// input code that drives it.
type Camera interface {
	Translate(diff mgl32.Vec3)
	Rotate(degrees mgl32.Vec3)
	ScaleBy(amount float32)
	Scale() float32
	Resize(aspect float32)
	ModelView() mgl32.Mat4
	View() mgl32.Mat4
	Projection() mgl32.Mat4
}

var (
	ErrNoProgram          = gfx.ErrNoProgram
	ErrNotInitialized     = errors.New("scene: not initialized")
	ErrAlreadyInitialized = errors.New("scene: already initialized")
	ErrReleased           = errors.New("scene: released")
)

// Handles is a snapshot of the GPU objects owned by a Scene. A zero handle
// means the object is not allocated.
type Handles struct {
	VertexArray uint32
	Vertices    uint32
	Indices     uint32
	Normals     uint32
	IndexCount  int
}

type Option func(*Scene)

// WithLogger sets where initialization failures are reported. The default
// is the standard logger, which writes to stderr.
func WithLogger(l *log.Logger) Option {
	return func(s *Scene) { s.log = l }
}

func WithLight(l Light) Option {
	return func(s *Scene) { s.light = l }
}

func WithMaterial(m Material) Option {
	return func(s *Scene) { s.material = m }
}

func WithAmbient(color mgl32.Vec3, intensity float32) Option {
	return func(s *Scene) {
		s.ambientColor = color
		s.ambientIntensity = intensity
	}
}

type Scene struct {
	ctx     gfx.Context
	camera  Camera
	program gfx.Program
	log     *log.Logger

	background       mgl32.Vec3
	ambientColor     mgl32.Vec3
	ambientIntensity float32
	light            Light
	material         Material

	// Computed once in New. Later changes to the ambient color, intensity
	// or material do not reach it.
	ambientFactor mgl32.Vec3

	va       *gfx.VertexArray
	vertices *gfx.VertexBuffer
	indices  *gfx.IndexBuffer
	normals  *gfx.VertexBuffer

	initialized bool
	released    bool
}

// New creates a scene drawn with program and viewed through cam. No GPU
// objects are allocated until Initialize.
func New(ctx gfx.Context, background mgl32.Vec3, cam Camera, program gfx.Program, opts ...Option) *Scene {
	s := &Scene{
		ctx:              ctx,
		camera:           cam,
		program:          program,
		log:              log.Default(),
		background:       background,
		ambientColor:     DefaultAmbientColor,
		ambientIntensity: DefaultAmbientIntensity,
		light:            DefaultLight(),
		material:         DefaultMaterial(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ambientFactor = ambientFactor(s.ambientColor, s.ambientIntensity, s.material)
	return s
}

// Initialize sets up depth testing, multisampling and the clear color,
// uploads the cube and its uniforms. A scene is initialized at most once;
// later calls return ErrAlreadyInitialized without touching the context.
func (s *Scene) Initialize() error {
	switch {
	case s.released:
		return ErrReleased
	case s.initialized:
		return ErrAlreadyInitialized
	case s.program == 0:
		return ErrNoProgram
	}

	s.ctx.Enable(gfx.DepthTest)
	s.ctx.DepthFunc(gfx.LessEqual)
	s.ctx.Enable(gfx.Multisample)
	s.ctx.ClearColor(s.background[0], s.background[1], s.background[2], 1)

	if err := s.initializeContents(); err != nil {
		s.log.Printf("scene: failed to initialize scene contents: %v", err)
		return errors.Wrap(err, "scene: initialize contents")
	}
	return s.UpdateUniforms()
}

func (s *Scene) initializeContents() (err error) {
	cube := geometry.Cube()
	defer func() {
		if err != nil {
			s.releaseContents()
		}
	}()

	if s.va, err = gfx.NewVertexArray(s.ctx); err != nil {
		return err
	}
	s.va.Bind(s.ctx)

	if s.vertices, err = gfx.NewVertexBuffer(s.ctx, gfx.VertexPosition); err != nil {
		return err
	}
	if err = cube.CopyVertices(s.ctx, s.vertices, gfx.StaticDraw); err != nil {
		return err
	}
	s.vertices.EnableAttrib(s.ctx)

	if s.indices, err = gfx.NewIndexBuffer(s.ctx); err != nil {
		return err
	}
	cube.CopyIndices(s.ctx, s.indices, gfx.StaticDraw)
	s.ctx.BindBuffer(gfx.ArrayBuffer, 0)

	if s.normals, err = gfx.NewVertexBuffer(s.ctx, gfx.VertexNormal); err != nil {
		return err
	}
	if err = cube.CopyVertices(s.ctx, s.normals, gfx.StaticDraw); err != nil {
		return err
	}
	s.normals.EnableAttrib(s.ctx)

	s.ctx.BindBuffer(gfx.ArrayBuffer, 0)
	s.ctx.BindVertexArray(0)
	s.initialized = true
	return nil
}

type uniforms struct {
	AmbientFactor     mgl32.Vec3 `uniform:"ambientFactor"`
	LightDiffuse      mgl32.Vec3 `uniform:"lightDiffuse"`
	LightSpecular     mgl32.Vec3 `uniform:"lightSpecular"`
	LightIntensity    float32    `uniform:"lightIntensity"`
	LightPosition     mgl32.Vec3 `uniform:"lightPosition"`
	MaterialDiffuse   mgl32.Vec3 `uniform:"materialDiffuse"`
	MaterialSpecular  mgl32.Vec3 `uniform:"materialSpecular"`
	MaterialShininess float32    `uniform:"materialShininess"`
	ModelView         mgl32.Mat4 `uniform:"modelViewMatrix"`
	View              mgl32.Mat4 `uniform:"viewMatrix"`
	Projection        mgl32.Mat4 `uniform:"projectionMatrix"`
}

// UpdateUniforms uploads all eleven uniforms, in location order, from the
// current light, material and camera state. Nothing is diffed against the
// previous upload.
func (s *Scene) UpdateUniforms() error {
	if s.program == 0 {
		return ErrNoProgram
	}
	defer s.program.Use(s.ctx)()

	return gfx.SetUniforms(s.ctx, Bindings, uniforms{
		AmbientFactor:     s.ambientFactor,
		LightDiffuse:      s.light.Diffuse,
		LightSpecular:     s.light.Specular,
		LightIntensity:    s.light.Intensity,
		LightPosition:     s.light.Position,
		MaterialDiffuse:   s.material.Diffuse,
		MaterialSpecular:  s.material.Specular,
		MaterialShininess: s.material.Shininess,
		ModelView:         s.camera.ModelView(),
		View:              s.camera.View(),
		Projection:        s.camera.Projection(),
	})
}

func (s *Scene) TranslateCamera(diff mgl32.Vec3) error {
	s.camera.Translate(diff)
	return s.UpdateUniforms()
}

func (s *Scene) RotateCamera(degrees mgl32.Vec3) error {
	s.camera.Rotate(degrees)
	return s.UpdateUniforms()
}

func (s *Scene) ScaleCamera(amount float32) error {
	s.camera.ScaleBy(amount)
	return s.UpdateUniforms()
}

func (s *Scene) Resize(aspect float32) error {
	s.camera.Resize(aspect)
	return s.UpdateUniforms()
}

func (s *Scene) CameraScale() float32 {
	return s.camera.Scale()
}

// Clear clears the color and depth buffers to the background.
func (s *Scene) Clear() {
	s.ctx.Clear(true, true)
}

// Render refreshes the uniforms and draws the cube with a single indexed
// draw call. Rendering before Initialize returns ErrNotInitialized and
// issues no draw.
func (s *Scene) Render() error {
	switch {
	case s.program == 0:
		return ErrNoProgram
	case s.released:
		return ErrReleased
	case !s.initialized:
		return ErrNotInitialized
	}
	if err := s.UpdateUniforms(); err != nil {
		return err
	}

	defer s.program.Use(s.ctx)()
	defer s.va.Bind(s.ctx)()
	defer s.vertices.Bind(s.ctx)()
	defer s.indices.Bind(s.ctx)()

	s.indices.Draw(s.ctx, gfx.Triangles)
	return nil
}

// Release deletes the scene's GPU objects. The program and the camera are
// not owned and are left alone. Release may be called in any state;
// calls after the first do nothing.
func (s *Scene) Release() {
	if s.released {
		return
	}
	s.releaseContents()
	s.initialized = false
	s.released = true
}

func (s *Scene) releaseContents() {
	if s.va.Handle() == 0 && s.vertices.Handle() == 0 && s.indices.Handle() == 0 && s.normals.Handle() == 0 {
		return
	}
	s.ctx.BindBuffer(gfx.ArrayBuffer, 0)
	s.ctx.BindBuffer(gfx.ElementArrayBuffer, 0)

	s.indices.Release(s.ctx)
	s.vertices.Release(s.ctx)
	s.normals.Release(s.ctx)
	s.va.Release(s.ctx)
}

func (s *Scene) Handles() Handles {
	return Handles{
		VertexArray: s.va.Handle(),
		Vertices:    s.vertices.Handle(),
		Indices:     s.indices.Handle(),
		Normals:     s.normals.Handle(),
		IndexCount:  s.indices.Count(),
	}
}

func (s *Scene) Initialized() bool         { return s.initialized }
func (s *Scene) Program() gfx.Program      { return s.program }
func (s *Scene) Background() mgl32.Vec3    { return s.background }
func (s *Scene) Light() Light              { return s.light }
func (s *Scene) Material() Material        { return s.material }
func (s *Scene) AmbientFactor() mgl32.Vec3 { return s.ambientFactor }
