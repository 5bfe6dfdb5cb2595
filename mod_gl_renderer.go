package texcube

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gekko3d/texcube/cube"
	"github.com/gekko3d/texcube/shaders"
)

const defaultTexturePath = "cube.tga"

// GLRendererModule draws the cube scene with OpenGL 4.1 core. It needs the
// context of the shared window; install it through UseRenderer.
type GLRendererModule struct {
	TexturePath string
}

func NewGLRendererModule(texturePath string) GLRendererModule {
	if texturePath == "" {
		texturePath = defaultTexturePath
	}
	return GLRendererModule{TexturePath: texturePath}
}

type vertexAttribute struct {
	name     string
	size     int32
	offset   int
	location int32
}

// cubeAttributes mirrors cube.Vertex field by field.
func cubeAttributes() []vertexAttribute {
	return []vertexAttribute{
		{name: shaders.AttribPosition, size: cube.CoordinateSize, offset: cube.CoordinateOffset, location: -1},
		{name: shaders.AttribColor, size: cube.ColorSize, offset: cube.ColorOffset, location: -1},
		{name: shaders.AttribTexel, size: cube.TexelSize, offset: cube.TexelOffset, location: -1},
	}
}

type glRenderer struct {
	vao            uint32
	vbo            uint32
	ibo            uint32
	vertexShader   uint32
	fragmentShader uint32
	program        uint32
	texture        uint32

	attributes      []vertexAttribute
	textureLocation int32

	released bool
}

func (mod GLRendererModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[WindowState](app); !ok {
		panic("GLRendererModule: no window; install it with UseRenderer")
	}
	scene, ok := Resource[cube.Scene](app)
	if !ok {
		panic("GLRendererModule: no cube scene; install CubeModule first")
	}

	installProfiler(app)
	assets := installAssetServer(app)
	texturePath := NewGLRendererModule(mod.TexturePath).TexturePath

	r := newGLRenderer(app.Logger(), assets, scene, texturePath)
	cmd.AddResources(r)

	app.UseSystem(
		System(glRenderSystem).
			InStage(Render).
			RunAlways(),
	)
	if app.stateful {
		app.UseSystem(
			System(glReleaseSystem).
				InStage(Render).
				InState(OnExit(Running)),
		)
	}
}

// newGLRenderer creates every GPU object the cube needs. Shader, link and
// texture failures are logged and setup continues; what gets drawn is then
// undefined.
func newGLRenderer(logger Logger, assets *AssetServer, scene *cube.Scene, texturePath string) *glRenderer {
	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("initialize OpenGL: %w", err))
	}

	logger.Infof("OpenGL vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Infof("OpenGL renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	r := &glRenderer{attributes: cubeAttributes()}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, gl.Ptr(&scene.Vertices[0]), gl.DYNAMIC_DRAW)

	indices := cube.Indices()
	gl.GenBuffers(1, &r.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices), gl.Ptr(&indices[0]), gl.STATIC_DRAW)

	var err error

	logger.Debugf("Setting up vertex shader")
	r.vertexShader, err = compileShader(gl.VERTEX_SHADER, shaders.CubeVertexGLSL)
	if err != nil {
		logger.Errorf("Vertex shader: %v", err)
	} else {
		logger.Debugf("Vertex shader compiled")
	}

	logger.Debugf("Setting up fragment shader")
	r.fragmentShader, err = compileShader(gl.FRAGMENT_SHADER, shaders.CubeFragmentGLSL)
	if err != nil {
		logger.Errorf("Fragment shader: %v", err)
	} else {
		logger.Debugf("Fragment shader compiled")
	}

	logger.Debugf("Linking shader program")
	r.program, err = linkProgram(r.vertexShader, r.fragmentShader)
	if err != nil {
		logger.Errorf("Shader program: %v", err)
	} else {
		logger.Debugf("Shader program linked")
	}
	gl.UseProgram(r.program)

	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	if id, err := assets.LoadTexture(texturePath); err != nil {
		logger.Errorf("Texture not loaded: %v", err)
	} else {
		tex, _ := assets.Texture(id)
		logger.Infof("Loaded texture %s (%dx%d)", tex.Source, tex.Width, tex.Height)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(tex.Width), int32(tex.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Texels))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0, 0, 0, 0)

	for i := range r.attributes {
		attr := &r.attributes[i]
		attr.location = gl.GetAttribLocation(r.program, gl.Str(attr.name+"\x00"))
		if attr.location < 0 {
			logger.Debugf("Attribute %s is not active in the program", attr.name)
		}
	}
	r.textureLocation = gl.GetUniformLocation(r.program, gl.Str(shaders.UniformTexture+"\x00"))

	return r
}

const vertexBufferSize = cube.VertexCount * int(cube.VertexStride)

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return shader, fmt.Errorf("compile %s: %s", shaderKindName(kind), trimInfoLog(infoLog))
	}

	return shader, nil
}

func linkProgram(shaderIds ...uint32) (uint32, error) {
	program := gl.CreateProgram()
	for _, shader := range shaderIds {
		gl.AttachShader(program, shader)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		return program, fmt.Errorf("link program: %s", trimInfoLog(infoLog))
	}

	return program, nil
}

func shaderKindName(kind uint32) string {
	switch kind {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	default:
		return fmt.Sprintf("shader 0x%x", kind)
	}
}

func trimInfoLog(infoLog string) string {
	infoLog = strings.TrimRight(infoLog, "\x00")
	infoLog = strings.TrimSpace(infoLog)
	if infoLog == "" {
		return "no info log"
	}
	return infoLog
}

func glRenderSystem(r *glRenderer, scene *cube.Scene, ws *WindowState, profiler *Profiler, logger Logger) {
	if r.released {
		return
	}
	profiler.BeginScope("render")
	defer profiler.EndScope("render")

	logger.Debugf("Drawing...")
	r.draw(scene)
	ws.Present()
}

func (r *glRenderer) draw(scene *cube.Scene) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)

	// The whole array changes every frame, so it is uploaded whole.
	gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, gl.Ptr(&scene.Vertices[0]), gl.DYNAMIC_DRAW)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.Uniform1i(r.textureLocation, 0)

	for _, attr := range r.attributes {
		if attr.location < 0 {
			continue
		}
		gl.VertexAttribPointerWithOffset(uint32(attr.location), attr.size, gl.FLOAT, false, cube.VertexStride, uintptr(attr.offset))
		gl.EnableVertexAttribArray(uint32(attr.location))
	}

	gl.DrawElements(gl.TRIANGLES, cube.VertexCount, gl.UNSIGNED_BYTE, nil)
}

func glReleaseSystem(r *glRenderer, logger Logger) {
	logger.Debugf("Cleaning up GPU resources")
	r.release()
}

func (r *glRenderer) release() {
	if r.released {
		return
	}
	r.released = true

	gl.UseProgram(0)
	gl.DeleteProgram(r.program)
	gl.DeleteShader(r.vertexShader)
	gl.DeleteShader(r.fragmentShader)
	gl.DeleteTextures(1, &r.texture)
	gl.DeleteBuffers(1, &r.ibo)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
}
