package shaders

import (
	_ "embed"
)

//go:embed cube.vert
var CubeVertexGLSL string

//go:embed cube.frag
var CubeFragmentGLSL string

// Names the cube shaders bind by.
const (
	AttribPosition = "sv_position"
	AttribColor    = "sv_color"
	AttribTexel    = "sv_texel"
	UniformTexture = "f_texture"
)
