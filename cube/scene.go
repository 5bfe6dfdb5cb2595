package cube

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene owns the transform and the vertex array that is uploaded each frame.
type Scene struct {
	Transform Transform
	Vertices  [VertexCount]Vertex
}

func NewScene() *Scene {
	return &Scene{
		Transform: NewTransform(),
		Vertices:  Mesh,
	}
}

// Recompute rebuilds Vertices from Mesh with the current transform.
// Colours and texels are copied through untouched.
func (s *Scene) Recompute() {
	for i, ref := range Mesh {
		pos := s.Transform.Apply(mgl32.Vec3(ref.Coordinate))

		s.Vertices[i] = ref
		s.Vertices[i].Coordinate = [3]float32(pos)
	}
}
