package cube

import "unsafe"

// Vertex is the interleaved layout uploaded to the vertex buffer.
type Vertex struct {
	Coordinate [3]float32
	Color      [4]float32
	Texel      [2]float32
}

const (
	VertexCount = 36

	VertexStride   = int32(unsafe.Sizeof(Vertex{}))
	CoordinateSize = 3
	ColorSize      = 4
	TexelSize      = 2

	CoordinateOffset = int(unsafe.Offsetof(Vertex{}.Coordinate))
	ColorOffset      = int(unsafe.Offsetof(Vertex{}.Color))
	TexelOffset      = int(unsafe.Offsetof(Vertex{}.Texel))
)

// Mesh holds the reference vertices of a unit cube centred at the origin.
// Texels index into a cross-shaped atlas (4 columns by 3 rows).
// Nothing may write to it; Scene copies it and transforms the copy.
var Mesh = [VertexCount]Vertex{
	{Coordinate: [3]float32{-0.5, -0.5, -0.5}, Texel: [2]float32{0.75, 0.33}},
	{Coordinate: [3]float32{-0.5, -0.5, 0.5}, Texel: [2]float32{1.0, 0.33}},
	{Coordinate: [3]float32{-0.5, 0.5, -0.5}, Texel: [2]float32{1.0, 0.66}},
	{Coordinate: [3]float32{0.5, 0.5, -0.5}, Texel: [2]float32{0.75, 0.66}},
	{Coordinate: [3]float32{-0.5, -0.5, -0.5}, Texel: [2]float32{0.5, 0.33}},
	{Coordinate: [3]float32{-0.5, 0.5, -0.5}, Texel: [2]float32{0.5, 0.66}},
	{Coordinate: [3]float32{0.5, -0.5, 0.5}, Texel: [2]float32{0.25, 0.0}},
	{Coordinate: [3]float32{-0.5, -0.5, -0.5}, Texel: [2]float32{0.0, 0.33}},
	{Coordinate: [3]float32{0.5, -0.5, -0.5}, Texel: [2]float32{0.25, 0.33}},
	{Coordinate: [3]float32{0.5, 0.5, -0.5}, Texel: [2]float32{0.50, 0.66}},
	{Coordinate: [3]float32{0.5, -0.5, -0.5}, Texel: [2]float32{0.50, 0.33}},
	{Coordinate: [3]float32{-0.5, -0.5, -0.5}, Texel: [2]float32{0.75, 0.33}},
	{Coordinate: [3]float32{-0.5, -0.5, 0.5}, Texel: [2]float32{0.75, 0.33}},
	{Coordinate: [3]float32{-0.5, 0.5, 0.5}, Texel: [2]float32{1.0, 0.66}},
	{Coordinate: [3]float32{-0.5, 0.5, -0.5}, Texel: [2]float32{0.75, 0.66}},
	{Coordinate: [3]float32{0.5, -0.5, 0.5}, Texel: [2]float32{0.25, 0.33}},
	{Coordinate: [3]float32{-0.5, -0.5, 0.5}, Texel: [2]float32{0.0, 0.33}},
	{Coordinate: [3]float32{-0.5, -0.5, -0.5}, Texel: [2]float32{0.0, 0.0}},
	{Coordinate: [3]float32{-0.5, 0.5, 0.5}, Texel: [2]float32{0.0, 0.66}},
	{Coordinate: [3]float32{-0.5, -0.5, 0.5}, Texel: [2]float32{0.0, 0.33}},
	{Coordinate: [3]float32{0.5, -0.5, 0.5}, Texel: [2]float32{0.25, 0.33}},
	{Coordinate: [3]float32{0.5, 0.5, 0.5}, Texel: [2]float32{0.25, 0.66}},
	{Coordinate: [3]float32{0.5, -0.5, -0.5}, Texel: [2]float32{0.50, 0.33}},
	{Coordinate: [3]float32{0.5, 0.5, -0.5}, Texel: [2]float32{0.50, 0.66}},
	{Coordinate: [3]float32{0.5, -0.5, -0.5}, Texel: [2]float32{0.50, 0.33}},
	{Coordinate: [3]float32{0.5, 0.5, 0.5}, Texel: [2]float32{0.25, 0.33}},
	{Coordinate: [3]float32{0.5, -0.5, 0.5}, Texel: [2]float32{0.25, 0.33}},
	{Coordinate: [3]float32{0.5, 0.5, 0.5}, Texel: [2]float32{0.0, 0.66}},
	{Coordinate: [3]float32{0.5, 0.5, -0.5}, Texel: [2]float32{0.0, 1.0}},
	{Coordinate: [3]float32{-0.5, 0.5, -0.5}, Texel: [2]float32{0.25, 1.0}},
	{Coordinate: [3]float32{0.5, 0.5, 0.5}, Texel: [2]float32{0.25, 0.66}},
	{Coordinate: [3]float32{-0.5, 0.5, -0.5}, Texel: [2]float32{0.0, 1.0}},
	{Coordinate: [3]float32{-0.5, 0.5, 0.5}, Texel: [2]float32{0.0, 0.66}},
	{Coordinate: [3]float32{0.5, 0.5, 0.5}, Texel: [2]float32{0.25, 0.66}},
	{Coordinate: [3]float32{-0.5, 0.5, 0.5}, Texel: [2]float32{0.0, 0.66}},
	{Coordinate: [3]float32{0.5, -0.5, 0.5}, Texel: [2]float32{0.25, 0.33}},
}

// Indices returns the triangle list for Mesh. Every vertex is used once, in order.
func Indices() [VertexCount]uint8 {
	var indices [VertexCount]uint8
	for i := range indices {
		indices[i] = uint8(i)
	}
	return indices
}
