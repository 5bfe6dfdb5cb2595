package cube

import (
	"github.com/go-gl/mathgl/mgl32"
)

// FullTurn is the wrap point for rotation angles, in degrees.
const FullTurn float32 = 360

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Transform is the keyboard-driven state applied to every vertex.
// Angles are in degrees and stay in [0, 360).
type Transform struct {
	Translation mgl32.Vec3
	Scale       float32
	Angles      [3]float32
}

func NewTransform() Transform {
	return Transform{
		Translation: mgl32.Vec3{0, 0, 0},
		Scale:       1,
	}
}

// Rotate adds delta degrees to the angle of one axis. A result that reaches
// 360 is reduced by exactly 360.
func (t *Transform) Rotate(axis Axis, delta float32) {
	t.Angles[axis] = wrapAngle(t.Angles[axis] + delta)
}

func wrapAngle(deg float32) float32 {
	if deg >= FullTurn {
		deg -= FullTurn
	}
	return deg
}

// Apply maps a reference coordinate to its rendered position:
// rotZ(rotY(rotX(scale(v) + translation))).
func (t Transform) Apply(v mgl32.Vec3) mgl32.Vec3 {
	v = ScaleMat3(t.Scale).Mul3x1(v)
	v = v.Add(t.Translation)
	v = mgl32.Rotate3DX(mgl32.DegToRad(t.Angles[AxisX])).Mul3x1(v)
	v = mgl32.Rotate3DY(mgl32.DegToRad(t.Angles[AxisY])).Mul3x1(v)
	v = mgl32.Rotate3DZ(mgl32.DegToRad(t.Angles[AxisZ])).Mul3x1(v)
	return v
}

// ScaleMat3 is a uniform scale matrix.
func ScaleMat3(s float32) mgl32.Mat3 {
	return mgl32.Diag3(mgl32.Vec3{s, s, s})
}
