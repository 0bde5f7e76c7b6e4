//go:build f32

package dihedral

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float is the width every computation in the package is carried out in.
type Float = float32

// Point3D is a position in space, in any consistent length unit.
type Point3D = mgl32.Vec3

// Vector3D is a displacement or direction.
type Vector3D = mgl32.Vec3

type quat = mgl32.Quat

func sqrt(x Float) Float { return math32.Sqrt(x) }
func atan2(y, x Float) Float { return math32.Atan2(y, x) }
func acos(x Float) Float { return math32.Acos(x) }
func isInf(x Float) bool { return math32.IsInf(x, 1) }
func nan() Float { return math32.NaN() }

const pi Float = math32.Pi

func quatRotate(angle Float, axis Vector3D) quat {
	return mgl32.QuatRotate(angle, axis)
}
