//go:build !f32

package dihedral

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Float is the width every computation in the package is carried out in.
// Build with -tags f32 to switch the whole package to float32.
type Float = float64

// Point3D is a position in space, in any consistent length unit.
type Point3D = mgl64.Vec3

// Vector3D is a displacement or direction.
type Vector3D = mgl64.Vec3

type quat = mgl64.Quat

func sqrt(x Float) Float { return math.Sqrt(x) }
func atan2(y, x Float) Float { return math.Atan2(y, x) }
func acos(x Float) Float { return math.Acos(x) }
func isInf(x Float) bool { return math.IsInf(x, 1) }
func nan() Float { return math.NaN() }

const pi Float = math.Pi

func quatRotate(angle Float, axis Vector3D) quat {
	return mgl64.QuatRotate(angle, axis)
}
