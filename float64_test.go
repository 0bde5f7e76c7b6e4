//go:build !f32

package dihedral

// tolerance bounds the drift, in radians, between angles computed from
// geometrically equivalent inputs.
const tolerance = 1e-7

// flatTolerance bounds the error of angles at or next to 0 and π, where acos
// loses precision.
const flatTolerance = 1e-6

// extremeScales multiply coordinates far enough that squaring them would
// overflow or underflow.
var extremeScales = []Float{1e-150, 1e-80, 1e80, 1e150}
