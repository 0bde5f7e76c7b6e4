//go:build f32

package dihedral

const tolerance = 5e-3

const flatTolerance = 1e-2

var extremeScales = []Float{1e-30, 1e-20, 1e20, 1e30}
