// Package dihedral computes the dihedral (torsion) angle of four ordered
// points, such as four consecutively bonded atoms.
//
// Dihedral follows the sign convention of biochemistry textbooks and returns
// an angle in (-π, π]. DihedralUnsigned drops the direction of rotation,
// returns an angle in [0, π] and is cheaper to compute.
//
// Angles are in radians. Converting them to degrees is left to the caller.
//
// When the points are degenerate, both functions return NaN. Points are
// degenerate when two consecutive points coincide or when three
// consecutive points are collinear. CheckedDihedral and
// CheckedDihedralUnsigned report the same condition as a
// DegenerateGeometryError instead.
//
// All arithmetic is float64 unless the package is built with -tags f32.
package dihedral

// DegenerateGeometryError reports four points that do not define two
// half-planes, so the angle between them does not exist.
type DegenerateGeometryError string

func (e DegenerateGeometryError) Error() string {
	return "dihedral: degenerate geometry: " + string(e)
}

// Dihedral returns the signed dihedral angle of the four ordered points, in
// the range (-π, π].
//
// Looking along the axis from points[1] to points[2], the angle is positive
// when the far bond, points[2]-points[3], is turned clockwise from the near
// bond, points[0]-points[1]. Reversing the order of the points leaves the
// result unchanged; mirroring them negates it.
//
// The edges are scaled to unit length before any product is formed, so the
// result does not depend on the magnitude of the coordinates as long as the
// differences between consecutive points are finite.
func Dihedral(points [4]Point3D) Float {
	a, b, c := unitEdges(points)

	r := Normalize(Cross(a, b))
	s := Normalize(Cross(b, c))
	m := Cross(r, b)

	angle := -atan2(Dot(s, m), Dot(r, s))
	if angle == -pi {
		return pi
	}
	return angle
}

// DihedralUnsigned returns the dihedral angle of the four ordered points
// without its direction, in the range [0, π]. Like Dihedral it works on unit
// edges, so it holds over the same coordinate range.
func DihedralUnsigned(points [4]Point3D) Float {
	a, b, c := unitEdges(points)

	n1 := Cross(a, b)
	n2 := Cross(b, c)

	// rounding can push the cosine of a flat angle just past ±1
	return acos(clamp(Dot(n1, n2)/(Norm(n1)*Norm(n2)), -1, 1))
}

// CheckedDihedral is Dihedral, failing with a DegenerateGeometryError
// instead of returning NaN.
func CheckedDihedral(points [4]Point3D) (Float, error) {
	if err := checkPlanes(points); err != nil {
		return nan(), err
	}
	return Dihedral(points), nil
}

// CheckedDihedralUnsigned is DihedralUnsigned, failing with a
// DegenerateGeometryError instead of returning NaN.
func CheckedDihedralUnsigned(points [4]Point3D) (Float, error) {
	if err := checkPlanes(points); err != nil {
		return nan(), err
	}
	return DihedralUnsigned(points), nil
}

// unitEdges returns the three bond directions. A zero-length edge comes
// back as a NaN vector.
func unitEdges(points [4]Point3D) (Vector3D, Vector3D, Vector3D) {
	a := Normalize(Subtract(points[0], points[1]))
	b := Normalize(Subtract(points[1], points[2]))
	c := Normalize(Subtract(points[2], points[3]))
	return a, b, c
}

// checkPlanes rejects points that have a zero-length edge or a vanishing
// plane normal.
func checkPlanes(points [4]Point3D) error {
	first := DegenerateGeometryError("first three points are coincident or collinear")
	last := DegenerateGeometryError("last three points are coincident or collinear")

	if Norm(Subtract(points[0], points[1])) == 0 || Norm(Subtract(points[1], points[2])) == 0 {
		return first
	}
	if Norm(Subtract(points[2], points[3])) == 0 {
		return last
	}

	a, b, c := unitEdges(points)
	if Norm(Cross(a, b)) == 0 {
		return first
	}
	if Norm(Cross(b, c)) == 0 {
		return last
	}
	return nil
}

// clamp leaves NaN untouched.
func clamp(value, min, max Float) Float {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
